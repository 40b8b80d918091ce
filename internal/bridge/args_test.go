package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/models"
)

func TestDecodeInitializeArgs(t *testing.T) {
	args, err := DecodeInitializeArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "", args.APIKey)
	assert.Nil(t, args.Locale)

	args, err = DecodeInitializeArgs(map[string]interface{}{
		"apiKey": "X",
		"locale": map[string]interface{}{"language": "fr", "country": "CA"},
	})
	require.NoError(t, err)
	assert.Equal(t, "X", args.APIKey)
	assert.Equal(t, &models.Locale{Language: "fr", Country: "CA"}, args.Locale)

	_, err = DecodeInitializeArgs(map[string]interface{}{"locale": "fr_CA"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDecodeFindAutocompletePredictionsArgs_Defaults(t *testing.T) {
	args, err := DecodeFindAutocompletePredictionsArgs(map[string]interface{}{"query": "piz"})
	require.NoError(t, err)

	assert.Equal(t, "piz", args.Query)
	assert.Equal(t, []string{}, args.Countries)
	assert.Equal(t, models.TypeFilterNone, args.TypeFilter)
	assert.Nil(t, args.Origin)
	assert.False(t, args.NewSessionToken)
}

func TestDecodeFindAutocompletePredictionsArgs_Full(t *testing.T) {
	args, err := DecodeFindAutocompletePredictionsArgs(map[string]interface{}{
		"query":           "piz",
		"countries":       []interface{}{"us", "fr"},
		"typeFilter":      "establishment",
		"origin":          map[string]interface{}{"lat": 40.7, "lng": -74.0},
		"newSessionToken": true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"us", "fr"}, args.Countries)
	assert.Equal(t, models.TypeFilterEstablishment, args.TypeFilter)
	assert.Equal(t, &models.LatLng{Lat: 40.7, Lng: -74.0}, args.Origin)
	assert.True(t, args.NewSessionToken)
}

func TestDecodeFindAutocompletePredictionsArgs_Permissive(t *testing.T) {
	args, err := DecodeFindAutocompletePredictionsArgs(map[string]interface{}{
		"query":      "piz",
		"countries":  []interface{}{},
		"typeFilter": "NOT_A_FILTER",
		"origin":     map[string]interface{}{"lat": 40.7},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{}, args.Countries)
	assert.Equal(t, models.TypeFilterNone, args.TypeFilter)
	assert.Nil(t, args.Origin)
}

func TestDecodeFindAutocompletePredictionsArgs_EmptyQueryIsAccepted(t *testing.T) {
	args, err := DecodeFindAutocompletePredictionsArgs(map[string]interface{}{"query": ""})
	require.NoError(t, err)
	assert.Equal(t, "", args.Query)
	assert.Equal(t, []string{}, args.Countries)
}

func TestDecodeFindAutocompletePredictionsArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing query", map[string]interface{}{}},
		{"null query", map[string]interface{}{"query": nil}},
		{"query not a string", map[string]interface{}{"query": map[string]interface{}{}}},
		{"latitude out of range", map[string]interface{}{
			"query":  "piz",
			"origin": map[string]interface{}{"lat": 91.0, "lng": 0.0},
		}},
		{"longitude not a number", map[string]interface{}{
			"query":  "piz",
			"origin": map[string]interface{}{"lat": 1.0, "lng": "east"},
		}},
		{"origin not a map", map[string]interface{}{"query": "piz", "origin": "here"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeFindAutocompletePredictionsArgs(tt.args)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDecodeFetchPlaceArgs(t *testing.T) {
	args, err := DecodeFetchPlaceArgs(map[string]interface{}{"placeId": "abc"})
	require.NoError(t, err)
	assert.Equal(t, "abc", args.PlaceID)
	assert.Equal(t, models.PlaceFieldAll, args.Fields)
	assert.False(t, args.NewSessionToken)

	args, err = DecodeFetchPlaceArgs(map[string]interface{}{
		"placeId":         "abc",
		"fields":          []interface{}{"NAME", "RATING"},
		"newSessionToken": true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceFieldName|models.PlaceFieldRating, args.Fields)
	assert.True(t, args.NewSessionToken)

	args, err = DecodeFetchPlaceArgs(map[string]interface{}{"placeId": "abc", "fields": []interface{}{}})
	require.NoError(t, err)
	assert.Zero(t, args.Fields)
}

func TestDecodeFetchPlaceArgs_Invalid(t *testing.T) {
	_, err := DecodeFetchPlaceArgs(map[string]interface{}{"placeId": "abc", "fields": []interface{}{"NAME", "ICON"}})
	var fieldErr *codec.InvalidFieldNameError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "ICON", fieldErr.Name)

	_, err = DecodeFetchPlaceArgs(map[string]interface{}{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "placeId")
}
