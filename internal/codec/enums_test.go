package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/placesbridge/internal/models"
)

func TestParseTypeFilter(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.TypeFilter
	}{
		{"address", "ADDRESS", models.TypeFilterAddress},
		{"lower case cities", "cities", models.TypeFilterCities},
		{"mixed case establishment", "Establishment", models.TypeFilterEstablishment},
		{"geocode", "GEOCODE", models.TypeFilterGeocode},
		{"regions", "regions", models.TypeFilterRegions},
		{"all", "ALL", models.TypeFilterNone},
		{"empty", "", models.TypeFilterNone},
		{"unknown", "RESTAURANTS", models.TypeFilterNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTypeFilter(tt.input))
		})
	}
}

func TestTypeFilterNameRoundTrip(t *testing.T) {
	for _, f := range []models.TypeFilter{
		models.TypeFilterAddress,
		models.TypeFilterCities,
		models.TypeFilterEstablishment,
		models.TypeFilterGeocode,
		models.TypeFilterRegions,
		models.TypeFilterNone,
	} {
		assert.Equal(t, f, ParseTypeFilter(TypeFilterName(f)))
	}
}

func TestParsePlaceField_AllNamesDistinct(t *testing.T) {
	names := PlaceFieldNames()
	require.Len(t, names, 17)

	seen := make(map[models.PlaceField]string)
	var mask models.PlaceField
	for _, name := range names {
		field, err := ParsePlaceField(name)
		require.NoError(t, err, name)
		assert.NotZero(t, field, name)
		if other, dup := seen[field]; dup {
			t.Errorf("%s and %s map to the same flag", name, other)
		}
		seen[field] = name
		mask |= field
		assert.Equal(t, name, PlaceFieldName(field))
	}
	assert.Equal(t, models.PlaceFieldAll, mask)
}

func TestParsePlaceField_Unknown(t *testing.T) {
	for _, name := range []string{"", "name", "OPENING_HOURS ", "ICON"} {
		_, err := ParsePlaceField(name)
		var fieldErr *InvalidFieldNameError
		require.ErrorAs(t, err, &fieldErr, "%q", name)
		assert.Equal(t, name, fieldErr.Name)
	}
}

func TestParsePlaceFields(t *testing.T) {
	mask, err := ParsePlaceFields(nil)
	require.NoError(t, err)
	assert.Equal(t, models.PlaceFieldAll, mask)

	mask, err = ParsePlaceFields([]string{})
	require.NoError(t, err)
	assert.Zero(t, mask)

	mask, err = ParsePlaceFields([]string{"NAME", "RATING"})
	require.NoError(t, err)
	assert.Equal(t, models.PlaceFieldName|models.PlaceFieldRating, mask)
	assert.Equal(t, []string{"NAME", "RATING"}, PlaceFieldMaskNames(mask))

	_, err = ParsePlaceFields([]string{"NAME", "BOGUS", "RATING"})
	var fieldErr *InvalidFieldNameError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "BOGUS", fieldErr.Name)
}

func TestEncodeBusinessStatus(t *testing.T) {
	assert.Equal(t, "OPERATIONAL", EncodeBusinessStatus(models.BusinessStatusOperational))
	assert.Equal(t, "CLOSED_TEMPORARILY", EncodeBusinessStatus(models.BusinessStatusClosedTemporarily))
	assert.Equal(t, "CLOSED_PERMANENTLY", EncodeBusinessStatus(models.BusinessStatusClosedPermanently))
	assert.Nil(t, EncodeBusinessStatus(models.BusinessStatusNotSpecified))
	assert.Nil(t, EncodeBusinessStatus(models.BusinessStatus(42)))

	assert.Equal(t, models.BusinessStatusClosedTemporarily, ParseBusinessStatus("closed_temporarily"))
	assert.Equal(t, models.BusinessStatusNotSpecified, ParseBusinessStatus("FOR_SALE"))
}

func TestEncodeDayOfWeek(t *testing.T) {
	tests := []struct {
		day  models.DayOfWeek
		want string
	}{
		{models.Sunday, "SUNDAY"},
		{models.Monday, "MONDAY"},
		{models.Tuesday, "TUESDAY"},
		{models.Wednesday, "WEDNESDAY"},
		{models.Thursday, "THURSDAY"},
		{models.Friday, "FRIDAY"},
		{models.Saturday, "SATURDAY"},
		{models.DayOfWeek(7), "NULL"},
		{models.DayOfWeek(-1), "NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeDayOfWeek(tt.day))
		})
	}

	day, ok := ParseDayOfWeek("friday")
	assert.True(t, ok)
	assert.Equal(t, models.Friday, day)

	_, ok = ParseDayOfWeek("NULL")
	assert.False(t, ok)
}
