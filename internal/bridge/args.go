package bridge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"

	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/models"
)

// InitializeArgs are the decoded arguments of initialize
type InitializeArgs struct {
	APIKey string         `json:"apiKey"`
	Locale *models.Locale `json:"locale,omitempty"`
}

// FindAutocompletePredictionsArgs are the decoded arguments of findAutocompletePredictions
type FindAutocompletePredictionsArgs struct {
	Query           string            `json:"query"`
	Countries       []string          `json:"countries"`
	TypeFilter      models.TypeFilter `json:"typeFilter"`
	Origin          *models.LatLng    `json:"origin,omitempty"`
	NewSessionToken bool              `json:"newSessionToken"`
}

// FetchPlaceArgs are the decoded arguments of fetchPlace
type FetchPlaceArgs struct {
	PlaceID         string            `json:"placeId" validate:"required"`
	Fields          models.PlaceField `json:"fields"`
	NewSessionToken bool              `json:"newSessionToken"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire names rather than Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeInitializeArgs reads apiKey and the optional locale. A missing key is an empty key.
func DecodeInitializeArgs(args map[string]interface{}) (*InitializeArgs, error) {
	decoded := &InitializeArgs{
		APIKey: cast.ToString(args["apiKey"]),
	}

	if raw, ok := args["locale"]; ok && raw != nil {
		locale, err := cast.ToStringMapE(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: locale: %v", ErrInvalidArgument, err)
		}
		decoded.Locale = &models.Locale{
			Language: cast.ToString(locale["language"]),
			Country:  cast.ToString(locale["country"]),
		}
	}

	return decoded, nil
}

// DecodeFindAutocompletePredictionsArgs reads and validates search arguments.
// The query key must be present but may be empty. Missing countries decode as
// an empty list and a missing newSessionToken as false.
func DecodeFindAutocompletePredictionsArgs(args map[string]interface{}) (*FindAutocompletePredictionsArgs, error) {
	rawQuery, ok := args["query"]
	if !ok || rawQuery == nil {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidArgument)
	}
	query, err := cast.ToStringE(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: query: %v", ErrInvalidArgument, err)
	}

	countries := []string{}
	if raw, ok := args["countries"]; ok && raw != nil {
		countries, err = cast.ToStringSliceE(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: countries: %v", ErrInvalidArgument, err)
		}
		if countries == nil {
			countries = []string{}
		}
	}

	origin, err := decodeOrigin(args["origin"])
	if err != nil {
		return nil, err
	}

	decoded := &FindAutocompletePredictionsArgs{
		Query:           query,
		Countries:       countries,
		TypeFilter:      codec.ParseTypeFilter(cast.ToString(args["typeFilter"])),
		Origin:          origin,
		NewSessionToken: cast.ToBool(args["newSessionToken"]),
	}

	if err := validateArgs(decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// DecodeFetchPlaceArgs reads and validates fetch arguments. Missing fields
// select every field; an unknown field name fails with *codec.InvalidFieldNameError.
func DecodeFetchPlaceArgs(args map[string]interface{}) (*FetchPlaceArgs, error) {
	placeID, err := cast.ToStringE(args["placeId"])
	if err != nil {
		return nil, fmt.Errorf("%w: placeId: %v", ErrInvalidArgument, err)
	}

	var names []string
	if raw, ok := args["fields"]; ok && raw != nil {
		names, err = cast.ToStringSliceE(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: fields: %v", ErrInvalidArgument, err)
		}
		if names == nil {
			names = []string{}
		}
	}

	fields, err := codec.ParsePlaceFields(names)
	if err != nil {
		return nil, err
	}

	decoded := &FetchPlaceArgs{
		PlaceID:         placeID,
		Fields:          fields,
		NewSessionToken: cast.ToBool(args["newSessionToken"]),
	}

	if err := validateArgs(decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}

// decodeOrigin reads {lat, lng}. An origin missing either coordinate is ignored.
func decodeOrigin(raw interface{}) (*models.LatLng, error) {
	if raw == nil {
		return nil, nil
	}
	origin, err := cast.ToStringMapE(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: origin: %v", ErrInvalidArgument, err)
	}

	rawLat, hasLat := origin["lat"]
	rawLng, hasLng := origin["lng"]
	if !hasLat || !hasLng || rawLat == nil || rawLng == nil {
		return nil, nil
	}

	lat, err := cast.ToFloat64E(rawLat)
	if err != nil {
		return nil, fmt.Errorf("%w: origin.lat: %v", ErrInvalidArgument, err)
	}
	lng, err := cast.ToFloat64E(rawLng)
	if err != nil {
		return nil, fmt.Errorf("%w: origin.lng: %v", ErrInvalidArgument, err)
	}
	return &models.LatLng{Lat: lat, Lng: lng}, nil
}

func validateArgs(args interface{}) error {
	err := validate.Struct(args)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	problems := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s must be %s %s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			problems = append(problems, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidArgument, strings.Join(problems, "; "))
}
