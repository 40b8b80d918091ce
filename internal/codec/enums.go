// Package codec converts between the bridge wire vocabulary and the typed
// places records: enum names in both directions, and records into ordered
// key/value maps.
package codec

import (
	"fmt"
	"strings"

	"github.com/ternarybob/placesbridge/internal/models"
)

// DayOfWeekNull is emitted for a day outside Sunday..Saturday
const DayOfWeekNull = "NULL"

// InvalidFieldNameError is returned for a place field name outside the
// supported vocabulary. Callers must abort the request rather than drop the field.
type InvalidFieldNameError struct {
	Name string
}

func (e *InvalidFieldNameError) Error() string {
	return fmt.Sprintf("invalid place field: %q", e.Name)
}

var placeFields = []struct {
	name  string
	field models.PlaceField
}{
	{"ADDRESS", models.PlaceFieldAddress},
	{"ADDRESS_COMPONENTS", models.PlaceFieldAddressComponents},
	{"BUSINESS_STATUS", models.PlaceFieldBusinessStatus},
	{"ID", models.PlaceFieldID},
	{"LAT_LNG", models.PlaceFieldLatLng},
	{"NAME", models.PlaceFieldName},
	{"OPENING_HOURS", models.PlaceFieldOpeningHours},
	{"PHONE_NUMBER", models.PlaceFieldPhoneNumber},
	{"PHOTO_METADATAS", models.PlaceFieldPhotoMetadatas},
	{"PLUS_CODE", models.PlaceFieldPlusCode},
	{"PRICE_LEVEL", models.PlaceFieldPriceLevel},
	{"RATING", models.PlaceFieldRating},
	{"TYPES", models.PlaceFieldTypes},
	{"USER_RATINGS_TOTAL", models.PlaceFieldUserRatingsTotal},
	{"UTC_OFFSET", models.PlaceFieldUTCOffset},
	{"VIEWPORT", models.PlaceFieldViewport},
	{"WEBSITE_URI", models.PlaceFieldWebsiteURI},
}

// PlaceFieldNames lists the full field vocabulary in canonical order
func PlaceFieldNames() []string {
	names := make([]string, len(placeFields))
	for i, pf := range placeFields {
		names[i] = pf.name
	}
	return names
}

// ParsePlaceField maps an exact field name to its flag
func ParsePlaceField(name string) (models.PlaceField, error) {
	for _, pf := range placeFields {
		if pf.name == name {
			return pf.field, nil
		}
	}
	return 0, &InvalidFieldNameError{Name: name}
}

// ParsePlaceFields combines field names into a mask. A nil list selects
// every field; an empty list selects none. The first unknown name fails the whole list.
func ParsePlaceFields(names []string) (models.PlaceField, error) {
	if names == nil {
		return models.PlaceFieldAll, nil
	}

	var mask models.PlaceField
	for _, name := range names {
		field, err := ParsePlaceField(name)
		if err != nil {
			return 0, err
		}
		mask |= field
	}
	return mask, nil
}

// PlaceFieldName returns the wire name of a single flag, or "" when f is not exactly one known flag
func PlaceFieldName(f models.PlaceField) string {
	for _, pf := range placeFields {
		if pf.field == f {
			return pf.name
		}
	}
	return ""
}

// PlaceFieldMaskNames expands a mask into wire names in canonical order
func PlaceFieldMaskNames(mask models.PlaceField) []string {
	names := []string{}
	for _, pf := range placeFields {
		if mask.Has(pf.field) {
			names = append(names, pf.name)
		}
	}
	return names
}

// ParseTypeFilter maps a filter name, ignoring case. Empty, ALL and unknown
// names all mean no filter.
func ParseTypeFilter(name string) models.TypeFilter {
	switch strings.ToUpper(name) {
	case "ADDRESS":
		return models.TypeFilterAddress
	case "CITIES":
		return models.TypeFilterCities
	case "ESTABLISHMENT":
		return models.TypeFilterEstablishment
	case "GEOCODE":
		return models.TypeFilterGeocode
	case "REGIONS":
		return models.TypeFilterRegions
	default:
		return models.TypeFilterNone
	}
}

// TypeFilterName is the inverse of ParseTypeFilter
func TypeFilterName(t models.TypeFilter) string {
	switch t {
	case models.TypeFilterAddress:
		return "ADDRESS"
	case models.TypeFilterCities:
		return "CITIES"
	case models.TypeFilterEstablishment:
		return "ESTABLISHMENT"
	case models.TypeFilterGeocode:
		return "GEOCODE"
	case models.TypeFilterRegions:
		return "REGIONS"
	default:
		return "ALL"
	}
}

// EncodeBusinessStatus returns the wire string, or nil for anything that is
// not one of the three known states.
func EncodeBusinessStatus(s models.BusinessStatus) interface{} {
	switch s {
	case models.BusinessStatusOperational:
		return "OPERATIONAL"
	case models.BusinessStatusClosedTemporarily:
		return "CLOSED_TEMPORARILY"
	case models.BusinessStatusClosedPermanently:
		return "CLOSED_PERMANENTLY"
	default:
		return nil
	}
}

// ParseBusinessStatus is the inverse of EncodeBusinessStatus
func ParseBusinessStatus(name string) models.BusinessStatus {
	switch strings.ToUpper(name) {
	case "OPERATIONAL":
		return models.BusinessStatusOperational
	case "CLOSED_TEMPORARILY":
		return models.BusinessStatusClosedTemporarily
	case "CLOSED_PERMANENTLY":
		return models.BusinessStatusClosedPermanently
	default:
		return models.BusinessStatusNotSpecified
	}
}

var dayNames = [...]string{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}

// EncodeDayOfWeek returns the upper-case English day name. Out-of-range days
// encode as the literal "NULL" string, not as a nil value.
func EncodeDayOfWeek(d models.DayOfWeek) string {
	if d < models.Sunday || d > models.Saturday {
		return DayOfWeekNull
	}
	return dayNames[d]
}

// ParseDayOfWeek is the inverse of EncodeDayOfWeek
func ParseDayOfWeek(name string) (models.DayOfWeek, bool) {
	upper := strings.ToUpper(name)
	for i, day := range dayNames {
		if day == upper {
			return models.DayOfWeek(i), true
		}
	}
	return 0, false
}
