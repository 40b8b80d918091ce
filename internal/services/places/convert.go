package places

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ternarybob/placesbridge/internal/codec"
	"github.com/ternarybob/placesbridge/internal/models"
)

// detailsFields maps each place field to the Details API field it is served by.
// Several place fields can share one API field.
var detailsFields = []struct {
	field models.PlaceField
	name  string
}{
	{models.PlaceFieldAddress, "formatted_address"},
	{models.PlaceFieldAddressComponents, "address_components"},
	{models.PlaceFieldBusinessStatus, "business_status"},
	{models.PlaceFieldID, "place_id"},
	{models.PlaceFieldLatLng, "geometry/location"},
	{models.PlaceFieldName, "name"},
	{models.PlaceFieldOpeningHours, "opening_hours"},
	{models.PlaceFieldPhoneNumber, "international_phone_number"},
	{models.PlaceFieldPhotoMetadatas, "photos"},
	{models.PlaceFieldPlusCode, "plus_code"},
	{models.PlaceFieldPriceLevel, "price_level"},
	{models.PlaceFieldRating, "rating"},
	{models.PlaceFieldTypes, "types"},
	{models.PlaceFieldUserRatingsTotal, "user_ratings_total"},
	{models.PlaceFieldUTCOffset, "utc_offset"},
	{models.PlaceFieldViewport, "geometry/viewport"},
	{models.PlaceFieldWebsiteURI, "website"},
}

// fieldsParam renders a field mask as the Details API "fields" parameter.
// An empty mask still asks for place_id so the service does not return every field.
func fieldsParam(mask models.PlaceField) string {
	names := make([]string, 0, len(detailsFields))
	for _, df := range detailsFields {
		if mask.Has(df.field) {
			names = append(names, df.name)
		}
	}
	if len(names) == 0 {
		return "place_id"
	}
	return strings.Join(names, ",")
}

func typeFilterParam(t models.TypeFilter) string {
	switch t {
	case models.TypeFilterAddress:
		return "address"
	case models.TypeFilterCities:
		return "(cities)"
	case models.TypeFilterEstablishment:
		return "establishment"
	case models.TypeFilterGeocode:
		return "geocode"
	case models.TypeFilterRegions:
		return "(regions)"
	default:
		return ""
	}
}

func componentsParam(countries []string) string {
	parts := make([]string, 0, len(countries))
	for _, c := range countries {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		parts = append(parts, "country:"+strings.ToLower(c))
	}
	return strings.Join(parts, "|")
}

func convertPrediction(p Prediction) *models.AutocompletePrediction {
	primary := p.StructuredFormatting.MainText
	if primary == "" {
		primary = p.Description
	}
	return &models.AutocompletePrediction{
		PlaceID:        p.PlaceID,
		DistanceMeters: p.DistanceMeters,
		PrimaryText:    primary,
		SecondaryText:  p.StructuredFormatting.SecondaryText,
		FullText:       p.Description,
	}
}

// convertPlace converts a Details API result into a Place
func convertPlace(result *PlaceResult, htmlAttributions []string) *models.Place {
	place := &models.Place{
		ID:               result.PlaceID,
		Address:          result.FormattedAddress,
		BusinessStatus:   codec.ParseBusinessStatus(result.BusinessStatus),
		Attributions:     plainTexts(htmlAttributions),
		Name:             result.Name,
		PhoneNumber:      result.InternationalPhoneNumber,
		PriceLevel:       models.PriceLevelUnknown,
		Rating:           result.Rating,
		Types:            result.Types,
		UserRatingsTotal: result.UserRatingsTotal,
		UTCOffsetMinutes: result.UTCOffset,
		WebsiteURI:       result.Website,
	}

	if result.PriceLevel != nil {
		place.PriceLevel = *result.PriceLevel
	}

	if result.AddressComponents != nil {
		place.AddressComponents = make([]models.AddressComponent, len(result.AddressComponents))
		for i, c := range result.AddressComponents {
			place.AddressComponents[i] = models.AddressComponent{
				Name:      c.LongName,
				ShortName: c.ShortName,
				Types:     c.Types,
			}
		}
	}

	if result.Geometry != nil {
		if result.Geometry.Location != nil {
			place.LatLng = &models.LatLng{Lat: result.Geometry.Location.Lat, Lng: result.Geometry.Location.Lng}
		}
		if vp := result.Geometry.Viewport; vp != nil && vp.Northeast != nil && vp.Southwest != nil {
			place.Viewport = &models.LatLngBounds{
				Northeast: models.LatLng{Lat: vp.Northeast.Lat, Lng: vp.Northeast.Lng},
				Southwest: models.LatLng{Lat: vp.Southwest.Lat, Lng: vp.Southwest.Lng},
			}
		}
	}

	if result.OpeningHours != nil {
		place.OpeningHours = convertOpeningHours(result.OpeningHours)
	}

	if result.Photos != nil {
		place.PhotoMetadatas = make([]models.PhotoMetadata, len(result.Photos))
		for i, photo := range result.Photos {
			place.PhotoMetadatas[i] = models.PhotoMetadata{
				Width:        photo.Width,
				Height:       photo.Height,
				Attributions: strings.Join(plainTexts(photo.HTMLAttributions), ", "),
				Reference:    photo.PhotoReference,
			}
		}
	}

	if result.PlusCode != nil {
		place.PlusCode = &models.PlusCode{
			CompoundCode: result.PlusCode.CompoundCode,
			GlobalCode:   result.PlusCode.GlobalCode,
		}
	}

	return place
}

func convertOpeningHours(h *OpeningHours) *models.OpeningHours {
	hours := &models.OpeningHours{WeekdayText: h.WeekdayText}
	if h.Periods != nil {
		hours.Periods = make([]models.Period, len(h.Periods))
		for i, p := range h.Periods {
			hours.Periods[i] = models.Period{
				Open:  convertDayTime(p.Open),
				Close: convertDayTime(p.Close),
			}
		}
	}
	return hours
}

func convertDayTime(dt *DayTime) *models.Event {
	if dt == nil {
		return nil
	}
	return &models.Event{
		Day:  models.DayOfWeek(dt.Day),
		Time: parseTimeOfDay(dt.Time),
	}
}

// parseTimeOfDay reads the service's 24-hour "hhmm" form. Malformed values yield midnight.
func parseTimeOfDay(s string) models.TimeOfDay {
	if len(s) != 4 {
		return models.TimeOfDay{}
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return models.TimeOfDay{}
	}
	minute, err := strconv.Atoi(s[2:])
	if err != nil || minute < 0 || minute > 59 {
		return models.TimeOfDay{}
	}
	return models.TimeOfDay{Hour: hour, Minute: minute}
}

// plainTexts strips markup from attribution snippets; nil stays nil
func plainTexts(snippets []string) []string {
	if snippets == nil {
		return nil
	}
	out := make([]string, 0, len(snippets))
	for _, s := range snippets {
		if text := plainText(s); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func plainText(snippet string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snippet))
	if err != nil {
		return strings.TrimSpace(snippet)
	}
	return strings.TrimSpace(doc.Text())
}
