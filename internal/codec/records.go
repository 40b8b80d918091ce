package codec

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/ternarybob/placesbridge/internal/models"
)

// Record is an insertion-ordered wire map. It marshals to a JSON object with
// keys in the order they were set.
type Record = orderedmap.OrderedMap[string, interface{}]

func newRecord() *Record {
	return orderedmap.New[string, interface{}]()
}

// Keys returns the record's keys in order
func Keys(r *Record) []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// PlaceToMap encodes a place. A nil place yields an empty record; otherwise
// every key is present and nil marks fields the service did not supply.
func PlaceToMap(p *models.Place) *Record {
	r := newRecord()
	if p == nil {
		return r
	}

	r.Set("id", optString(p.ID))
	r.Set("address", optString(p.Address))
	r.Set("addressComponents", addressComponentsToList(p.AddressComponents))
	r.Set("businessStatus", EncodeBusinessStatus(p.BusinessStatus))
	r.Set("attributions", stringList(p.Attributions))
	r.Set("latLng", orNil(LatLngToMap(p.LatLng)))
	r.Set("name", optString(p.Name))
	r.Set("openingHours", orNil(OpeningHoursToMap(p.OpeningHours)))
	r.Set("phoneNumber", optString(p.PhoneNumber))
	r.Set("photoMetadatas", photoMetadatasToList(p.PhotoMetadatas))
	r.Set("plusCode", orNil(PlusCodeToMap(p.PlusCode)))
	r.Set("priceLevel", p.PriceLevel)
	r.Set("rating", optFloat(p.Rating))
	r.Set("types", upperTypes(p.Types))
	r.Set("userRatingsTotal", optInt(p.UserRatingsTotal))
	r.Set("utcOffsetMinutes", optInt(p.UTCOffsetMinutes))
	r.Set("websiteUri", optString(p.WebsiteURI))
	return r
}

// PredictionToMap encodes one autocomplete prediction
func PredictionToMap(p *models.AutocompletePrediction) *Record {
	if p == nil {
		return nil
	}
	r := newRecord()
	r.Set("placeId", p.PlaceID)
	r.Set("distanceMeters", optInt(p.DistanceMeters))
	r.Set("primaryText", p.PrimaryText)
	// secondary text is the one text field that defaults to "" rather than nil
	r.Set("secondaryText", p.SecondaryText)
	r.Set("fullText", p.FullText)
	return r
}

// PredictionsToList encodes predictions in order; nil stays nil
func PredictionsToList(predictions []*models.AutocompletePrediction) []*Record {
	if predictions == nil {
		return nil
	}
	out := make([]*Record, 0, len(predictions))
	for _, p := range predictions {
		out = append(out, PredictionToMap(p))
	}
	return out
}

// PhotoMetadataToMap encodes one photo's metadata
func PhotoMetadataToMap(p *models.PhotoMetadata) *Record {
	if p == nil {
		return nil
	}
	r := newRecord()
	r.Set("width", p.Width)
	r.Set("height", p.Height)
	r.Set("attributions", optString(p.Attributions))
	return r
}

// OpeningHoursToMap encodes opening hours
func OpeningHoursToMap(h *models.OpeningHours) *Record {
	if h == nil {
		return nil
	}
	r := newRecord()
	r.Set("periods", periodsToList(h.Periods))
	r.Set("weekdayText", stringList(h.WeekdayText))
	return r
}

// PeriodToMap encodes one opening period
func PeriodToMap(p *models.Period) *Record {
	if p == nil {
		return nil
	}
	r := newRecord()
	r.Set("open", orNil(EventToMap(p.Open)))
	r.Set("close", orNil(EventToMap(p.Close)))
	return r
}

// EventToMap encodes the open or close moment of a period
func EventToMap(e *models.Event) *Record {
	if e == nil {
		return nil
	}
	r := newRecord()
	r.Set("day", EncodeDayOfWeek(e.Day))
	r.Set("time", TimeOfDayToMap(&e.Time))
	return r
}

// TimeOfDayToMap encodes a local time
func TimeOfDayToMap(t *models.TimeOfDay) *Record {
	if t == nil {
		return nil
	}
	r := newRecord()
	r.Set("hours", t.Hour)
	r.Set("minutes", t.Minute)
	return r
}

// LatLngToMap encodes a coordinate
func LatLngToMap(ll *models.LatLng) *Record {
	if ll == nil {
		return nil
	}
	r := newRecord()
	r.Set("lat", ll.Lat)
	r.Set("lng", ll.Lng)
	return r
}

// AddressComponentToMap encodes one address component. Types are passed
// through unchanged, unlike place types.
func AddressComponentToMap(c *models.AddressComponent) *Record {
	if c == nil {
		return nil
	}
	r := newRecord()
	r.Set("name", c.Name)
	r.Set("shortName", c.ShortName)
	r.Set("types", stringList(c.Types))
	return r
}

// PlusCodeToMap encodes a plus code
func PlusCodeToMap(p *models.PlusCode) *Record {
	if p == nil {
		return nil
	}
	r := newRecord()
	r.Set("compoundCode", p.CompoundCode)
	r.Set("globalCode", p.GlobalCode)
	return r
}

func addressComponentsToList(components []models.AddressComponent) interface{} {
	if components == nil {
		return nil
	}
	out := make([]*Record, 0, len(components))
	for i := range components {
		out = append(out, AddressComponentToMap(&components[i]))
	}
	return out
}

func photoMetadatasToList(photos []models.PhotoMetadata) interface{} {
	if photos == nil {
		return nil
	}
	out := make([]*Record, 0, len(photos))
	for i := range photos {
		out = append(out, PhotoMetadataToMap(&photos[i]))
	}
	return out
}

func periodsToList(periods []models.Period) interface{} {
	if periods == nil {
		return nil
	}
	out := make([]*Record, 0, len(periods))
	for i := range periods {
		out = append(out, PeriodToMap(&periods[i]))
	}
	return out
}

func upperTypes(types []string) interface{} {
	if types == nil {
		return nil
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = strings.ToUpper(t)
	}
	return out
}

func stringList(items []string) interface{} {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// orNil keeps a missing record from becoming a typed nil inside the interface
func orNil(r *Record) interface{} {
	if r == nil {
		return nil
	}
	return r
}

func optString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func optInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func optFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
