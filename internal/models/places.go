package models

// SessionToken correlates an autocomplete burst with the place fetch that ends it
type SessionToken string

// PlaceField is a bit flag selecting one attribute of a Place to fetch
type PlaceField uint32

const (
	PlaceFieldAddress PlaceField = 1 << iota
	PlaceFieldAddressComponents
	PlaceFieldBusinessStatus
	PlaceFieldID
	PlaceFieldLatLng
	PlaceFieldName
	PlaceFieldOpeningHours
	PlaceFieldPhoneNumber
	PlaceFieldPhotoMetadatas
	PlaceFieldPlusCode
	PlaceFieldPriceLevel
	PlaceFieldRating
	PlaceFieldTypes
	PlaceFieldUserRatingsTotal
	PlaceFieldUTCOffset
	PlaceFieldViewport
	PlaceFieldWebsiteURI

	// PlaceFieldAll selects every field
	PlaceFieldAll PlaceField = PlaceFieldWebsiteURI<<1 - 1
)

// Has reports whether every flag in f is set in the mask
func (m PlaceField) Has(f PlaceField) bool {
	return m&f == f
}

// BusinessStatus is the operational state of a place
type BusinessStatus int

const (
	BusinessStatusNotSpecified BusinessStatus = iota
	BusinessStatusOperational
	BusinessStatusClosedTemporarily
	BusinessStatusClosedPermanently
)

// DayOfWeek numbers days the way the places web service does (0 = Sunday)
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// TypeFilter restricts autocomplete results to a class of place
type TypeFilter int

const (
	TypeFilterNone TypeFilter = iota
	TypeFilterAddress
	TypeFilterCities
	TypeFilterEstablishment
	TypeFilterGeocode
	TypeFilterRegions
)

// PriceLevelUnknown is reported when the service has no price level for a place
const PriceLevelUnknown = -1

// LatLng represents a geographic coordinate
type LatLng struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// LatLngBounds represents a geographic bounding box
type LatLngBounds struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

// TimeOfDay is a local wall-clock time
type TimeOfDay struct {
	Hour   int `json:"hours"`
	Minute int `json:"minutes"`
}

// Event marks the opening or closing moment of a Period
type Event struct {
	Day  DayOfWeek `json:"day"`
	Time TimeOfDay `json:"time"`
}

// Period is a single opening interval. Either end may be missing
// (a place open 24/7 has no Close).
type Period struct {
	Open  *Event `json:"open"`
	Close *Event `json:"close"`
}

// OpeningHours represents the opening hours of a place
type OpeningHours struct {
	Periods     []Period `json:"periods"`
	WeekdayText []string `json:"weekdayText"`
}

// PhotoMetadata describes one photo of a place
type PhotoMetadata struct {
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Attributions string `json:"attributions"`
	Reference    string `json:"-"`
}

// AddressComponent is one part of a structured address
type AddressComponent struct {
	Name      string   `json:"name"`
	ShortName string   `json:"shortName"`
	Types     []string `json:"types"`
}

// PlusCode represents a plus code (Open Location Code)
type PlusCode struct {
	CompoundCode string `json:"compoundCode"`
	GlobalCode   string `json:"globalCode"`
}

// Place holds the details returned for a single place.
// Empty strings, nil pointers and nil slices mean the field was not supplied.
type Place struct {
	ID                string
	Address           string
	AddressComponents []AddressComponent
	BusinessStatus    BusinessStatus
	Attributions      []string
	LatLng            *LatLng
	Name              string
	OpeningHours      *OpeningHours
	PhoneNumber       string
	PhotoMetadatas    []PhotoMetadata
	PlusCode          *PlusCode
	PriceLevel        int
	Rating            *float64
	Types             []string
	UserRatingsTotal  *int
	UTCOffsetMinutes  *int
	Viewport          *LatLngBounds
	WebsiteURI        string
}

// AutocompletePrediction is a candidate place suggested for a partial query
type AutocompletePrediction struct {
	PlaceID        string
	DistanceMeters *int
	PrimaryText    string
	SecondaryText  string
	FullText       string
}

// AutocompleteFilter narrows an autocomplete search
type AutocompleteFilter struct {
	Type      TypeFilter
	Countries []string
	Origin    *LatLng
}

// AutocompleteRequest is a single autocomplete search
type AutocompleteRequest struct {
	Query        string
	Filter       AutocompleteFilter
	SessionToken SessionToken
}

// FetchPlaceRequest is a single place detail lookup
type FetchPlaceRequest struct {
	PlaceID      string
	Fields       PlaceField
	SessionToken SessionToken
}

// Locale selects the language and region results are returned in
type Locale struct {
	Language string `json:"language"`
	Country  string `json:"country"`
}
