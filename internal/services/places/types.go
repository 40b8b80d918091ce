package places

// AutocompleteResponse represents the Google Places Autocomplete API response
type AutocompleteResponse struct {
	Predictions  []Prediction `json:"predictions"`
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// Prediction represents a single autocomplete prediction
type Prediction struct {
	Description          string               `json:"description"`
	DistanceMeters       *int                 `json:"distance_meters,omitempty"`
	PlaceID              string               `json:"place_id"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
	Types                []string             `json:"types,omitempty"`
}

// StructuredFormatting splits a prediction description into its main and secondary text
type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text,omitempty"`
}

// DetailsResponse represents the Google Places Details API response
type DetailsResponse struct {
	HTMLAttributions []string     `json:"html_attributions"`
	Result           *PlaceResult `json:"result,omitempty"`
	Status           string       `json:"status"`
	ErrorMessage     string       `json:"error_message,omitempty"`
}

// PlaceResult represents a single place returned by the Details API
type PlaceResult struct {
	AddressComponents        []AddressComponent `json:"address_components,omitempty"`
	BusinessStatus           string             `json:"business_status,omitempty"`
	FormattedAddress         string             `json:"formatted_address,omitempty"`
	Geometry                 *Geometry          `json:"geometry,omitempty"`
	InternationalPhoneNumber string             `json:"international_phone_number,omitempty"`
	Name                     string             `json:"name,omitempty"`
	OpeningHours             *OpeningHours      `json:"opening_hours,omitempty"`
	Photos                   []Photo            `json:"photos,omitempty"`
	PlaceID                  string             `json:"place_id,omitempty"`
	PlusCode                 *PlusCode          `json:"plus_code,omitempty"`
	PriceLevel               *int               `json:"price_level,omitempty"`
	Rating                   *float64           `json:"rating,omitempty"`
	Types                    []string           `json:"types,omitempty"`
	UserRatingsTotal         *int               `json:"user_ratings_total,omitempty"`
	UTCOffset                *int               `json:"utc_offset,omitempty"`
	Website                  string             `json:"website,omitempty"`
}

// AddressComponent is one element of address_components
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Geometry represents the geometry information of a place
type Geometry struct {
	Location *LatLng `json:"location,omitempty"`
	Viewport *Bounds `json:"viewport,omitempty"`
}

// LatLng represents a geographic coordinate
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds represents a geographic bounding box
type Bounds struct {
	Northeast *LatLng `json:"northeast,omitempty"`
	Southwest *LatLng `json:"southwest,omitempty"`
}

// OpeningHours represents the opening hours of a place
type OpeningHours struct {
	OpenNow     bool     `json:"open_now,omitempty"`
	Periods     []Period `json:"periods,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

// Period represents a single opening period
type Period struct {
	Open  *DayTime `json:"open,omitempty"`
	Close *DayTime `json:"close,omitempty"`
}

// DayTime represents a specific day and time ("0930")
type DayTime struct {
	Day  int    `json:"day"`
	Time string `json:"time"`
}

// Photo represents a place photo reference
type Photo struct {
	Height           int      `json:"height"`
	HTMLAttributions []string `json:"html_attributions"`
	PhotoReference   string   `json:"photo_reference"`
	Width            int      `json:"width"`
}

// PlusCode represents a plus code (Open Location Code)
type PlusCode struct {
	CompoundCode string `json:"compound_code,omitempty"`
	GlobalCode   string `json:"global_code,omitempty"`
}
