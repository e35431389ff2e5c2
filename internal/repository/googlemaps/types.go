package googlemaps

// Response shapes for the Google Maps endpoints this client touches. Only
// the fields the resolution pipeline reads are declared; optional fields are
// pointers so a missing value is distinguishable from a zero.

type geocodeResponse struct {
	Results []geocodeResult `json:"results"`
	Status  string          `json:"status"`
}

type geocodeResult struct {
	AddressComponents []addressComponent `json:"address_components"`
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          geometry           `json:"geometry"`
}

type addressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type geometry struct {
	Location location `json:"location"`
}

type location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type timezoneResponse struct {
	DstOffset  int64  `json:"dstOffset"`
	RawOffset  int64  `json:"rawOffset"`
	TimeZoneID string `json:"timeZoneId"`
	Status     string `json:"status"`
}

type nearbySearchResponse struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

type placeResult struct {
	Name                 string   `json:"name"`
	Photos               []photo  `json:"photos,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
	Vicinity             *string  `json:"vicinity,omitempty"`
	FormattedPhoneNumber *string  `json:"formatted_phone_number,omitempty"`
}

type photo struct {
	Height         int    `json:"height"`
	Width          int    `json:"width"`
	PhotoReference string `json:"photo_reference"`
}
