package googlemaps

import (
	"net/http"
	"time"

	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
)

const (
	defaultGeocodeURL  = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultTimezoneURL = "https://maps.googleapis.com/maps/api/timezone/json"
	defaultNearbyURL   = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	defaultPhotoURL    = "https://maps.googleapis.com/maps/api/place/photo"

	// nearbyRadius and maxAttractions are part of the resolution contract,
	// not tuning knobs.
	nearbyRadius   = 500
	maxAttractions = 4
)

type ApiWrapper struct {
	GeoAPI *Client
}

// Client calls the Google Maps geocoding, timezone and places endpoints.
// Base URLs are fields so tests can point the client at a local server.
type Client struct {
	httpClient   *http.Client
	apiKey       string
	descriptions repository.DescriptionRepository

	geocodeURL  string
	timezoneURL string
	nearbyURL   string
	photoURL    string

	now func() time.Time
}

func New(cfg *config.AppConfig, client *http.Client, descriptions repository.DescriptionRepository) *ApiWrapper {
	return &ApiWrapper{
		GeoAPI: &Client{
			httpClient:   client,
			apiKey:       cfg.GoogleAPIKey,
			descriptions: descriptions,
			geocodeURL:   defaultGeocodeURL,
			timezoneURL:  defaultTimezoneURL,
			nearbyURL:    defaultNearbyURL,
			photoURL:     defaultPhotoURL,
			now:          time.Now,
		},
	}
}
