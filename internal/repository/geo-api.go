package repository

import (
	"context"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
)

// GeoData is the normalized output of one geocoding call, by name or by
// coordinates, including the location's local time at resolution.
type GeoData struct {
	City             string
	State            string
	Country          string
	FormattedAddress string
	Lat              float64
	Lng              float64
	CurrentTime      string
}

type GeoAPIRepository interface {
	GeocodeCity(ctx context.Context, name string) (*GeoData, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*GeoData, error)
	NearbyAttractions(ctx context.Context, lat, lng float64) ([]entity.PointOfInterest, error)
}

// DescriptionRepository looks up a free-text description for an attraction
// name. Callers treat it as best-effort.
type DescriptionRepository interface {
	GetDescription(ctx context.Context, name string) (string, error)
}
