package search

import (
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
)

// buildCityRecord merges one geocoding result and one attractions result
// into a City. Pure field mapping, no I/O. The record-level photo is
// borrowed from the first attraction since geocoding carries no photo.
func buildCityRecord(geo *repository.GeoData, attractions []entity.PointOfInterest) *entity.City {
	city := &entity.City{
		Name:             geo.City,
		State:            geo.State,
		Country:          geo.Country,
		FormattedAddress: geo.FormattedAddress,
		CurrentTime:      geo.CurrentTime,
		Lat:              geo.Lat,
		Lng:              geo.Lng,
		PlacesOfInterest: attractions,
	}
	if len(attractions) > 0 {
		city.PhotoURL = attractions[0].PhotoURL
	}
	return city
}
