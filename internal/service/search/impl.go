package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
	"github.com/google/uuid"
)

// resolvedQuery is a validated search query: by name or by coordinates,
// never both.
type resolvedQuery struct {
	byName bool
	name   string
	lat    float64
	lng    float64
}

func (q resolvedQuery) key() string {
	if q.byName {
		return "name:" + q.name
	}
	return fmt.Sprintf("coord:%f,%f", q.lat, q.lng)
}

func parseQuery(params entity.SearchQueryParams) (resolvedQuery, error) {
	name := strings.TrimSpace(params.City)
	hasCoords := params.Lat != "" || params.Lng != ""

	if (name == "") == !hasCoords {
		// neither form, or both at once
		return resolvedQuery{}, apperr.ErrInvalidQuery
	}
	if name != "" {
		return resolvedQuery{byName: true, name: name}, nil
	}

	lat, err := strconv.ParseFloat(params.Lat, 64)
	if err != nil {
		return resolvedQuery{}, apperr.ErrInvalidQuery
	}
	lng, err := strconv.ParseFloat(params.Lng, 64)
	if err != nil {
		return resolvedQuery{}, apperr.ErrInvalidQuery
	}
	return resolvedQuery{lat: lat, lng: lng}, nil
}

// Resolve turns a name or coordinate query into a City record. A name that
// is already stored is returned as-is with no upstream traffic; anything
// else is resolved upstream and persisted. When an identity is present the
// record is linked to that user's saved searches.
func (s *SearchService) Resolve(ctx context.Context, identity string, params entity.SearchQueryParams) (*entity.City, error) {
	query, err := parseQuery(params)
	if err != nil {
		return nil, err
	}

	if query.byName {
		cached, err := s.cityRepository.FindByName(ctx, query.name)
		if err != nil {
			return nil, err
		}
		if cached != nil {
			return cached, nil
		}
	}

	city, err := s.resolveUpstream(ctx, query)
	if err != nil {
		return nil, err
	}

	if identity != "" {
		if err := s.userRepository.AddCityToUser(ctx, identity, city.ID); err != nil {
			return nil, err
		}
	}
	return city, nil
}

// resolveUpstream drives the provider calls for one query and persists the
// merged record. Concurrent callers with the same key share one execution.
// A record already stored under the resolved coordinates gets its
// enrichment fields overwritten instead of a duplicate insert.
func (s *SearchService) resolveUpstream(ctx context.Context, query resolvedQuery) (*entity.City, error) {
	result, err, _ := s.inflight.Do(query.key(), func() (interface{}, error) {
		var geo *repository.GeoData
		var err error
		if query.byName {
			geo, err = s.geoAPI.GeocodeCity(ctx, query.name)
		} else {
			geo, err = s.geoAPI.ReverseGeocode(ctx, query.lat, query.lng)
		}
		if err != nil {
			return nil, err
		}

		attractions, err := s.geoAPI.NearbyAttractions(ctx, geo.Lat, geo.Lng)
		if err != nil {
			return nil, err
		}

		city := buildCityRecord(geo, attractions)

		existing, err := s.cityRepository.FindByCoordinates(ctx, city.Lat, city.Lng)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			existing.CurrentTime = city.CurrentTime
			existing.PlacesOfInterest = city.PlacesOfInterest
			existing.PhotoURL = city.PhotoURL
			if err := s.cityRepository.Update(ctx, existing); err != nil {
				return nil, err
			}
			return existing, nil
		}

		if err := s.cityRepository.Insert(ctx, city); err != nil {
			return nil, err
		}
		return city, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*entity.City), nil
}

func (s *SearchService) Create(ctx context.Context, req entity.CreateCityRequest) (*entity.City, error) {
	city := &entity.City{
		Name:             req.Name,
		State:            req.State,
		Country:          req.Country,
		FormattedAddress: req.FormattedAddress,
		CurrentTime:      req.CurrentTime,
		Lat:              req.Lat,
		Lng:              req.Lng,
		PhotoURL:         req.PhotoURL,
		PlacesOfInterest: req.PlacesOfInterest,
	}
	if err := s.cityRepository.Insert(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *SearchService) Update(ctx context.Context, id string, req entity.UpdateCityRequest) (*entity.City, error) {
	cityID, err := uuid.Parse(id)
	if err != nil {
		return nil, &apperr.NotFoundError{Resource: "city", ID: id}
	}

	city, err := s.cityRepository.FindByID(ctx, cityID)
	if err != nil {
		return nil, err
	}
	if city == nil {
		return nil, &apperr.NotFoundError{Resource: "city", ID: id}
	}

	if req.Name != "" {
		city.Name = req.Name
	}
	if req.State != "" {
		city.State = req.State
	}
	if req.Country != "" {
		city.Country = req.Country
	}
	if req.FormattedAddress != "" {
		city.FormattedAddress = req.FormattedAddress
	}
	if req.CurrentTime != "" {
		city.CurrentTime = req.CurrentTime
	}
	if req.PhotoURL != nil {
		city.PhotoURL = req.PhotoURL
	}
	if req.PlacesOfInterest != nil {
		city.PlacesOfInterest = *req.PlacesOfInterest
	}

	if err := s.cityRepository.Update(ctx, city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *SearchService) Delete(ctx context.Context, id string) error {
	cityID, err := uuid.Parse(id)
	if err != nil {
		return &apperr.NotFoundError{Resource: "city", ID: id}
	}
	return s.cityRepository.Delete(ctx, cityID)
}

func (s *SearchService) ListAll(ctx context.Context) ([]entity.City, error) {
	return s.cityRepository.FindAll(ctx)
}

func (s *SearchService) ListForUser(ctx context.Context, identity string) ([]entity.City, error) {
	return s.userRepository.ListCitiesForUser(ctx, identity)
}
