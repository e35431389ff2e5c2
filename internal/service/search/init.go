package search

import (
	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository/util"
	"golang.org/x/sync/singleflight"
)

// SearchService resolves a city query into a stored record, serving repeat
// lookups from the database instead of the upstream providers.
type SearchService struct {
	cityRepository repository.CityRepository
	userRepository repository.UserRepository
	geoAPI         repository.GeoAPIRepository

	// inflight coalesces concurrent misses for the same query key so a
	// burst of identical requests costs one upstream round trip.
	inflight singleflight.Group
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *SearchService {
	return &SearchService{
		cityRepository: repo.CityRepo,
		userRepository: repo.UserRepo,
		geoAPI:         repo.GeoAPI,
	}
}
