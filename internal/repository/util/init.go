package util

import (
	"net/http"
	"time"

	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository/googlemaps"
	db "github.com/LadsThatCode/Pinpoint-BE/internal/repository/postgres"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository/wikipedia"
)

type RepoWrapper struct {
	CityRepo        repository.CityRepository
	UserRepo        repository.UserRepository
	GeoAPI          repository.GeoAPIRepository
	DescriptionRepo repository.DescriptionRepository
}

func New(config *config.AppConfig) (repoWrapper *RepoWrapper, err error) {

	var dbConnection *db.RepoDatabase

	dbConnection, err = db.Init(config)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: time.Duration(config.UpstreamTimeout) * time.Second,
	}

	descriptions := wikipedia.New(httpClient)
	geoAPI := googlemaps.New(config, httpClient, descriptions)

	repoWrapper = &RepoWrapper{
		CityRepo:        dbConnection,
		UserRepo:        dbConnection,
		GeoAPI:          geoAPI.GeoAPI,
		DescriptionRepo: descriptions,
	}

	return
}
