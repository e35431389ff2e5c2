package util

import (
	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository/util"
	"github.com/LadsThatCode/Pinpoint-BE/internal/service"
	"github.com/LadsThatCode/Pinpoint-BE/internal/service/auth"
	"github.com/LadsThatCode/Pinpoint-BE/internal/service/search"
)

type ServiceWrapper struct {
	SearchService service.SearchService
	AuthService   service.AuthService
}

func New(config *config.AppConfig, repo *util.RepoWrapper) *ServiceWrapper {
	return &ServiceWrapper{
		SearchService: search.New(config, repo),
		AuthService:   auth.New(config, repo),
	}
}
