package search

import (
	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/service"
	"github.com/LadsThatCode/Pinpoint-BE/internal/service/util"
	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"
)

type ApiWrapper struct {
	SearchService service.SearchService
	SigningKey    []byte
}

func InitRoute(config *config.AppConfig, e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		SearchService: servWrapper.SearchService,
		SigningKey:    []byte(config.JwtSecret),
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1")
	group.GET("/search", a.Search)
	group.POST("/search", a.CreateSearch)
	group.PUT("/search/:id", a.UpdateSearch)
	group.DELETE("/search/:id", a.DeleteSearch)
	group.GET("/cities", a.ListCities)
	group.GET("/my-cities", a.MyCities, middleware.JWTWithConfig(middleware.JWTConfig{
		SigningKey: a.SigningKey,
	}))
}
