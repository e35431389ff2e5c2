package auth

import (
	"github.com/LadsThatCode/Pinpoint-BE/internal/service"
	"github.com/LadsThatCode/Pinpoint-BE/internal/service/util"
	"github.com/labstack/echo"
)

type ApiWrapper struct {
	AuthService service.AuthService
}

func InitRoute(e *echo.Echo, servWrapper *util.ServiceWrapper) {
	api := ApiWrapper{
		AuthService: servWrapper.AuthService,
	}
	api.registerRouter(e)
}

func (a *ApiWrapper) registerRouter(e *echo.Echo) {
	group := e.Group("/api/v1/auth")
	group.POST("/register", a.Register)
	group.POST("/login", a.Login)
}
