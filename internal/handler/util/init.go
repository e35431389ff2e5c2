package util

import (
	"github.com/LadsThatCode/Pinpoint-BE/config"
	"github.com/LadsThatCode/Pinpoint-BE/internal/handler/auth"
	"github.com/LadsThatCode/Pinpoint-BE/internal/handler/search"
	serv "github.com/LadsThatCode/Pinpoint-BE/internal/service/util"
	"github.com/labstack/echo"
)

func InitHandler(config *config.AppConfig, e *echo.Echo, servWrapper *serv.ServiceWrapper) {
	search.InitRoute(config, e, servWrapper)
	auth.InitRoute(e, servWrapper)
}
