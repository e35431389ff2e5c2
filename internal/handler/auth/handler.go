package auth

import (
	"errors"
	"net/http"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	authservice "github.com/LadsThatCode/Pinpoint-BE/internal/service/auth"
	"github.com/labstack/echo"
)

func (a *ApiWrapper) Register(c echo.Context) error {
	var req entity.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	user, err := a.AuthService.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
	return c.JSON(http.StatusCreated, user)
}

func (a *ApiWrapper) Login(c echo.Context) error {
	var req entity.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	token, err := a.AuthService.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{"message": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
	}
	return c.JSON(http.StatusOK, token)
}
