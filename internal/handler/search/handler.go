package search

import (
	"errors"
	"net/http"
	"strings"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo"
)

// Search handles GET /search?city= or GET /search?lat=&lng=. A valid bearer
// token links the result to the caller; anonymous search is allowed.
func (a *ApiWrapper) Search(c echo.Context) error {
	params := entity.SearchQueryParams{
		City: c.QueryParam("city"),
		Lat:  c.QueryParam("lat"),
		Lng:  c.QueryParam("lng"),
	}

	city, err := a.SearchService.Resolve(c.Request().Context(), a.identityFromRequest(c), params)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

func (a *ApiWrapper) CreateSearch(c echo.Context) error {
	var req entity.CreateCityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	}

	city, err := a.SearchService.Create(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, city)
}

func (a *ApiWrapper) UpdateSearch(c echo.Context) error {
	var req entity.UpdateCityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	city, err := a.SearchService.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, city)
}

func (a *ApiWrapper) DeleteSearch(c echo.Context) error {
	if err := a.SearchService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Search deleted"})
}

func (a *ApiWrapper) ListCities(c echo.Context) error {
	cities, err := a.SearchService.ListAll(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// MyCities lists the cities saved for the authenticated user. The JWT
// middleware has already verified the token.
func (a *ApiWrapper) MyCities(c echo.Context) error {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Missing token"})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid token"})
	}
	email, _ := claims["email"].(string)

	cities, err := a.SearchService.ListForUser(c.Request().Context(), email)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, cities)
}

// identityFromRequest extracts the email claim from an optional bearer
// token. Absent or invalid tokens mean an anonymous search, not an error.
func (a *ApiWrapper) identityFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return ""
	}

	raw := strings.TrimPrefix(header, "Bearer ")
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return a.SigningKey, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}

func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperr.ErrInvalidQuery):
		return c.JSON(http.StatusBadRequest, map[string]string{"message": err.Error()})
	case apperr.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"message": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error fetching data"})
	}
}
