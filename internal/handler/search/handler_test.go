package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
	"github.com/dgrijalva/jwt-go"
	"github.com/go-playground/validator"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type fakeSearchService struct {
	city         *entity.City
	err          error
	lastIdentity string
}

func (f *fakeSearchService) Resolve(ctx context.Context, identity string, params entity.SearchQueryParams) (*entity.City, error) {
	f.lastIdentity = identity
	if f.err != nil {
		return nil, f.err
	}
	if params.City == "" && (params.Lat == "" || params.Lng == "") {
		return nil, apperr.ErrInvalidQuery
	}
	return f.city, nil
}

func (f *fakeSearchService) Create(ctx context.Context, req entity.CreateCityRequest) (*entity.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &entity.City{Name: req.Name, Lat: req.Lat, Lng: req.Lng}, nil
}

func (f *fakeSearchService) Update(ctx context.Context, id string, req entity.UpdateCityRequest) (*entity.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.city, nil
}

func (f *fakeSearchService) Delete(ctx context.Context, id string) error {
	return f.err
}

func (f *fakeSearchService) ListAll(ctx context.Context) ([]entity.City, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []entity.City{*f.city}, nil
}

func (f *fakeSearchService) ListForUser(ctx context.Context, identity string) ([]entity.City, error) {
	f.lastIdentity = identity
	if f.err != nil {
		return nil, f.err
	}
	return []entity.City{*f.city}, nil
}

func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func parisCity() *entity.City {
	return &entity.City{Name: "Paris", Country: "France", Lat: 48.8566, Lng: 2.3522}
}

func signToken(t *testing.T, key []byte, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestSearchByCity(t *testing.T) {
	api := &ApiWrapper{SearchService: &fakeSearchService{city: parisCity()}, SigningKey: []byte("test-secret")}
	c, rec := newTestContext(http.MethodGet, "/api/v1/search?city=Paris", "")

	require.NoError(t, api.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var city entity.City
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &city))
	assert.Equal(t, "Paris", city.Name)
}

func TestSearchMissingQuery(t *testing.T) {
	api := &ApiWrapper{SearchService: &fakeSearchService{city: parisCity()}, SigningKey: []byte("test-secret")}
	c, rec := newTestContext(http.MethodGet, "/api/v1/search", "")

	require.NoError(t, api.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestSearchUpstreamFailure(t *testing.T) {
	svc := &fakeSearchService{err: apperr.NewUpstreamError("geocoding", assert.AnError)}
	api := &ApiWrapper{SearchService: svc, SigningKey: []byte("test-secret")}
	c, rec := newTestContext(http.MethodGet, "/api/v1/search?city=Paris", "")

	require.NoError(t, api.Search(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSearchPassesIdentityFromToken(t *testing.T) {
	svc := &fakeSearchService{city: parisCity()}
	key := []byte("test-secret")
	api := &ApiWrapper{SearchService: svc, SigningKey: key}

	c, rec := newTestContext(http.MethodGet, "/api/v1/search?city=Paris", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+signToken(t, key, "traveler@example.com"))

	require.NoError(t, api.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "traveler@example.com", svc.lastIdentity)
}

func TestSearchInvalidTokenIsAnonymous(t *testing.T) {
	svc := &fakeSearchService{city: parisCity()}
	api := &ApiWrapper{SearchService: svc, SigningKey: []byte("test-secret")}

	c, rec := newTestContext(http.MethodGet, "/api/v1/search?city=Paris", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")

	require.NoError(t, api.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", svc.lastIdentity)
}

func TestCreateSearch(t *testing.T) {
	api := &ApiWrapper{SearchService: &fakeSearchService{}, SigningKey: []byte("test-secret")}
	c, rec := newTestContext(http.MethodPost, "/api/v1/search",
		`{"name": "Paris", "lat": 48.8566, "lng": 2.3522}`)

	require.NoError(t, api.CreateSearch(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateSearchMissingName(t *testing.T) {
	api := &ApiWrapper{SearchService: &fakeSearchService{}, SigningKey: []byte("test-secret")}
	c, rec := newTestContext(http.MethodPost, "/api/v1/search", `{"lat": 48.8566, "lng": 2.3522}`)

	require.NoError(t, api.CreateSearch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSearchNotFound(t *testing.T) {
	svc := &fakeSearchService{err: &apperr.NotFoundError{Resource: "city", ID: "missing"}}
	api := &ApiWrapper{SearchService: svc, SigningKey: []byte("test-secret")}

	c, rec := newTestContext(http.MethodPut, "/api/v1/search/missing", `{"name": "X"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, api.UpdateSearch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSearchNotFound(t *testing.T) {
	svc := &fakeSearchService{err: &apperr.NotFoundError{Resource: "city", ID: "missing"}}
	api := &ApiWrapper{SearchService: svc, SigningKey: []byte("test-secret")}

	c, rec := newTestContext(http.MethodDelete, "/api/v1/search/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	require.NoError(t, api.DeleteSearch(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSearch(t *testing.T) {
	api := &ApiWrapper{SearchService: &fakeSearchService{}, SigningKey: []byte("test-secret")}

	c, rec := newTestContext(http.MethodDelete, "/api/v1/search/some-id", "")
	c.SetParamNames("id")
	c.SetParamValues("some-id")

	require.NoError(t, api.DeleteSearch(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Search deleted", body["message"])
}

func TestMyCities(t *testing.T) {
	svc := &fakeSearchService{city: parisCity()}
	key := []byte("test-secret")
	api := &ApiWrapper{SearchService: svc, SigningKey: key}

	c, rec := newTestContext(http.MethodGet, "/api/v1/my-cities", "")
	token, err := jwt.Parse(signToken(t, key, "traveler@example.com"), func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	require.NoError(t, err)
	c.Set("user", token)

	require.NoError(t, api.MyCities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "traveler@example.com", svc.lastIdentity)
}
