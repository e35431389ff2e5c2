package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/repository"
)

// GeocodeCity resolves a free-text city name to coordinates, administrative
// fields and the location's current local time.
func (c *Client) GeocodeCity(ctx context.Context, name string) (*repository.GeoData, error) {
	query := url.Values{}
	query.Set("address", name)
	query.Set("key", c.apiKey)

	result, err := c.fetchGeocode(ctx, query)
	if err != nil {
		return nil, err
	}

	data := &repository.GeoData{
		City:             name,
		FormattedAddress: result.FormattedAddress,
		Lat:              result.Geometry.Location.Lat,
		Lng:              result.Geometry.Location.Lng,
	}
	if locality := firstComponent(result.AddressComponents, "locality"); locality != "" {
		data.City = locality
	}
	data.State = firstComponent(result.AddressComponents, "administrative_area_level_1")
	data.Country = firstComponent(result.AddressComponents, "country")

	data.CurrentTime, err = c.localTime(ctx, data.Lat, data.Lng)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ReverseGeocode is the inverse operation: coordinates in, the same shape out.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*repository.GeoData, error) {
	query := url.Values{}
	query.Set("latlng", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("key", c.apiKey)

	result, err := c.fetchGeocode(ctx, query)
	if err != nil {
		return nil, err
	}

	data := &repository.GeoData{
		City:             firstComponent(result.AddressComponents, "locality"),
		State:            firstComponent(result.AddressComponents, "administrative_area_level_1"),
		Country:          firstComponent(result.AddressComponents, "country"),
		FormattedAddress: result.FormattedAddress,
		Lat:              lat,
		Lng:              lng,
	}

	data.CurrentTime, err = c.localTime(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// fetchGeocode issues one geocoding request and returns the first result.
// Zero results is an upstream error, never an index into an empty slice.
func (c *Client) fetchGeocode(ctx context.Context, query url.Values) (*geocodeResult, error) {
	var decoded geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL, query, &decoded); err != nil {
		return nil, apperr.NewUpstreamError("geocoding", err)
	}
	if len(decoded.Results) == 0 {
		return nil, apperr.NewUpstreamError("geocoding", fmt.Errorf("no results (status %s)", decoded.Status))
	}
	return &decoded.Results[0], nil
}

// localTime queries the timezone endpoint and applies the raw and DST
// offsets to the current UTC instant.
func (c *Client) localTime(ctx context.Context, lat, lng float64) (string, error) {
	now := c.now().Unix()

	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("timestamp", fmt.Sprintf("%d", now))
	query.Set("key", c.apiKey)

	var decoded timezoneResponse
	if err := c.getJSON(ctx, c.timezoneURL, query, &decoded); err != nil {
		return "", apperr.NewUpstreamError("timezone", err)
	}

	local := time.Unix(now+decoded.RawOffset+decoded.DstOffset, 0).UTC()
	return local.Format(time.RFC3339), nil
}

// firstComponent returns the long name of the first component carrying the
// given type, or "" when none does.
func firstComponent(components []addressComponent, kind string) string {
	for _, component := range components {
		for _, t := range component.Types {
			if t == kind {
				return component.LongName
			}
		}
	}
	return ""
}

func (c *Client) getJSON(ctx context.Context, baseURL string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
