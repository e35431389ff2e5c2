package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/LadsThatCode/Pinpoint-BE/internal/model/apperr"
	"github.com/LadsThatCode/Pinpoint-BE/internal/model/entity"
)

// NearbyAttractions returns the top tourist attractions around a coordinate,
// ranked by prominence and capped at maxAttractions. Description lookups run
// concurrently and are best-effort: a failed lookup leaves the field unset
// and never fails the call.
func (c *Client) NearbyAttractions(ctx context.Context, lat, lng float64) ([]entity.PointOfInterest, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	query.Set("radius", fmt.Sprintf("%d", nearbyRadius))
	query.Set("type", "tourist_attraction")
	query.Set("rankby", "prominence")
	query.Set("key", c.apiKey)

	var decoded nearbySearchResponse
	if err := c.getJSON(ctx, c.nearbyURL, query, &decoded); err != nil {
		return nil, apperr.NewUpstreamError("places", err)
	}

	results := decoded.Results
	if len(results) > maxAttractions {
		results = results[:maxAttractions]
	}

	attractions := make([]entity.PointOfInterest, len(results))
	var wg sync.WaitGroup
	for i, place := range results {
		attractions[i] = entity.PointOfInterest{
			Name:        place.Name,
			PhotoURL:    c.buildPhotoURL(place.Photos),
			Rating:      place.Rating,
			Address:     place.Vicinity,
			PhoneNumber: place.FormattedPhoneNumber,
		}

		if c.descriptions == nil {
			continue
		}
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			description, err := c.descriptions.GetDescription(ctx, name)
			if err != nil || description == "" {
				return
			}
			attractions[i].Description = &description
		}(i, place.Name)
	}
	wg.Wait()

	return attractions, nil
}

// buildPhotoURL combines the fixed-width photo template with the first photo
// reference. No reference means no URL.
func (c *Client) buildPhotoURL(photos []photo) *string {
	if len(photos) == 0 || photos[0].PhotoReference == "" {
		return nil
	}
	photoURL := fmt.Sprintf("%s?maxwidth=400&photoreference=%s&key=%s",
		c.photoURL, photos[0].PhotoReference, c.apiKey)
	return &photoURL
}
