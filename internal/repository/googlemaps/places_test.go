package googlemaps

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDescriptions struct {
	byName map[string]string
	err    error
}

func (f *fakeDescriptions) GetDescription(ctx context.Context, name string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.byName[name], nil
}

func nearbyBody(count int) string {
	var results []string
	for i := 0; i < count; i++ {
		results = append(results, fmt.Sprintf(`{
			"name": "Attraction %d",
			"rating": 4.%d,
			"vicinity": "Street %d",
			"photos": [{"photo_reference": "ref-%d", "width": 400, "height": 300}]
		}`, i, i, i, i))
	}
	return `{"status": "OK", "results": [` + strings.Join(results, ",") + `]}`
}

func TestNearbyAttractionsCapsAtFour(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nearby", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "500", query.Get("radius"))
		assert.Equal(t, "tourist_attraction", query.Get("type"))
		assert.Equal(t, "prominence", query.Get("rankby"))
		w.Write([]byte(nearbyBody(7)))
	})
	client := newTestClient(t, mux)

	attractions, err := client.NearbyAttractions(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)

	require.Len(t, attractions, 4, "results past the cap are dropped")
	for i, attraction := range attractions {
		assert.Equal(t, fmt.Sprintf("Attraction %d", i), attraction.Name, "provider order preserved")
	}
}

func TestNearbyAttractionsPhotoURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nearby", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": [
			{"name": "With Photo", "photos": [{"photo_reference": "abc123"}]},
			{"name": "No Photo"},
			{"name": "Empty Photos", "photos": []}
		]}`))
	})
	client := newTestClient(t, mux)

	attractions, err := client.NearbyAttractions(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)
	require.Len(t, attractions, 3)

	require.NotNil(t, attractions[0].PhotoURL)
	assert.Contains(t, *attractions[0].PhotoURL, "maxwidth=400")
	assert.Contains(t, *attractions[0].PhotoURL, "photoreference=abc123")
	assert.Contains(t, *attractions[0].PhotoURL, "key=test-key")

	assert.Nil(t, attractions[1].PhotoURL, "missing reference must not produce a URL")
	assert.Nil(t, attractions[2].PhotoURL)
}

func TestNearbyAttractionsDescriptions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nearby", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(nearbyBody(2)))
	})
	client := newTestClient(t, mux)
	client.descriptions = &fakeDescriptions{byName: map[string]string{
		"Attraction 0": "A famous spot.",
	}}

	attractions, err := client.NearbyAttractions(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)

	require.NotNil(t, attractions[0].Description)
	assert.Equal(t, "A famous spot.", *attractions[0].Description)
	assert.Nil(t, attractions[1].Description)
}

func TestNearbyAttractionsDescriptionFailureIsIgnored(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nearby", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(nearbyBody(2)))
	})
	client := newTestClient(t, mux)
	client.descriptions = &fakeDescriptions{err: errors.New("wikipedia down")}

	attractions, err := client.NearbyAttractions(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err, "description enrichment is best-effort")
	require.Len(t, attractions, 2)
	assert.Nil(t, attractions[0].Description)
	assert.Nil(t, attractions[1].Description)
}

func TestNearbyAttractionsOptionalFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/nearby", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "results": [{"name": "Bare"}]}`))
	})
	client := newTestClient(t, mux)

	attractions, err := client.NearbyAttractions(context.Background(), 48.8566, 2.3522)
	require.NoError(t, err)
	require.Len(t, attractions, 1)

	bare := attractions[0]
	assert.Equal(t, "Bare", bare.Name)
	assert.Nil(t, bare.Rating)
	assert.Nil(t, bare.Address)
	assert.Nil(t, bare.PhoneNumber)
}
