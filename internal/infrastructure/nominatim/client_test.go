package nominatim_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/map-memoir/backend/internal/config"
	"github.com/map-memoir/backend/internal/infrastructure/nominatim"
)

func TestNominatimClient_Geocode(t *testing.T) {
	t.Run("parses best match", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "Paris", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "map-memoir-test", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"display_name": "Paris, Ile-de-France, France", "lat": "48.8566", "lon": "2.3522"}]`))
		}))
		defer server.Close()

		client := nominatim.NewNominatimClient(&config.GeocodingConfig{
			BaseURL:        server.URL,
			UserAgent:      "map-memoir-test",
			RequestTimeout: 5,
		}, zap.NewNop())

		loc, err := client.Geocode(context.Background(), "Paris")

		require.NoError(t, err)
		require.NotNil(t, loc)
		assert.Equal(t, "Paris", loc.Name)
		assert.Equal(t, "Paris, Ile-de-France, France", loc.FullName)
		require.True(t, loc.HasCoordinates())
		lat, lon := loc.Coordinates()
		assert.InDelta(t, 48.8566, lat, 1e-6)
		assert.InDelta(t, 2.3522, lon, 1e-6)
	})

	t.Run("no match is nil without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := nominatim.NewNominatimClient(&config.GeocodingConfig{
			BaseURL:        server.URL,
			UserAgent:      "map-memoir-test",
			RequestTimeout: 5,
		}, zap.NewNop())

		loc, err := client.Geocode(context.Background(), "Xyzzy")

		assert.NoError(t, err)
		assert.Nil(t, loc)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := nominatim.NewNominatimClient(&config.GeocodingConfig{
			BaseURL:        server.URL,
			UserAgent:      "map-memoir-test",
			RequestTimeout: 5,
		}, zap.NewNop())

		_, err := client.Geocode(context.Background(), "Paris")

		assert.Error(t, err)
	})
}
