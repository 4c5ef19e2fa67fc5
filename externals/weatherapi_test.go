package externals

import (
	"airport-air-quality/mockservers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetWeatherObservations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weatherapi", mockservers.WeatherApiHandler)
	server := httptest.NewServer(mux)
	defer server.Close()

	observations, err := GetWeatherObservations(server.URL, "ORY", 12)
	require.NoError(t, err)
	require.Len(t, observations, 12)
	for _, observation := range observations {
		assert.Equal(t, "ORY", observation.AirportCode)
		assert.False(t, observation.ObservationTime.IsZero())
	}
}

func TestGetWeatherObservationsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("airport") == "BAD" {
			_, _ = w.Write([]byte(`{"observations": [`))
			return
		}
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := GetWeatherObservations(server.URL, "CDG", 1)
	assert.ErrorContains(t, err, "503")

	_, err = GetWeatherObservations(server.URL, "BAD", 1)
	assert.ErrorContains(t, err, "decoding")

	_, err = GetWeatherObservations("http://127.0.0.1:1", "CDG", 1)
	assert.Error(t, err)
}
