package mockservers

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const maxObservationHours = 24 * 90

type WeatherApiObservation struct {
	ObservationTime  time.Time `json:"observation_time"`
	TemperatureC     float64   `json:"temperature_c"`
	HumidityPercent  int       `json:"humidity_percent"`
	WindSpeedMs      float64   `json:"wind_speed_ms"`
	WindDirectionDeg int       `json:"wind_direction_deg"`
	PressureHpa      float64   `json:"pressure_hpa"`
}

type WeatherApiResponse struct {
	Airport      string                  `json:"airport"`
	Observations []WeatherApiObservation `json:"observations"`
}

// rand.Rand is not safe for concurrent use
var rngMutex sync.Mutex
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// ServeWeatherApi serves the weather api on an already bound listener,
// so callers can use the address as soon as this is started
func ServeWeatherApi(listener net.Listener) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/weatherapi", WeatherApiHandler)

	log.Println("Weather API server listening on " + listener.Addr().String())

	return http.Serve(listener, mux)
}

// WeatherApiHandler returns hourly observations for an airport,
// query parameters: airport, hours, start (RFC3339, defaults to hours ago)
func WeatherApiHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	airport := r.URL.Query().Get("airport")
	if airport == "" {
		http.Error(w, "missing airport", http.StatusBadRequest)
		return
	}

	hours, err := strconv.Atoi(r.URL.Query().Get("hours"))
	if err != nil || hours <= 0 || hours > maxObservationHours {
		http.Error(w, fmt.Sprintf("hours must be between 1 and %d", maxObservationHours), http.StatusBadRequest)
		return
	}

	start := time.Now().Truncate(time.Hour).Add(-time.Duration(hours) * time.Hour)
	if startStr := r.URL.Query().Get("start"); startStr != "" {
		start, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			http.Error(w, "wrong start format", http.StatusBadRequest)
			return
		}
	}

	response := WeatherApiResponse{
		Airport:      airport,
		Observations: generateObservations(start, hours),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding weather response: ", err)
	}
}

func generateObservations(start time.Time, hours int) []WeatherApiObservation {
	rngMutex.Lock()
	defer rngMutex.Unlock()

	observations := make([]WeatherApiObservation, 0, hours)
	for i := 0; i < hours; i++ {
		observations = append(observations, WeatherApiObservation{
			ObservationTime:  start.Add(time.Duration(i) * time.Hour),
			TemperatureC:     5 + rng.Float64()*20,
			HumidityPercent:  40 + rng.Intn(51),
			WindSpeedMs:      2 + rng.Float64()*13,
			WindDirectionDeg: rng.Intn(360),
			PressureHpa:      995 + rng.Float64()*30,
		})
	}
	return observations
}
