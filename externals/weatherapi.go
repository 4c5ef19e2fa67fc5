package externals

import (
	"airport-air-quality/model"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type WeatherObservationResponse struct {
	ObservationTime  time.Time `json:"observation_time"`
	TemperatureC     float64   `json:"temperature_c"`
	HumidityPercent  int       `json:"humidity_percent"`
	WindSpeedMs      float64   `json:"wind_speed_ms"`
	WindDirectionDeg int       `json:"wind_direction_deg"`
	PressureHpa      float64   `json:"pressure_hpa"`
}

type WeatherResponse struct {
	Airport      string                       `json:"airport"`
	Observations []WeatherObservationResponse `json:"observations"`
}

var weatherClient = &http.Client{Timeout: 10 * time.Second}

// GetWeatherObservations fetches hourly observations for airportCode from the weather api at baseUrl
func GetWeatherObservations(baseUrl, airportCode string, hours int) ([]model.WeatherObservation, error) {
	// call api
	apiUrl := baseUrl + "/weatherapi?airport=" + url.QueryEscape(airportCode) + "&hours=" + strconv.Itoa(hours)
	resp, err := weatherClient.Get(apiUrl)
	if err != nil {
		return nil, fmt.Errorf("calling weather api: %w", err)
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather api returned status %d", resp.StatusCode)
	}

	var response WeatherResponse
	err = json.NewDecoder(resp.Body).Decode(&response)
	if err != nil {
		return nil, fmt.Errorf("decoding weather response: %w", err)
	}

	observations := make([]model.WeatherObservation, 0, len(response.Observations))
	for _, observation := range response.Observations {
		observations = append(observations, model.WeatherObservation{
			AirportCode:      airportCode,
			ObservationTime:  observation.ObservationTime,
			TemperatureC:     observation.TemperatureC,
			HumidityPercent:  observation.HumidityPercent,
			WindSpeedMs:      observation.WindSpeedMs,
			WindDirectionDeg: observation.WindDirectionDeg,
			PressureHpa:      observation.PressureHpa,
		})
	}

	return observations, nil
}
