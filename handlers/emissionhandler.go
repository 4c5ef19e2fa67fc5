package handlers

import (
	"airport-air-quality/db"
	"airport-air-quality/internals"
	"airport-air-quality/model"
	"encoding/json"
	"errors"
	"gorm.io/gorm"
	"log"
	"net/http"
)

type EstimateRequest struct {
	FlightID        string  `json:"flight_id"`
	AircraftType    string  `json:"aircraft_type"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// EstimatedEmission an emission record that was computed but not stored
type EstimatedEmission struct {
	FlightID   string  `json:"flight_id"`
	Phase      string  `json:"phase"`
	Pollutant  string  `json:"pollutant"`
	FuelKg     float64 `json:"fuel_kg"`
	EmissionKg float64 `json:"emission_kg"`
	Method     string  `json:"method"`
}

type EstimateResponse struct {
	FlightID   string              `json:"flight_id"`
	Records    []EstimatedEmission `json:"records"`
	TotalCO2Kg float64             `json:"total_co2_kg"`
}

func HandleEstimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	// decode json data
	var request EstimateRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		log.Println("Error decoding JSON: ", err)
		http.Error(w, "Invalid data format", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	flight := model.Flight{
		FlightID:        request.FlightID,
		AircraftType:    request.AircraftType,
		DurationMinutes: request.DurationMinutes,
	}
	records, err := internals.Estimate(referenceData, flight)
	if err != nil {
		log.Println("Error estimating emissions: ", err)
		if errors.Is(err, internals.ErrUnknownAircraftType) {
			http.Error(w, "Unknown aircraft type", http.StatusNotFound)
		} else if errors.Is(err, internals.ErrInvalidDuration) {
			http.Error(w, "Flight duration must be positive", http.StatusBadRequest)
		} else {
			http.Error(w, "Error estimating emissions", http.StatusInternalServerError)
		}
		return
	}

	estimated := make([]EstimatedEmission, 0, len(records))
	for _, record := range records {
		estimated = append(estimated, EstimatedEmission{
			FlightID:   record.FlightID,
			Phase:      record.Phase,
			Pollutant:  record.Pollutant,
			FuelKg:     record.FuelKg,
			EmissionKg: record.EmissionKg,
			Method:     record.Method,
		})
	}

	response := EstimateResponse{
		FlightID:   request.FlightID,
		Records:    estimated,
		TotalCO2Kg: internals.TotalEmissionKg(records, model.PollutantCO2),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}
}

func HandleEmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	flightID := r.URL.Query().Get("flight_id")
	if flightID == "" {
		log.Println("Missing flight id")
		http.Error(w, "Missing flight id", http.StatusBadRequest)
		return
	}

	flightDAO := db.NewFlightDAO(db.GetDB())
	_, err := flightDAO.GetFlightByID(flightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Flight not found: ", err)
			http.Error(w, "Flight could not be found", http.StatusNotFound)
		} else {
			log.Println("Error getting flight: ", err)
			http.Error(w, "Error getting flight", http.StatusInternalServerError)
		}
		return
	}

	emissionDAO := db.NewEmissionDAO(db.GetDB())

	// declare empty slice and append, in order to encode an empty list and not null
	records := []model.EmissionRecord{}
	stored, err := emissionDAO.GetEmissionsByFlightID(flightID)
	if err != nil {
		log.Println("Error getting emissions: ", err)
		http.Error(w, "Error getting emissions", http.StatusInternalServerError)
		return
	}
	records = append(records, stored...)

	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(value)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
	}
}
