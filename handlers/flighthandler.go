package handlers

import (
	"airport-air-quality/db"
	"airport-air-quality/model"
	"log"
	"net/http"
	"strconv"
)

const defaultFlightsLimit = 100

func HandleFlights(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	limit := defaultFlightsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			log.Println("Wrong limit value: ", err)
			http.Error(w, "The provided limit is not valid", http.StatusBadRequest)
			return
		}
	}

	flightDAO := db.NewFlightDAO(db.GetDB())
	flights := []model.Flight{}
	stored, err := flightDAO.GetFlights(limit)
	if err != nil {
		log.Println("Error getting flights: ", err)
		http.Error(w, "Error getting flights", http.StatusInternalServerError)
		return
	}
	flights = append(flights, stored...)

	writeJSON(w, flights)
}
