package handlers

import (
	"airport-air-quality/db"
	"log"
	"net/http"
)

func HandlePollutantReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	reportDAO := db.NewReportDAO(db.GetDB())
	totals, err := reportDAO.GetPollutantTotals()
	if err != nil {
		log.Println("Error computing pollutant report: ", err)
		http.Error(w, "Error computing report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, totals)
}

func HandleAircraftReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	reportDAO := db.NewReportDAO(db.GetDB())
	totals, err := reportDAO.GetAircraftTotals()
	if err != nil {
		log.Println("Error computing aircraft report: ", err)
		http.Error(w, "Error computing report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, totals)
}

func HandleDailyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	reportDAO := db.NewReportDAO(db.GetDB())
	totals, err := reportDAO.GetDailyTotals()
	if err != nil {
		log.Println("Error computing daily report: ", err)
		http.Error(w, "Error computing report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, totals)
}
