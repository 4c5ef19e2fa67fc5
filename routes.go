package main

import (
	"airport-air-quality/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/emissions/estimate", handlers.HandleEstimate)
	mux.HandleFunc("/emissions", handlers.HandleEmissions)

	mux.HandleFunc("/flights", handlers.HandleFlights)

	mux.HandleFunc("/reports/pollutants", handlers.HandlePollutantReport)
	mux.HandleFunc("/reports/aircraft", handlers.HandleAircraftReport)
	mux.HandleFunc("/reports/daily", handlers.HandleDailyReport)

	mux.HandleFunc("/reference", handlers.HandleReference)

	mux.HandleFunc("/pipeline/run", handlers.HandlePipelineRun)
	mux.HandleFunc("/pipeline/runs", handlers.HandlePipelineRuns)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}
