package main

import (
	"airport-air-quality/db"
	"airport-air-quality/etl"
	"airport-air-quality/externals"
	"airport-air-quality/handlers"
	"airport-air-quality/internals"
	"airport-air-quality/mockservers"
	"airport-air-quality/model"
	"context"
	"errors"
	"flag"
	"github.com/joho/godotenv"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// retrieve run mode
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file, using process environment")
	}
	runMode := os.Getenv("RUN_MODE")
	if runMode == "" {
		runMode = "real"
	}

	defaults := etl.DefaultConfig()
	port := flag.String("port", "80", "Port on which the server listens")
	weatherPort := flag.String("weather-port", "8084", "Port of the mock weather api")
	runPipeline := flag.Bool("run-pipeline", false, "Run the ETL pipeline once and exit")
	numFlights := flag.Int("flights", defaults.Flights, "Number of flights generated per pipeline run")
	observations := flag.Int("observations", defaults.Observations, "Hours of weather observations per airport")
	workers := flag.Int("workers", defaults.Workers, "Goroutines estimating emissions")
	seed := flag.Int64("seed", 0, "Seed of the flight generator, 0 for a time based seed")
	flag.Parse()

	// reference tables, without them no emission can be computed
	ref, err := internals.LoadReferenceData(os.Getenv("REFERENCE_DATA_FILE"))
	if err != nil {
		log.Fatalf("Error loading reference data: %v", err)
	}

	// init db
	database, err := db.InitDB(runMode)
	if err != nil || database == nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	defer db.CloseDBConnection()

	// start mock weather server in a new go routine
	weatherApiUrl := os.Getenv("WEATHER_API_URL")
	if weatherApiUrl == "" {
		// bind before serving, so the pipeline never races the mock server
		listener, err := net.Listen("tcp", "localhost:"+*weatherPort)
		if err != nil {
			log.Fatalf("Failed to start Weather API server: %v", err)
		}
		go func() {
			err := mockservers.ServeWeatherApi(listener)
			if err != nil {
				log.Println("Weather API server stopped: ", err)
			}
		}()
		weatherApiUrl = "http://" + listener.Addr().String()
	}
	weatherSource := func(airportCode string, hours int) ([]model.WeatherObservation, error) {
		return externals.GetWeatherObservations(weatherApiUrl, airportCode, hours)
	}

	config := defaults
	config.Flights = *numFlights
	config.Observations = *observations
	config.Workers = *workers
	config.Seed = *seed
	pipeline := etl.NewPipeline(db.NewStore(database), ref, weatherSource, config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *runPipeline {
		summary, err := pipeline.Run(ctx)
		if err != nil {
			log.Printf("Pipeline failed: %v", err)
			db.CloseDBConnection()
			os.Exit(1)
		}
		log.Printf("Pipeline succeeded: %+v", summary)
		return
	}

	handlers.Init(ref, pipeline)

	// setup routes
	server := SetupServer(*port)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Println("Error shutting down server: ", err)
		}
	}()

	log.Println("Server listening on port " + *port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Server stopped: %v", err)
	}
}
