// Package etl runs the staging pipeline: synthetic flights are generated and
// stored, their emissions estimated and stored, weather observations ingested,
// and the staged data validated. Every step is recorded as a pipeline run.
package etl

import (
	"airport-air-quality/internals"
	"airport-air-quality/metrics"
	"airport-air-quality/model"
	"context"
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"
)

// step names, as stored in pipeline_runs
const (
	StepClearStaging       = "clear_staging"
	StepGenerateFlights    = "generate_flights"
	StepCalculateEmissions = "calculate_emissions"
	StepIngestWeather      = "ingest_weather"
	StepValidate           = "validate"
)

type Store interface {
	ClearStaging() error
	CreateFlights(flights []model.Flight) error
	CreateEmissions(records []model.EmissionRecord) error
	CreateObservations(observations []model.WeatherObservation) error
	CreateRun(run *model.PipelineRun) error
	Summary() (model.Summary, error)
}

// WeatherSource returns hourly observations of an airport
type WeatherSource func(airportCode string, hours int) ([]model.WeatherObservation, error)

type Config struct {
	Flights         int
	Observations    int // hours of weather per airport
	Workers         int
	WeatherAirports []string
	// zero picks a time based seed
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Flights:         1000,
		Observations:    720,
		Workers:         runtime.NumCPU(),
		WeatherAirports: []string{"CDG", "ORY"},
	}
}

type Pipeline struct {
	store   Store
	ref     internals.ReferenceData
	weather WeatherSource
	config  Config
	now     func() time.Time
}

func NewPipeline(store Store, ref internals.ReferenceData, weather WeatherSource, config Config) *Pipeline {
	return &Pipeline{
		store:   store,
		ref:     ref,
		weather: weather,
		config:  config,
		now:     time.Now,
	}
}

// Run executes all steps in order and stops at the first failing one
func (pipeline *Pipeline) Run(ctx context.Context) (model.Summary, error) {
	start := pipeline.now()

	seed := pipeline.config.Seed
	if seed == 0 {
		seed = start.UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var flights []model.Flight
	var estimation EstimationResult

	err := pipeline.runStep(StepClearStaging, func() (int, error) {
		return 0, pipeline.store.ClearStaging()
	})
	if err != nil {
		return model.Summary{}, err
	}

	err = pipeline.runStep(StepGenerateFlights, func() (int, error) {
		var stepErr error
		flights, stepErr = internals.GenerateFlights(rng, pipeline.ref, pipeline.config.Flights, start.AddDate(0, 0, -30))
		if stepErr != nil {
			return 0, stepErr
		}
		return len(flights), pipeline.store.CreateFlights(flights)
	})
	if err != nil {
		return model.Summary{}, err
	}

	err = pipeline.runStep(StepCalculateEmissions, func() (int, error) {
		var stepErr error
		estimation, stepErr = CalculateEmissions(ctx, pipeline.ref, flights, pipeline.config.Workers)
		if stepErr != nil {
			return 0, stepErr
		}
		return len(estimation.Records), pipeline.store.CreateEmissions(estimation.Records)
	})
	if err != nil {
		return model.Summary{}, err
	}

	err = pipeline.runStep(StepIngestWeather, func() (int, error) {
		return pipeline.ingestWeather(ctx)
	})
	if err != nil {
		return model.Summary{}, err
	}

	var summary model.Summary
	err = pipeline.runStep(StepValidate, func() (int, error) {
		var stepErr error
		summary, stepErr = pipeline.store.Summary()
		if stepErr != nil {
			return 0, stepErr
		}
		summary.SkippedFlights = estimation.Skipped
		summary.InvalidFlights = estimation.Invalid
		return int(summary.Flights + summary.Emissions + summary.Observations), validateSummary(summary, len(flights), len(estimation.Records))
	})
	if err != nil {
		return model.Summary{}, err
	}

	log.Printf("Pipeline done in %.1fs: %d flights, %d emission records, %d observations, %.2f kg CO2",
		pipeline.now().Sub(start).Seconds(), summary.Flights, summary.Emissions, summary.Observations, summary.TotalCO2Kg)

	return summary, nil
}

func (pipeline *Pipeline) ingestWeather(ctx context.Context) (int, error) {
	if pipeline.weather == nil {
		return 0, fmt.Errorf("no weather source configured")
	}

	stored := 0
	for _, airportCode := range pipeline.config.WeatherAirports {
		if err := ctx.Err(); err != nil {
			return stored, err
		}
		observations, err := pipeline.weather(airportCode, pipeline.config.Observations)
		if err != nil {
			return stored, fmt.Errorf("weather for %s: %w", airportCode, err)
		}
		err = pipeline.store.CreateObservations(observations)
		if err != nil {
			return stored, err
		}
		stored += len(observations)
	}
	return stored, nil
}

// validateSummary checks that the store holds what this run inserted
func validateSummary(summary model.Summary, flights, records int) error {
	if summary.Flights != int64(flights) {
		return fmt.Errorf("expected %d staged flights, found %d", flights, summary.Flights)
	}
	if summary.Emissions != int64(records) {
		return fmt.Errorf("expected %d staged emission records, found %d", records, summary.Emissions)
	}
	return nil
}

// runStep times fn and records the outcome, a failure to record is only logged
func (pipeline *Pipeline) runStep(name string, fn func() (int, error)) error {
	log.Println("Pipeline step: ", name)
	start := pipeline.now()

	processed, err := fn()

	elapsed := pipeline.now().Sub(start)
	run := model.PipelineRun{
		RunDate:          start,
		Step:             name,
		Status:           model.RunStatusSuccess,
		RecordsProcessed: processed,
		ExecutionSeconds: elapsed.Seconds(),
	}
	if err != nil {
		run.Status = model.RunStatusFailed
		run.ErrorMessage = err.Error()
		log.Printf("Pipeline step %s failed: %v", name, err)
	}
	metrics.PipelineStepDuration.WithLabelValues(name, run.Status).Observe(elapsed.Seconds())

	recordErr := pipeline.store.CreateRun(&run)
	if recordErr != nil {
		log.Println("Error recording pipeline run: ", recordErr)
	}

	if err != nil {
		return fmt.Errorf("step %s: %w", name, err)
	}
	return nil
}
