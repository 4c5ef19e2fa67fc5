package etl

import (
	"airport-air-quality/internals"
	"airport-air-quality/model"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func fakeWeather(airportCode string, hours int) ([]model.WeatherObservation, error) {
	observations := make([]model.WeatherObservation, hours)
	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := range observations {
		observations[i] = model.WeatherObservation{
			AirportCode:     airportCode,
			ObservationTime: start.Add(time.Duration(i) * time.Hour),
			TemperatureC:    15,
		}
	}
	return observations, nil
}

func testConfig() Config {
	return Config{
		Flights:         50,
		Observations:    24,
		Workers:         4,
		WeatherAirports: []string{"CDG", "ORY"},
		Seed:            1,
	}
}

func TestPipelineRun(t *testing.T) {
	store := &memStore{}
	ref := internals.DefaultReferenceData()
	pipeline := NewPipeline(store, ref, fakeWeather, testConfig())

	summary, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(50), summary.Flights)
	assert.Equal(t, int64(50*ref.RecordsPerFlight()), summary.Emissions)
	assert.Equal(t, int64(48), summary.Observations)
	assert.Greater(t, summary.TotalCO2Kg, 0.0)
	assert.Zero(t, summary.SkippedFlights)
	assert.Zero(t, summary.InvalidFlights)
	assert.Equal(t, 1, store.clears)

	require.Len(t, store.runs, 5)
	steps := []string{StepClearStaging, StepGenerateFlights, StepCalculateEmissions, StepIngestWeather, StepValidate}
	for i, run := range store.runs {
		assert.Equal(t, steps[i], run.Step)
		assert.Equal(t, model.RunStatusSuccess, run.Status)
		assert.Empty(t, run.ErrorMessage)
	}
	assert.Equal(t, 50, store.runs[1].RecordsProcessed)
	assert.Equal(t, 50*ref.RecordsPerFlight(), store.runs[2].RecordsProcessed)
	assert.Equal(t, 48, store.runs[3].RecordsProcessed)
}

func TestPipelineRunIsIdempotent(t *testing.T) {
	store := &memStore{}
	pipeline := NewPipeline(store, internals.DefaultReferenceData(), fakeWeather, testConfig())

	first, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	second, err := pipeline.Run(context.Background())
	require.NoError(t, err)

	// same seed, staging cleared in between
	assert.Equal(t, first, second)
	assert.Equal(t, 2, store.clears)
}

func TestPipelineStopsAtFailingStep(t *testing.T) {
	store := &memStore{failEmissions: true}
	pipeline := NewPipeline(store, internals.DefaultReferenceData(), fakeWeather, testConfig())

	_, err := pipeline.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), StepCalculateEmissions)

	require.Len(t, store.runs, 3)
	failed := store.runs[2]
	assert.Equal(t, StepCalculateEmissions, failed.Step)
	assert.Equal(t, model.RunStatusFailed, failed.Status)
	assert.Equal(t, "disk full", failed.ErrorMessage)
	assert.Empty(t, store.observations)
}

func TestPipelineWeatherFailure(t *testing.T) {
	store := &memStore{}
	weather := func(airportCode string, hours int) ([]model.WeatherObservation, error) {
		return nil, errors.New("connection refused")
	}
	pipeline := NewPipeline(store, internals.DefaultReferenceData(), weather, testConfig())

	_, err := pipeline.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CDG")

	last := store.runs[len(store.runs)-1]
	assert.Equal(t, StepIngestWeather, last.Step)
	assert.Equal(t, model.RunStatusFailed, last.Status)
}

func TestPipelineWithoutWeatherSource(t *testing.T) {
	pipeline := NewPipeline(&memStore{}, internals.DefaultReferenceData(), nil, testConfig())
	_, err := pipeline.Run(context.Background())
	assert.Error(t, err)
}

func TestValidateSummary(t *testing.T) {
	assert.NoError(t, validateSummary(model.Summary{Flights: 2, Emissions: 70}, 2, 70))
	assert.Error(t, validateSummary(model.Summary{Flights: 1, Emissions: 70}, 2, 70))
	assert.Error(t, validateSummary(model.Summary{Flights: 2, Emissions: 35}, 2, 70))
}
