package etl

import (
	"airport-air-quality/internals"
	"airport-air-quality/model"
	"errors"
	"sync"
)

// memStore keeps staged rows in memory
type memStore struct {
	mu           sync.Mutex
	flights      []model.Flight
	emissions    []model.EmissionRecord
	observations []model.WeatherObservation
	runs         []model.PipelineRun
	clears       int

	failEmissions bool
}

func (store *memStore) ClearStaging() error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.clears++
	store.flights = nil
	store.emissions = nil
	store.observations = nil
	return nil
}

func (store *memStore) CreateFlights(flights []model.Flight) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.flights = append(store.flights, flights...)
	return nil
}

func (store *memStore) CreateEmissions(records []model.EmissionRecord) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if store.failEmissions {
		return errors.New("disk full")
	}
	store.emissions = append(store.emissions, records...)
	return nil
}

func (store *memStore) CreateObservations(observations []model.WeatherObservation) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.observations = append(store.observations, observations...)
	return nil
}

func (store *memStore) CreateRun(run *model.PipelineRun) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.runs = append(store.runs, *run)
	return nil
}

func (store *memStore) Summary() (model.Summary, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return model.Summary{
		Flights:      int64(len(store.flights)),
		Emissions:    int64(len(store.emissions)),
		Observations: int64(len(store.observations)),
		TotalCO2Kg:   internals.TotalEmissionKg(store.emissions, model.PollutantCO2),
	}, nil
}
