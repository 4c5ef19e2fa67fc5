package db

import (
	"airport-air-quality/model"
	"gorm.io/gorm"
)

// Store groups the DAOs the pipeline writes through
type Store struct {
	db          *gorm.DB
	flights     *FlightDAO
	emissions   *EmissionDAO
	weather     *WeatherDAO
	pipelineRun *PipelineRunDAO
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		flights:     NewFlightDAO(db),
		emissions:   NewEmissionDAO(db),
		weather:     NewWeatherDAO(db),
		pipelineRun: NewPipelineRunDAO(db),
	}
}

func (store *Store) ClearStaging() error {
	return ClearStaging(store.db)
}

func (store *Store) CreateFlights(flights []model.Flight) error {
	return store.flights.CreateFlights(flights)
}

func (store *Store) CreateEmissions(records []model.EmissionRecord) error {
	return store.emissions.CreateEmissions(records)
}

func (store *Store) CreateObservations(observations []model.WeatherObservation) error {
	return store.weather.CreateObservations(observations)
}

func (store *Store) CreateRun(run *model.PipelineRun) error {
	return store.pipelineRun.CreateRun(run)
}

func (store *Store) Summary() (model.Summary, error) {
	var summary model.Summary
	var err error

	summary.Flights, err = store.flights.CountFlights()
	if err != nil {
		return model.Summary{}, err
	}
	summary.Emissions, err = store.emissions.CountEmissions()
	if err != nil {
		return model.Summary{}, err
	}
	summary.Observations, err = store.weather.CountObservations()
	if err != nil {
		return model.Summary{}, err
	}
	summary.TotalCO2Kg, err = store.emissions.TotalEmissionKg(model.PollutantCO2)
	if err != nil {
		return model.Summary{}, err
	}

	return summary, nil
}
