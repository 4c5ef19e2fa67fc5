package db

import (
	"airport-air-quality/model"
	"gorm.io/gorm"
)

const flightBatchSize = 100

type FlightDAO struct {
	db *gorm.DB
}

func NewFlightDAO(db *gorm.DB) *FlightDAO {
	return &FlightDAO{db: db}
}

func (flightDAO *FlightDAO) CreateFlights(flights []model.Flight) error {
	if len(flights) == 0 {
		return nil
	}
	result := flightDAO.db.CreateInBatches(flights, flightBatchSize)
	return result.Error
}

func (flightDAO *FlightDAO) GetFlights(limit int) ([]model.Flight, error) {
	var flights []model.Flight
	query := flightDAO.db.Order("departure_time")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&flights)
	return flights, result.Error
}

func (flightDAO *FlightDAO) GetFlightByID(flightID string) (model.Flight, error) {
	var flight model.Flight
	result := flightDAO.db.Where("flight_id = ?", flightID).First(&flight)
	return flight, result.Error
}

func (flightDAO *FlightDAO) CountFlights() (int64, error) {
	var count int64
	result := flightDAO.db.Model(&model.Flight{}).Count(&count)
	return count, result.Error
}
