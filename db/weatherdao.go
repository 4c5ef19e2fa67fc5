package db

import (
	"airport-air-quality/model"
	"gorm.io/gorm"
)

const weatherBatchSize = 200

type WeatherDAO struct {
	db *gorm.DB
}

func NewWeatherDAO(db *gorm.DB) *WeatherDAO {
	return &WeatherDAO{db: db}
}

func (weatherDAO *WeatherDAO) CreateObservations(observations []model.WeatherObservation) error {
	if len(observations) == 0 {
		return nil
	}
	result := weatherDAO.db.CreateInBatches(observations, weatherBatchSize)
	return result.Error
}

// GetLatestObservations most recent first
func (weatherDAO *WeatherDAO) GetLatestObservations(airportCode string, limit int) ([]model.WeatherObservation, error) {
	var observations []model.WeatherObservation
	result := weatherDAO.db.Where("airport_code = ?", airportCode).
		Order("observation_time DESC").
		Limit(limit).
		Find(&observations)
	return observations, result.Error
}

func (weatherDAO *WeatherDAO) CountObservations() (int64, error) {
	var count int64
	result := weatherDAO.db.Model(&model.WeatherObservation{}).Count(&count)
	return count, result.Error
}
