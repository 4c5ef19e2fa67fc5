package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type WeatherObservation struct {
	WeatherID        uuid.UUID `gorm:"column:weather_id;type:uuid;primaryKey" json:"weather_id"`
	AirportCode      string    `gorm:"column:airport_code;type:varchar(4);not null" json:"airport_code"`
	ObservationTime  time.Time `gorm:"column:observation_time;type:timestamp;not null" json:"observation_time"`
	TemperatureC     float64   `gorm:"column:temperature_c;type:numeric(5,2)" json:"temperature_c"`
	HumidityPercent  int       `gorm:"column:humidity_percent;type:integer" json:"humidity_percent"`
	WindSpeedMs      float64   `gorm:"column:wind_speed_ms;type:numeric(5,2)" json:"wind_speed_ms"`
	WindDirectionDeg int       `gorm:"column:wind_direction_deg;type:integer" json:"wind_direction_deg"`
	PressureHpa      float64   `gorm:"column:pressure_hpa;type:numeric(7,2)" json:"pressure_hpa"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WeatherObservation) TableName() string {
	return "weather_staging"
}

func (observation *WeatherObservation) BeforeCreate(tx *gorm.DB) error {
	if observation.WeatherID == uuid.Nil {
		observation.WeatherID = uuid.New()
	}
	return nil
}
