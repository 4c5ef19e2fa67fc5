package model

import "time"

type Flight struct {
	FlightID         string    `gorm:"column:flight_id;type:varchar(50);primaryKey" json:"flight_id"`
	AircraftType     string    `gorm:"column:aircraft_type;type:varchar(10);not null" json:"aircraft_type"`
	DepartureAirport string    `gorm:"column:departure_airport;type:varchar(4);not null" json:"departure_airport"`
	ArrivalAirport   string    `gorm:"column:arrival_airport;type:varchar(4);not null" json:"arrival_airport"`
	DepartureTime    time.Time `gorm:"column:departure_time;type:timestamp;not null" json:"departure_time"`
	ArrivalTime      time.Time `gorm:"column:arrival_time;type:timestamp;not null" json:"arrival_time"`
	DurationMinutes  float64   `gorm:"column:flight_duration_minutes;type:numeric" json:"duration_minutes"`
	Passengers       int       `gorm:"column:passengers;type:integer" json:"passengers"`
	CargoKg          float64   `gorm:"column:cargo_kg;type:numeric(8,2)" json:"cargo_kg"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Flight) TableName() string {
	return "flights_staging"
}
