package model

import "time"

type PollutantTotal struct {
	Pollutant       string  `gorm:"column:pollutant_type" json:"pollutant"`
	TotalEmissionKg float64 `gorm:"column:total_emission_kg" json:"total_emission_kg"`
	Calculations    int     `gorm:"column:calculations" json:"calculations"`
	AvgEmissionKg   float64 `gorm:"column:avg_emission_kg" json:"avg_emission_kg"`
}

type AircraftTotal struct {
	AircraftType string  `gorm:"column:aircraft_type" json:"aircraft_type"`
	Flights      int     `gorm:"column:flights" json:"flights"`
	TotalCO2Kg   float64 `gorm:"column:total_co2_kg" json:"total_co2_kg"`
	AvgCO2Kg     float64 `gorm:"column:avg_co2_kg" json:"avg_co2_kg"`
}

type DailyTotal struct {
	Date       time.Time `gorm:"column:flight_date" json:"date"`
	Flights    int       `gorm:"column:flights" json:"flights"`
	TotalCO2Kg float64   `gorm:"column:total_co2_kg" json:"total_co2_kg"`
}

// Summary counts checked at the end of a pipeline run
type Summary struct {
	Flights        int64   `json:"flights"`
	Emissions      int64   `json:"emissions"`
	Observations   int64   `json:"observations"`
	TotalCO2Kg     float64 `json:"total_co2_kg"`
	SkippedFlights int     `json:"skipped_flights"`
	InvalidFlights int     `json:"invalid_flights"`
}
