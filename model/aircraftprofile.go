package model

type AircraftProfile struct {
	Type                  string  `json:"aircraft_type"`
	Manufacturer          string  `json:"manufacturer"`
	Engines               int     `json:"engines"`
	MTOWKg                float64 `json:"mtow_kg"`
	BaseFuelFlowKgPerHour float64 `json:"fuel_flow_kgh"`
	MinPassengers         int     `json:"min_passengers"`
	MaxPassengers         int     `json:"max_passengers"`
}
