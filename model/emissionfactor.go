package model

const (
	PollutantCO2  = "CO2"
	PollutantNOx  = "NOx"
	PollutantPM10 = "PM10"
	PollutantPM25 = "PM25"
	PollutantSOx  = "SOx"
)

// EmissionFactor kg of pollutant emitted per kg of fuel burned
type EmissionFactor struct {
	Pollutant   string  `json:"pollutant"`
	KgPerKgFuel float64 `json:"kg_per_kg_fuel"`
}
