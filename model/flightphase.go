package model

// phase names, in flight order
const (
	PhaseTaxiOut  = "taxi_out"
	PhaseTakeoff  = "takeoff"
	PhaseClimb    = "climb"
	PhaseCruise   = "cruise"
	PhaseDescent  = "descent"
	PhaseApproach = "approach"
	PhaseTaxiIn   = "taxi_in"
)

type FlightPhase struct {
	Name                   string  `json:"name"`
	NominalDurationMinutes float64 `json:"duration_min"`
	PowerSetting           float64 `json:"power_setting"` // fraction of max thrust, 0..1
}

// IsCruise cruise duration is derived from the flight duration, not taken from the table
func (p FlightPhase) IsCruise() bool {
	return p.Name == PhaseCruise
}
