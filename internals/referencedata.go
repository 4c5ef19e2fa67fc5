package internals

import (
	"airport-air-quality/model"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"os"
	"sort"
)

// ReferenceData static tables the estimator works from, loaded once at startup
type ReferenceData struct {
	Aircraft        map[string]model.AircraftProfile `json:"aircraft"`
	Phases          []model.FlightPhase              `json:"phases"`
	EmissionFactors []model.EmissionFactor           `json:"emission_factors"`
}

func DefaultReferenceData() ReferenceData {
	return ReferenceData{
		Aircraft: map[string]model.AircraftProfile{
			"A320": {Type: "A320", Manufacturer: "Airbus", Engines: 2, MTOWKg: 78000, BaseFuelFlowKgPerHour: 2400, MinPassengers: 120, MaxPassengers: 180},
			"A321": {Type: "A321", Manufacturer: "Airbus", Engines: 2, MTOWKg: 93500, BaseFuelFlowKgPerHour: 2600, MinPassengers: 150, MaxPassengers: 220},
			"A330": {Type: "A330", Manufacturer: "Airbus", Engines: 2, MTOWKg: 242000, BaseFuelFlowKgPerHour: 5800, MinPassengers: 200, MaxPassengers: 400},
			"B737": {Type: "B737", Manufacturer: "Boeing", Engines: 2, MTOWKg: 79000, BaseFuelFlowKgPerHour: 2500, MinPassengers: 120, MaxPassengers: 180},
			"B777": {Type: "B777", Manufacturer: "Boeing", Engines: 2, MTOWKg: 351000, BaseFuelFlowKgPerHour: 7200, MinPassengers: 200, MaxPassengers: 400},
			"B787": {Type: "B787", Manufacturer: "Boeing", Engines: 2, MTOWKg: 254000, BaseFuelFlowKgPerHour: 5400, MinPassengers: 200, MaxPassengers: 400},
		},
		// cruise nominal duration is informative only, see PhaseMinutes
		Phases: []model.FlightPhase{
			{Name: model.PhaseTaxiOut, NominalDurationMinutes: 15, PowerSetting: 0.07},
			{Name: model.PhaseTakeoff, NominalDurationMinutes: 0.7, PowerSetting: 1.00},
			{Name: model.PhaseClimb, NominalDurationMinutes: 8, PowerSetting: 0.85},
			{Name: model.PhaseCruise, NominalDurationMinutes: 120, PowerSetting: 0.75},
			{Name: model.PhaseDescent, NominalDurationMinutes: 6, PowerSetting: 0.40},
			{Name: model.PhaseApproach, NominalDurationMinutes: 4, PowerSetting: 0.30},
			{Name: model.PhaseTaxiIn, NominalDurationMinutes: 10, PowerSetting: 0.07},
		},
		EmissionFactors: []model.EmissionFactor{
			{Pollutant: model.PollutantCO2, KgPerKgFuel: 3.157},
			{Pollutant: model.PollutantNOx, KgPerKgFuel: 0.013},
			{Pollutant: model.PollutantPM10, KgPerKgFuel: 0.0002},
			{Pollutant: model.PollutantPM25, KgPerKgFuel: 0.0001},
			{Pollutant: model.PollutantSOx, KgPerKgFuel: 0.0008},
		},
	}
}

// LoadReferenceData returns the default tables when path is empty,
// otherwise decodes and validates the json file at path
func LoadReferenceData(path string) (ReferenceData, error) {
	if path == "" {
		ref := DefaultReferenceData()
		return ref, ref.Validate()
	}

	file, err := os.Open(path)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	defer func() {
		err = file.Close()
		if err != nil {
			log.Println("Error closing reference data file: ", err)
		}
	}()

	var ref ReferenceData
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	err = decoder.Decode(&ref)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("%w: decoding %s: %v", ErrConfiguration, path, err)
	}

	// the map key is authoritative for the aircraft type
	for aircraftType, profile := range ref.Aircraft {
		profile.Type = aircraftType
		ref.Aircraft[aircraftType] = profile
	}

	err = ref.Validate()
	if err != nil {
		return ReferenceData{}, err
	}
	return ref, nil
}

func (ref ReferenceData) Validate() error {
	if len(ref.Aircraft) == 0 {
		return fmt.Errorf("%w: no aircraft profiles", ErrConfiguration)
	}
	for aircraftType, profile := range ref.Aircraft {
		if aircraftType == "" {
			return fmt.Errorf("%w: empty aircraft type", ErrConfiguration)
		}
		if !isFinite(profile.BaseFuelFlowKgPerHour) || profile.BaseFuelFlowKgPerHour <= 0 {
			return fmt.Errorf("%w: aircraft %s has non-positive fuel flow", ErrConfiguration, aircraftType)
		}
		if profile.MinPassengers < 0 || profile.MaxPassengers < profile.MinPassengers {
			return fmt.Errorf("%w: aircraft %s has invalid passenger bounds", ErrConfiguration, aircraftType)
		}
	}

	if len(ref.Phases) == 0 {
		return fmt.Errorf("%w: no flight phases", ErrConfiguration)
	}
	cruisePhases := 0
	phaseNames := make(map[string]bool, len(ref.Phases))
	for _, phase := range ref.Phases {
		if phase.Name == "" || phaseNames[phase.Name] {
			return fmt.Errorf("%w: missing or duplicate phase name %q", ErrConfiguration, phase.Name)
		}
		phaseNames[phase.Name] = true
		if phase.IsCruise() {
			cruisePhases++
		}
		if !isFinite(phase.NominalDurationMinutes) || phase.NominalDurationMinutes < 0 {
			return fmt.Errorf("%w: phase %s has negative duration", ErrConfiguration, phase.Name)
		}
		if !isFinite(phase.PowerSetting) || phase.PowerSetting < 0 || phase.PowerSetting > 1 {
			return fmt.Errorf("%w: phase %s power setting outside [0, 1]", ErrConfiguration, phase.Name)
		}
	}
	if cruisePhases != 1 {
		return fmt.Errorf("%w: expected exactly one cruise phase, found %d", ErrConfiguration, cruisePhases)
	}

	if len(ref.EmissionFactors) == 0 {
		return fmt.Errorf("%w: no emission factors", ErrConfiguration)
	}
	pollutants := make(map[string]bool, len(ref.EmissionFactors))
	for _, factor := range ref.EmissionFactors {
		if factor.Pollutant == "" || pollutants[factor.Pollutant] {
			return fmt.Errorf("%w: missing or duplicate pollutant %q", ErrConfiguration, factor.Pollutant)
		}
		pollutants[factor.Pollutant] = true
		if !isFinite(factor.KgPerKgFuel) || factor.KgPerKgFuel < 0 {
			return fmt.Errorf("%w: pollutant %s has negative factor", ErrConfiguration, factor.Pollutant)
		}
	}

	return nil
}

// AircraftTypes sorted, so that generated data is reproducible for a given seed
func (ref ReferenceData) AircraftTypes() []string {
	types := make([]string, 0, len(ref.Aircraft))
	for aircraftType := range ref.Aircraft {
		types = append(types, aircraftType)
	}
	sort.Strings(types)
	return types
}

// RecordsPerFlight number of records Estimate returns for a valid flight
func (ref ReferenceData) RecordsPerFlight() int {
	return len(ref.Phases) * len(ref.EmissionFactors)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
