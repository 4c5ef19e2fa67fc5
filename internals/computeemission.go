package internals

import (
	"airport-air-quality/model"
	"fmt"
	"math"
)

// MinCruiseMinutes cruise never lasts less than this, even for very short flights
const MinCruiseMinutes = 10.0

// Estimate splits the flight into its phases and computes, for every phase and
// every pollutant, the fuel burned and the pollutant mass emitted.
// It returns one record per (phase, pollutant) pair, phases in table order.
func Estimate(ref ReferenceData, flight model.Flight) ([]model.EmissionRecord, error) {
	if !isFinite(flight.DurationMinutes) || flight.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: flight %s lasts %v minutes", ErrInvalidDuration, flight.FlightID, flight.DurationMinutes)
	}

	profile, ok := ref.Aircraft[flight.AircraftType]
	if !ok {
		return nil, fmt.Errorf("%w: flight %s has aircraft type %q", ErrUnknownAircraftType, flight.FlightID, flight.AircraftType)
	}

	phaseMinutes := PhaseMinutes(ref.Phases, flight.DurationMinutes)

	records := make([]model.EmissionRecord, 0, ref.RecordsPerFlight())
	for i, phase := range ref.Phases {
		fuelConsumed := FuelConsumedKg(profile.BaseFuelFlowKgPerHour, phase.PowerSetting, phaseMinutes[i])

		for _, factor := range ref.EmissionFactors {
			records = append(records, model.EmissionRecord{
				FlightID:   flight.FlightID,
				Phase:      phase.Name,
				Pollutant:  factor.Pollutant,
				FuelKg:     fuelConsumed,
				EmissionKg: fuelConsumed * factor.KgPerKgFuel,
				Method:     model.MethodReferenceModel,
			})
		}
	}

	return records, nil
}

// EstimateAircraft estimates an anonymous flight of the given type and duration
func EstimateAircraft(ref ReferenceData, aircraftType string, durationMinutes float64) ([]model.EmissionRecord, error) {
	return Estimate(ref, model.Flight{AircraftType: aircraftType, DurationMinutes: durationMinutes})
}

// PhaseMinutes returns the modeled duration of every phase, in the order of phases.
// Non-cruise phases keep their nominal duration, cruise takes what is left of the
// flight duration but never less than MinCruiseMinutes, so the total can exceed
// the flight duration for short flights.
func PhaseMinutes(phases []model.FlightPhase, flightDurationMinutes float64) []float64 {
	otherPhasesMinutes := 0.0
	for _, phase := range phases {
		if !phase.IsCruise() {
			otherPhasesMinutes += phase.NominalDurationMinutes
		}
	}

	minutes := make([]float64, len(phases))
	for i, phase := range phases {
		if phase.IsCruise() {
			minutes[i] = math.Max(flightDurationMinutes-otherPhasesMinutes, MinCruiseMinutes)
		} else {
			minutes[i] = phase.NominalDurationMinutes
		}
	}
	return minutes
}

// FuelConsumedKg fuel burned during a phase [kg]
func FuelConsumedKg(baseFuelFlowKgPerHour, powerSetting, phaseMinutes float64) float64 {
	return baseFuelFlowKgPerHour * powerSetting * phaseMinutes / 60
}

// TotalEmissionKg sums the emitted mass of one pollutant over records
func TotalEmissionKg(records []model.EmissionRecord, pollutant string) float64 {
	total := 0.0
	for _, record := range records {
		if record.Pollutant == pollutant {
			total += record.EmissionKg
		}
	}
	return total
}
