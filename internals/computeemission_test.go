package internals

import (
	"airport-air-quality/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestEstimateRecordCount(t *testing.T) {
	ref := DefaultReferenceData()

	for _, aircraftType := range ref.AircraftTypes() {
		for _, duration := range []float64{30, 60, 120, 240, 900} {
			records, err := EstimateAircraft(ref, aircraftType, duration)
			require.NoError(t, err, aircraftType)
			assert.Len(t, records, 35, aircraftType)

			for _, record := range records {
				assert.GreaterOrEqual(t, record.FuelKg, 0.0)
				assert.GreaterOrEqual(t, record.EmissionKg, 0.0)
				assert.Equal(t, model.MethodReferenceModel, record.Method)
			}
		}
	}
}

func TestEstimateRecordOrder(t *testing.T) {
	ref := DefaultReferenceData()

	records, err := Estimate(ref, model.Flight{FlightID: "AF1234_20250801", AircraftType: "A320", DurationMinutes: 120})
	require.NoError(t, err)
	require.Len(t, records, len(ref.Phases)*len(ref.EmissionFactors))

	i := 0
	for _, phase := range ref.Phases {
		for _, factor := range ref.EmissionFactors {
			assert.Equal(t, "AF1234_20250801", records[i].FlightID)
			assert.Equal(t, phase.Name, records[i].Phase)
			assert.Equal(t, factor.Pollutant, records[i].Pollutant)
			i++
		}
	}
}

func TestEstimateTakeoffReferenceValues(t *testing.T) {
	records, err := EstimateAircraft(DefaultReferenceData(), "A320", 120)
	require.NoError(t, err)

	record := findRecord(t, records, model.PhaseTakeoff, model.PollutantCO2)
	assert.InDelta(t, 28.0, record.FuelKg, 1e-9)
	assert.InDelta(t, 88.396, record.EmissionKg, 1e-9)
	assert.InDelta(t, 88.4, record.EmissionKg, 0.01)
}

func TestEstimateCruiseUsesRemainingDuration(t *testing.T) {
	records, err := EstimateAircraft(DefaultReferenceData(), "A320", 120)
	require.NoError(t, err)

	// 120 - (15 + 0.7 + 8 + 6 + 4 + 10) = 76.3 minutes at 75% power
	record := findRecord(t, records, model.PhaseCruise, model.PollutantNOx)
	assert.InDelta(t, 2400*0.75*76.3/60, record.FuelKg, 1e-9)
	assert.InDelta(t, record.FuelKg*0.013, record.EmissionKg, 1e-12)
}

func TestEstimateShortFlightCruiseFloor(t *testing.T) {
	ref := DefaultReferenceData()

	minutes := PhaseMinutes(ref.Phases, 5)
	total := 0.0
	for i, phase := range ref.Phases {
		if phase.IsCruise() {
			assert.Equal(t, MinCruiseMinutes, minutes[i])
		} else {
			assert.Equal(t, phase.NominalDurationMinutes, minutes[i])
		}
		total += minutes[i]
	}
	// floor applied, not a proportional shrink
	assert.InDelta(t, 53.7, total, 1e-9)
	assert.Greater(t, total, 5.0)

	records, err := EstimateAircraft(ref, "A320", 5)
	require.NoError(t, err)
	record := findRecord(t, records, model.PhaseCruise, model.PollutantCO2)
	assert.InDelta(t, 300.0, record.FuelKg, 1e-9)

	takeoff := findRecord(t, records, model.PhaseTakeoff, model.PollutantCO2)
	assert.InDelta(t, 28.0, takeoff.FuelKg, 1e-9)
}

func TestEstimateFuelMonotonicInFuelFlow(t *testing.T) {
	ref := DefaultReferenceData()

	previous := make(map[string]float64)
	for _, fuelFlow := range []float64{500, 1000, 2400, 2401, 7200, 20000} {
		ref.Aircraft["TEST"] = model.AircraftProfile{Type: "TEST", BaseFuelFlowKgPerHour: fuelFlow, MaxPassengers: 1}

		records, err := EstimateAircraft(ref, "TEST", 90)
		require.NoError(t, err)
		for _, record := range records {
			key := record.Phase + "/" + record.Pollutant
			assert.GreaterOrEqual(t, record.FuelKg, previous[key], key)
			previous[key] = record.FuelKg
		}
	}
}

func TestEstimateUnknownAircraftType(t *testing.T) {
	records, err := EstimateAircraft(DefaultReferenceData(), "UNKNOWN_TYPE", 120)
	assert.ErrorIs(t, err, ErrUnknownAircraftType)
	assert.Empty(t, records)
}

func TestEstimateInvalidDuration(t *testing.T) {
	for _, duration := range []float64{-10, 0, math.NaN(), math.Inf(1)} {
		records, err := EstimateAircraft(DefaultReferenceData(), "A320", duration)
		assert.ErrorIs(t, err, ErrInvalidDuration, duration)
		assert.Empty(t, records)
	}
}

func TestFuelConsumedKg(t *testing.T) {
	for _, tc := range []struct {
		fuelFlow, power, minutes, want float64
	}{
		{2400, 1.00, 0.7, 28.0},
		{2400, 0.07, 15, 42.0},
		{7200, 0.85, 8, 816.0},
		{5800, 0.30, 0, 0},
	} {
		assert.InDelta(t, tc.want, FuelConsumedKg(tc.fuelFlow, tc.power, tc.minutes), 1e-9)
	}
}

func TestTotalEmissionKg(t *testing.T) {
	records := []model.EmissionRecord{
		{Pollutant: model.PollutantCO2, EmissionKg: 10},
		{Pollutant: model.PollutantNOx, EmissionKg: 1},
		{Pollutant: model.PollutantCO2, EmissionKg: 2.5},
	}
	assert.Equal(t, 12.5, TotalEmissionKg(records, model.PollutantCO2))
	assert.Equal(t, 0.0, TotalEmissionKg(records, model.PollutantSOx))
}

func findRecord(t *testing.T, records []model.EmissionRecord, phase, pollutant string) model.EmissionRecord {
	t.Helper()
	for _, record := range records {
		if record.Phase == phase && record.Pollutant == pollutant {
			return record
		}
	}
	t.Fatalf("no record for %s/%s", phase, pollutant)
	return model.EmissionRecord{}
}
