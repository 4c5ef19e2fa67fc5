package internals

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
	"time"
)

func TestGenerateFlights(t *testing.T) {
	ref := DefaultReferenceData()
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	flights, err := GenerateFlights(rand.New(rand.NewSource(42)), ref, 500, base)
	require.NoError(t, err)
	require.Len(t, flights, 500)

	ids := make(map[string]bool)
	for _, flight := range flights {
		assert.False(t, ids[flight.FlightID], "duplicate id %s", flight.FlightID)
		ids[flight.FlightID] = true

		profile, ok := ref.Aircraft[flight.AircraftType]
		require.True(t, ok, flight.AircraftType)

		assert.Equal(t, HomeAirport, flight.DepartureAirport)
		assert.NotEqual(t, HomeAirport, flight.ArrivalAirport)
		assert.GreaterOrEqual(t, flight.DurationMinutes, 60.0)
		assert.LessOrEqual(t, flight.DurationMinutes, 240.0)
		assert.Equal(t, time.Duration(flight.DurationMinutes)*time.Minute, flight.ArrivalTime.Sub(flight.DepartureTime))
		assert.GreaterOrEqual(t, flight.Passengers, profile.MinPassengers)
		assert.LessOrEqual(t, flight.Passengers, profile.MaxPassengers)
		assert.GreaterOrEqual(t, flight.CargoKg, 5000.0)
		assert.LessOrEqual(t, flight.CargoKg, 15000.0)

		assert.False(t, flight.DepartureTime.Before(base))
		assert.True(t, flight.DepartureTime.Before(base.AddDate(0, 0, 31)))
		assert.GreaterOrEqual(t, flight.DepartureTime.Hour(), 6)
		assert.LessOrEqual(t, flight.DepartureTime.Hour(), 22)
		assert.Contains(t, flight.FlightID, "_"+flight.DepartureTime.Format("20060102"))
	}
}

func TestGenerateFlightsIsReproducible(t *testing.T) {
	ref := DefaultReferenceData()
	base := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)

	first, err := GenerateFlights(rand.New(rand.NewSource(7)), ref, 50, base)
	require.NoError(t, err)
	second, err := GenerateFlights(rand.New(rand.NewSource(7)), ref, 50, base)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateFlightsEmpty(t *testing.T) {
	ref := DefaultReferenceData()
	flights, err := GenerateFlights(rand.New(rand.NewSource(1)), ref, 0, time.Now())
	require.NoError(t, err)
	assert.Empty(t, flights)

	ref.Aircraft = nil
	flights, err = GenerateFlights(rand.New(rand.NewSource(1)), ref, 10, time.Now())
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestGenerateFlightsRejectsOversizedBatch(t *testing.T) {
	flights, err := GenerateFlights(rand.New(rand.NewSource(1)), DefaultReferenceData(), MaxGeneratedFlights+1, time.Now())
	assert.ErrorIs(t, err, ErrTooManyFlights)
	assert.Empty(t, flights)
}

func TestGenerateFlightsAtLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("generates the largest allowed batch")
	}
	flights, err := GenerateFlights(rand.New(rand.NewSource(1)), DefaultReferenceData(), MaxGeneratedFlights, time.Now())
	require.NoError(t, err)
	assert.Len(t, flights, MaxGeneratedFlights)
}
