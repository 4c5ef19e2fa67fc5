package internals

import (
	"airport-air-quality/model"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

const HomeAirport = "CDG"

var destinationAirports = []string{"ORY", "LHR", "AMS", "FRA", "BCN", "FCO", "MAD", "ZUR", "VIE"}
var airlines = []string{"AF", "BA", "LH", "KL", "IB", "AZ", "LX", "OS"}

const (
	generatedDays      = 30
	minFlightMinutes   = 60
	maxFlightMinutes   = 240
	minCargoKg         = 5000
	maxCargoKg         = 15000
	firstDepartureHour = 6
	lastDepartureHour  = 22

	flightNumbers = 9000
	// consecutive duplicate ids drawn before giving up
	maxIDRedraws = 1000
)

// MaxGeneratedFlights a batch uses at most a fiftieth of the flight id space,
// so duplicate ids stay rare
var MaxGeneratedFlights = len(airlines) * flightNumbers * (generatedDays + 1) / 50

var ErrTooManyFlights = errors.New("too many flights requested")

// GenerateFlights builds n synthetic departures from the home airport, spread over
// the generatedDays following base. Flight ids are unique within the batch.
func GenerateFlights(rng *rand.Rand, ref ReferenceData, n int, base time.Time) ([]model.Flight, error) {
	if n > MaxGeneratedFlights {
		return nil, fmt.Errorf("%w: %d, at most %d", ErrTooManyFlights, n, MaxGeneratedFlights)
	}
	aircraftTypes := ref.AircraftTypes()
	if n <= 0 || len(aircraftTypes) == 0 {
		return nil, nil
	}

	flights := make([]model.Flight, 0, n)
	usedIDs := make(map[string]bool, n)
	redraws := 0

	for len(flights) < n {
		aircraftType := aircraftTypes[rng.Intn(len(aircraftTypes))]
		profile := ref.Aircraft[aircraftType]

		departureTime := base.Add(
			time.Duration(rng.Intn(generatedDays+1))*24*time.Hour +
				time.Duration(firstDepartureHour+rng.Intn(lastDepartureHour-firstDepartureHour+1))*time.Hour +
				time.Duration(rng.Intn(60))*time.Minute,
		)
		duration := minFlightMinutes + rng.Intn(maxFlightMinutes-minFlightMinutes+1)

		flightID := fmt.Sprintf("%s%d_%s", airlines[rng.Intn(len(airlines))], 1000+rng.Intn(flightNumbers), departureTime.Format("20060102"))
		if usedIDs[flightID] {
			// draw again, the id is the primary key
			redraws++
			if redraws > maxIDRedraws {
				return nil, fmt.Errorf("%w: no free flight id after %d draws", ErrTooManyFlights, redraws)
			}
			continue
		}
		usedIDs[flightID] = true
		redraws = 0

		flights = append(flights, model.Flight{
			FlightID:         flightID,
			AircraftType:     aircraftType,
			DepartureAirport: HomeAirport,
			ArrivalAirport:   destinationAirports[rng.Intn(len(destinationAirports))],
			DepartureTime:    departureTime,
			ArrivalTime:      departureTime.Add(time.Duration(duration) * time.Minute),
			DurationMinutes:  float64(duration),
			Passengers:       profile.MinPassengers + rng.Intn(profile.MaxPassengers-profile.MinPassengers+1),
			CargoKg:          float64(minCargoKg + rng.Intn(maxCargoKg-minCargoKg+1)),
		})
	}

	return flights, nil
}
