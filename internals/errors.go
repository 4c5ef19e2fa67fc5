package internals

import "errors"

var (
	// ErrUnknownAircraftType the aircraft type has no profile; the flight is skipped
	ErrUnknownAircraftType = errors.New("unknown aircraft type")
	// ErrInvalidDuration the flight duration is not positive; the flight is rejected
	ErrInvalidDuration = errors.New("invalid flight duration")
	// ErrConfiguration the reference tables are missing or malformed
	ErrConfiguration = errors.New("invalid reference configuration")
)
