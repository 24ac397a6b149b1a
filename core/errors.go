package core

import "errors"

// Sentinel errors returned by coefficient computations.
var (
	// ErrNoArrival reports that the ray tracer produced no usable arrival
	// for the requested phase, distance and depth.
	ErrNoArrival = errors.New("no arrival for requested phase")

	// ErrInvalidArgument reports malformed input, such as a ray path with
	// fewer than two samples or an azimuthal order outside 0..2.
	ErrInvalidArgument = errors.New("invalid argument")
)
