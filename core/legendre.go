package core

import (
	"fmt"
	"math"
)

// EarthLOD is the length of Earth's sidereal day in seconds, the default
// rotation period for the figure profile.
const EarthLOD = 86164.0905

// CODATA gravitational constant, m3 kg-1 s-2.
const gravitationalConstant = 6.67408e-11

// AssociatedLegendre2 evaluates the Schmidt semi-normalised associated
// Legendre function of degree two and order m at colatitude theta in
// radians. Orders outside 0..2 return ErrInvalidArgument.
func AssociatedLegendre2(m int, theta float64) (float64, error) {
	if m < 0 || m > 2 {
		return 0, fmt.Errorf("%w: azimuthal order %d", ErrInvalidArgument, m)
	}
	return alp2(m, theta), nil
}

// alp2 is AssociatedLegendre2 without the order check, for callers that
// iterate m over 0..2.
func alp2(m int, theta float64) float64 {
	switch m {
	case 0:
		c := math.Cos(theta)
		return 0.5 * (3*c*c - 1)
	case 1:
		return 3 * math.Cos(theta) * math.Sin(theta) * math.Sqrt(1.0/3.0)
	default:
		s := math.Sin(theta)
		return 3 * s * s * math.Sqrt(1.0/12.0)
	}
}

// legendreWeight is the degree-two weighting factor applied to epsilon in
// both the path integral and the boundary terms.
func legendreWeight(m int, theta float64) float64 {
	return -2.0 / 3.0 * alp2(m, theta)
}
