package core

import (
	"math"

	"github.com/signalsfoundry/ellipcorr/model"
)

// Correction evaluates the travel-time correction in seconds from the
// coefficients of a ray, the source-to-receiver azimuth in degrees and
// the geocentric source latitude in degrees. The corrected time is the
// spherical-model arrival time plus this value.
func Correction(c model.Coefficients, azimuthDeg, sourceLatDeg float64) float64 {
	colat := (90 - sourceLatDeg) * math.Pi / 180
	az := azimuthDeg * math.Pi / 180
	total := 0.0
	for m := 0; m < 3; m++ {
		total += c[m] * alp2(m, colat) * math.Cos(float64(m)*az)
	}
	return total
}
