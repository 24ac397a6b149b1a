package core

import (
	"math"

	"github.com/signalsfoundry/ellipcorr/model"
)

// IntegralCoefficients sums the ray-path part of the ellipticity
// coefficients: the Radau kernel integrated against vertical slowness by
// the trapezoidal rule over every non-diffracted segment. Velocity and
// its depth gradient are sampled one-sided into the segment's own shell,
// switching to the shallow side at the segment's deepest sample.
func IntegralCoefficients(vm VelocityModel, profile *FigureProfile, ray *model.RayPath, segs []model.PathSegment) (model.Coefficients, error) {
	radius := vm.RadiusKm()
	var out model.Coefficients
	for si := range segs {
		seg := &segs[si]
		if seg.Diffracted {
			continue
		}
		maxDepth := seg.MaxDepthKm()
		prop := seg.Wave.Property()
		var prevN float64
		var prevK [3]float64
		for i, pt := range seg.Points {
			var v, dvdd float64
			if pt.DepthKm == maxDepth {
				v = vm.EvaluateAbove(pt.DepthKm, prop)
				dvdd = vm.DerivativeAbove(pt.DepthKm, prop)
			} else {
				v = vm.EvaluateBelow(pt.DepthKm, prop)
				dvdd = vm.DerivativeBelow(pt.DepthKm, prop)
			}
			r := radius - pt.DepthKm
			eta := r / v
			dvdr := -dvdd
			g := eta * dvdr / (1 - eta*dvdr)
			n := verticalSlowness(eta, ray.RayParam)
			eps := profile.EpsilonAtRadius(r)
			var k [3]float64
			for m := 0; m < 3; m++ {
				k[m] = g * eps * legendreWeight(m, pt.DistRad)
			}
			if i > 0 {
				dn := math.Abs(n - prevN)
				for m := 0; m < 3; m++ {
					out[m] += 0.5 * (k[m] + prevK[m]) * dn
				}
			}
			prevN, prevK = n, k
		}
	}
	return out, nil
}
