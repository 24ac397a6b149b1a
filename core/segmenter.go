package core

import (
	"fmt"
	"math"

	"github.com/signalsfoundry/ellipcorr/model"
)

// SplitRayPath cuts a traced path into wave-classified segments. A cut
// falls on every sample past the first whose depth lies on a model
// discontinuity or at the path's bottoming depth, so each segment is a
// monotone leg through a single shell. Neighbouring segments share their
// boundary sample. Legs running flat along a boundary come back flagged
// as diffracted.
//
// Depth matching is exact: the tracer must sample discontinuities at the
// model's own boundary depths.
func SplitRayPath(vm VelocityModel, ray *model.RayPath) ([]model.PathSegment, error) {
	pts := ray.Points
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: ray path with %d samples", ErrInvalidArgument, len(pts))
	}
	cutDepths := make(map[float64]bool, 16)
	for _, d := range vm.DiscontinuityDepths() {
		cutDepths[d] = true
	}
	cutDepths[ray.BottomingDepthKm()] = true

	var segs []model.PathSegment
	start := 0
	for i := 1; i < len(pts); i++ {
		if i != len(pts)-1 && !cutDepths[pts[i].DepthKm] {
			continue
		}
		seg := model.PathSegment{Index: len(segs), Points: pts[start : i+1]}
		p0, p1 := shallowPair(seg.Points)
		if p0.DepthKm == p1.DepthKm {
			seg.Diffracted = true
			seg.Wave = grazingWave(vm, ray.RayParam, p0.DepthKm)
		} else {
			seg.Wave = classifyWave(vm, ray.RayParam, p0, p1)
		}
		segs = append(segs, seg)
		start = i
	}
	return segs, nil
}

// shallowPair returns the two samples at the shallow end of a segment, in
// travel order.
func shallowPair(pts []model.PathPoint) (model.PathPoint, model.PathPoint) {
	if pts[0].DepthKm < pts[len(pts)-1].DepthKm {
		return pts[0], pts[1]
	}
	return pts[len(pts)-2], pts[len(pts)-1]
}

// classifyWave decides whether a leg travelled as compressional or shear
// by comparing the delay it accumulated against the delay each wave speed
// predicts over the shallow-end samples.
func classifyWave(vm VelocityModel, rayParam float64, p0, p1 model.PathPoint) model.WaveType {
	delay := p1.TimeS - p0.TimeS - rayParam*math.Abs(p1.DistRad-p0.DistRad)
	errP := math.Abs(expectedDelay(vm, rayParam, p0, p1, model.WaveP)/delay - 1)
	errS := math.Abs(expectedDelay(vm, rayParam, p0, p1, model.WaveS)/delay - 1)
	if errP < errS {
		return model.WaveP
	}
	return model.WaveS
}

// expectedDelay is the delay a leg between p0 and p1 would accumulate
// travelling as wave w, with velocities sampled one-sided into the leg's
// own shell. Waves the medium does not carry predict zero.
func expectedDelay(vm VelocityModel, rayParam float64, p0, p1 model.PathPoint, w model.WaveType) float64 {
	prop := w.Property()
	var v0, v1 float64
	if p1.DepthKm >= p0.DepthKm {
		v0 = vm.EvaluateBelow(p0.DepthKm, prop)
		v1 = vm.EvaluateAbove(p1.DepthKm, prop)
	} else {
		v0 = vm.EvaluateAbove(p0.DepthKm, prop)
		v1 = vm.EvaluateBelow(p1.DepthKm, prop)
	}
	if v0 <= 0 || v1 <= 0 {
		return 0
	}
	radius := vm.RadiusKm()
	r0 := radius - p0.DepthKm
	r1 := radius - p1.DepthKm
	if rayParam == 0 {
		return 0.5 * (1/v0 + 1/v1) * math.Abs(r1-r0)
	}
	n0 := verticalSlowness(r0/v0, rayParam)
	n1 := verticalSlowness(r1/v1, rayParam)
	return 0.5 * (n0 + n1) * math.Abs(math.Log(r1/r0))
}

// verticalSlowness clamps the evanescent case to zero rather than going
// imaginary.
func verticalSlowness(eta, rayParam float64) float64 {
	return math.Sqrt(math.Max(0, eta*eta-rayParam*rayParam))
}

// grazingWave picks the wave type of a leg running along a boundary by
// matching the ray parameter against the horizontal slowness on each
// side.
func grazingWave(vm VelocityModel, rayParam float64, depthKm float64) model.WaveType {
	r := vm.RadiusKm() - depthKm
	best := model.WaveP
	bestDiff := math.Inf(1)
	for _, w := range []model.WaveType{model.WaveP, model.WaveS} {
		prop := w.Property()
		for _, v := range [2]float64{vm.EvaluateAbove(depthKm, prop), vm.EvaluateBelow(depthKm, prop)} {
			if v <= 0 {
				continue
			}
			if d := math.Abs(r/v - rayParam); d < bestDiff {
				bestDiff = d
				best = w
			}
		}
	}
	return best
}
