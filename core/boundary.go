package core

import (
	"fmt"

	"github.com/signalsfoundry/ellipcorr/model"
)

// PathBoundaries classifies every boundary contact of a split path: the
// two endpoints plus each junction between neighbouring segments, in
// travel order.
func PathBoundaries(vm VelocityModel, ray *model.RayPath, segs []model.PathSegment) ([]model.Boundary, error) {
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidArgument)
	}
	discs := make(map[float64]bool, 16)
	for _, d := range vm.DiscontinuityDepths() {
		discs[d] = true
	}
	bottoming := ray.BottomingDepthKm()

	first := segs[0].Points
	last := segs[len(segs)-1].Points
	out := make([]model.Boundary, 0, len(segs)+1)
	out = append(out, model.SourcePoint{
		BoundaryPoint:   contactAt(first[0]),
		Wave:            segs[0].Wave,
		NeighborDepthKm: first[1].DepthKm,
	})

	for k := 0; k+1 < len(segs); k++ {
		prev, next := &segs[k], &segs[k+1]
		pp := prev.Points
		at := pp[len(pp)-1] // shared with next.Points[0]
		bp := contactAt(at)
		inFrom := pp[len(pp)-2].DepthKm
		outTo := next.Points[1].DepthKm

		switch {
		case at.DepthKm == bottoming && !discs[at.DepthKm]:
			out = append(out, model.TurningPoint{BoundaryPoint: bp, Wave: prev.Wave})
		case prev.Diffracted || next.Diffracted:
			out = append(out, model.DiffractionContact{BoundaryPoint: bp, Wave: prev.Wave})
		case inFrom < at.DepthKm && outTo < at.DepthKm:
			out = append(out, model.TopsideReflection{BoundaryPoint: bp, InWave: prev.Wave, OutWave: next.Wave})
		case inFrom > at.DepthKm && outTo > at.DepthKm:
			if at.DepthKm == 0 {
				out = append(out, model.SurfaceReflection{BoundaryPoint: bp, InWave: prev.Wave, OutWave: next.Wave})
			} else {
				out = append(out, model.UndersideReflection{BoundaryPoint: bp, InWave: prev.Wave, OutWave: next.Wave})
			}
		case inFrom < at.DepthKm && outTo > at.DepthKm:
			out = append(out, model.Transmission{BoundaryPoint: bp, AboveWave: prev.Wave, BelowWave: next.Wave})
		case inFrom > at.DepthKm && outTo < at.DepthKm:
			out = append(out, model.Transmission{BoundaryPoint: bp, AboveWave: next.Wave, BelowWave: prev.Wave})
		default:
			// One side approaches along the boundary itself.
			out = append(out, model.DiffractionContact{BoundaryPoint: bp, Wave: prev.Wave})
		}
	}

	out = append(out, model.ReceiverPoint{
		BoundaryPoint:   contactAt(last[len(last)-1]),
		Wave:            segs[len(segs)-1].Wave,
		NeighborDepthKm: last[len(last)-2].DepthKm,
	})
	return out, nil
}

func contactAt(pt model.PathPoint) model.BoundaryPoint {
	return model.BoundaryPoint{DepthKm: pt.DepthKm, DistRad: pt.DistRad}
}

// BoundaryCoefficients sums the discontinuity terms of the ellipticity
// coefficients over the classified contacts. Each contributing contact
// adds the jump in vertical slowness across it, weighted by the local
// ellipticity and the degree-two Legendre factor; turning points and
// diffraction contacts carry nothing.
func BoundaryCoefficients(vm VelocityModel, profile *FigureProfile, ray *model.RayPath, bounds []model.Boundary) (model.Coefficients, error) {
	radius := vm.RadiusKm()
	var out model.Coefficients
	for _, b := range bounds {
		var eva float64
		switch t := b.(type) {
		case model.Transmission:
			eva = sideSlowness(vm, ray.RayParam, t.DepthKm, t.BelowWave, false) -
				sideSlowness(vm, ray.RayParam, t.DepthKm, t.AboveWave, true)
		case model.UndersideReflection:
			eva = sideSlowness(vm, ray.RayParam, t.DepthKm, t.InWave, false) +
				sideSlowness(vm, ray.RayParam, t.DepthKm, t.OutWave, false)
		case model.SurfaceReflection:
			eva = sideSlowness(vm, ray.RayParam, t.DepthKm, t.InWave, false) +
				sideSlowness(vm, ray.RayParam, t.DepthKm, t.OutWave, false)
		case model.TopsideReflection:
			eva = -(sideSlowness(vm, ray.RayParam, t.DepthKm, t.InWave, true) +
				sideSlowness(vm, ray.RayParam, t.DepthKm, t.OutWave, true))
		case model.SourcePoint:
			eva = endpointTerm(vm, ray.RayParam, t.DepthKm, t.NeighborDepthKm, t.Wave)
		case model.ReceiverPoint:
			eva = endpointTerm(vm, ray.RayParam, t.DepthKm, t.NeighborDepthKm, t.Wave)
		case model.TurningPoint, model.DiffractionContact:
			continue
		default:
			return model.Coefficients{}, fmt.Errorf("%w: unhandled boundary kind %T", ErrInvalidArgument, b)
		}
		if eva == 0 {
			continue
		}
		pt := b.Point()
		eps := profile.EpsilonAtRadius(radius - pt.DepthKm)
		for m := 0; m < 3; m++ {
			out[m] += eva * eps * legendreWeight(m, pt.DistRad)
		}
	}
	return out, nil
}

// sideSlowness is the vertical slowness of wave w on one side of a
// boundary, zero where that side does not carry the wave.
func sideSlowness(vm VelocityModel, rayParam, depthKm float64, w model.WaveType, above bool) float64 {
	var v float64
	if above {
		v = vm.EvaluateAbove(depthKm, w.Property())
	} else {
		v = vm.EvaluateBelow(depthKm, w.Property())
	}
	if v <= 0 {
		return 0
	}
	return verticalSlowness((vm.RadiusKm()-depthKm)/v, rayParam)
}

// endpointTerm is the source or receiver contribution. The sign follows
// the side the adjoining leg travels on; a flat exit contributes nothing.
func endpointTerm(vm VelocityModel, rayParam, depthKm, neighborDepthKm float64, w model.WaveType) float64 {
	switch {
	case neighborDepthKm > depthKm:
		return sideSlowness(vm, rayParam, depthKm, w, false)
	case neighborDepthKm < depthKm:
		return -sideSlowness(vm, rayParam, depthKm, w, true)
	default:
		return 0
	}
}
