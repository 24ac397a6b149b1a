package core

import (
	"math"
	"testing"

	"github.com/signalsfoundry/ellipcorr/model"
)

// propFunc evaluates one material property at a depth.
type propFunc func(depthKm float64, prop model.MaterialProperty) float64

// fakeModel is a hand-built velocity model for tests. Property lookups
// dispatch to the configured funcs; nil derivative funcs report zero
// slope.
type fakeModel struct {
	radius float64
	bounds []float64
	discs  []float64
	cmb    float64
	icb    float64
	below  propFunc
	above  propFunc
	dBelow propFunc
	dAbove propFunc
}

func (f *fakeModel) RadiusKm() float64              { return f.radius }
func (f *fakeModel) LayerBoundaryDepths() []float64 { return f.bounds }
func (f *fakeModel) DiscontinuityDepths() []float64 { return f.discs }
func (f *fakeModel) CMBDepthKm() float64            { return f.cmb }
func (f *fakeModel) ICBDepthKm() float64            { return f.icb }

func (f *fakeModel) EvaluateBelow(depthKm float64, prop model.MaterialProperty) float64 {
	return f.below(depthKm, prop)
}

func (f *fakeModel) EvaluateAbove(depthKm float64, prop model.MaterialProperty) float64 {
	return f.above(depthKm, prop)
}

func (f *fakeModel) DerivativeBelow(depthKm float64, prop model.MaterialProperty) float64 {
	if f.dBelow == nil {
		return 0
	}
	return f.dBelow(depthKm, prop)
}

func (f *fakeModel) DerivativeAbove(depthKm float64, prop model.MaterialProperty) float64 {
	if f.dAbove == nil {
		return 0
	}
	return f.dAbove(depthKm, prop)
}

const (
	uniformVP  = 10.0
	uniformRho = 5.515
)

var uniformVS = uniformVP / math.Sqrt(3)

// uniformModel is a constant-velocity, constant-density sphere whose only
// discontinuity is the free surface. Layer boundaries every 500 km give
// the figure integration a usable grid.
func uniformModel() *fakeModel {
	eval := func(_ float64, prop model.MaterialProperty) float64 {
		switch prop {
		case model.PropertyVp:
			return uniformVP
		case model.PropertyVs:
			return uniformVS
		default:
			return uniformRho
		}
	}
	bounds := []float64{0}
	for d := 500.0; d < 6371; d += 500 {
		bounds = append(bounds, d)
	}
	bounds = append(bounds, 6371)
	return &fakeModel{
		radius: 6371,
		bounds: bounds,
		discs:  []float64{0},
		cmb:    6371,
		icb:    6371,
		below:  eval,
		above:  eval,
	}
}

// layeredModel has three constant-velocity shells separated by
// first-order jumps at 500 and 1000 km depth.
func layeredModel() *fakeModel {
	vps := [3]float64{8, 10, 12}
	layer := func(d float64, above bool) int {
		if above {
			switch {
			case d <= 500:
				return 0
			case d <= 1000:
				return 1
			default:
				return 2
			}
		}
		switch {
		case d < 500:
			return 0
		case d < 1000:
			return 1
		default:
			return 2
		}
	}
	eval := func(above bool) propFunc {
		return func(d float64, prop model.MaterialProperty) float64 {
			vp := vps[layer(d, above)]
			switch prop {
			case model.PropertyVp:
				return vp
			case model.PropertyVs:
				return vp / 2
			default:
				return uniformRho
			}
		}
	}
	return &fakeModel{
		radius: 6371,
		bounds: []float64{0, 500, 1000, 6371},
		discs:  []float64{0, 500, 1000},
		cmb:    6371,
		icb:    6371,
		below:  eval(false),
		above:  eval(true),
	}
}

// constModel is a uniform sphere with the given wave speeds.
func constModel(vp, vs float64) *fakeModel {
	eval := func(_ float64, prop model.MaterialProperty) float64 {
		switch prop {
		case model.PropertyVp:
			return vp
		case model.PropertyVs:
			return vs
		default:
			return uniformRho
		}
	}
	return &fakeModel{
		radius: 6371,
		bounds: []float64{0, 6371},
		discs:  []float64{0},
		cmb:    6371,
		icb:    6371,
		below:  eval,
		above:  eval,
	}
}

// gradientModel increases velocity linearly with depth and has no
// interior discontinuities.
func gradientModel() *fakeModel {
	eval := func(d float64, prop model.MaterialProperty) float64 {
		v := 8 + 0.001*d
		switch prop {
		case model.PropertyVp:
			return v
		case model.PropertyVs:
			return v / 2
		default:
			return uniformRho
		}
	}
	deriv := func(_ float64, prop model.MaterialProperty) float64 {
		switch prop {
		case model.PropertyVp:
			return 0.001
		case model.PropertyVs:
			return 0.0005
		default:
			return 0
		}
	}
	return &fakeModel{
		radius: 6371,
		bounds: []float64{0, 6371},
		discs:  []float64{0},
		cmb:    6371,
		icb:    6371,
		below:  eval,
		above:  eval,
		dBelow: deriv,
		dAbove: deriv,
	}
}

// chordPath samples a straight chord through a uniform sphere at the
// given epicentral distance, timed at speed v.
func chordPath(deltaDeg, v float64) *model.RayPath {
	const npts = 101
	delta := deltaDeg * math.Pi / 180
	pts := make([]model.PathPoint, npts)
	for k := 0; k < npts; k++ {
		phi := delta * float64(k) / float64(npts-1)
		r := 6371 * math.Cos(delta/2) / math.Cos(phi-delta/2)
		s := 6371*math.Sin(delta/2) - 6371*math.Cos(delta/2)*math.Tan(delta/2-phi)
		pts[k] = model.PathPoint{DepthKm: 6371 - r, DistRad: phi, TimeS: s / v}
	}
	return &model.RayPath{
		Phase:             "P",
		RayParam:          6371 * math.Cos(delta/2) / v,
		DistanceDeg:       deltaDeg,
		PuristDistanceDeg: deltaDeg,
		Points:            pts,
	}
}

// bouncePath is a vertical two-way path bouncing off the 1000 km jump of
// layeredModel.
func bouncePath() *model.RayPath {
	depths := []float64{0, 250, 500, 750, 1000, 750, 500, 250, 0}
	times := []float64{0, 31.25, 62.5, 87.5, 112.5, 137.5, 162.5, 193.75, 225}
	pts := make([]model.PathPoint, len(depths))
	for i := range depths {
		pts[i] = model.PathPoint{DepthKm: depths[i], TimeS: times[i]}
	}
	return &model.RayPath{Phase: "PcP", Points: pts}
}

// diffractedPath descends to the 1000 km jump of layeredModel, runs two
// flat legs along it and comes back up.
func diffractedPath() *model.RayPath {
	depths := []float64{0, 500, 1000, 1000, 1000, 500, 0}
	times := []float64{0, 98.1756, 162.4372, 216.1472, 269.8572, 334.1189, 432.2945}
	pts := make([]model.PathPoint, len(depths))
	for i := range depths {
		pts[i] = model.PathPoint{DepthKm: depths[i], DistRad: 0.1 * float64(i), TimeS: times[i]}
	}
	return &model.RayPath{
		Phase:             "Pdiff",
		RayParam:          537.1,
		DistanceDeg:       0.6 * 180 / math.Pi,
		PuristDistanceDeg: 0.6 * 180 / math.Pi,
		Points:            pts,
	}
}

// wPath leaves a 100 km deep source upward, bounces off the free surface
// and bottoms smoothly at 400 km.
func wPath() *model.RayPath {
	depths := []float64{100, 50, 0, 200, 400, 200, 0}
	times := []float64{0, 5.0994, 10.1988, 30.298, 50.397, 70.4961, 90.5953}
	pts := make([]model.PathPoint, len(depths))
	for i := range depths {
		pts[i] = model.PathPoint{DepthKm: depths[i], DistRad: 0.01 * float64(i), TimeS: times[i]}
	}
	return &model.RayPath{
		Phase:             "pP",
		RayParam:          10,
		SourceDepthKm:     100,
		DistanceDeg:       0.06 * 180 / math.Pi,
		PuristDistanceDeg: 0.06 * 180 / math.Pi,
		Points:            pts,
	}
}

// undersidePath rises from a deep source, bounces off the underside of
// the 1000 km jump of layeredModel and returns to the source depth.
func undersidePath() *model.RayPath {
	depths := []float64{1500, 1200, 1000, 1200, 1500}
	times := []float64{0, 25, 25 + 200.0/12, 25 + 400.0/12, 50 + 400.0/12}
	pts := make([]model.PathPoint, len(depths))
	for i := range depths {
		pts[i] = model.PathPoint{DepthKm: depths[i], TimeS: times[i]}
	}
	return &model.RayPath{Phase: "P", SourceDepthKm: 1500, ReceiverDepthKm: 1500, Points: pts}
}

// verticalPath is a straight upward leg from a 100 km source to the
// surface in a v=10 medium, spread over distDeg.
func verticalPath(distDeg float64) *model.RayPath {
	distRad := distDeg * math.Pi / 180
	return &model.RayPath{
		Phase:             "P",
		SourceDepthKm:     100,
		DistanceDeg:       distDeg,
		PuristDistanceDeg: distDeg,
		Points: []model.PathPoint{
			{DepthKm: 100, DistRad: 0, TimeS: 0},
			{DepthKm: 50, DistRad: distRad / 2, TimeS: 5},
			{DepthKm: 0, DistRad: distRad, TimeS: 10},
		},
	}
}

// flatProfile is a figure profile with constant ellipticity, handy for
// isolating the slowness terms.
func flatProfile(eps float64) *FigureProfile {
	return &FigureProfile{RadiiKm: []float64{0, 6371}, Epsilon: []float64{eps, eps}}
}

func mustProfile(t *testing.T, vm VelocityModel) *FigureProfile {
	t.Helper()
	p, err := BuildProfile(vm, ProfileOptions{})
	if err != nil {
		t.Fatalf("BuildProfile: %v", err)
	}
	return p
}

func mustSplit(t *testing.T, vm VelocityModel, ray *model.RayPath) []model.PathSegment {
	t.Helper()
	segs, err := SplitRayPath(vm, ray)
	if err != nil {
		t.Fatalf("SplitRayPath: %v", err)
	}
	return segs
}

// closeTo compares with a relative tolerance that degrades to absolute
// near zero.
func closeTo(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}

func checkCoefficients(t *testing.T, got, want model.Coefficients, tol float64) {
	t.Helper()
	for m := range got {
		if !closeTo(got[m], want[m], tol) {
			t.Errorf("c[%d] = %v, want %v", m, got[m], want[m])
		}
	}
}
