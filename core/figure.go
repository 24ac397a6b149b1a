package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/signalsfoundry/ellipcorr/model"
)

// FigureProfile is the hydrostatic figure of a rotating planet: the
// degree-two ellipticity of equal-density surfaces, sampled at ascending
// radius from the centre to the surface.
type FigureProfile struct {
	RadiiKm []float64
	Epsilon []float64
}

// ProfileOptions configure BuildProfile. The zero value integrates on the
// model's own layer boundaries at Earth's sidereal rotation rate with the
// centre taper on.
type ProfileOptions struct {
	// LengthOfDayS is the rotation period in seconds. Zero means EarthLOD.
	LengthOfDayS float64

	// MaxStepKm subdivides integration shells thicker than this. Zero
	// keeps the model's layer boundaries as they are.
	MaxStepKm float64

	// DisableTaper turns off the clamp of the moment-of-inertia factor at
	// the uniform-sphere value 0.4. The clamp keeps the Radau parameter
	// finite when a coarse grid overshoots it near the centre.
	DisableTaper bool
}

// BuildProfile integrates Radau's approximation to Clairaut's equation
// for the hydrostatic figure of vm rotating at the configured rate. Shell
// mass and moment of inertia accumulate by the trapezoidal rule with
// density sampled one-sided at each shell edge, so models with
// first-order discontinuities integrate cleanly.
func BuildProfile(vm VelocityModel, opts ProfileOptions) (*FigureProfile, error) {
	lod := opts.LengthOfDayS
	if lod == 0 {
		lod = EarthLOD
	}
	if lod < 0 {
		return nil, fmt.Errorf("%w: negative length of day %v", ErrInvalidArgument, lod)
	}
	radius := vm.RadiusKm()
	radii := shellRadii(vm, opts.MaxStepKm)
	if len(radii) < 2 {
		return nil, fmt.Errorf("%w: model has no layers", ErrInvalidArgument)
	}

	nodes := radii[1:] // shell tops, the centre itself is not a node
	mass := make([]float64, len(nodes))
	inertia := make([]float64, len(nodes))
	var cumMass, cumInertia float64
	prev := 0.0
	for i, r := range nodes {
		rm := r * 1e3
		pm := prev * 1e3
		dv := 4.0 / 3.0 * math.Pi * (rm*rm*rm - pm*pm*pm)
		dj := 8.0 / 15.0 * math.Pi * (rm*rm*rm*rm*rm - pm*pm*pm*pm*pm)
		top := vm.EvaluateBelow(radius-r, model.PropertyDensity) * 1e3
		bot := vm.EvaluateAbove(radius-prev, model.PropertyDensity) * 1e3
		cumMass += 0.5 * (top + bot) * dv
		cumInertia += 0.5 * (top + bot) * dj
		mass[i] = cumMass
		inertia[i] = cumInertia
		prev = r
	}

	eta := make([]float64, len(nodes))
	for i, r := range nodes {
		rm := r * 1e3
		y := inertia[i] / (mass[i] * rm * rm)
		if !opts.DisableTaper && y > 0.4 {
			y = 0.4
		}
		d := 1 - 1.5*y
		eta[i] = 6.25*d*d - 1
	}

	omega := 2 * math.Pi / lod
	totalMass := mass[len(mass)-1]
	rm := radius * 1e3
	h := rm * rm * rm * omega * omega / (gravitationalConstant * totalMass)
	epsSurface := 5 * h / (2*eta[len(eta)-1] + 4)

	// Epsilon follows from exponentiating the cumulative integral of
	// eta/r, normalised to the hydrostatic surface value.
	eps := make([]float64, len(nodes))
	eps[0] = 1
	integ := 0.0
	for i := 1; i < len(nodes); i++ {
		integ += 0.5 * (eta[i]/nodes[i] + eta[i-1]/nodes[i-1]) * (nodes[i] - nodes[i-1])
		eps[i] = math.Exp(integ)
	}
	scale := epsSurface / eps[len(eps)-1]
	for i := range eps {
		eps[i] *= scale
	}

	// The centre sample takes the innermost computed value.
	outR := make([]float64, 0, len(nodes)+1)
	outE := make([]float64, 0, len(nodes)+1)
	outR = append(outR, 0)
	outE = append(outE, eps[0])
	outR = append(outR, nodes...)
	outE = append(outE, eps...)
	return &FigureProfile{RadiiKm: outR, Epsilon: outE}, nil
}

// shellRadii returns the integration shell edges in ascending radius,
// starting at the centre, optionally subdivided to maxStep.
func shellRadii(vm VelocityModel, maxStep float64) []float64 {
	depths := vm.LayerBoundaryDepths()
	radius := vm.RadiusKm()
	radii := make([]float64, 0, len(depths))
	for i := len(depths) - 1; i >= 0; i-- {
		r := radius - depths[i]
		if len(radii) > 0 && r <= radii[len(radii)-1] {
			continue
		}
		if maxStep > 0 && len(radii) > 0 {
			prev := radii[len(radii)-1]
			if gap := r - prev; gap > maxStep {
				n := int(math.Ceil(gap / maxStep))
				for k := 1; k < n; k++ {
					radii = append(radii, prev+gap*float64(k)/float64(n))
				}
			}
		}
		radii = append(radii, r)
	}
	return radii
}

// EpsilonAtRadius returns the ellipticity at radius rKm, linearly
// interpolated between the bounding samples and clamped at the profile
// ends.
func (p *FigureProfile) EpsilonAtRadius(rKm float64) float64 {
	n := len(p.RadiiKm)
	if n == 0 {
		return 0
	}
	if rKm <= p.RadiiKm[0] {
		return p.Epsilon[0]
	}
	if rKm >= p.RadiiKm[n-1] {
		return p.Epsilon[n-1]
	}
	i := sort.SearchFloat64s(p.RadiiKm, rKm)
	if p.RadiiKm[i] == rKm {
		return p.Epsilon[i]
	}
	r0, r1 := p.RadiiKm[i-1], p.RadiiKm[i]
	e0, e1 := p.Epsilon[i-1], p.Epsilon[i]
	return e0 + (e1-e0)*(rKm-r0)/(r1-r0)
}

// EpsilonAtDepth returns the ellipticity at depth below the surface
// sample.
func (p *FigureProfile) EpsilonAtDepth(depthKm float64) float64 {
	n := len(p.RadiiKm)
	if n == 0 {
		return 0
	}
	return p.EpsilonAtRadius(p.RadiiKm[n-1] - depthKm)
}
