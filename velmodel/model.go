// Package velmodel provides layered one-dimensional velocity models and a
// registry of built-in ones.
package velmodel

import (
	"errors"
	"fmt"
	"sort"

	"github.com/signalsfoundry/ellipcorr/model"
)

// Sentinel errors returned by model construction and lookup.
var (
	ErrInvalidModel = errors.New("invalid velocity model")
	ErrModelExists  = errors.New("model already registered")
	ErrUnknownModel = errors.New("unknown model")
)

// Node is one sampled row of a layered model, surface downwards.
// Velocities are km/s, density g/cm3.
type Node struct {
	DepthKm float64
	Vp      float64
	Vs      float64
	Rho     float64
}

type layer struct {
	top Node
	bot Node
}

// LayeredModel is a piecewise linear radial model built from depth-sorted
// nodes. A repeated depth introduces a discontinuity: the first row of the
// pair holds the values just above it, the second the values just below.
// The deepest node must sit at the planet centre.
type LayeredModel struct {
	name   string
	layers []layer
	bounds []float64 // distinct node depths, ascending
	discs  []float64 // jump depths, ascending, surface included
	radius float64
	cmb    float64
	icb    float64
}

// NewLayeredModel validates nodes and builds a model from them.
func NewLayeredModel(name string, nodes []Node) (*LayeredModel, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidModel)
	}
	if len(nodes) < 2 {
		return nil, fmt.Errorf("%w %q: need at least two nodes", ErrInvalidModel, name)
	}
	if nodes[0].DepthKm != 0 {
		return nil, fmt.Errorf("%w %q: first node at depth %v, want surface", ErrInvalidModel, name, nodes[0].DepthKm)
	}
	m := &LayeredModel{name: name, radius: nodes[len(nodes)-1].DepthKm}
	m.discs = append(m.discs, 0)
	for i, n := range nodes {
		if n.Vp <= 0 || n.Vs < 0 || n.Rho <= 0 {
			return nil, fmt.Errorf("%w %q: non-physical values at depth %v", ErrInvalidModel, name, n.DepthKm)
		}
		if i == 0 {
			m.bounds = append(m.bounds, n.DepthKm)
			continue
		}
		prev := nodes[i-1]
		switch {
		case n.DepthKm < prev.DepthKm:
			return nil, fmt.Errorf("%w %q: depth %v out of order", ErrInvalidModel, name, n.DepthKm)
		case n.DepthKm == prev.DepthKm:
			if i >= 2 && nodes[i-2].DepthKm == n.DepthKm {
				return nil, fmt.Errorf("%w %q: depth %v repeated more than twice", ErrInvalidModel, name, n.DepthKm)
			}
			if n.DepthKm != 0 {
				m.discs = append(m.discs, n.DepthKm)
			}
		default:
			m.layers = append(m.layers, layer{top: prev, bot: n})
			m.bounds = append(m.bounds, n.DepthKm)
		}
	}
	if len(m.layers) == 0 {
		return nil, fmt.Errorf("%w %q: no layers", ErrInvalidModel, name)
	}
	m.cmb, m.icb = m.coreDepths()
	return m, nil
}

// coreDepths locates the fluid outer core by the vanishing of the shear
// velocity across a discontinuity. Models without one report the radius
// for both boundaries.
func (m *LayeredModel) coreDepths() (cmb, icb float64) {
	cmb, icb = m.radius, m.radius
	for i := len(m.discs) - 1; i >= 1; i-- {
		d := m.discs[i]
		if m.EvaluateAbove(d, model.PropertyVs) > 0 && m.EvaluateBelow(d, model.PropertyVs) == 0 {
			cmb = d
			break
		}
	}
	for i := len(m.discs) - 1; i >= 1; i-- {
		d := m.discs[i]
		if d > cmb && m.EvaluateAbove(d, model.PropertyVs) == 0 && m.EvaluateBelow(d, model.PropertyVs) > 0 {
			icb = d
			break
		}
	}
	return cmb, icb
}

// Name returns the model's registry name.
func (m *LayeredModel) Name() string { return m.name }

// RadiusKm returns the planetary radius.
func (m *LayeredModel) RadiusKm() float64 { return m.radius }

// LayerBoundaryDepths returns the distinct node depths, surface to centre.
func (m *LayeredModel) LayerBoundaryDepths() []float64 {
	out := make([]float64, len(m.bounds))
	copy(out, m.bounds)
	return out
}

// DiscontinuityDepths returns the depths where properties jump, ascending,
// with the free surface first.
func (m *LayeredModel) DiscontinuityDepths() []float64 {
	out := make([]float64, len(m.discs))
	copy(out, m.discs)
	return out
}

// CMBDepthKm returns the core-mantle boundary depth, or the radius when
// the model has no fluid core.
func (m *LayeredModel) CMBDepthKm() float64 { return m.cmb }

// ICBDepthKm returns the inner-core boundary depth, or the radius when
// the model has no inner core.
func (m *LayeredModel) ICBDepthKm() float64 { return m.icb }

func nodeValue(n Node, prop model.MaterialProperty) float64 {
	switch prop {
	case model.PropertyVs:
		return n.Vs
	case model.PropertyDensity:
		return n.Rho
	default:
		return n.Vp
	}
}

// layerBelow returns the layer that owns the deep side of depth: the one
// starting at depth when depth is a boundary, otherwise the layer
// containing it. Depths at or beyond the centre map to the deepest layer.
func (m *LayeredModel) layerBelow(depthKm float64) layer {
	i := sort.Search(len(m.layers), func(i int) bool {
		return m.layers[i].bot.DepthKm > depthKm
	})
	if i == len(m.layers) {
		i--
	}
	return m.layers[i]
}

// layerAbove returns the layer that owns the shallow side of depth: the
// one ending at depth when depth is a boundary, otherwise the layer
// containing it. Depths at or above the surface map to the first layer.
func (m *LayeredModel) layerAbove(depthKm float64) layer {
	i := sort.Search(len(m.layers), func(i int) bool {
		return m.layers[i].top.DepthKm >= depthKm
	})
	if i == 0 {
		return m.layers[0]
	}
	return m.layers[i-1]
}

func interpolate(l layer, depthKm float64, prop model.MaterialProperty) float64 {
	if depthKm <= l.top.DepthKm {
		return nodeValue(l.top, prop)
	}
	if depthKm >= l.bot.DepthKm {
		return nodeValue(l.bot, prop)
	}
	f := (depthKm - l.top.DepthKm) / (l.bot.DepthKm - l.top.DepthKm)
	vt := nodeValue(l.top, prop)
	return vt + (nodeValue(l.bot, prop)-vt)*f
}

func slope(l layer, prop model.MaterialProperty) float64 {
	return (nodeValue(l.bot, prop) - nodeValue(l.top, prop)) / (l.bot.DepthKm - l.top.DepthKm)
}

// EvaluateBelow returns the property value just below depthKm.
func (m *LayeredModel) EvaluateBelow(depthKm float64, prop model.MaterialProperty) float64 {
	return interpolate(m.layerBelow(depthKm), depthKm, prop)
}

// EvaluateAbove returns the property value just above depthKm.
func (m *LayeredModel) EvaluateAbove(depthKm float64, prop model.MaterialProperty) float64 {
	return interpolate(m.layerAbove(depthKm), depthKm, prop)
}

// DerivativeBelow returns the slope of the property with respect to depth
// on the deep side of depthKm.
func (m *LayeredModel) DerivativeBelow(depthKm float64, prop model.MaterialProperty) float64 {
	return slope(m.layerBelow(depthKm), prop)
}

// DerivativeAbove returns the slope of the property with respect to depth
// on the shallow side of depthKm.
func (m *LayeredModel) DerivativeAbove(depthKm float64, prop model.MaterialProperty) float64 {
	return slope(m.layerAbove(depthKm), prop)
}
