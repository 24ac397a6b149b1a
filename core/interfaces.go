package core

import (
	"context"

	"github.com/signalsfoundry/ellipcorr/model"
)

// VelocityModel is a radially symmetric planetary model queried by depth.
// Velocities are km/s, densities g/cm3, depths km. Evaluation is
// one-sided: at a discontinuity the Above and Below variants disagree,
// elsewhere they agree.
type VelocityModel interface {
	// RadiusKm returns the planetary radius.
	RadiusKm() float64

	// LayerBoundaryDepths returns every layer boundary depth in ascending
	// order, from the surface at zero down to the centre.
	LayerBoundaryDepths() []float64

	// DiscontinuityDepths returns the depths at which material properties
	// jump, ascending, including the free surface at zero but never the
	// centre.
	DiscontinuityDepths() []float64

	// CMBDepthKm returns the depth of the core-mantle boundary, or the
	// planetary radius when the model has no fluid core.
	CMBDepthKm() float64

	// ICBDepthKm returns the depth of the inner-core boundary, or the
	// planetary radius when the model has no inner core.
	ICBDepthKm() float64

	// EvaluateAbove returns the property value just above depthKm.
	EvaluateAbove(depthKm float64, prop model.MaterialProperty) float64

	// EvaluateBelow returns the property value just below depthKm.
	EvaluateBelow(depthKm float64, prop model.MaterialProperty) float64

	// DerivativeAbove returns the one-sided derivative of the property
	// with respect to depth on the shallow side of depthKm.
	DerivativeAbove(depthKm float64, prop model.MaterialProperty) float64

	// DerivativeBelow returns the one-sided derivative of the property
	// with respect to depth on the deep side of depthKm.
	DerivativeBelow(depthKm float64, prop model.MaterialProperty) float64
}

// RayTracer produces densely sampled ray paths for a named seismic phase.
// Implementations wrap an external ray tracer for the same velocity model
// the coefficients are computed on.
type RayTracer interface {
	// Trace returns every arrival of phase at the given epicentral
	// distance and source depth, in the tracer's arrival order.
	Trace(ctx context.Context, phase string, distanceDeg, sourceDepthKm float64) ([]*model.RayPath, error)
}
