package model

// BoundaryPoint locates a boundary contact on a split ray path.
type BoundaryPoint struct {
	DepthKm float64
	DistRad float64
}

// Point returns the contact location.
func (b BoundaryPoint) Point() BoundaryPoint { return b }

func (b BoundaryPoint) isBoundary() {}

// Boundary is one contact between a ray path and a model boundary,
// recorded when the path is split into segments. The concrete types in
// this package say what the ray does there; only some kinds contribute a
// discontinuity term to the ellipticity coefficients.
type Boundary interface {
	Point() BoundaryPoint
	isBoundary()
}

// Transmission is a crossing of an interior discontinuity. The wave types
// on the two sides differ when the ray converts at the boundary.
type Transmission struct {
	BoundaryPoint
	AboveWave WaveType
	BelowWave WaveType
}

// UndersideReflection is a bounce off the lower side of a discontinuity,
// like PKKP at the core-mantle boundary.
type UndersideReflection struct {
	BoundaryPoint
	InWave  WaveType
	OutWave WaveType
}

// TopsideReflection is a bounce off the upper side of a discontinuity,
// like PcP at the core-mantle boundary.
type TopsideReflection struct {
	BoundaryPoint
	InWave  WaveType
	OutWave WaveType
}

// SurfaceReflection is a free-surface bounce, like the surface leg of PP
// or the near-source leg of pP.
type SurfaceReflection struct {
	BoundaryPoint
	InWave  WaveType
	OutWave WaveType
}

// SourcePoint is the start of the path. NeighborDepthKm is the depth of
// the next path sample and fixes which side of the source the first leg
// leaves on.
type SourcePoint struct {
	BoundaryPoint
	Wave            WaveType
	NeighborDepthKm float64
}

// ReceiverPoint is the end of the path. NeighborDepthKm is the depth of
// the preceding path sample.
type ReceiverPoint struct {
	BoundaryPoint
	Wave            WaveType
	NeighborDepthKm float64
}

// TurningPoint marks a smooth bottoming of the ray away from any
// discontinuity. It carries no boundary term.
type TurningPoint struct {
	BoundaryPoint
	Wave WaveType
}

// DiffractionContact marks an end of a diffracted leg running along a
// discontinuity. The ray grazes the boundary there, so its vertical
// slowness and with it the boundary term vanish.
type DiffractionContact struct {
	BoundaryPoint
	Wave WaveType
}
