package model

// PathPoint is a single sample along a traced ray path.
type PathPoint struct {
	DepthKm float64
	DistRad float64 // epicentral distance from the source, radians
	TimeS   float64
}

// RayPath is one arrival returned by a ray tracer: the phase it was traced
// for, its ray parameter and the densely sampled path from source to
// receiver.
type RayPath struct {
	Phase             string
	RayParam          float64 // seconds per radian
	SourceDepthKm     float64
	ReceiverDepthKm   float64
	DistanceDeg       float64 // distance the trace was requested at
	PuristDistanceDeg float64 // geometric distance of the returned path
	Points            []PathPoint
}

// BottomingDepthKm returns the deepest sample on the path, or zero for an
// empty path.
func (rp *RayPath) BottomingDepthKm() float64 {
	max := 0.0
	for _, pt := range rp.Points {
		if pt.DepthKm > max {
			max = pt.DepthKm
		}
	}
	return max
}
