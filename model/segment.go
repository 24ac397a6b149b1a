package model

// PathSegment is a run of consecutive path points between two boundary
// contacts, classified with the wave type it travels as. Diffracted
// segments run horizontally along a discontinuity and carry no depth
// extent.
type PathSegment struct {
	Index      int
	Wave       WaveType
	Diffracted bool
	Points     []PathPoint
}

// MaxDepthKm returns the deepest sample of the segment.
func (s *PathSegment) MaxDepthKm() float64 {
	max := 0.0
	for _, pt := range s.Points {
		if pt.DepthKm > max {
			max = pt.DepthKm
		}
	}
	return max
}
