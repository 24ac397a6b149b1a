package model

// WaveType identifies the body-wave polarisation of a ray leg.
type WaveType string

const (
	WaveP WaveType = "p"
	WaveS WaveType = "s"
)

// MaterialProperty selects the quantity a velocity model evaluates at depth.
type MaterialProperty string

const (
	PropertyVp      MaterialProperty = "p"
	PropertyVs      MaterialProperty = "s"
	PropertyDensity MaterialProperty = "d"
)

// Property returns the velocity property sampled by waves of this type.
func (w WaveType) Property() MaterialProperty {
	if w == WaveS {
		return PropertyVs
	}
	return PropertyVp
}
