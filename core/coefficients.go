package core

import (
	"github.com/signalsfoundry/ellipcorr/model"
)

// RayCoefficients computes the three ellipticity coefficients of a single
// traced ray path: the path is split into wave-classified segments, its
// boundary contacts classified, and the integral and discontinuity parts
// summed.
func RayCoefficients(vm VelocityModel, profile *FigureProfile, ray *model.RayPath) (model.Coefficients, error) {
	segs, err := SplitRayPath(vm, ray)
	if err != nil {
		return model.Coefficients{}, err
	}
	return segmentCoefficients(vm, profile, ray, segs)
}

func segmentCoefficients(vm VelocityModel, profile *FigureProfile, ray *model.RayPath, segs []model.PathSegment) (model.Coefficients, error) {
	bounds, err := PathBoundaries(vm, ray, segs)
	if err != nil {
		return model.Coefficients{}, err
	}
	integral, err := IntegralCoefficients(vm, profile, ray, segs)
	if err != nil {
		return model.Coefficients{}, err
	}
	boundary, err := BoundaryCoefficients(vm, profile, ray, bounds)
	if err != nil {
		return model.Coefficients{}, err
	}
	return integral.Add(boundary), nil
}
