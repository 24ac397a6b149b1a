package core

import (
	"errors"
	"testing"

	"github.com/signalsfoundry/ellipcorr/model"
)

func TestRayCoefficientsChord(t *testing.T) {
	vm := uniformModel()
	got, err := RayCoefficients(vm, mustProfile(t, vm), chordPath(60, uniformVP))
	if err != nil {
		t.Fatalf("RayCoefficients: %v", err)
	}
	// The uniform medium leaves no path integral, so the chord reduces to
	// its two surface endpoint terms.
	want := model.Coefficients{-0.801098654904154, -0.6866559899178462, -0.5946615309296062}
	checkCoefficients(t, got, want, 1e-12)
}

func TestRayCoefficientsMatchesParts(t *testing.T) {
	vm := layeredModel()
	profile := mustProfile(t, uniformModel())
	ray := diffractedPath()
	got, err := RayCoefficients(vm, profile, ray)
	if err != nil {
		t.Fatalf("RayCoefficients: %v", err)
	}
	segs := mustSplit(t, vm, ray)
	bounds, err := PathBoundaries(vm, ray, segs)
	if err != nil {
		t.Fatalf("PathBoundaries: %v", err)
	}
	integral, err := IntegralCoefficients(vm, profile, ray, segs)
	if err != nil {
		t.Fatalf("IntegralCoefficients: %v", err)
	}
	boundary, err := BoundaryCoefficients(vm, profile, ray, bounds)
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	if want := integral.Add(boundary); got != want {
		t.Errorf("RayCoefficients = %v, want integral+boundary = %v", got, want)
	}
}

func TestRayCoefficientsVerticalBounce(t *testing.T) {
	vm := layeredModel()
	// Both models carry the same constant density; build the figure on
	// the uniform model's finer grid.
	got, err := RayCoefficients(vm, mustProfile(t, uniformModel()), bouncePath())
	if err != nil {
		t.Fatalf("RayCoefficients: %v", err)
	}
	if !closeTo(got[0], -0.6466702149595154, 1e-12) {
		t.Errorf("c[0] = %v, want -0.6466702149595154", got[0])
	}
	// On a vertical path every contact sits at distance zero, where the
	// order one and two Legendre factors vanish identically.
	if got[1] != 0 || got[2] != 0 {
		t.Errorf("c[1], c[2] = %v, %v, want exactly 0, 0", got[1], got[2])
	}
}

func TestRayCoefficientsRejectsShortPath(t *testing.T) {
	vm := uniformModel()
	ray := &model.RayPath{Phase: "P"}
	if _, err := RayCoefficients(vm, mustProfile(t, vm), ray); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty path err = %v, want ErrInvalidArgument", err)
	}
}
