package core

import (
	"testing"

	"github.com/signalsfoundry/ellipcorr/model"
)

func boundariesFor(t *testing.T, vm VelocityModel, ray *model.RayPath) []model.Boundary {
	t.Helper()
	bounds, err := PathBoundaries(vm, ray, mustSplit(t, vm, ray))
	if err != nil {
		t.Fatalf("PathBoundaries: %v", err)
	}
	return bounds
}

func TestPathBoundariesChord(t *testing.T) {
	vm := uniformModel()
	ray := chordPath(60, uniformVP)
	bounds := boundariesFor(t, vm, ray)
	if len(bounds) != 3 {
		t.Fatalf("chord has %d contacts, want 3", len(bounds))
	}
	src, ok := bounds[0].(model.SourcePoint)
	if !ok {
		t.Fatalf("contact 0 is %T, want SourcePoint", bounds[0])
	}
	if src.DepthKm != 0 || src.NeighborDepthKm <= 0 {
		t.Errorf("source at depth %v with neighbour %v", src.DepthKm, src.NeighborDepthKm)
	}
	turn, ok := bounds[1].(model.TurningPoint)
	if !ok {
		t.Fatalf("contact 1 is %T, want TurningPoint", bounds[1])
	}
	if !closeTo(turn.DepthKm, 853.5521524893411, 1e-12) {
		t.Errorf("turning point at depth %v", turn.DepthKm)
	}
	rcv, ok := bounds[2].(model.ReceiverPoint)
	if !ok {
		t.Fatalf("contact 2 is %T, want ReceiverPoint", bounds[2])
	}
	if rcv.DepthKm != 0 || rcv.NeighborDepthKm <= 0 {
		t.Errorf("receiver at depth %v with neighbour %v", rcv.DepthKm, rcv.NeighborDepthKm)
	}
}

func TestPathBoundariesVerticalBounce(t *testing.T) {
	vm := layeredModel()
	bounds := boundariesFor(t, vm, bouncePath())
	if len(bounds) != 5 {
		t.Fatalf("bounce path has %d contacts, want 5", len(bounds))
	}
	if _, ok := bounds[0].(model.SourcePoint); !ok {
		t.Errorf("contact 0 is %T, want SourcePoint", bounds[0])
	}
	down, ok := bounds[1].(model.Transmission)
	if !ok {
		t.Fatalf("contact 1 is %T, want Transmission", bounds[1])
	}
	if down.DepthKm != 500 || down.AboveWave != model.WaveP || down.BelowWave != model.WaveP {
		t.Errorf("downward transmission = %+v", down)
	}
	// The ray bottoms exactly on the discontinuity, which still counts as
	// a topside bounce rather than a smooth turn.
	refl, ok := bounds[2].(model.TopsideReflection)
	if !ok {
		t.Fatalf("contact 2 is %T, want TopsideReflection", bounds[2])
	}
	if refl.DepthKm != 1000 || refl.InWave != model.WaveP || refl.OutWave != model.WaveP {
		t.Errorf("topside reflection = %+v", refl)
	}
	up, ok := bounds[3].(model.Transmission)
	if !ok {
		t.Fatalf("contact 3 is %T, want Transmission", bounds[3])
	}
	if up.DepthKm != 500 {
		t.Errorf("upward transmission at depth %v", up.DepthKm)
	}
	if _, ok := bounds[4].(model.ReceiverPoint); !ok {
		t.Errorf("contact 4 is %T, want ReceiverPoint", bounds[4])
	}
}

func TestPathBoundariesSurfaceBounce(t *testing.T) {
	vm := uniformModel()
	bounds := boundariesFor(t, vm, wPath())
	if len(bounds) != 4 {
		t.Fatalf("surface bounce path has %d contacts, want 4", len(bounds))
	}
	src, ok := bounds[0].(model.SourcePoint)
	if !ok {
		t.Fatalf("contact 0 is %T, want SourcePoint", bounds[0])
	}
	if src.DepthKm != 100 || src.NeighborDepthKm != 50 {
		t.Errorf("source = %+v", src)
	}
	srf, ok := bounds[1].(model.SurfaceReflection)
	if !ok {
		t.Fatalf("contact 1 is %T, want SurfaceReflection", bounds[1])
	}
	if srf.DepthKm != 0 {
		t.Errorf("surface reflection at depth %v", srf.DepthKm)
	}
	turn, ok := bounds[2].(model.TurningPoint)
	if !ok {
		t.Fatalf("contact 2 is %T, want TurningPoint", bounds[2])
	}
	if turn.DepthKm != 400 {
		t.Errorf("turning point at depth %v", turn.DepthKm)
	}
	rcv, ok := bounds[3].(model.ReceiverPoint)
	if !ok {
		t.Fatalf("contact 3 is %T, want ReceiverPoint", bounds[3])
	}
	if rcv.DepthKm != 0 || rcv.NeighborDepthKm != 200 {
		t.Errorf("receiver = %+v", rcv)
	}
}

func TestPathBoundariesUndersideBounce(t *testing.T) {
	vm := layeredModel()
	bounds := boundariesFor(t, vm, undersidePath())
	if len(bounds) != 3 {
		t.Fatalf("underside path has %d contacts, want 3", len(bounds))
	}
	refl, ok := bounds[1].(model.UndersideReflection)
	if !ok {
		t.Fatalf("contact 1 is %T, want UndersideReflection", bounds[1])
	}
	if refl.DepthKm != 1000 || refl.InWave != model.WaveP || refl.OutWave != model.WaveP {
		t.Errorf("underside reflection = %+v", refl)
	}
}

func TestPathBoundariesDiffracted(t *testing.T) {
	vm := layeredModel()
	bounds := boundariesFor(t, vm, diffractedPath())
	if len(bounds) != 7 {
		t.Fatalf("diffracted path has %d contacts, want 7", len(bounds))
	}
	wantKinds := []string{
		"SourcePoint", "Transmission", "DiffractionContact",
		"DiffractionContact", "DiffractionContact", "Transmission", "ReceiverPoint",
	}
	for i, b := range bounds {
		var kind string
		switch b.(type) {
		case model.SourcePoint:
			kind = "SourcePoint"
		case model.ReceiverPoint:
			kind = "ReceiverPoint"
		case model.Transmission:
			kind = "Transmission"
		case model.DiffractionContact:
			kind = "DiffractionContact"
		default:
			kind = "other"
		}
		if kind != wantKinds[i] {
			t.Errorf("contact %d is %T, want %s", i, b, wantKinds[i])
		}
	}
	for _, i := range []int{2, 3, 4} {
		if got := bounds[i].Point().DepthKm; got != 1000 {
			t.Errorf("diffraction contact %d at depth %v, want 1000", i, got)
		}
	}
}

func TestBoundaryCoefficientsTransmission(t *testing.T) {
	vm := layeredModel()
	ray := &model.RayPath{RayParam: 300}
	contact := model.Transmission{
		BoundaryPoint: model.BoundaryPoint{DepthKm: 500, DistRad: 0.3},
		AboveWave:     model.WaveP,
		BelowWave:     model.WaveP,
	}
	got, err := BoundaryCoefficients(vm, flatProfile(0.003), ray, []model.Boundary{contact})
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	want := model.Coefficients{0.28692857189238286, 0.16145717159489884, 0.024972277966871695}
	checkCoefficients(t, got, want, 1e-12)
}

func TestBoundaryCoefficientsUndersideReflection(t *testing.T) {
	vm := constModel(10, 6)
	ray := &model.RayPath{RayParam: 200}
	contact := model.UndersideReflection{
		BoundaryPoint: model.BoundaryPoint{DepthKm: 2891, DistRad: 1.1},
		InWave:        model.WaveP,
		OutWave:       model.WaveS,
	}
	got, err := BoundaryCoefficients(vm, flatProfile(0.003), ray, []model.Boundary{contact})
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	want := model.Coefficients{0.3173830266297132, -1.1611954255203032, -1.1407349631219872}
	checkCoefficients(t, got, want, 1e-12)
}

func TestBoundaryCoefficientsTopsideReflection(t *testing.T) {
	vm := constModel(8, 4.5)
	ray := &model.RayPath{RayParam: 300}
	contact := model.TopsideReflection{
		BoundaryPoint: model.BoundaryPoint{DepthKm: 500, DistRad: 0.7},
		InWave:        model.WaveP,
		OutWave:       model.WaveS,
	}
	got, err := BoundaryCoefficients(vm, flatProfile(0.003), ray, []model.Boundary{contact})
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	want := model.Coefficients{1.4641984238344572, 3.310369232007994, 1.3941427695814104}
	checkCoefficients(t, got, want, 1e-12)
}

func TestBoundaryCoefficientsSurfaceReflection(t *testing.T) {
	vm := constModel(8, 4.5)
	ray := &model.RayPath{RayParam: 250}
	contact := model.SurfaceReflection{
		BoundaryPoint: model.BoundaryPoint{DistRad: 0.9},
		InWave:        model.WaveP,
		OutWave:       model.WaveS,
	}
	got, err := BoundaryCoefficients(vm, flatProfile(0.003), ray, []model.Boundary{contact})
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	want := model.Coefficients{-0.34221712043911595, -3.6259255295457327, -2.28461992614131}
	checkCoefficients(t, got, want, 1e-12)
}

func TestBoundaryCoefficientsSkipsPassiveContacts(t *testing.T) {
	vm := uniformModel()
	ray := &model.RayPath{RayParam: 300}
	contacts := []model.Boundary{
		model.TurningPoint{BoundaryPoint: model.BoundaryPoint{DepthKm: 800, DistRad: 0.4}, Wave: model.WaveP},
		model.DiffractionContact{BoundaryPoint: model.BoundaryPoint{DepthKm: 2891, DistRad: 0.5}, Wave: model.WaveP},
	}
	got, err := BoundaryCoefficients(vm, flatProfile(0.003), ray, contacts)
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	if got != (model.Coefficients{}) {
		t.Errorf("passive contacts contributed %v, want zero", got)
	}
}

func TestBoundaryCoefficientsEvanescentSideIsSilent(t *testing.T) {
	// A ray parameter larger than the horizontal slowness on the slow
	// side leaves only the fast side's term.
	vm := layeredModel()
	ray := &model.RayPath{RayParam: 700}
	contact := model.Transmission{
		BoundaryPoint: model.BoundaryPoint{DepthKm: 500, DistRad: 0.3},
		AboveWave:     model.WaveP,
		BelowWave:     model.WaveP,
	}
	got, err := BoundaryCoefficients(vm, flatProfile(0.003), ray, []model.Boundary{contact})
	if err != nil {
		t.Fatalf("BoundaryCoefficients: %v", err)
	}
	// Below side: 5871/10 = 587.1 < 700, evanescent. Above side:
	// 5871/8 = 733.875 > 700 still propagates, so the jump is nonzero.
	if got[0] == 0 {
		t.Errorf("c[0] = 0, want nonzero from the above-side term")
	}
}
