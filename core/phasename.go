package core

import (
	"fmt"
	"strings"

	"github.com/signalsfoundry/ellipcorr/model"
)

// phaseWaves summarises which wave types a phase name can produce per
// region of the planet. Outer-core K legs are always compressional.
type phaseWaves struct {
	mantle    map[model.WaveType]bool
	innerCore map[model.WaveType]bool
}

// parsePhaseName walks the travel-time letters of a phase name: P and S
// mantle legs (lowercase when leaving the source upward), K in the outer
// core, I and J in the inner core, c and i for reflections off the core
// boundaries, and a diff marker for diffracted legs.
func parsePhaseName(phase string) (phaseWaves, error) {
	pw := phaseWaves{
		mantle:    map[model.WaveType]bool{},
		innerCore: map[model.WaveType]bool{},
	}
	if phase == "" {
		return pw, fmt.Errorf("%w: empty phase name", ErrInvalidArgument)
	}
	rest := phase
	for len(rest) > 0 {
		switch {
		case rest[0] == 'P' || rest[0] == 'p':
			pw.mantle[model.WaveP] = true
			rest = rest[1:]
		case rest[0] == 'S' || rest[0] == 's':
			pw.mantle[model.WaveS] = true
			rest = rest[1:]
		case rest[0] == 'K' || rest[0] == 'c' || rest[0] == 'i':
			rest = rest[1:]
		case rest[0] == 'I':
			pw.innerCore[model.WaveP] = true
			rest = rest[1:]
		case rest[0] == 'J':
			pw.innerCore[model.WaveS] = true
			rest = rest[1:]
		case strings.HasPrefix(rest, "diff"):
			rest = rest[len("diff"):]
		default:
			return pw, fmt.Errorf("%w: phase %q: unexpected %q", ErrInvalidArgument, phase, rest[0])
		}
	}
	return pw, nil
}

// ValidatePhaseName checks that phase is built from the travel-time
// letters this package understands.
func ValidatePhaseName(phase string) error {
	_, err := parsePhaseName(phase)
	return err
}

// CrossCheckWaves verifies kinematically classified segments against the
// phase name: each segment's wave type must be one the name can produce
// in the region the segment occupies. Diffracted segments are skipped.
// The check is advisory; the kinematic classification stays canonical.
func CrossCheckWaves(vm VelocityModel, phase string, segs []model.PathSegment) error {
	pw, err := parsePhaseName(phase)
	if err != nil {
		return err
	}
	cmb := vm.CMBDepthKm()
	icb := vm.ICBDepthKm()
	for i := range segs {
		seg := &segs[i]
		if seg.Diffracted {
			continue
		}
		pts := seg.Points
		mid := 0.5 * (pts[0].DepthKm + pts[len(pts)-1].DepthKm)
		region := "mantle"
		allowed := pw.mantle
		switch {
		case mid > icb:
			region = "inner core"
			allowed = pw.innerCore
		case mid > cmb:
			region = "outer core"
			allowed = map[model.WaveType]bool{model.WaveP: true}
		}
		if !allowed[seg.Wave] {
			return fmt.Errorf("phase %q cannot travel as %s in the %s (segment %d)", phase, seg.Wave, region, seg.Index)
		}
	}
	return nil
}
