package core

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/signalsfoundry/ellipcorr/model"
)

type rayPathJSON struct {
	Phase             string       `json:"phase"`
	RayParam          float64      `json:"ray_param_s_rad"`
	SourceDepthKm     float64      `json:"source_depth_km"`
	ReceiverDepthKm   float64      `json:"receiver_depth_km"`
	DistanceDeg       float64      `json:"distance_deg"`
	PuristDistanceDeg float64      `json:"purist_distance_deg"`
	Points            [][3]float64 `json:"points"`
}

type rayFileJSON struct {
	Model string        `json:"model"`
	Rays  []rayPathJSON `json:"rays"`
}

// RayPathSet is a collection of pre-traced ray paths, usable through
// FileTracer wherever a live tracer is not available.
type RayPathSet struct {
	Model string
	Rays  []*model.RayPath
}

// LoadRayPaths reads a JSON ray path document from r. Each ray carries
// its phase, ray parameter in s/rad, source and receiver depths, the
// distance it was traced at and a points array of [depth_km, dist_rad,
// time_s] triples. Rays must keep depths non-negative and distances
// monotonically non-decreasing from the source; a missing purist
// distance falls back to the distance of the last sample.
func LoadRayPaths(r io.Reader) (*RayPathSet, error) {
	var doc rayFileJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ray file: %w", err)
	}
	set := &RayPathSet{Model: doc.Model}
	for i, rj := range doc.Rays {
		if len(rj.Points) < 2 {
			return nil, fmt.Errorf("%w: ray %d (%s) has %d samples", ErrInvalidArgument, i, rj.Phase, len(rj.Points))
		}
		rp := &model.RayPath{
			Phase:             rj.Phase,
			RayParam:          rj.RayParam,
			SourceDepthKm:     rj.SourceDepthKm,
			ReceiverDepthKm:   rj.ReceiverDepthKm,
			DistanceDeg:       rj.DistanceDeg,
			PuristDistanceDeg: rj.PuristDistanceDeg,
			Points:            make([]model.PathPoint, len(rj.Points)),
		}
		for j, p := range rj.Points {
			if p[0] < 0 {
				return nil, fmt.Errorf("%w: ray %d (%s) sample %d at depth %v km", ErrInvalidArgument, i, rj.Phase, j, p[0])
			}
			if j > 0 && p[1] < rj.Points[j-1][1] {
				return nil, fmt.Errorf("%w: ray %d (%s) distance decreases at sample %d", ErrInvalidArgument, i, rj.Phase, j)
			}
			rp.Points[j] = model.PathPoint{DepthKm: p[0], DistRad: p[1], TimeS: p[2]}
		}
		if rp.PuristDistanceDeg == 0 && rp.DistanceDeg != 0 {
			rp.PuristDistanceDeg = rp.Points[len(rp.Points)-1].DistRad * 180 / math.Pi
		}
		set.Rays = append(set.Rays, rp)
	}
	return set, nil
}

// FileTracer serves pre-traced paths as a RayTracer: a Trace call returns
// the stored rays of the requested phase whose traced distance and source
// depth match the request within tolerance.
type FileTracer struct {
	set        *RayPathSet
	distTolDeg float64
	depthTolKm float64
}

// NewFileTracer wraps set. Zero tolerances default to 1e-6 in each unit,
// tight enough that the near-centre auxiliary distances never match a
// stored direct ray.
func NewFileTracer(set *RayPathSet, distTolDeg, depthTolKm float64) *FileTracer {
	if distTolDeg == 0 {
		distTolDeg = 1e-6
	}
	if depthTolKm == 0 {
		depthTolKm = 1e-6
	}
	return &FileTracer{set: set, distTolDeg: distTolDeg, depthTolKm: depthTolKm}
}

// Trace implements RayTracer from the stored set.
func (t *FileTracer) Trace(_ context.Context, phase string, distanceDeg, sourceDepthKm float64) ([]*model.RayPath, error) {
	var out []*model.RayPath
	for _, rp := range t.set.Rays {
		if rp.Phase != phase {
			continue
		}
		if math.Abs(rp.DistanceDeg-distanceDeg) > t.distTolDeg {
			continue
		}
		if math.Abs(rp.SourceDepthKm-sourceDepthKm) > t.depthTolKm {
			continue
		}
		out = append(out, rp)
	}
	return out, nil
}
