package core

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/signalsfoundry/ellipcorr/internal/logging"
	"github.com/signalsfoundry/ellipcorr/internal/observability"
	"github.com/signalsfoundry/ellipcorr/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/signalsfoundry/ellipcorr/core"

const (
	// nearCenterCutoffKm is how close to the planet's centre a ray may
	// bottom before direct integration of its path becomes unstable.
	nearCenterCutoffKm = 0.05

	// zeroDistanceEpsDeg replaces an exactly vertical take-off distance.
	// The closed-form integral is singular at zero distance but its limit
	// is finite and continuous.
	zeroDistanceEpsDeg = 1e-10

	// fallbackOffsetDeg spaces the auxiliary distances of the near-centre
	// fallback.
	fallbackOffsetDeg = 0.05
)

// EngineConfig assembles a correction Engine.
type EngineConfig struct {
	// Model supplies material properties and boundary structure.
	Model VelocityModel

	// Tracer produces ray paths for phase queries and for the
	// degenerate-geometry fallbacks. Optional: an engine without one
	// still handles pre-traced rays away from the singular geometries.
	Tracer RayTracer

	// Profile configures the figure integration, including the rotation
	// period the profile cache is keyed on.
	Profile ProfileOptions

	Logger    logging.Logger
	Collector *observability.EngineCollector
}

// Engine computes ellipticity travel-time corrections for ray paths
// through one velocity model. It memoizes the figure profile per rotation
// period and is safe for concurrent use.
type Engine struct {
	model   VelocityModel
	rays    RayTracer
	opts    ProfileOptions
	log     logging.Logger
	metrics *observability.EngineCollector
	tracer  trace.Tracer

	mu       sync.RWMutex
	profiles map[float64]*FigureProfile
}

// NewEngine validates the configuration and returns a ready engine.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("%w: engine needs a velocity model", ErrInvalidArgument)
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Noop()
	}
	e := &Engine{
		model:    cfg.Model,
		rays:     cfg.Tracer,
		opts:     cfg.Profile,
		log:      log,
		metrics:  cfg.Collector,
		tracer:   otel.Tracer(tracerName),
		profiles: make(map[float64]*FigureProfile),
	}
	if n := len(cfg.Model.LayerBoundaryDepths()); n > 1 {
		e.metrics.SetModelLayers(n - 1)
	}
	return e, nil
}

func (e *Engine) lengthOfDay() float64 {
	if e.opts.LengthOfDayS != 0 {
		return e.opts.LengthOfDayS
	}
	return EarthLOD
}

// Profile returns the figure profile for the engine's model and rotation
// period, integrating it on first use. Concurrent first callers may race
// to build the same profile; the first stored value wins and the others
// are discarded.
func (e *Engine) Profile(ctx context.Context) (*FigureProfile, error) {
	lod := e.lengthOfDay()

	e.mu.RLock()
	prof, ok := e.profiles[lod]
	e.mu.RUnlock()
	if ok {
		e.metrics.ProfileLookup(true)
		return prof, nil
	}
	e.metrics.ProfileLookup(false)

	ctx, span := e.tracer.Start(ctx, "Engine.BuildProfile", trace.WithAttributes(
		attribute.Float64("length_of_day_s", lod),
	))
	defer span.End()

	built, err := BuildProfile(e.model, e.opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	e.metrics.ProfileBuild(len(built.RadiiKm))
	e.log.Debug(ctx, "figure profile built",
		logging.Float64("length_of_day_s", lod),
		logging.Int("samples", len(built.RadiiKm)),
		logging.Float64("surface_epsilon", built.Epsilon[len(built.Epsilon)-1]),
	)

	e.mu.Lock()
	if existing, ok := e.profiles[lod]; ok {
		built = existing
	} else {
		e.profiles[lod] = built
	}
	e.mu.Unlock()
	return built, nil
}

// Coefficients computes the three ellipticity coefficients of an
// already-traced ray path, applying the degenerate-geometry fallbacks
// where the direct integral is unstable.
func (e *Engine) Coefficients(ctx context.Context, ray *model.RayPath) (model.Coefficients, error) {
	if ray == nil || len(ray.Points) < 2 {
		return model.Coefficients{}, fmt.Errorf("%w: ray path needs at least two points", ErrInvalidArgument)
	}

	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "Engine.Coefficients", trace.WithAttributes(
		attribute.String("phase", ray.Phase),
		attribute.Float64("distance_deg", ray.DistanceDeg),
		attribute.Float64("source_depth_km", ray.SourceDepthKm),
	))
	defer span.End()

	coeffs, err := e.coefficients(ctx, ray)
	e.metrics.ObserveRun(ray.Phase, runOutcome(err), time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		return model.Coefficients{}, err
	}
	return coeffs, nil
}

func (e *Engine) coefficients(ctx context.Context, ray *model.RayPath) (model.Coefficients, error) {
	if ray.PuristDistanceDeg == 0 {
		return e.verticalRayCoefficients(ctx, ray)
	}
	if e.model.RadiusKm()-ray.BottomingDepthKm() < nearCenterCutoffKm {
		return e.nearCenterCoefficients(ctx, ray)
	}

	prof, err := e.Profile(ctx)
	if err != nil {
		return model.Coefficients{}, err
	}
	segs, err := SplitRayPath(e.model, ray)
	if err != nil {
		return model.Coefficients{}, err
	}
	if ValidatePhaseName(ray.Phase) == nil {
		if err := CrossCheckWaves(e.model, ray.Phase, segs); err != nil {
			e.log.Warn(ctx, "phase letters disagree with kinematic wave classification",
				logging.String("phase", ray.Phase),
				logging.String("detail", err.Error()),
			)
		}
	}
	return segmentCoefficients(e.model, prof, ray, segs)
}

// verticalRayCoefficients handles an exactly vertical ray by re-tracing
// the same phase a negligible distance away, where the integral is
// regular again.
func (e *Engine) verticalRayCoefficients(ctx context.Context, ray *model.RayPath) (model.Coefficients, error) {
	e.metrics.Fallback("zero_distance")
	e.log.Debug(ctx, "vertical ray, re-tracing at offset distance",
		logging.String("phase", ray.Phase),
		logging.Float64("offset_deg", zeroDistanceEpsDeg),
	)

	repl, err := e.retrace(ctx, ray, zeroDistanceEpsDeg)
	if err != nil {
		return model.Coefficients{}, err
	}
	if repl.PuristDistanceDeg == 0 {
		return model.Coefficients{}, fmt.Errorf("%w: replacement ray for vertical %s is still vertical", ErrNoArrival, ray.Phase)
	}
	return e.coefficients(ctx, repl)
}

// nearCenterCoefficients interpolates coefficients from two auxiliary
// rays traced slightly short of the requested distance, stepping around
// the unstable geometry of a ray that bottoms within metres of the
// centre.
func (e *Engine) nearCenterCoefficients(ctx context.Context, ray *model.RayPath) (model.Coefficients, error) {
	e.metrics.Fallback("near_center")
	d1 := ray.DistanceDeg - fallbackOffsetDeg
	d2 := ray.DistanceDeg - 2*fallbackOffsetDeg
	e.log.Debug(ctx, "ray bottoms near the centre, interpolating from offset rays",
		logging.String("phase", ray.Phase),
		logging.Float64("distance_deg", ray.DistanceDeg),
		logging.Float64("aux_distance_1_deg", d1),
		logging.Float64("aux_distance_2_deg", d2),
	)

	aux1, err := e.retrace(ctx, ray, d1)
	if err != nil {
		return model.Coefficients{}, err
	}
	aux2, err := e.retrace(ctx, ray, d2)
	if err != nil {
		return model.Coefficients{}, err
	}
	c1, err := e.coefficients(ctx, aux1)
	if err != nil {
		return model.Coefficients{}, err
	}
	c2, err := e.coefficients(ctx, aux2)
	if err != nil {
		return model.Coefficients{}, err
	}

	t := (ray.DistanceDeg - d1) / (d2 - d1)
	var out model.Coefficients
	for m := range out {
		out[m] = c1[m] + t*(c2[m]-c1[m])
	}
	return out, nil
}

// retrace queries the tracer for the same phase and source depth at a
// replacement distance, picking the arrival whose ray parameter is
// closest to the original's. Nearby distances can carry several arrivals
// under one phase name, so first-returned is not good enough.
func (e *Engine) retrace(ctx context.Context, ray *model.RayPath, distanceDeg float64) (*model.RayPath, error) {
	if e.rays == nil {
		return nil, fmt.Errorf("%w: fallback for %s needs a ray tracer", ErrInvalidArgument, ray.Phase)
	}
	arrivals, err := e.trace(ctx, ray.Phase, distanceDeg, ray.SourceDepthKm)
	if err != nil {
		return nil, err
	}
	var best *model.RayPath
	for _, cand := range arrivals {
		if cand == nil || len(cand.Points) < 2 {
			continue
		}
		if best == nil || math.Abs(cand.RayParam-ray.RayParam) < math.Abs(best.RayParam-ray.RayParam) {
			best = cand
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: %s at %.4f deg, depth %.1f km", ErrNoArrival, ray.Phase, distanceDeg, ray.SourceDepthKm)
	}
	return best, nil
}

func (e *Engine) trace(ctx context.Context, phase string, distanceDeg, sourceDepthKm float64) ([]*model.RayPath, error) {
	arrivals, err := e.rays.Trace(ctx, phase, distanceDeg, sourceDepthKm)
	switch {
	case err != nil:
		e.metrics.TracerCall("error")
		return nil, fmt.Errorf("trace %s: %w", phase, err)
	case len(arrivals) == 0:
		e.metrics.TracerCall("empty")
	default:
		e.metrics.TracerCall("ok")
	}
	return arrivals, nil
}

// CoefficientsForPhase traces the named phase and computes coefficients
// for the arrival at the given index, in the order the tracer returned
// the arrivals. The matched ray path is returned alongside so callers
// can read its travel time.
func (e *Engine) CoefficientsForPhase(ctx context.Context, phase string, distanceDeg, sourceDepthKm float64, arrivalIndex int) (model.Coefficients, *model.RayPath, error) {
	if e.rays == nil {
		return model.Coefficients{}, nil, fmt.Errorf("%w: engine has no ray tracer", ErrInvalidArgument)
	}

	ctx, span := e.tracer.Start(ctx, "Engine.CoefficientsForPhase", trace.WithAttributes(
		attribute.String("phase", phase),
		attribute.Float64("distance_deg", distanceDeg),
		attribute.Float64("source_depth_km", sourceDepthKm),
		attribute.Int("arrival_index", arrivalIndex),
	))
	defer span.End()

	arrivals, err := e.trace(ctx, phase, distanceDeg, sourceDepthKm)
	if err != nil {
		span.RecordError(err)
		return model.Coefficients{}, nil, err
	}
	if len(arrivals) == 0 {
		err := fmt.Errorf("%w: %s at %.4f deg, depth %.1f km", ErrNoArrival, phase, distanceDeg, sourceDepthKm)
		span.RecordError(err)
		return model.Coefficients{}, nil, err
	}
	if arrivalIndex < 0 || arrivalIndex >= len(arrivals) {
		err := fmt.Errorf("%w: arrival %d of %s at %.4f deg, tracer returned %d", ErrNoArrival, arrivalIndex, phase, distanceDeg, len(arrivals))
		span.RecordError(err)
		return model.Coefficients{}, nil, err
	}

	ray := arrivals[arrivalIndex]
	coeffs, err := e.Coefficients(ctx, ray)
	if err != nil {
		span.RecordError(err)
		return model.Coefficients{}, nil, err
	}
	return coeffs, ray, nil
}

// BatchCoefficients computes coefficients for several rays concurrently,
// preserving input order. The first failure cancels the remainder.
func (e *Engine) BatchCoefficients(ctx context.Context, rays []*model.RayPath) ([]model.Coefficients, error) {
	out := make([]model.Coefficients, len(rays))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ray := range rays {
		g.Go(func() error {
			coeffs, err := e.Coefficients(ctx, ray)
			if err != nil {
				return fmt.Errorf("ray %d: %w", i, err)
			}
			out[i] = coeffs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RayCorrection evaluates the correction in seconds for one traced ray
// and the given source geometry.
func (e *Engine) RayCorrection(ctx context.Context, ray *model.RayPath, azimuthDeg, sourceLatDeg float64) (float64, error) {
	coeffs, err := e.Coefficients(ctx, ray)
	if err != nil {
		return 0, err
	}
	return Correction(coeffs, azimuthDeg, sourceLatDeg), nil
}

// PhaseCorrection traces the named phase and evaluates the correction in
// seconds for the arrival at the given index.
func (e *Engine) PhaseCorrection(ctx context.Context, phase string, distanceDeg, sourceDepthKm float64, arrivalIndex int, azimuthDeg, sourceLatDeg float64) (float64, error) {
	coeffs, _, err := e.CoefficientsForPhase(ctx, phase, distanceDeg, sourceDepthKm, arrivalIndex)
	if err != nil {
		return 0, err
	}
	return Correction(coeffs, azimuthDeg, sourceLatDeg), nil
}

func runOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoArrival):
		return "no_arrival"
	case errors.Is(err, ErrInvalidArgument):
		return "invalid"
	default:
		return "error"
	}
}
