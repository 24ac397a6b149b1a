package observability

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EngineCollector bundles Prometheus metrics for the correction engine
// and provides a ready-to-use /metrics handler.
type EngineCollector struct {
	gatherer prometheus.Gatherer

	CoefficientRuns     *prometheus.CounterVec
	CoefficientDuration *prometheus.HistogramVec

	ProfileBuilds      prometheus.Counter
	ProfileCacheHits   prometheus.Counter
	ProfileCacheMisses prometheus.Counter

	Fallbacks   *prometheus.CounterVec
	TracerCalls *prometheus.CounterVec

	ModelLayers    prometheus.Gauge
	ProfileSamples prometheus.Gauge
}

// NewEngineCollector registers engine Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil.
func NewEngineCollector(reg prometheus.Registerer) (*EngineCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ellipcorr_coefficient_runs_total",
		Help: "Total coefficient computations, labeled by phase and outcome.",
	}, []string{"phase", "outcome"})
	runs, err := registerCounterVec(reg, runs, "ellipcorr_coefficient_runs_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ellipcorr_coefficient_duration_seconds",
		Help:    "Coefficient computation latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"phase"})
	durations, err = registerHistogramVec(reg, durations, "ellipcorr_coefficient_duration_seconds")
	if err != nil {
		return nil, err
	}

	builds, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ellipcorr_profile_builds_total",
		Help: "Total figure profile integrations.",
	}), "ellipcorr_profile_builds_total")
	if err != nil {
		return nil, err
	}
	hits, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ellipcorr_profile_cache_hits_total",
		Help: "Profile lookups served from the cache.",
	}), "ellipcorr_profile_cache_hits_total")
	if err != nil {
		return nil, err
	}
	misses, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ellipcorr_profile_cache_misses_total",
		Help: "Profile lookups that triggered an integration.",
	}), "ellipcorr_profile_cache_misses_total")
	if err != nil {
		return nil, err
	}

	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ellipcorr_fallbacks_total",
		Help: "Degenerate-geometry fallbacks taken, labeled by kind.",
	}, []string{"kind"})
	fallbacks, err = registerCounterVec(reg, fallbacks, "ellipcorr_fallbacks_total")
	if err != nil {
		return nil, err
	}

	tracerCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ellipcorr_tracer_calls_total",
		Help: "Ray tracer invocations, labeled by outcome.",
	}, []string{"outcome"})
	tracerCalls, err = registerCounterVec(reg, tracerCalls, "ellipcorr_tracer_calls_total")
	if err != nil {
		return nil, err
	}

	layers, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ellipcorr_model_layers",
		Help: "Layer count of the engine's velocity model.",
	}), "ellipcorr_model_layers")
	if err != nil {
		return nil, err
	}
	samples, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ellipcorr_profile_samples",
		Help: "Sample count of the most recently built figure profile.",
	}), "ellipcorr_profile_samples")
	if err != nil {
		return nil, err
	}

	return &EngineCollector{
		gatherer:            gatherer,
		CoefficientRuns:     runs,
		CoefficientDuration: durations,
		ProfileBuilds:       builds,
		ProfileCacheHits:    hits,
		ProfileCacheMisses:  misses,
		Fallbacks:           fallbacks,
		TracerCalls:         tracerCalls,
		ModelLayers:         layers,
		ProfileSamples:      samples,
	}, nil
}

// ObserveRun records one coefficient computation.
func (c *EngineCollector) ObserveRun(phase, outcome string, seconds float64) {
	if c == nil {
		return
	}
	if c.CoefficientRuns != nil {
		c.CoefficientRuns.WithLabelValues(phase, outcome).Inc()
	}
	if c.CoefficientDuration != nil {
		c.CoefficientDuration.WithLabelValues(phase).Observe(seconds)
	}
}

// ProfileBuild records one profile integration.
func (c *EngineCollector) ProfileBuild(samples int) {
	if c == nil {
		return
	}
	if c.ProfileBuilds != nil {
		c.ProfileBuilds.Inc()
	}
	if c.ProfileSamples != nil {
		c.ProfileSamples.Set(float64(samples))
	}
}

// ProfileLookup records whether a profile request hit the cache.
func (c *EngineCollector) ProfileLookup(hit bool) {
	if c == nil {
		return
	}
	if hit {
		if c.ProfileCacheHits != nil {
			c.ProfileCacheHits.Inc()
		}
		return
	}
	if c.ProfileCacheMisses != nil {
		c.ProfileCacheMisses.Inc()
	}
}

// Fallback records a degenerate-geometry fallback of the given kind.
func (c *EngineCollector) Fallback(kind string) {
	if c == nil || c.Fallbacks == nil {
		return
	}
	c.Fallbacks.WithLabelValues(kind).Inc()
}

// TracerCall records one ray tracer invocation.
func (c *EngineCollector) TracerCall(outcome string) {
	if c == nil || c.TracerCalls == nil {
		return
	}
	c.TracerCalls.WithLabelValues(outcome).Inc()
}

// SetModelLayers publishes the layer count of the active model.
func (c *EngineCollector) SetModelLayers(layers int) {
	if c == nil || c.ModelLayers == nil {
		return
	}
	c.ModelLayers.Set(float64(layers))
}

// Handler exposes a ready-to-use /metrics handler.
func (c *EngineCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
