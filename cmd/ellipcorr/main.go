// Command ellipcorr computes ellipticity travel-time corrections for
// seismic phases from a velocity model and a file of pre-traced ray
// paths.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/signalsfoundry/ellipcorr/core"
	"github.com/signalsfoundry/ellipcorr/internal/logging"
	"github.com/signalsfoundry/ellipcorr/internal/observability"
	"github.com/signalsfoundry/ellipcorr/model"
	"github.com/signalsfoundry/ellipcorr/velmodel"
	"gopkg.in/yaml.v3"
)

// Config carries every knob of the command. Values from a YAML config
// file are overridden by flags set on the command line.
type Config struct {
	Model   string `yaml:"model"`
	RayFile string `yaml:"ray_file"`

	Phase         string  `yaml:"phase"`
	DistanceDeg   float64 `yaml:"distance_deg"`
	SourceDepthKm float64 `yaml:"source_depth_km"`
	Arrival       int     `yaml:"arrival"`
	All           bool    `yaml:"all"`

	AzimuthDeg   float64 `yaml:"azimuth_deg"`
	SourceLatDeg float64 `yaml:"source_lat_deg"`

	// FromCoords derives distance, azimuth and geocentric source latitude
	// from event and station coordinates instead of taking them directly.
	FromCoords    bool    `yaml:"from_coords"`
	EventLatDeg   float64 `yaml:"event_lat_deg"`
	EventLonDeg   float64 `yaml:"event_lon_deg"`
	StationLatDeg float64 `yaml:"station_lat_deg"`
	StationLonDeg float64 `yaml:"station_lon_deg"`

	LengthOfDayS float64 `yaml:"length_of_day_s"`
	MaxStepKm    float64 `yaml:"max_step_km"`

	DistTolDeg float64 `yaml:"dist_tol_deg"`
	DepthTolKm float64 `yaml:"depth_tol_km"`

	JSON           bool   `yaml:"json"`
	MetricsAddress string `yaml:"metrics_addr"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

func defaultConfig() Config {
	return Config{
		Model:     "prem",
		Phase:     "P",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

func loadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file; flags set on the command line win")
	modelName := flag.String("model", "prem", "registered model name, or path to a .nd model file")
	rayFile := flag.String("rays", "", "JSON file of pre-traced ray paths")
	phase := flag.String("phase", "P", "seismic phase name")
	distance := flag.Float64("distance", 0, "epicentral distance in degrees")
	depth := flag.Float64("depth", 0, "source depth in km")
	arrival := flag.Int("arrival", 0, "arrival index among same-phase arrivals")
	all := flag.Bool("all", false, "correct every ray in the file instead of one query")
	azimuth := flag.Float64("azimuth", 0, "source-to-receiver azimuth in degrees")
	sourceLat := flag.Float64("source-lat", 0, "geocentric source latitude in degrees")
	fromCoords := flag.Bool("from-coords", false, "derive distance, azimuth and source latitude from event/station coordinates")
	eventLat := flag.Float64("event-lat", 0, "geographic event latitude in degrees")
	eventLon := flag.Float64("event-lon", 0, "event longitude in degrees")
	stationLat := flag.Float64("station-lat", 0, "geographic station latitude in degrees")
	stationLon := flag.Float64("station-lon", 0, "station longitude in degrees")
	lod := flag.Float64("lod", 0, "rotation period in seconds; 0 means Earth's sidereal day")
	maxStep := flag.Float64("max-step", 0, "max figure integration step in km; 0 keeps layer boundaries")
	distTol := flag.Float64("dist-tol", 0, "ray file distance match tolerance in degrees; 0 means 1e-6")
	depthTol := flag.Float64("depth-tol", 0, "ray file depth match tolerance in km; 0 means 1e-6")
	asJSON := flag.Bool("json", false, "emit results as JSON")
	metricsAddr := flag.String("metrics-addr", "", "HTTP address for Prometheus /metrics; empty disables")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfigFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags set on the command line win over config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			cfg.Model = *modelName
		case "rays":
			cfg.RayFile = *rayFile
		case "phase":
			cfg.Phase = *phase
		case "distance":
			cfg.DistanceDeg = *distance
		case "depth":
			cfg.SourceDepthKm = *depth
		case "arrival":
			cfg.Arrival = *arrival
		case "all":
			cfg.All = *all
		case "azimuth":
			cfg.AzimuthDeg = *azimuth
		case "source-lat":
			cfg.SourceLatDeg = *sourceLat
		case "from-coords":
			cfg.FromCoords = *fromCoords
		case "event-lat":
			cfg.EventLatDeg = *eventLat
		case "event-lon":
			cfg.EventLonDeg = *eventLon
		case "station-lat":
			cfg.StationLatDeg = *stationLat
		case "station-lon":
			cfg.StationLonDeg = *stationLon
		case "lod":
			cfg.LengthOfDayS = *lod
		case "max-step":
			cfg.MaxStepKm = *maxStep
		case "dist-tol":
			cfg.DistTolDeg = *distTol
		case "depth-tol":
			cfg.DepthTolKm = *depthTol
		case "json":
			cfg.JSON = *asJSON
		case "metrics-addr":
			cfg.MetricsAddress = *metricsAddr
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		}
	})

	log := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		log.Error(ctx, "ellipcorr failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log logging.Logger, out io.Writer) error {
	if cfg.RayFile == "" {
		return errors.New("no ray path file configured")
	}

	vm, err := resolveModel(cfg.Model)
	if err != nil {
		return err
	}

	f, err := os.Open(cfg.RayFile)
	if err != nil {
		return fmt.Errorf("open ray file: %w", err)
	}
	set, err := core.LoadRayPaths(f)
	f.Close()
	if err != nil {
		return err
	}
	if set.Model != "" && set.Model != vm.Name() {
		log.Warn(ctx, "ray file was traced on a different model",
			logging.String("ray_file_model", set.Model),
			logging.String("model", vm.Name()),
		)
	}

	collector, err := observability.NewEngineCollector(nil)
	if err != nil {
		return fmt.Errorf("initialise metrics collector: %w", err)
	}
	metricsSrv := serveMetrics(cfg.MetricsAddress, collector, log)
	defer func() {
		if metricsSrv == nil {
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(shutdownCtx)
	}()

	engine, err := core.NewEngine(core.EngineConfig{
		Model:  vm,
		Tracer: core.NewFileTracer(set, cfg.DistTolDeg, cfg.DepthTolKm),
		Profile: core.ProfileOptions{
			LengthOfDayS: cfg.LengthOfDayS,
			MaxStepKm:    cfg.MaxStepKm,
		},
		Logger:    log,
		Collector: collector,
	})
	if err != nil {
		return err
	}

	distance, azimuth, sourceLat := cfg.DistanceDeg, cfg.AzimuthDeg, cfg.SourceLatDeg
	if cfg.FromCoords {
		distance = core.EpicentralDistanceDeg(cfg.EventLatDeg, cfg.EventLonDeg, cfg.StationLatDeg, cfg.StationLonDeg)
		azimuth = core.AzimuthDeg(cfg.EventLatDeg, cfg.EventLonDeg, cfg.StationLatDeg, cfg.StationLonDeg)
		sourceLat = core.GeocentricLatitudeDeg(cfg.EventLatDeg)
		log.Info(ctx, "derived geometry from coordinates",
			logging.Float64("distance_deg", distance),
			logging.Float64("azimuth_deg", azimuth),
			logging.Float64("source_lat_deg", sourceLat),
		)
	}

	if cfg.All {
		return correctAll(ctx, engine, set, azimuth, sourceLat, cfg.JSON, out)
	}

	coeffs, ray, err := engine.CoefficientsForPhase(ctx, cfg.Phase, distance, cfg.SourceDepthKm, cfg.Arrival)
	if err != nil {
		return err
	}
	res := buildResult(ray, cfg.Arrival, coeffs, azimuth, sourceLat)
	return emit(out, []result{res}, cfg.JSON)
}

// correctAll runs every ray in the file through the engine concurrently
// and reports them in file order.
func correctAll(ctx context.Context, engine *core.Engine, set *core.RayPathSet, azimuthDeg, sourceLatDeg float64, asJSON bool, out io.Writer) error {
	coeffs, err := engine.BatchCoefficients(ctx, set.Rays)
	if err != nil {
		return err
	}
	results := make([]result, len(set.Rays))
	for i, ray := range set.Rays {
		results[i] = buildResult(ray, i, coeffs[i], azimuthDeg, sourceLatDeg)
	}
	return emit(out, results, asJSON)
}

type result struct {
	Phase          string             `json:"phase"`
	DistanceDeg    float64            `json:"distance_deg"`
	SourceDepthKm  float64            `json:"source_depth_km"`
	Arrival        int                `json:"arrival"`
	AzimuthDeg     float64            `json:"azimuth_deg"`
	SourceLatDeg   float64            `json:"source_lat_deg"`
	Coefficients   model.Coefficients `json:"coefficients"`
	CorrectionS    float64            `json:"correction_s"`
	TravelTimeS    float64            `json:"travel_time_s"`
	CorrectedTimeS float64            `json:"corrected_time_s"`
}

func buildResult(ray *model.RayPath, arrival int, coeffs model.Coefficients, azimuthDeg, sourceLatDeg float64) result {
	correction := core.Correction(coeffs, azimuthDeg, sourceLatDeg)
	travelTime := ray.Points[len(ray.Points)-1].TimeS
	return result{
		Phase:          ray.Phase,
		DistanceDeg:    ray.DistanceDeg,
		SourceDepthKm:  ray.SourceDepthKm,
		Arrival:        arrival,
		AzimuthDeg:     azimuthDeg,
		SourceLatDeg:   sourceLatDeg,
		Coefficients:   coeffs,
		CorrectionS:    correction,
		TravelTimeS:    travelTime,
		CorrectedTimeS: travelTime + correction,
	}
}

func emit(out io.Writer, results []result, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s  dist=%.4f deg  depth=%.1f km  arrival=%d\n",
			r.Phase, r.DistanceDeg, r.SourceDepthKm, r.Arrival)
		fmt.Fprintf(out, "  coefficients: [%.6f, %.6f, %.6f]\n",
			r.Coefficients[0], r.Coefficients[1], r.Coefficients[2])
		fmt.Fprintf(out, "  azimuth=%.2f deg  source_lat=%.2f deg  correction=%+.4f s\n",
			r.AzimuthDeg, r.SourceLatDeg, r.CorrectionS)
		fmt.Fprintf(out, "  time=%.3f s  corrected=%.3f s\n",
			r.TravelTimeS, r.CorrectedTimeS)
	}
	return nil
}

// resolveModel maps a name to a registered model, or parses a .nd model
// file when the name looks like a path to one.
func resolveModel(name string) (*velmodel.LayeredModel, error) {
	if strings.HasSuffix(name, ".nd") {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open model file: %w", err)
		}
		defer f.Close()
		base := strings.TrimSuffix(filepath.Base(name), ".nd")
		return velmodel.ParseND(base, f)
	}
	return velmodel.Default().Get(name)
}

func serveMetrics(addr string, collector *observability.EngineCollector, log logging.Logger) *http.Server {
	if addr == "" || collector == nil {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Warn(context.Background(), "metrics server exited", logging.String("error", err.Error()))
		}
	}()

	log.Info(context.Background(), "serving Prometheus metrics", logging.String("addr", addr))
	return srv
}
