// Command profiledump prints the ellipticity-of-figure profile of a
// velocity model, as integrated by the correction engine.
package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/signalsfoundry/ellipcorr/core"
	"github.com/signalsfoundry/ellipcorr/internal/logging"
	"github.com/signalsfoundry/ellipcorr/internal/observability"
	"github.com/signalsfoundry/ellipcorr/velmodel"
)

// Config carries the command's knobs.
type Config struct {
	Model        string
	LengthOfDayS float64
	MaxStepKm    float64
	DisableTaper bool
	Format       string // csv or json
}

func main() {
	modelName := flag.String("model", "prem", "registered model name, or path to a .nd model file")
	lod := flag.Float64("lod", 0, "rotation period in seconds; 0 means Earth's sidereal day")
	maxStep := flag.Float64("max-step", 0, "max integration step in km; 0 keeps layer boundaries")
	noTaper := flag.Bool("no-taper", false, "disable the moment-of-inertia taper near the centre")
	format := flag.String("format", "csv", "output format: csv or json")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "text", "log format: text or json")
	flag.Parse()

	log := logging.New(logging.Config{Level: *logLevel, Format: *logFormat})
	ctx := context.Background()

	shutdown, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdown, log)

	cfg := Config{
		Model:        *modelName,
		LengthOfDayS: *lod,
		MaxStepKm:    *maxStep,
		DisableTaper: *noTaper,
		Format:       *format,
	}
	if err := run(ctx, cfg, log, os.Stdout); err != nil {
		log.Error(ctx, "profiledump failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log logging.Logger, out io.Writer) error {
	vm, err := resolveModel(cfg.Model)
	if err != nil {
		return err
	}

	prof, err := core.BuildProfile(vm, core.ProfileOptions{
		LengthOfDayS: cfg.LengthOfDayS,
		MaxStepKm:    cfg.MaxStepKm,
		DisableTaper: cfg.DisableTaper,
	})
	if err != nil {
		return err
	}

	n := len(prof.RadiiKm)
	log.Info(ctx, "figure profile integrated",
		logging.String("model", vm.Name()),
		logging.Int("samples", n),
		logging.Float64("centre_epsilon", prof.Epsilon[0]),
		logging.Float64("surface_epsilon", prof.Epsilon[n-1]),
	)

	switch strings.ToLower(cfg.Format) {
	case "csv":
		return writeCSV(out, vm.RadiusKm(), prof)
	case "json":
		return writeJSON(out, vm.Name(), cfg, prof)
	default:
		return fmt.Errorf("unsupported output format: %s", cfg.Format)
	}
}

func writeCSV(out io.Writer, radiusKm float64, prof *core.FigureProfile) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"radius_km", "depth_km", "epsilon"}); err != nil {
		return err
	}
	for i, r := range prof.RadiiKm {
		rec := []string{
			strconv.FormatFloat(r, 'g', -1, 64),
			strconv.FormatFloat(radiusKm-r, 'g', -1, 64),
			strconv.FormatFloat(prof.Epsilon[i], 'g', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type profileDoc struct {
	Model        string          `json:"model"`
	LengthOfDayS float64         `json:"length_of_day_s"`
	Samples      []profileSample `json:"samples"`
}

type profileSample struct {
	RadiusKm float64 `json:"radius_km"`
	Epsilon  float64 `json:"epsilon"`
}

func writeJSON(out io.Writer, name string, cfg Config, prof *core.FigureProfile) error {
	lod := cfg.LengthOfDayS
	if lod == 0 {
		lod = core.EarthLOD
	}
	doc := profileDoc{
		Model:        name,
		LengthOfDayS: lod,
		Samples:      make([]profileSample, len(prof.RadiiKm)),
	}
	for i, r := range prof.RadiiKm {
		doc.Samples[i] = profileSample{RadiusKm: r, Epsilon: prof.Epsilon[i]}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
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
