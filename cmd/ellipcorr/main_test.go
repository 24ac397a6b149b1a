package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signalsfoundry/ellipcorr/core"
	"github.com/signalsfoundry/ellipcorr/internal/logging"
	"github.com/signalsfoundry/ellipcorr/velmodel"
)

const uniformND = `0.0    10.0 5.0 5.5
6371.0 10.0 5.0 5.5
`

// Two straight chords across a uniform planet at 60 degrees, one timed
// at the compressional speed and one at the shear speed.
const chordRays = `{
  "model": "uniform",
  "rays": [
    {
      "phase": "P",
      "ray_param_s_rad": 551.7447847510659,
      "source_depth_km": 0,
      "receiver_depth_km": 0,
      "distance_deg": 60,
      "purist_distance_deg": 60,
      "points": [
        [0.0, 0.0, 0.0],
        [658.9176668173304, 0.2617993877991494, 170.71043049786823],
        [853.5521524893411, 0.5235987755982988, 318.54999999999995],
        [658.9176668173304, 0.7853981633974483, 466.3895695021317],
        [0.0, 1.0471975511965976, 637.1]
      ]
    },
    {
      "phase": "S",
      "ray_param_s_rad": 1103.4895695021319,
      "source_depth_km": 0,
      "receiver_depth_km": 0,
      "distance_deg": 60,
      "purist_distance_deg": 60,
      "points": [
        [0.0, 0.0, 0.0],
        [658.9176668173304, 0.2617993877991494, 341.42086099573646],
        [853.5521524893411, 0.5235987755982988, 637.0999999999999],
        [658.9176668173304, 0.7853981633974483, 932.7791390042634],
        [0.0, 1.0471975511965976, 1274.2]
      ]
    }
  ]
}
`

func writeFixtures(t *testing.T) (modelPath, rayPath string) {
	t.Helper()
	dir := t.TempDir()
	modelPath = filepath.Join(dir, "uniform.nd")
	if err := os.WriteFile(modelPath, []byte(uniformND), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}
	rayPath = filepath.Join(dir, "rays.json")
	if err := os.WriteFile(rayPath, []byte(chordRays), 0o644); err != nil {
		t.Fatalf("write rays: %v", err)
	}
	return modelPath, rayPath
}

func TestRunSingleQueryJSON(t *testing.T) {
	modelPath, rayPath := writeFixtures(t)
	cfg := defaultConfig()
	cfg.Model = modelPath
	cfg.RayFile = rayPath
	cfg.Phase = "P"
	cfg.DistanceDeg = 60
	cfg.AzimuthDeg = 45
	cfg.SourceLatDeg = 30
	cfg.JSON = true

	var buf bytes.Buffer
	if err := run(context.Background(), cfg, logging.Noop(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	var results []result
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.Phase != "P" || r.DistanceDeg != 60 {
		t.Errorf("result header = %s at %v deg, want P at 60", r.Phase, r.DistanceDeg)
	}
	for m, c := range r.Coefficients {
		if math.IsNaN(c) || c == 0 {
			t.Errorf("coefficient %d = %v, want finite and nonzero", m, c)
		}
	}
	if r.CorrectionS == 0 {
		t.Error("correction is zero")
	}
	if r.TravelTimeS != 637.1 {
		t.Errorf("travel time = %v, want 637.1", r.TravelTimeS)
	}
	if got, want := r.CorrectedTimeS, r.TravelTimeS+r.CorrectionS; got != want {
		t.Errorf("corrected time = %v, want %v", got, want)
	}
}

func TestRunAllRaysText(t *testing.T) {
	modelPath, rayPath := writeFixtures(t)
	cfg := defaultConfig()
	cfg.Model = modelPath
	cfg.RayFile = rayPath
	cfg.All = true
	cfg.AzimuthDeg = 45
	cfg.SourceLatDeg = 30

	var buf bytes.Buffer
	if err := run(context.Background(), cfg, logging.Noop(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "P  dist=60.0000") {
		t.Errorf("output is missing the P row:\n%s", out)
	}
	if !strings.Contains(out, "S  dist=60.0000") {
		t.Errorf("output is missing the S row:\n%s", out)
	}
	if !strings.Contains(out, "correction=") {
		t.Errorf("output is missing corrections:\n%s", out)
	}
}

func TestRunFromCoords(t *testing.T) {
	modelPath, rayPath := writeFixtures(t)
	cfg := defaultConfig()
	cfg.Model = modelPath
	cfg.RayFile = rayPath
	cfg.Phase = "P"
	cfg.FromCoords = true
	cfg.EventLatDeg = 0
	cfg.EventLonDeg = 0
	cfg.StationLatDeg = 0
	cfg.StationLonDeg = 60
	cfg.JSON = true

	var buf bytes.Buffer
	if err := run(context.Background(), cfg, logging.Noop(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	var results []result
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if math.Abs(r.AzimuthDeg-90) > 1e-9 {
		t.Errorf("derived azimuth = %v, want 90", r.AzimuthDeg)
	}
	if r.SourceLatDeg != 0 {
		t.Errorf("derived source latitude = %v, want 0", r.SourceLatDeg)
	}
	if r.DistanceDeg != 60 {
		t.Errorf("matched ray distance = %v, want 60", r.DistanceDeg)
	}
}

func TestRunNoArrival(t *testing.T) {
	modelPath, rayPath := writeFixtures(t)
	cfg := defaultConfig()
	cfg.Model = modelPath
	cfg.RayFile = rayPath
	cfg.Phase = "ScS"
	cfg.DistanceDeg = 60

	var buf bytes.Buffer
	err := run(context.Background(), cfg, logging.Noop(), &buf)
	if !errors.Is(err, core.ErrNoArrival) {
		t.Fatalf("run error = %v, want ErrNoArrival", err)
	}
}

func TestRunNoRayFile(t *testing.T) {
	cfg := defaultConfig()
	if err := run(context.Background(), cfg, logging.Noop(), &bytes.Buffer{}); err == nil {
		t.Fatal("run succeeded without a ray file")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	doc := "model: iasp91\nphase: ScS\nall: true\nazimuth_deg: 12.5\nmetrics_addr: \":9101\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}
	if cfg.Model != "iasp91" || cfg.Phase != "ScS" || !cfg.All {
		t.Errorf("loaded config = %+v, want iasp91/ScS/all", cfg)
	}
	if cfg.AzimuthDeg != 12.5 {
		t.Errorf("AzimuthDeg = %v, want 12.5", cfg.AzimuthDeg)
	}
	if cfg.MetricsAddress != ":9101" {
		t.Errorf("MetricsAddress = %q, want :9101", cfg.MetricsAddress)
	}
	// Keys the file does not mention keep their defaults.
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log config = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}

	if _, err := loadConfigFile(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("loadConfigFile succeeded on a missing file")
	}
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("model: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfigFile(bad); err == nil {
		t.Error("loadConfigFile succeeded on malformed YAML")
	}
}

func TestResolveModel(t *testing.T) {
	m, err := resolveModel("prem")
	if err != nil {
		t.Fatalf("resolveModel(prem): %v", err)
	}
	if got := m.Name(); got != "prem" {
		t.Errorf("Name() = %q, want %q", got, "prem")
	}

	modelPath, _ := writeFixtures(t)
	m, err = resolveModel(modelPath)
	if err != nil {
		t.Fatalf("resolveModel(%s): %v", modelPath, err)
	}
	if got := m.Name(); got != "uniform" {
		t.Errorf("Name() = %q, want %q", got, "uniform")
	}

	if _, err := resolveModel("nope"); !errors.Is(err, velmodel.ErrUnknownModel) {
		t.Errorf("resolveModel(nope) error = %v, want ErrUnknownModel", err)
	}
}
