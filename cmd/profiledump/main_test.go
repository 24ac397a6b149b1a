package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/signalsfoundry/ellipcorr/internal/logging"
)

func TestRunCSV(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "uniform.nd")
	nd := "0.0    10.0 5.0 5.5\n6371.0 10.0 5.0 5.5\n"
	if err := os.WriteFile(modelPath, []byte(nd), 0o644); err != nil {
		t.Fatalf("write model: %v", err)
	}

	cfg := Config{Model: modelPath, Format: "csv"}
	var buf bytes.Buffer
	if err := run(context.Background(), cfg, logging.Noop(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not CSV: %v", err)
	}
	if len(rows) < 3 {
		t.Fatalf("got %d rows, want a header and at least two samples", len(rows))
	}
	if got := rows[0][0]; got != "radius_km" {
		t.Errorf("header = %v, want radius_km first", rows[0])
	}

	first := mustFloat(t, rows[1][0])
	last := mustFloat(t, rows[len(rows)-1][0])
	if first != 0 || last != 6371 {
		t.Errorf("radius span = [%v, %v], want [0, 6371]", first, last)
	}
	prev := -1.0
	for _, row := range rows[1:] {
		r := mustFloat(t, row[0])
		eps := mustFloat(t, row[2])
		if r <= prev {
			t.Fatalf("radii not ascending at %v", r)
		}
		prev = r
		if eps <= 0 || eps > 0.01 {
			t.Errorf("epsilon at radius %v = %v, want in (0, 0.01]", r, eps)
		}
	}
}

func TestRunJSONPREM(t *testing.T) {
	cfg := Config{Model: "prem", Format: "json"}
	var buf bytes.Buffer
	if err := run(context.Background(), cfg, logging.Noop(), &buf); err != nil {
		t.Fatalf("run: %v", err)
	}

	var doc profileDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Model != "prem" {
		t.Errorf("model = %q, want %q", doc.Model, "prem")
	}
	if doc.LengthOfDayS != 86164.0905 {
		t.Errorf("length of day = %v, want 86164.0905", doc.LengthOfDayS)
	}
	if len(doc.Samples) != 325 {
		t.Fatalf("got %d samples, want 325", len(doc.Samples))
	}
	surface := doc.Samples[len(doc.Samples)-1]
	if surface.RadiusKm != 6371 {
		t.Errorf("surface radius = %v, want 6371", surface.RadiusKm)
	}
	if surface.Epsilon < 0.0030 || surface.Epsilon > 0.0036 {
		t.Errorf("surface epsilon = %v, want near 1/299", surface.Epsilon)
	}
}

func TestRunSlowRotationScalesEpsilon(t *testing.T) {
	base := Config{Model: "prem", Format: "json"}
	var bufA bytes.Buffer
	if err := run(context.Background(), base, logging.Noop(), &bufA); err != nil {
		t.Fatalf("run: %v", err)
	}
	slow := Config{Model: "prem", Format: "json", LengthOfDayS: 2 * 86164.0905}
	var bufB bytes.Buffer
	if err := run(context.Background(), slow, logging.Noop(), &bufB); err != nil {
		t.Fatalf("run: %v", err)
	}

	var a, b profileDoc
	if err := json.Unmarshal(bufA.Bytes(), &a); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal(bufB.Bytes(), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Flattening scales with the square of the rotation rate.
	ratio := b.Samples[len(b.Samples)-1].Epsilon / a.Samples[len(a.Samples)-1].Epsilon
	if ratio < 0.249 || ratio > 0.251 {
		t.Errorf("surface epsilon ratio at half rotation rate = %v, want 0.25", ratio)
	}
}

func TestRunBadFormat(t *testing.T) {
	cfg := Config{Model: "prem", Format: "xml"}
	if err := run(context.Background(), cfg, logging.Noop(), &bytes.Buffer{}); err == nil {
		t.Fatal("run succeeded with an unsupported format")
	}
}

func TestRunUnknownModel(t *testing.T) {
	cfg := Config{Model: "nope", Format: "csv"}
	if err := run(context.Background(), cfg, logging.Noop(), &bytes.Buffer{}); err == nil {
		t.Fatal("run succeeded with an unknown model")
	}
}

func mustFloat(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("ParseFloat(%q): %v", s, err)
	}
	return v
}
