package plan

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/centerline"
)

const samplePlan = `{
  "story": "L1",
  "walls": [
    {"id": "w1", "start": [0, 0], "end": [5000, 0], "thickness": 200, "type": "concrete"},
    {"start": [0, 200], "end": [5000, 200], "singleLine": true}
  ],
  "axes": [
    {"id": "A", "start": [0, -1000], "end": [0, 1000]}
  ]
}`

func writeTempPlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writeTempPlan(t, samplePlan))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if p.Story != "L1" {
		t.Errorf("story failed: expected L1, got %q", p.Story)
	}
	if len(p.Walls) != 2 || len(p.Axes) != 1 {
		t.Fatalf("expected 2 walls and 1 axis, got %d and %d", len(p.Walls), len(p.Axes))
	}

	walls := p.Segments()
	if walls[0].ID != "w1" || walls[0].Thickness != 200 || walls[0].WallType != "concrete" {
		t.Errorf("wall mapping failed: %+v", walls[0])
	}
	if walls[1].ID != "wall-1" {
		t.Errorf("expected generated id wall-1, got %q", walls[1].ID)
	}
	if !walls[1].SingleLine {
		t.Error("singleLine flag lost in mapping")
	}

	axes := p.ReferenceAxes()
	if axes[0].ID != "A" || axes[0].Start != (orb.Point{0, -1000}) {
		t.Errorf("axis mapping failed: %+v", axes[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load(writeTempPlan(t, "{not json")); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestResultEncode(t *testing.T) {
	lines := []centerline.Centerline{
		{
			Start:     orb.Point{0, 100},
			End:       orb.Point{5000, 100},
			Thickness: 200,
			WallType:  "concrete",
			SourceIDs: []string{"w1", "w2"},
		},
	}

	var buf bytes.Buffer
	if err := NewResult("L1", lines).Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if decoded.Story != "L1" || len(decoded.Centerlines) != 1 {
		t.Fatalf("round trip failed: %+v", decoded)
	}
	if decoded.Centerlines[0].Thickness != 200 || len(decoded.Centerlines[0].Sources) != 2 {
		t.Errorf("centerline fields lost: %+v", decoded.Centerlines[0])
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "wallThicknesses: [240, 115]\nangleTolerance: 3\nbreakAtAxes: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(cfg.WallThicknesses) != 2 || cfg.WallThicknesses[0] != 240 {
		t.Errorf("wallThicknesses failed: %v", cfg.WallThicknesses)
	}
	if cfg.AngleTolerance != 3 {
		t.Errorf("angleTolerance failed: %v", cfg.AngleTolerance)
	}
	if !cfg.BreakAtAxes {
		t.Error("breakAtAxes failed")
	}

	// Unset options keep their defaults
	def := centerline.DefaultConfig()
	if cfg.DistanceTolerance != def.DistanceTolerance {
		t.Errorf("default distanceTolerance lost: %v", cfg.DistanceTolerance)
	}
}
