package analysis

import (
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/centerline"
)

func TestSummarize(t *testing.T) {
	walls := []centerline.Wall{
		{Start: orb.Point{0, 0}, End: orb.Point{5000, 0}},
		{Start: orb.Point{0, 200}, End: orb.Point{5000, 200}},
	}
	lines := []centerline.Centerline{
		{Start: orb.Point{0, 100}, End: orb.Point{5000, 100}, Thickness: 200},
		{Start: orb.Point{0, 100}, End: orb.Point{0, 3100}, Thickness: 240},
	}

	s := Summarize(walls, lines)

	if s.WallCount != 2 || s.CenterlineCount != 2 {
		t.Errorf("counts failed: %+v", s)
	}
	if math.Abs(s.TotalLength-8000) > 1e-9 {
		t.Errorf("total length failed: expected 8000, got %v", s.TotalLength)
	}
	if math.Abs(s.MinLength-3000) > 1e-9 || math.Abs(s.MaxLength-5000) > 1e-9 {
		t.Errorf("min/max failed: %v / %v", s.MinLength, s.MaxLength)
	}
	if s.Horizontal != 1 || s.Vertical != 1 || s.Skewed != 0 {
		t.Errorf("direction breakdown failed: %+v", s)
	}
	if s.Thicknesses[200] != 1 || s.Thicknesses[240] != 1 {
		t.Errorf("thickness histogram failed: %v", s.Thicknesses)
	}
	// Both centerlines start at (0, 100): one junction
	if s.JunctionCount != 1 {
		t.Errorf("junction count failed: expected 1, got %d", s.JunctionCount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil)
	if s.CenterlineCount != 0 || s.MinLength != 0 || s.JunctionCount != 0 {
		t.Errorf("empty summary failed: %+v", s)
	}
}
