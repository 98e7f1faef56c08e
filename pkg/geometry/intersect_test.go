package geometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestDistPointToLine(t *testing.T) {
	s := NewSegment(0, 0, 100, 0)

	d := DistPointToLine(orb.Point{50, 30}, s)
	if math.Abs(d-30) > 1e-10 {
		t.Errorf("distance failed: expected 30, got %v", d)
	}

	// Beyond the endpoint the infinite line still applies
	d = DistPointToLine(orb.Point{500, 30}, s)
	if math.Abs(d-30) > 1e-10 {
		t.Errorf("distance beyond endpoint failed: expected 30, got %v", d)
	}
}

func TestDistPointToSegment(t *testing.T) {
	s := NewSegment(0, 0, 100, 0)

	d := DistPointToSegment(orb.Point{50, 30}, s)
	if math.Abs(d-30) > 1e-10 {
		t.Errorf("interior distance failed: expected 30, got %v", d)
	}

	// Beyond the endpoint the distance is to the endpoint itself
	d = DistPointToSegment(orb.Point{150, 40}, s)
	want := math.Hypot(50, 40)
	if math.Abs(d-want) > 1e-10 {
		t.Errorf("endpoint distance failed: expected %v, got %v", want, d)
	}
}

func TestProjectPointOnSegment(t *testing.T) {
	s := NewSegment(0, 0, 100, 0)

	tt, p := ProjectPointOnSegment(orb.Point{50, 20}, s)
	if math.Abs(tt-0.5) > 1e-10 {
		t.Errorf("projection parameter failed: expected 0.5, got %v", tt)
	}
	if math.Abs(p[0]-50) > 1e-10 || math.Abs(p[1]) > 1e-10 {
		t.Errorf("projected point failed: expected (50, 0), got %v", p)
	}

	// Projections may fall outside the bounded segment
	tt, _ = ProjectPointOnSegment(orb.Point{-50, 0}, s)
	if math.Abs(tt+0.5) > 1e-10 {
		t.Errorf("projection parameter failed: expected -0.5, got %v", tt)
	}
}

func TestLineIntersection(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(50, -10, 50, 10)

	p, ok := LineIntersection(a, b)
	if !ok {
		t.Fatal("expected an intersection")
	}
	if math.Abs(p[0]-50) > 1e-10 || math.Abs(p[1]) > 1e-10 {
		t.Errorf("intersection failed: expected (50, 0), got %v", p)
	}

	if _, ok := LineIntersection(a, NewSegment(0, 10, 100, 10)); ok {
		t.Error("parallel lines should not intersect")
	}
}

func TestSegmentIntersection(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(150, -10, 150, 10)

	// The supporting lines meet at (150, 0), 50 units beyond a's end
	if _, ok := SegmentIntersection(a, b, 10); ok {
		t.Error("intersection 50 units beyond the segment should be rejected at tolerance 10")
	}
	p, ok := SegmentIntersection(a, b, 60)
	if !ok {
		t.Fatal("intersection 50 units beyond the segment should be accepted at tolerance 60")
	}
	if math.Abs(p[0]-150) > 1e-10 || math.Abs(p[1]) > 1e-10 {
		t.Errorf("intersection failed: expected (150, 0), got %v", p)
	}
}
