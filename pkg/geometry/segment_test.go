package geometry

import (
	"math"
	"testing"
)

func TestSegmentLength(t *testing.T) {
	s := NewSegment(0, 0, 3, 4)

	if math.Abs(s.Length()-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5.0, got %v", s.Length())
	}
}

func TestSegmentAngle(t *testing.T) {
	cases := []struct {
		seg  Segment
		want float64
	}{
		{NewSegment(0, 0, 10, 0), 0},
		{NewSegment(0, 0, 0, 10), 90},
		{NewSegment(10, 10, 0, 10), 180},
		{NewSegment(0, 10, 0, 0), 270},
		{NewSegment(0, 0, 10, 10), 45},
	}

	for _, c := range cases {
		if math.Abs(c.seg.Angle()-c.want) > 1e-10 {
			t.Errorf("Angle failed for %v: expected %v, got %v", c.seg, c.want, c.seg.Angle())
		}
	}
}

func TestSegmentMidpoint(t *testing.T) {
	s := NewSegment(0, 0, 100, 200)
	mid := s.Midpoint()

	if mid[0] != 50 || mid[1] != 100 {
		t.Errorf("Midpoint failed: expected (50, 100), got %v", mid)
	}
}

func TestSegmentDirectionDegenerate(t *testing.T) {
	s := NewSegment(5, 5, 5, 5)
	dir := s.Direction()

	if dir[0] != 0 || dir[1] != 0 {
		t.Errorf("Direction of degenerate segment should be zero, got %v", dir)
	}
}

func TestAreCollinear(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)

	if !AreCollinear(a, NewSegment(150, 2, 250, 2), 5, 10) {
		t.Error("expected segments offset by 2 units to be collinear at tolerance 10")
	}
	if AreCollinear(a, NewSegment(150, 50, 250, 50), 5, 10) {
		t.Error("expected segments offset by 50 units not to be collinear at tolerance 10")
	}
	if AreCollinear(a, NewSegment(50, -50, 50, 50), 5, 10) {
		t.Error("expected perpendicular segments not to be collinear")
	}
}

func TestAreCollinearDegenerate(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	degenerate := NewSegment(50, 0, 50, 0)

	if AreCollinear(a, degenerate, 5, 10) || AreCollinear(degenerate, a, 5, 10) {
		t.Error("degenerate segments must never be collinear with anything")
	}
}

func TestOverlap(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(50, 5, 150, 5)

	intersects, length, ratio := Overlap(a, b)
	if !intersects {
		t.Fatal("expected overlap")
	}
	if math.Abs(length-50) > 1e-10 {
		t.Errorf("overlap length failed: expected 50, got %v", length)
	}
	if math.Abs(ratio-0.5) > 1e-10 {
		t.Errorf("overlap ratio failed: expected 0.5, got %v", ratio)
	}
}

func TestOverlapDisjoint(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(150, 0, 250, 0)

	intersects, _, _ := Overlap(a, b)
	if intersects {
		t.Error("expected no overlap for disjoint segments")
	}
}

func TestOverlapRatioUsesShorterSegment(t *testing.T) {
	a := NewSegment(0, 0, 1000, 0)
	b := NewSegment(200, 10, 400, 10)

	_, length, ratio := Overlap(a, b)
	if math.Abs(length-200) > 1e-10 {
		t.Errorf("overlap length failed: expected 200, got %v", length)
	}
	if math.Abs(ratio-1.0) > 1e-10 {
		t.Errorf("ratio should be relative to the shorter segment: expected 1.0, got %v", ratio)
	}
}

func TestGapDistance(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)

	gap := GapDistance(a, NewSegment(150, 0, 250, 0))
	if math.Abs(gap-50) > 1e-10 {
		t.Errorf("gap failed: expected 50, got %v", gap)
	}

	touching := GapDistance(a, NewSegment(100, 0, 200, 0))
	if math.Abs(touching) > 1e-10 {
		t.Errorf("touching segments should have gap 0, got %v", touching)
	}

	overlapping := GapDistance(a, NewSegment(50, 0, 150, 0))
	if overlapping >= 0 {
		t.Errorf("overlapping segments should have negative gap, got %v", overlapping)
	}

	if !math.IsInf(GapDistance(a, NewSegment(5, 5, 5, 5)), 1) {
		t.Error("gap to a degenerate segment should be +Inf")
	}
}

func TestParallelDistance(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(0, 200, 100, 200)

	if math.Abs(ParallelDistance(a, b)-200) > 1e-10 {
		t.Errorf("parallel distance failed: expected 200, got %v", ParallelDistance(a, b))
	}
}

func TestMergeCollinear(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(80, 0, 250, 0)

	merged := MergeCollinear(a, b)
	if merged.Start[0] != 0 || merged.End[0] != 250 {
		t.Errorf("envelope failed: expected 0..250, got %v..%v", merged.Start, merged.End)
	}
}

func TestMergeCollinearOppositeDirections(t *testing.T) {
	a := NewSegment(0, 0, 100, 0)
	b := NewSegment(250, 0, 80, 0)

	merged := MergeCollinear(a, b)
	if math.Abs(merged.Length()-250) > 1e-10 {
		t.Errorf("envelope length failed: expected 250, got %v", merged.Length())
	}
}
