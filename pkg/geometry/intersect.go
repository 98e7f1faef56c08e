package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// DistPointToLine returns the perpendicular distance from a point to the
// infinite line through a segment. Returns +Inf for a degenerate segment.
func DistPointToLine(p orb.Point, s Segment) float64 {
	length := s.Length()
	if length == 0 {
		return math.Inf(1)
	}
	return math.Abs(cross(sub(s.End, s.Start), sub(p, s.Start))) / length
}

// DistPointToSegment returns the distance from a point to the nearest point
// on a bounded segment
func DistPointToSegment(p orb.Point, s Segment) float64 {
	if s.Length() == 0 {
		return planar.Distance(p, s.Start)
	}

	t, _ := ProjectPointOnSegment(p, s)
	t = math.Max(0, math.Min(1, t))
	nearest := orb.Point{
		s.Start[0] + t*(s.End[0]-s.Start[0]),
		s.Start[1] + t*(s.End[1]-s.Start[1]),
	}
	return planar.Distance(p, nearest)
}

// ProjectPointOnSegment projects a point onto the infinite line through a
// segment. It returns the projection parameter t (0 at the start point, 1 at
// the end point, unclamped) and the projected point.
func ProjectPointOnSegment(p orb.Point, s Segment) (float64, orb.Point) {
	d := sub(s.End, s.Start)
	lenSq := dot(d, d)
	if lenSq == 0 {
		return 0, s.Start
	}

	t := dot(sub(p, s.Start), d) / lenSq
	return t, orb.Point{s.Start[0] + t*d[0], s.Start[1] + t*d[1]}
}

// LineIntersection returns the intersection point of the infinite lines
// through two segments. The second result is false when the lines are
// parallel or either segment is degenerate.
func LineIntersection(a, b Segment) (orb.Point, bool) {
	d1 := sub(a.End, a.Start)
	d2 := sub(b.End, b.Start)

	denom := cross(d1, d2)
	if math.Abs(denom) < 1e-12 {
		return orb.Point{}, false
	}

	t := cross(sub(b.Start, a.Start), d2) / denom
	return orb.Point{a.Start[0] + t*d1[0], a.Start[1] + t*d1[1]}, true
}

// SegmentIntersection returns the intersection point of two bounded segments.
// The intersection may lie up to tol length units beyond either segment's
// endpoints; the second result is false when there is no such intersection.
func SegmentIntersection(a, b Segment, tol float64) (orb.Point, bool) {
	p, ok := LineIntersection(a, b)
	if !ok {
		return orb.Point{}, false
	}

	if !withinSegment(p, a, tol) || !withinSegment(p, b, tol) {
		return orb.Point{}, false
	}
	return p, true
}

// withinSegment reports whether a point on a segment's supporting line lies
// within the bounded segment, extended by tol length units at both ends.
func withinSegment(p orb.Point, s Segment, tol float64) bool {
	length := s.Length()
	if length == 0 {
		return false
	}
	t, _ := ProjectPointOnSegment(p, s)
	return t*length >= -tol && t*length <= length+tol
}
