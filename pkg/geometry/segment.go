package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Segment represents a bounded 2D line segment
type Segment struct {
	Start orb.Point
	End   orb.Point
}

// NewSegment creates a segment from endpoint coordinates
func NewSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{
		Start: orb.Point{x1, y1},
		End:   orb.Point{x2, y2},
	}
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return planar.Distance(s.Start, s.End)
}

// Angle returns the segment direction in degrees, normalized to [0, 360)
func (s Segment) Angle() float64 {
	a := math.Atan2(s.End[1]-s.Start[1], s.End[0]-s.Start[0]) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// Midpoint returns the point halfway between the endpoints
func (s Segment) Midpoint() orb.Point {
	return orb.Point{(s.Start[0] + s.End[0]) / 2, (s.Start[1] + s.End[1]) / 2}
}

// Direction returns the unit direction vector of the segment.
// The zero vector is returned for a degenerate (zero-length) segment.
func (s Segment) Direction() orb.Point {
	length := s.Length()
	if length == 0 {
		return orb.Point{}
	}
	return orb.Point{(s.End[0] - s.Start[0]) / length, (s.End[1] - s.Start[1]) / length}
}

// Bound returns the axis-aligned bounding box of the segment
func (s Segment) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{math.Min(s.Start[0], s.End[0]), math.Min(s.Start[1], s.End[1])},
		Max: orb.Point{math.Max(s.Start[0], s.End[0]), math.Max(s.Start[1], s.End[1])},
	}
}

// AreCollinear reports whether two segments lie on the same infinite line,
// within an angle tolerance (degrees) and a perpendicular distance tolerance.
// Degenerate segments are never collinear with anything.
func AreCollinear(a, b Segment, angleTol, distTol float64) bool {
	if a.Length() == 0 || b.Length() == 0 {
		return false
	}
	if !IsParallel(a.Angle(), b.Angle(), angleTol) {
		return false
	}
	return ParallelDistance(a, b) <= distTol
}

// Overlap projects both segments onto the direction of the first and reports
// whether the projected intervals intersect, the overlap length, and the
// overlap ratio relative to the shorter segment.
func Overlap(a, b Segment) (intersects bool, length float64, ratio float64) {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return false, 0, 0
	}

	lo, hi := projectInterval(a, b)
	overlap := math.Min(la, hi) - math.Max(0, lo)
	if overlap <= 0 {
		return false, 0, 0
	}

	return true, overlap, overlap / math.Min(la, lb)
}

// GapDistance returns the distance between the nearer endpoints of two
// near-collinear segments, measured along the direction of the first.
// The result is zero or negative when the segments touch or overlap,
// and +Inf when either segment is degenerate.
func GapDistance(a, b Segment) float64 {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return math.Inf(1)
	}

	lo, hi := projectInterval(a, b)
	return math.Max(0, lo) - math.Min(la, hi)
}

// projectInterval projects the endpoints of b onto the direction of a,
// relative to a's start point, and returns the resulting interval sorted.
func projectInterval(a, b Segment) (lo, hi float64) {
	dir := a.Direction()
	lo = dot(sub(b.Start, a.Start), dir)
	hi = dot(sub(b.End, a.Start), dir)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// ParallelDistance returns the perpendicular distance between the supporting
// lines of two (near-)parallel segments. The midpoint of the second segment
// is measured against the infinite line through the first.
func ParallelDistance(a, b Segment) float64 {
	if a.Length() == 0 || b.Length() == 0 {
		return math.Inf(1)
	}
	return DistPointToLine(b.Midpoint(), a)
}

// MergeCollinear returns the envelope of two collinear segments: the segment
// spanning the outermost two of the four endpoints along the shared direction.
func MergeCollinear(a, b Segment) Segment {
	dir := a.Direction()
	points := []orb.Point{a.Start, a.End, b.Start, b.End}

	minT, maxT := math.Inf(1), math.Inf(-1)
	var minPt, maxPt orb.Point
	for _, p := range points {
		t := dot(sub(p, a.Start), dir)
		if t < minT {
			minT, minPt = t, p
		}
		if t > maxT {
			maxT, maxPt = t, p
		}
	}

	return Segment{Start: minPt, End: maxPt}
}

func sub(a, b orb.Point) orb.Point {
	return orb.Point{a[0] - b[0], a[1] - b[1]}
}

func dot(a, b orb.Point) float64 {
	return a[0]*b[0] + a[1]*b[1]
}

func cross(a, b orb.Point) float64 {
	return a[0]*b[1] - a[1]*b[0]
}
