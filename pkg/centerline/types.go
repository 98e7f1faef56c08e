// Package centerline converts raw wall-face segments into idealized wall
// centerlines suitable for structural load mapping.
//
// The engine is a stateless, pure transformation: one call processes one set
// of input segments to completion. It classifies segments by direction,
// detects which pairs of offset segments form the two faces of one physical
// wall, computes a centerline per pair, bridges gaps left by door and column
// openings, and optionally snaps and extends the result against a set of
// structural reference axes.
package centerline

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/geometry"
)

// Wall is one raw input segment: a single drawn face of a wall.
type Wall struct {
	Start orb.Point
	End   orb.Point

	// Thickness is the nominal wall thickness, if known. Zero means unknown.
	Thickness float64

	// WallType is an optional material or type tag carried through to the
	// output, e.g. "concrete" or "masonry".
	WallType string

	// ID is an opaque traceability identifier, e.g. a source drawing handle.
	ID string

	// SingleLine marks a segment that represents a whole wall by itself
	// rather than one of two faces.
	SingleLine bool
}

// Axis is a structural reference line. Axes are read-only: the engine snaps,
// breaks, and extends centerlines against them but never modifies them.
type Axis struct {
	Start orb.Point
	End   orb.Point
	ID    string
}

// Centerline is one idealized wall axis produced by the engine.
type Centerline struct {
	Start orb.Point
	End   orb.Point

	// Thickness is the measured wall thickness, not the nominal one.
	Thickness float64

	// WallType is the inferred type tag, when any contributing segment
	// carried one.
	WallType string

	// Story is an opaque elevation tag passed through from the caller.
	Story string

	// SourceIDs lists the traceability identifiers of every input segment
	// that contributed to this centerline.
	SourceIDs []string

	active bool
}

// Length returns the centerline length
func (c *Centerline) Length() float64 {
	return c.segment().Length()
}

// Key returns a canonical identity key derived from the rounded endpoints and
// thickness. Two centerlines with the same key describe the same wall axis.
func (c *Centerline) Key() string {
	a := fmt.Sprintf("%.0f,%.0f", roundKey(c.Start[0]), roundKey(c.Start[1]))
	b := fmt.Sprintf("%.0f,%.0f", roundKey(c.End[0]), roundKey(c.End[1]))
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return fmt.Sprintf("%s|%s|%.0f", a, b, roundKey(c.Thickness))
}

// roundKey rounds a key coordinate, folding negative zero into zero so that
// values straddling zero by a rounding error cannot format differently.
func roundKey(v float64) float64 {
	r := math.Round(v)
	if r == 0 {
		return 0
	}
	return r
}

func (c *Centerline) segment() geometry.Segment {
	return geometry.Segment{Start: c.Start, End: c.End}
}

// addSources appends ids not already present, preserving order
func (c *Centerline) addSources(ids []string) {
	for _, id := range ids {
		found := false
		for _, have := range c.SourceIDs {
			if have == id {
				found = true
				break
			}
		}
		if !found {
			c.SourceIDs = append(c.SourceIDs, id)
		}
	}
}

// segment is the engine's mutable working copy of one input wall face.
// Relations to other segments are stored as indices into the working slice;
// -1 means none.
type segment struct {
	start orb.Point
	end   orb.Point

	thickness  float64 // nominal, from input
	measured   float64 // measured pair distance, set during pairing
	wallType   string
	ids        []string
	singleLine bool

	active     bool
	processed  bool
	pair       int
	mergedInto int
}

func (s *segment) geom() geometry.Segment {
	return geometry.Segment{Start: s.start, End: s.end}
}

func (s *segment) length() float64 {
	return s.geom().Length()
}

func (s *segment) angle() float64 {
	return s.geom().Angle()
}

// pairCandidate scores one potential wall-face partner during pairing
type pairCandidate struct {
	index int
	dist  float64
	ratio float64
	score float64
}

// sortThicknessesDesc returns a copy of the nominal thicknesses sorted
// largest first, since wide walls must claim their faces before narrow ones.
func sortThicknessesDesc(thicknesses []float64) []float64 {
	out := make([]float64, len(thicknesses))
	copy(out, thicknesses)
	sort.Sort(sort.Reverse(sort.Float64Slice(out)))
	return out
}

// bucketKey maps a direction angle (degrees) to its integer-degree bucket,
// modulo 180 so opposite directions share a bucket.
func bucketKey(angle float64) int {
	k := int(math.Round(angle)) % 180
	if k < 0 {
		k += 180
	}
	return k
}
