// Package analysis computes summary statistics over extraction inputs and
// results for reporting in the CLI.
package analysis

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/centerline"
	"github.com/philipparndt/wallaxis/pkg/geometry"
	"github.com/philipparndt/wallaxis/pkg/spatial"
)

// junctionRadius is the endpoint distance (length units) at which two
// centerlines are counted as meeting in one junction
const junctionRadius = 25.0

// Summary contains measurements of one extraction run
type Summary struct {
	WallCount       int
	CenterlineCount int
	JunctionCount   int

	TotalLength float64
	MinLength   float64
	MaxLength   float64
	AvgLength   float64

	// Thicknesses counts centerlines per measured thickness, rounded to the
	// nearest unit
	Thicknesses map[int]int

	// Direction breakdown by snapped angle
	Horizontal int
	Vertical   int
	Skewed     int
}

// Summarize analyzes the inputs and outputs of one extraction run
func Summarize(walls []centerline.Wall, lines []centerline.Centerline) *Summary {
	s := &Summary{
		WallCount:       len(walls),
		CenterlineCount: len(lines),
		MinLength:       math.MaxFloat64,
		Thicknesses:     make(map[int]int),
	}
	if len(lines) == 0 {
		s.MinLength = 0
		return s
	}

	for _, c := range lines {
		length := c.Length()
		s.TotalLength += length
		s.MinLength = math.Min(s.MinLength, length)
		s.MaxLength = math.Max(s.MaxLength, length)
		s.Thicknesses[int(math.Round(c.Thickness))]++

		seg := geometry.Segment{Start: c.Start, End: c.End}
		switch {
		case geometry.IsParallel(seg.Angle(), 0, 1):
			s.Horizontal++
		case geometry.IsParallel(seg.Angle(), 90, 1):
			s.Vertical++
		default:
			s.Skewed++
		}
	}
	s.AvgLength = s.TotalLength / float64(len(lines))
	s.JunctionCount = countJunctions(lines)

	return s
}

// endpoint is one centerline end used for junction counting
type endpoint struct {
	line int
	p    orb.Point
}

// countJunctions counts the distinct points where endpoints of different
// centerlines meet. Endpoints are indexed in a uniform grid so each query
// only visits its own neighborhood.
func countJunctions(lines []centerline.Centerline) int {
	grid := spatial.NewGrid[endpoint](4 * junctionRadius)
	points := make([]endpoint, 0, 2*len(lines))

	for i, c := range lines {
		points = append(points, endpoint{i, c.Start}, endpoint{i, c.End})
	}
	for _, pt := range points {
		grid.InsertPoint(pt.p, pt)
	}

	junctions := 0
	counted := make(map[int]bool)
	for idx, pt := range points {
		if counted[idx] {
			continue
		}

		meets := false
		for _, other := range grid.QueryRadius(pt.p, junctionRadius) {
			if other.line != pt.line {
				meets = true
				break
			}
		}
		if !meets {
			continue
		}

		// Claim every endpoint in the neighborhood so the junction is
		// counted once.
		for jdx := idx; jdx < len(points); jdx++ {
			if math.Hypot(points[jdx].p[0]-pt.p[0], points[jdx].p[1]-pt.p[1]) <= junctionRadius {
				counted[jdx] = true
			}
		}
		junctions++
	}
	return junctions
}
