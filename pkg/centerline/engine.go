package centerline

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/geometry"
)

// Engine extracts wall centerlines from raw wall-face segments.
//
// An Engine carries only its configuration. Every call to Extract builds a
// fresh working state, so one instance may be reused across sequential calls;
// it must not be shared by concurrent calls.
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// Extract runs the full pipeline over one set of input segments and optional
// reference axes, and returns the resulting centerlines. The input values are
// copied; the caller's slices are never modified.
func (e *Engine) Extract(walls []Wall, axes []Axis) []Centerline {
	return e.ExtractStory("", walls, axes)
}

// ExtractStory is Extract with an opaque story tag attached to every
// resulting centerline.
func (e *Engine) ExtractStory(story string, walls []Wall, axes []Axis) []Centerline {
	r := newRun(e.cfg, story, walls, axes)

	r.normalizeAngles()
	r.buildBuckets()
	r.mergeCollinear()
	r.detectPairs()
	r.pairCenterlines()
	r.singleLines()
	r.recoverGaps()
	r.deoverlap()
	r.snapToAxes()
	r.autoExtend()
	r.breakAtAxes()
	r.extendToAxes()
	return r.cleanup()
}

// run is the per-call working state. It is built fresh for every extraction
// and discarded afterwards.
type run struct {
	cfg     Config
	story   string
	segs    []*segment
	buckets map[int][]int
	axes    []Axis
	lines   []*Centerline
}

func newRun(cfg Config, story string, walls []Wall, axes []Axis) *run {
	r := &run{cfg: cfg, story: story, axes: axes}

	r.segs = make([]*segment, 0, len(walls))
	for _, w := range walls {
		s := &segment{
			start:      w.Start,
			end:        w.End,
			thickness:  w.Thickness,
			wallType:   w.WallType,
			singleLine: w.SingleLine,
			active:     true,
			pair:       -1,
			mergedInto: -1,
		}
		if w.ID != "" {
			s.ids = []string{w.ID}
		}
		r.segs = append(r.segs, s)
	}
	return r
}

// normalizeAngles snaps every active segment to the nearest cardinal
// direction within the angle tolerance. The start point stays fixed and the
// end point is recomputed from the snapped angle and the original length.
func (r *run) normalizeAngles() {
	for _, s := range r.segs {
		if !s.active {
			continue
		}
		length := s.length()
		if length == 0 {
			continue
		}

		angle := s.angle()
		snapped := geometry.SnapToCardinal(angle, r.cfg.AngleTolerance)
		if snapped == angle {
			continue
		}

		rad := snapped * math.Pi / 180
		s.end = orb.Point{
			s.start[0] + length*math.Cos(rad),
			s.start[1] + length*math.Sin(rad),
		}
	}
}

// buildBuckets groups active segment indices by rounded integer degree,
// modulo 180, so pairwise stages only compare segments sharing a direction.
func (r *run) buildBuckets() {
	r.buckets = make(map[int][]int)
	for i, s := range r.segs {
		if !s.active || s.length() == 0 {
			continue
		}
		k := bucketKey(s.angle())
		r.buckets[k] = append(r.buckets[k], i)
	}
}

// emit appends a new active centerline and returns it
func (r *run) emit(start, end orb.Point, thickness float64, wallType string, ids []string) *Centerline {
	c := &Centerline{
		Start:     start,
		End:       end,
		Thickness: thickness,
		WallType:  wallType,
		Story:     r.story,
		active:    true,
	}
	c.addSources(ids)
	r.lines = append(r.lines, c)
	return c
}
