package centerline

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/philipparndt/wallaxis/pkg/geometry"
)

// interiorLow and interiorHigh bound the projection parameters at which a
// centerline may be broken by a reference axis. Intersections close to an
// endpoint are corner joints, not interior crossings.
const (
	interiorLow  = 0.05
	interiorHigh = 0.95
)

// snapToAxes translates every centerline that runs parallel to a nearby
// reference axis onto that axis. The translation is perpendicular to the
// centerline's own direction; the nearest qualifying axis wins.
func (r *run) snapToAxes() {
	if len(r.axes) == 0 || r.cfg.AxisSnapDistance <= 0 {
		return
	}

	for _, c := range r.lines {
		if !c.active || c.Length() == 0 {
			continue
		}

		best := r.cfg.AxisSnapDistance
		var offset orb.Point
		found := false
		for _, ax := range r.axes {
			axSeg := geometry.Segment{Start: ax.Start, End: ax.End}
			if axSeg.Length() == 0 {
				continue
			}
			if !geometry.IsParallel(c.segment().Angle(), axSeg.Angle(), r.cfg.AngleTolerance) {
				continue
			}

			_, foot := geometry.ProjectPointOnSegment(c.Start, axSeg)
			delta := orb.Point{foot[0] - c.Start[0], foot[1] - c.Start[1]}
			dist := planar.Distance(c.Start, foot)
			if dist <= best {
				best, offset, found = dist, delta, true
			}
		}

		if found {
			c.Start = orb.Point{c.Start[0] + offset[0], c.Start[1] + offset[1]}
			c.End = orb.Point{c.End[0] + offset[0], c.End[1] + offset[1]}
		}
	}
}

// autoExtend moves centerline endpoints onto the supporting line of a nearly
// touching perpendicular centerline. Only endpoints already within the
// auto-join distance of the other line qualify, so no extension can run away.
func (r *run) autoExtend() {
	if !r.cfg.AutoExtend {
		return
	}
	tol := r.cfg.AutoJoinDistance

	for _, c := range r.lines {
		if !c.active || c.Length() == 0 {
			continue
		}
		for _, endpoint := range []*orb.Point{&c.Start, &c.End} {
			best := tol
			var target orb.Point
			found := false
			for _, o := range r.lines {
				if o == c || !o.active || o.Length() == 0 {
					continue
				}
				oseg := o.segment()
				if !geometry.IsPerpendicular(c.segment().Angle(), oseg.Angle(), r.cfg.AngleTolerance) {
					continue
				}
				if geometry.DistPointToLine(*endpoint, oseg) > tol {
					continue
				}

				p, ok := geometry.LineIntersection(c.segment(), oseg)
				if !ok {
					continue
				}
				dist := planar.Distance(*endpoint, p)
				if dist > 0 && dist <= best {
					best, target, found = dist, p, true
				}
			}
			if found {
				*endpoint = target
			}
		}
	}
}

// breakAtAxes splits centerlines at interior crossings with perpendicular
// reference axes. Each fragment inherits the parent's thickness, tag, and
// traceability ids; the parent is deactivated.
func (r *run) breakAtAxes() {
	if !r.cfg.BreakAtAxes || len(r.axes) == 0 {
		return
	}

	// Fragments are appended while iterating; the snapshot keeps them from
	// being revisited.
	parents := r.lines
	for _, c := range parents {
		if !c.active || c.Length() == 0 {
			continue
		}
		seg := c.segment()

		var cuts []float64
		for _, ax := range r.axes {
			axSeg := geometry.Segment{Start: ax.Start, End: ax.End}
			if axSeg.Length() == 0 {
				continue
			}
			if !geometry.IsPerpendicular(seg.Angle(), axSeg.Angle(), r.cfg.AngleTolerance) {
				continue
			}
			p, ok := geometry.LineIntersection(seg, axSeg)
			if !ok {
				continue
			}
			t, _ := geometry.ProjectPointOnSegment(p, seg)
			if t > interiorLow && t < interiorHigh {
				cuts = append(cuts, t)
			}
		}
		if len(cuts) == 0 {
			continue
		}

		sort.Float64s(cuts)
		cuts = append([]float64{0}, cuts...)
		cuts = append(cuts, 1)
		for k := 0; k+1 < len(cuts); k++ {
			r.emit(pointAt(seg, cuts[k]), pointAt(seg, cuts[k+1]), c.Thickness, c.WallType, c.SourceIDs)
		}
		c.active = false
	}
}

// extendToAxes stretches centerline endpoints onto perpendicular reference
// axes that lie just beyond them, up to the configured extension distance.
func (r *run) extendToAxes() {
	if !r.cfg.ExtendToAxes || len(r.axes) == 0 {
		return
	}

	for _, c := range r.lines {
		if !c.active || c.Length() == 0 {
			continue
		}
		for _, ax := range r.axes {
			axSeg := geometry.Segment{Start: ax.Start, End: ax.End}
			if axSeg.Length() == 0 {
				continue
			}
			seg := c.segment()
			if !geometry.IsPerpendicular(seg.Angle(), axSeg.Angle(), r.cfg.AngleTolerance) {
				continue
			}

			p, ok := geometry.LineIntersection(seg, axSeg)
			if !ok {
				continue
			}
			t, _ := geometry.ProjectPointOnSegment(p, seg)
			length := seg.Length()
			switch {
			case t < 0 && -t*length <= r.cfg.ExtendDistance:
				c.Start = p
			case t > 1 && (t-1)*length <= r.cfg.ExtendDistance:
				c.End = p
			}
		}
	}
}

// pointAt returns the point at projection parameter t along a segment
func pointAt(s geometry.Segment, t float64) orb.Point {
	return orb.Point{
		s.Start[0] + t*(s.End[0]-s.Start[0]),
		s.Start[1] + t*(s.End[1]-s.Start[1]),
	}
}
