package centerline

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/philipparndt/wallaxis/pkg/geometry"
)

// detectPairs matches wall faces into pairs, one nominal thickness at a time,
// largest first. A wide wall must claim its faces before a narrow nominal
// thickness gets a chance to mis-pair them; once a segment is paired it is
// excluded from all further attempts.
func (r *run) detectPairs() {
	for _, nominal := range sortThicknessesDesc(r.cfg.WallThicknesses) {
		if nominal <= 0 {
			continue
		}
		for _, bucket := range r.buckets {
			for _, i := range bucket {
				si := r.segs[i]
				if !si.active || si.pair >= 0 {
					continue
				}

				best := r.bestPartner(bucket, i, nominal)
				if best == nil {
					continue
				}

				sj := r.segs[best.index]
				si.pair, sj.pair = best.index, i
				si.measured, sj.measured = best.dist, best.dist
			}
		}
	}
}

// bestPartner finds the lowest-scoring unpaired partner for segment i at the
// given nominal thickness, or nil when no candidate qualifies. A partner must
// be parallel, at a perpendicular distance within 20% of the nominal
// thickness, and overlapping by at least half the shorter face. On equal
// scores the lowest input index wins, keeping results independent of map
// iteration order.
func (r *run) bestPartner(bucket []int, i int, nominal float64) *pairCandidate {
	si := r.segs[i]

	var best *pairCandidate
	for _, j := range bucket {
		if j == i {
			continue
		}
		sj := r.segs[j]
		if !sj.active || sj.pair >= 0 {
			continue
		}
		if !geometry.IsParallel(si.angle(), sj.angle(), r.cfg.AngleTolerance) {
			continue
		}

		dist := geometry.ParallelDistance(si.geom(), sj.geom())
		if dist < 0.8*nominal || dist > 1.2*nominal {
			continue
		}

		ok, _, ratio := geometry.Overlap(si.geom(), sj.geom())
		if !ok || ratio < 0.5 {
			continue
		}

		score := math.Abs(dist-nominal) + (1-ratio)*nominal
		if best == nil || score < best.score {
			best = &pairCandidate{index: j, dist: dist, ratio: ratio, score: score}
		}
	}
	return best
}

// pairCenterlines emits one centerline per detected pair. The longer face's
// direction is the reference axis, the midpoint between the two faces'
// midpoints is the origin, and the centerline spans the union of all four
// projected endpoints. Spanning the union rather than the intersection favors
// full wall coverage over conservative trimming.
func (r *run) pairCenterlines() {
	for i, si := range r.segs {
		j := si.pair
		if j < 0 || j < i || si.processed {
			continue
		}
		sj := r.segs[j]

		ref := si
		if sj.length() > si.length() {
			ref = sj
		}
		dir := ref.geom().Direction()

		mi, mj := si.geom().Midpoint(), sj.geom().Midpoint()
		origin := orb.Point{(mi[0] + mj[0]) / 2, (mi[1] + mj[1]) / 2}

		minT, maxT := math.Inf(1), math.Inf(-1)
		for _, p := range []orb.Point{si.start, si.end, sj.start, sj.end} {
			t := (p[0]-origin[0])*dir[0] + (p[1]-origin[1])*dir[1]
			minT = math.Min(minT, t)
			maxT = math.Max(maxT, t)
		}

		start := orb.Point{origin[0] + minT*dir[0], origin[1] + minT*dir[1]}
		end := orb.Point{origin[0] + maxT*dir[0], origin[1] + maxT*dir[1]}

		wallType := si.wallType
		if wallType == "" {
			wallType = sj.wallType
		}
		ids := append(append([]string{}, si.ids...), sj.ids...)

		r.emit(start, end, si.measured, wallType, ids)
		si.processed, sj.processed = true, true
	}
}

// singleLines emits centerlines for the segments pairing could not resolve:
// faces explicitly drawn as single-line walls and faces carrying a nominal
// thickness of their own.
func (r *run) singleLines() {
	for _, s := range r.segs {
		if !s.active || s.processed || s.pair >= 0 || s.length() == 0 {
			continue
		}
		if !s.singleLine && s.thickness == 0 {
			continue
		}

		thickness := s.thickness
		if thickness == 0 {
			thickness = r.cfg.DefaultThickness
		}
		r.emit(s.start, s.end, thickness, s.wallType, s.ids)
		s.processed = true
	}
}
