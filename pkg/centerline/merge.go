package centerline

import "github.com/philipparndt/wallaxis/pkg/geometry"

// maxMergePasses bounds the collinear-merge stage. Chained merges converge
// within a few passes on real plans; the bound guarantees termination.
const maxMergePasses = 5

// mergeCollinear coalesces collinear segments that overlap or nearly touch.
// Drawn wall faces are often split into several collinear pieces; merging
// them first keeps the pairing stage from matching partial faces.
func (r *run) mergeCollinear() {
	for pass := 0; pass < maxMergePasses; pass++ {
		if !r.mergePass() {
			break
		}
	}
}

// mergePass runs one merge sweep over every angle bucket and reports whether
// any segments were merged.
func (r *run) mergePass() bool {
	merged := false
	for _, bucket := range r.buckets {
		for ai := 0; ai < len(bucket); ai++ {
			i := bucket[ai]
			si := r.segs[i]
			if !si.active {
				continue
			}
			for bi := ai + 1; bi < len(bucket); bi++ {
				j := bucket[bi]
				sj := r.segs[j]
				if !sj.active {
					continue
				}
				if !r.canMerge(si, sj) {
					continue
				}

				r.absorb(si, sj, i)
				merged = true
			}
		}
	}
	return merged
}

// canMerge reports whether two segments are collinear and either overlap or
// are separated by no more than the distance tolerance.
func (r *run) canMerge(a, b *segment) bool {
	if !geometry.AreCollinear(a.geom(), b.geom(), r.cfg.AngleTolerance, r.cfg.DistanceTolerance) {
		return false
	}
	return geometry.GapDistance(a.geom(), b.geom()) <= r.cfg.DistanceTolerance
}

// absorb merges segment b into segment a (at index ai), enveloping the
// endpoints, keeping the larger thickness and its tag, and deactivating b.
func (r *run) absorb(a, b *segment, ai int) {
	env := geometry.MergeCollinear(a.geom(), b.geom())
	a.start, a.end = env.Start, env.End

	if b.thickness > a.thickness {
		a.thickness = b.thickness
		if b.wallType != "" {
			a.wallType = b.wallType
		}
	}
	if a.wallType == "" {
		a.wallType = b.wallType
	}
	a.singleLine = a.singleLine || b.singleLine
	a.ids = append(a.ids, b.ids...)

	b.active = false
	b.mergedInto = ai
}
