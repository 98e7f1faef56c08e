package centerline

import (
	"math"

	"github.com/philipparndt/wallaxis/pkg/geometry"
)

const (
	// maxGapPasses bounds the gap-recovery stage; bridging one opening can
	// expose the next, so a few sweeps are needed for long wall runs.
	maxGapPasses = 5

	// maxDeoverlapPasses bounds the de-overlap stage
	maxDeoverlapPasses = 3

	// openingWidthSlack is the accepted relative deviation between a gap and
	// a cataloged opening width
	openingWidthSlack = 0.15

	// gapBucketWidth groups centerlines into 5-degree angle buckets for the
	// gap and overlap sweeps
	gapBucketWidth = 5
)

// recoverGaps reconnects collinear centerlines separated by a modeled
// opening. A gap qualifies when it is within 15% of a candidate bridge width,
// taken from the door and column catalogs plus the generic auto-join
// distance, or when it is no wider than the auto-join distance outright.
func (r *run) recoverGaps() {
	widths := append([]float64{}, r.cfg.DoorWidths...)
	widths = append(widths, r.cfg.ColumnWidths...)
	if r.cfg.AutoJoinDistance > 0 {
		widths = append(widths, r.cfg.AutoJoinDistance)
	}

	for pass := 0; pass < maxGapPasses; pass++ {
		if !r.gapPass(widths) {
			break
		}
	}
}

func (r *run) gapPass(widths []float64) bool {
	merged := false
	for _, bucket := range r.lineBuckets(gapBucketWidth) {
		for ai := 0; ai < len(bucket); ai++ {
			ci := r.lines[bucket[ai]]
			if !ci.active {
				continue
			}
			for bi := ai + 1; bi < len(bucket); bi++ {
				cj := r.lines[bucket[bi]]
				if !cj.active {
					continue
				}
				if !geometry.AreCollinear(ci.segment(), cj.segment(), r.cfg.AngleTolerance, r.cfg.DistanceTolerance) {
					continue
				}

				gap := geometry.GapDistance(ci.segment(), cj.segment())
				if gap <= 0 || !r.bridgeable(gap, widths) {
					continue
				}

				r.coalesce(ci, cj)
				merged = true
			}
		}
	}
	return merged
}

// bridgeable reports whether a gap matches a cataloged opening width or the
// generic auto-join distance
func (r *run) bridgeable(gap float64, widths []float64) bool {
	if gap <= r.cfg.AutoJoinDistance {
		return true
	}
	for _, w := range widths {
		if w > 0 && math.Abs(gap-w) <= openingWidthSlack*w {
			return true
		}
	}
	return false
}

// deoverlap coalesces collinear centerlines of compatible thickness whose
// projected intervals overlap. Overlaps appear when both the pair stage and
// the single-line fallback emitted part of the same wall.
func (r *run) deoverlap() {
	for pass := 0; pass < maxDeoverlapPasses; pass++ {
		if !r.deoverlapPass() {
			break
		}
	}
}

func (r *run) deoverlapPass() bool {
	merged := false
	for _, bucket := range r.lineBuckets(gapBucketWidth) {
		for ai := 0; ai < len(bucket); ai++ {
			ci := r.lines[bucket[ai]]
			if !ci.active {
				continue
			}
			for bi := ai + 1; bi < len(bucket); bi++ {
				cj := r.lines[bucket[bi]]
				if !cj.active {
					continue
				}
				if !geometry.AreCollinear(ci.segment(), cj.segment(), r.cfg.AngleTolerance, r.cfg.DistanceTolerance) {
					continue
				}
				if !compatibleThickness(ci.Thickness, cj.Thickness) {
					continue
				}
				if geometry.GapDistance(ci.segment(), cj.segment()) > 0 {
					continue
				}

				r.coalesce(ci, cj)
				merged = true
			}
		}
	}
	return merged
}

// compatibleThickness reports whether two thicknesses agree within 20%
func compatibleThickness(a, b float64) bool {
	return math.Abs(a-b) <= 0.2*math.Max(a, b)
}

// coalesce merges centerline b into a: the envelope replaces a's extent, the
// larger thickness wins, traceability ids are concatenated, and b is
// deactivated.
func (r *run) coalesce(a, b *Centerline) {
	env := geometry.MergeCollinear(a.segment(), b.segment())
	a.Start, a.End = env.Start, env.End

	if b.Thickness > a.Thickness {
		a.Thickness = b.Thickness
	}
	if a.WallType == "" {
		a.WallType = b.WallType
	}
	a.addSources(b.SourceIDs)
	b.active = false
}

// lineBuckets groups active centerline indices into angle buckets of the
// given width in degrees, modulo 180
func (r *run) lineBuckets(width int) map[int][]int {
	buckets := make(map[int][]int)
	for i, c := range r.lines {
		if !c.active || c.Length() == 0 {
			continue
		}
		k := bucketKey(c.segment().Angle()) / width
		buckets[k] = append(buckets[k], i)
	}
	return buckets
}
