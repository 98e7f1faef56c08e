// Package spatial provides a uniform grid index for accelerating proximity
// queries over large 2D datasets.
package spatial

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Grid is a uniform spatial hash over 2D points and bounding boxes.
// Cell coordinates are packed into a single 64-bit key, so the grid is
// unbounded in extent and only occupied cells consume memory.
type Grid[T any] struct {
	cellSize float64
	nextID   int
	points   map[int64][]pointEntry[T]
	boxes    map[int64][]boxEntry[T]
}

type pointEntry[T any] struct {
	point orb.Point
	value T
}

type boxEntry[T any] struct {
	id    int
	bound orb.Bound
	value T
}

// NewGrid creates a grid with the given cell size.
// The cell size should be on the order of the typical query radius.
func NewGrid[T any](cellSize float64) *Grid[T] {
	return &Grid[T]{
		cellSize: cellSize,
		points:   make(map[int64][]pointEntry[T]),
		boxes:    make(map[int64][]boxEntry[T]),
	}
}

// InsertPoint adds a value at the given point
func (g *Grid[T]) InsertPoint(p orb.Point, value T) {
	key := g.key(g.cell(p))
	g.points[key] = append(g.points[key], pointEntry[T]{point: p, value: value})
}

// QueryRadius returns the values of all points within radius of center.
// It visits the square neighborhood of cells covering the query circle and
// filters candidates by exact distance.
func (g *Grid[T]) QueryRadius(center orb.Point, radius float64) []T {
	minX, minY := g.cell(orb.Point{center[0] - radius, center[1] - radius})
	maxX, maxY := g.cell(orb.Point{center[0] + radius, center[1] + radius})

	var result []T
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			for _, e := range g.points[g.key(cx, cy)] {
				if planar.Distance(center, e.point) <= radius {
					result = append(result, e.value)
				}
			}
		}
	}
	return result
}

// InsertBound adds a value covering the given bounding box.
// The value is registered in every cell the box intersects.
func (g *Grid[T]) InsertBound(b orb.Bound, value T) {
	id := g.nextID
	g.nextID++

	entry := boxEntry[T]{id: id, bound: b, value: value}
	g.eachCell(b, func(key int64) {
		g.boxes[key] = append(g.boxes[key], entry)
	})
}

// QueryBound returns the values of all bounding boxes intersecting the query
// box. Each inserted value is returned at most once.
func (g *Grid[T]) QueryBound(b orb.Bound) []T {
	seen := make(map[int]struct{})
	var result []T
	g.eachCell(b, func(key int64) {
		for _, e := range g.boxes[key] {
			if _, ok := seen[e.id]; ok {
				continue
			}
			if e.bound.Intersects(b) {
				seen[e.id] = struct{}{}
				result = append(result, e.value)
			}
		}
	})
	return result
}

// eachCell invokes fn for every cell key covered by the bounding box
func (g *Grid[T]) eachCell(b orb.Bound, fn func(key int64)) {
	minX, minY := g.cell(b.Min)
	maxX, maxY := g.cell(b.Max)
	for cx := minX; cx <= maxX; cx++ {
		for cy := minY; cy <= maxY; cy++ {
			fn(g.key(cx, cy))
		}
	}
}

// cell returns the integer cell coordinates containing a point
func (g *Grid[T]) cell(p orb.Point) (int32, int32) {
	return int32(math.Floor(p[0] / g.cellSize)), int32(math.Floor(p[1] / g.cellSize))
}

// key packs two 32-bit cell coordinates into one 64-bit map key
func (g *Grid[T]) key(cx, cy int32) int64 {
	return int64(cx)<<32 | int64(uint32(cy))
}
