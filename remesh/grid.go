// Package remesh drives clipping at the scale the rest of the module
// doesn't address on its own: a uniform spatial hash over many
// target-mesh cells (Grid, adapted from spatialgrid.go's SpatialGrid)
// and a parallel batch clipper (ClipBatch, adapted from pipeline.go's
// generic worker-pool helper) that clips every cell against a shared
// plane set concurrently — the clip/degenerate/moments/faces/simplex
// packages themselves stay single-threaded and operate on one
// poly(gon|hedron) at a time, per §5's resource model.
package remesh

import (
	"math"
	"sort"

	"github.com/polyclipper/polyclipper/bounds"
)

// CellKey identifies one cell of the hashed grid.
type CellKey struct {
	X, Y, Z int
}

// Grid is a uniform spatial hash of cell ids, bucketed by the grid
// cell(s) each one's AABB occupies — broad-phase structure for
// answering "which cells might a given query box touch"
// without scanning every cell.
type Grid struct {
	cellSize float64
	buckets  [][]int
	mask     int
}

// NewGrid creates a grid with the given cell size and at least
// numBuckets hash buckets (rounded up to a power of two).
func NewGrid(cellSize float64, numBuckets int) *Grid {
	numBuckets = nextPowerOfTwo(numBuckets)
	return &Grid{
		cellSize: cellSize,
		buckets:  make([][]int, numBuckets),
		mask:     numBuckets - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert places cellID into every hash bucket its box occupies.
func (g *Grid) Insert(cellID int, box bounds.Box3) {
	minKey := g.worldToCell(box.Min)
	maxKey := g.worldToCell(box.Max)
	for x := minKey.X; x <= maxKey.X; x++ {
		for y := minKey.Y; y <= maxKey.Y; y++ {
			for z := minKey.Z; z <= maxKey.Z; z++ {
				idx := g.hash(CellKey{x, y, z})
				g.buckets[idx] = append(g.buckets[idx], cellID)
			}
		}
	}
}

// Clear empties every bucket without releasing their backing arrays.
func (g *Grid) Clear() {
	for i := range g.buckets {
		g.buckets[i] = g.buckets[i][:0]
	}
}

// Query returns the (deduplicated, sorted) ids of every cell that
// might overlap box, by unioning the buckets box's own extent touches.
func (g *Grid) Query(box bounds.Box3) []int {
	minKey := g.worldToCell(box.Min)
	maxKey := g.worldToCell(box.Max)
	seen := make(map[int]bool)
	var out []int
	for x := minKey.X; x <= maxKey.X; x++ {
		for y := minKey.Y; y <= maxKey.Y; y++ {
			for z := minKey.Z; z <= maxKey.Z; z++ {
				idx := g.hash(CellKey{x, y, z})
				for _, id := range g.buckets[idx] {
					if !seen[id] {
						seen[id] = true
						out = append(out, id)
					}
				}
			}
		}
	}
	sort.Ints(out)
	return out
}

func (g *Grid) worldToCell(pos [3]float64) CellKey {
	return CellKey{
		X: int(math.Floor(pos[0] / g.cellSize)),
		Y: int(math.Floor(pos[1] / g.cellSize)),
		Z: int(math.Floor(pos[2] / g.cellSize)),
	}
}

func (g *Grid) hash(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & g.mask
}
