// Package polytope is the vertex/neighbor graph data model clipping,
// collapse, moments, and face extraction all operate on: an ordered
// collection of vertices, each carrying a position, its neighbor
// indices, a liveness/sidedness flag, an id scratch field, and the set
// of clip-plane ids that created it.
package polytope

import (
	"errors"
	"fmt"
	"strings"

	"github.com/polyclipper/polyclipper/clipset"
	"github.com/polyclipper/polyclipper/vector"
)

// Sentinel precondition errors returned by InitPolygon/InitPolyhedron.
// Behavior beyond detection is undefined per the core's error-handling
// design: these report a contract failure, they don't recover from one.
var (
	ErrLengthMismatch          = errors.New("polytope: positions and neighbors have different lengths")
	ErrNeighborIndexOutOfRange = errors.New("polytope: neighbor index out of range")
	ErrInvalid2DNeighborCount  = errors.New("polytope: a 2D neighbor list must have exactly two entries")
)

// Removed marks a logically-deleted vertex. Live vertices carry Comp = 1;
// clipping keeps its above/below classification in scratch arrays and
// does not write Comp.
const Removed int8 = -1

// Neighbors2D is the (prev, next) pair of neighbor indices a 2D vertex
// carries, interpreted as the incoming and outgoing edges along the
// polygon boundary.
type Neighbors2D struct {
	Prev, Next int
}

// Vertex2D is one vertex of a Polygon.
type Vertex2D struct {
	Position  vector.Vector2
	Neighbors Neighbors2D
	Comp      int8
	ID        int
	Clips     clipset.Set
}

// Polygon is an ordered collection of 2D vertices. Indices are stable
// within a single operation; neighbor links refer to current indices
// within the same Polygon.
type Polygon []Vertex2D

// InitPolygon builds a Polygon from parallel positions and neighbor
// lists. Each neighbor list must contain exactly two indices,
// interpreted as (prev, next). No topological validation beyond bounds
// checking is performed; the caller is responsible for providing a
// valid simple polygon. Every vertex starts live (Comp = 1) with no id
// and an empty clip set.
func InitPolygon(positions []vector.Vector2, neighbors [][]int) (Polygon, error) {
	if len(positions) != len(neighbors) {
		return nil, fmt.Errorf("%w: %d positions, %d neighbor lists", ErrLengthMismatch, len(positions), len(neighbors))
	}
	n := len(positions)
	poly := make(Polygon, n)
	for i := range positions {
		nb := neighbors[i]
		if len(nb) != 2 {
			return nil, fmt.Errorf("%w: vertex %d has %d entries", ErrInvalid2DNeighborCount, i, len(nb))
		}
		for _, j := range nb {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%w: vertex %d references %d", ErrNeighborIndexOutOfRange, i, j)
			}
		}
		poly[i] = Vertex2D{
			Position:  positions[i],
			Neighbors: Neighbors2D{Prev: nb[0], Next: nb[1]},
			Comp:      1,
			ID:        -1,
			Clips:     clipset.New(),
		}
	}
	return poly, nil
}

// Live reports whether vertex i has not been removed.
func (p Polygon) Live(i int) bool {
	return p[i].Comp != Removed
}

// Clear empties the polygon in place, representing the fully-clipped-away
// region.
func (p *Polygon) Clear() {
	*p = (*p)[:0]
}

// String returns a deterministic textual dump of the polygon's
// vertices, suitable for diffing in tests.
func (p Polygon) String() string {
	var b strings.Builder
	for i, v := range p {
		fmt.Fprintf(&b, "%d: pos=(%g, %g) prev=%d next=%d comp=%d id=%d clips=%v\n",
			i, v.Position[0], v.Position[1], v.Neighbors.Prev, v.Neighbors.Next, v.Comp, v.ID, sortedIDs(v.Clips))
	}
	return b.String()
}

// Vertex3D is one vertex of a Polyhedron. Neighbors enumerates every
// vertex connected by an edge, ordered so that cyclically adjacent pairs
// bound one incident face — this ordering is load-bearing for face
// extraction and must be preserved by any operation that rewrites it.
type Vertex3D struct {
	Position  vector.Vector3
	Neighbors []int
	Comp      int8
	ID        int
	Clips     clipset.Set
}

// Polyhedron is an ordered collection of 3D vertices.
type Polyhedron []Vertex3D

// InitPolyhedron builds a Polyhedron from parallel positions and
// neighbor lists. Each neighbor list must be cyclically ordered so that
// adjacent pairs encode face incidence (see Vertex3D). No topological
// validation beyond bounds checking is performed.
func InitPolyhedron(positions []vector.Vector3, neighbors [][]int) (Polyhedron, error) {
	if len(positions) != len(neighbors) {
		return nil, fmt.Errorf("%w: %d positions, %d neighbor lists", ErrLengthMismatch, len(positions), len(neighbors))
	}
	n := len(positions)
	poly := make(Polyhedron, n)
	for i := range positions {
		nb := neighbors[i]
		for _, j := range nb {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("%w: vertex %d references %d", ErrNeighborIndexOutOfRange, i, j)
			}
		}
		cp := make([]int, len(nb))
		copy(cp, nb)
		poly[i] = Vertex3D{
			Position:  positions[i],
			Neighbors: cp,
			Comp:      1,
			ID:        -1,
			Clips:     clipset.New(),
		}
	}
	return poly, nil
}

// Live reports whether vertex i has not been removed.
func (p Polyhedron) Live(i int) bool {
	return p[i].Comp != Removed
}

// Clear empties the polyhedron in place, representing the
// fully-clipped-away region.
func (p *Polyhedron) Clear() {
	*p = (*p)[:0]
}

// String returns a deterministic textual dump of the polyhedron's
// vertices, suitable for diffing in tests.
func (p Polyhedron) String() string {
	var b strings.Builder
	for i, v := range p {
		fmt.Fprintf(&b, "%d: pos=(%g, %g, %g) neighbors=%v comp=%d id=%d clips=%v\n",
			i, v.Position[0], v.Position[1], v.Position[2], v.Neighbors, v.Comp, v.ID, sortedIDs(v.Clips))
	}
	return b.String()
}

// sortedIDs returns s's ids sorted ascending, so String output is
// deterministic regardless of map iteration order.
func sortedIDs(s clipset.Set) []int {
	ids := s.Slice()
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}
