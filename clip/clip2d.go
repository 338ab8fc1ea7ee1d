// Package clip implements the clipping engine (§4.2): intersecting a
// polygon or polyhedron, in place, against a sequence of half-space
// planes. Each plane is applied independently in three phases —
// classify, introduce intersection vertices, prune — grounded on
// epa/manifold.go's clipPolygonAgainstPlane (2D Sutherland-Hodgman) and
// epa/polytope.go's boundary-edge tracing (3D cap construction).
package clip

import (
	"github.com/polyclipper/polyclipper/plane"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

// ClipPolygon intersects poly in place with the positive half-space of
// every plane, applied in order. An empty result (poly fully outside
// some plane) short-circuits the remaining planes.
func ClipPolygon(poly *polytope.Polygon, planes []plane.Plane2D) {
	for _, pl := range planes {
		clipPolygonByPlane(poly, pl)
		if len(*poly) == 0 {
			return
		}
	}
}

// clipPolygonByPlane applies a single plane. Ties resolve above-side
// (d >= 0 survives), so whenever two boundary-adjacent vertices
// disagree in sign, d(above) >= 0 > d(below) strictly and the
// interpolation parameter below is always well-defined in [0, 1] — no
// separate near-parallel guard is needed.
func clipPolygonByPlane(poly *polytope.Polygon, pl plane.Plane2D) {
	p := *poly
	n := len(p)
	if n == 0 {
		return
	}

	d := make([]float64, n)
	above := make([]bool, n)
	anyAbove, anyBelow := false, false
	for i := 0; i < n; i++ {
		d[i] = pl.SignedDistance(p[i].Position)
		if d[i] >= 0 {
			above[i] = true
			anyAbove = true
		} else {
			anyBelow = true
		}
	}
	if !anyBelow {
		return
	}
	if !anyAbove {
		poly.Clear()
		return
	}

	// Virtual id space: 0..n-1 address the original vertices; n, n+1,
	// ... address intersection vertices created below, in creation
	// order. nextVirtual/prevVirtual hold the rewritten links for
	// original vertices; new vertices carry their own in place.
	nextVirtual := make([]int, n)
	prevVirtual := make([]int, n)
	for i := 0; i < n; i++ {
		nextVirtual[i] = p[i].Neighbors.Next
		prevVirtual[i] = p[i].Neighbors.Prev
	}

	var newVerts []polytope.Vertex2D
	setNext := func(from, to int) {
		if from < n {
			nextVirtual[from] = to
		} else {
			newVerts[from-n].Neighbors.Next = to
		}
	}
	setPrev := func(from, to int) {
		if from < n {
			prevVirtual[from] = to
		} else {
			newVerts[from-n].Neighbors.Prev = to
		}
	}

	visited := make([]bool, n)
	for start := 0; start < n; start++ {
		if visited[start] || !above[start] {
			continue
		}
		// Rotate the walk to begin at an above vertex so that any
		// below-run is opened and closed within one linear pass —
		// no run can straddle the cycle's seam.
		var cycle []int
		cur := start
		for !visited[cur] {
			visited[cur] = true
			cycle = append(cycle, cur)
			cur = p[cur].Neighbors.Next
		}
		m := len(cycle)
		pending := -1 // virtual id of the enter-vertex awaiting its exit partner
		for idx := 0; idx < m; idx++ {
			i := cycle[idx]
			j := cycle[(idx+1)%m]
			if above[i] == above[j] {
				continue
			}
			t := d[i] / (d[i] - d[j])
			pos := vector.Lerp2(p[i].Position, p[j].Position, t)
			clips := p[i].Clips.Intersect(p[j].Clips)
			if pl.ID != plane.Unlabeled {
				clips.Add(pl.ID)
			}
			nv := polytope.Vertex2D{Position: pos, Comp: 1, ID: -1, Clips: clips}
			newVerts = append(newVerts, nv)
			vid := n + len(newVerts) - 1

			if above[i] {
				// Entering the below run: i anchors Prev.
				setPrev(vid, i)
				setNext(i, vid)
				pending = vid
			} else {
				// Exiting the below run: j anchors Next.
				setNext(vid, j)
				setPrev(j, vid)
				if pending != -1 {
					setNext(pending, vid)
					setPrev(vid, pending)
					pending = -1
				}
			}
		}
	}

	// Also visit below-only components: fully clipped away, nothing to
	// mark, but they must count as visited so they're excluded below.
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		cur := start
		for !visited[cur] {
			visited[cur] = true
			cur = p[cur].Neighbors.Next
		}
	}

	oldToFinal := make([]int, n)
	finalCount := 0
	for i := 0; i < n; i++ {
		if above[i] {
			oldToFinal[i] = finalCount
			finalCount++
		} else {
			oldToFinal[i] = -1
		}
	}
	newBase := finalCount
	finalCount += len(newVerts)

	resolve := func(vid int) int {
		if vid < n {
			return oldToFinal[vid]
		}
		return newBase + (vid - n)
	}

	result := make(polytope.Polygon, finalCount)
	for i := 0; i < n; i++ {
		if !above[i] {
			continue
		}
		result[oldToFinal[i]] = polytope.Vertex2D{
			Position: p[i].Position,
			Neighbors: polytope.Neighbors2D{
				Prev: resolve(prevVirtual[i]),
				Next: resolve(nextVirtual[i]),
			},
			Comp:  1,
			ID:    p[i].ID,
			Clips: p[i].Clips,
		}
	}
	for k, nv := range newVerts {
		result[newBase+k] = polytope.Vertex2D{
			Position: nv.Position,
			Neighbors: polytope.Neighbors2D{
				Prev: resolve(nv.Neighbors.Prev),
				Next: resolve(nv.Neighbors.Next),
			},
			Comp:  1,
			ID:    -1,
			Clips: nv.Clips,
		}
	}
	*poly = result
}
