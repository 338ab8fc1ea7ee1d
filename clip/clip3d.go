package clip

import (
	"github.com/polyclipper/polyclipper/plane"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

// ClipPolyhedron intersects poly in place with the positive half-space
// of every plane, applied in order.
func ClipPolyhedron(poly *polytope.Polyhedron, planes []plane.Plane3D) {
	for _, pl := range planes {
		clipPolyhedronByPlane(poly, pl)
		if len(*poly) == 0 {
			return
		}
	}
}

// edgeKey canonicalizes an undirected edge for the crossing-edge map.
func edgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

// capExit walks forward from the known transition edge (aboveV, belowV)
// of one of the two faces sharing that edge, through consecutive below
// vertices, until the face's boundary returns to the above region.
// Returns the (below, above) endpoints of that return edge.
func capExit(p polytope.Polyhedron, above []bool, aboveV, belowV int) (exitBelow, exitAbove int) {
	from, to := aboveV, belowV
	for {
		next := p.FaceTraceNext(from, to)
		from, to = to, next
		if above[to] {
			return from, to
		}
	}
}

// capEntry walks backward from the known transition edge, in the
// direction of the OTHER face sharing it, through consecutive below
// vertices preceding belowV, until that face's boundary last left the
// above region. Returns the (above, below) endpoints of that edge.
func capEntry(p polytope.Polyhedron, above []bool, belowV, aboveV int) (entryAbove, entryBelow int) {
	x, y := belowV, aboveV
	for {
		prev := p.FaceTracePrev(x, y)
		if above[prev] {
			return prev, x
		}
		y, x = x, prev
	}
}

// clipPolyhedronByPlane applies a single plane to a polyhedron.
//
// Every crossing edge (one above endpoint, one below) yields exactly
// one intersection vertex. That vertex's own neighbor list is built as
// [v2, aboveEndpoint, v3], where v2/v3 are the intersection vertices
// found by walking each of the two faces sharing the crossing edge —
// capExit for the face traced forward from (above, below), capEntry for
// the face traced forward from (below, above). The resulting ordering
// reproduces both shortened original faces and a new closed cap face
// when traced with Polyhedron.FaceTraceNext (verified by hand against a
// unit-cube fixture; see DESIGN.md).
func clipPolyhedronByPlane(poly *polytope.Polyhedron, pl plane.Plane3D) {
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

	newNeighbors := make([][]int, n) // rewritten neighbor lists, above vertices only
	edgeVertex := make(map[[2]int]int)
	var newVerts []polytope.Vertex3D

	// Pass 1: one intersection vertex per crossing edge; rewrite each
	// above vertex's neighbor slots that pointed at a below vertex.
	for i := 0; i < n; i++ {
		if !above[i] {
			continue
		}
		nb := p[i].Neighbors
		rewritten := make([]int, len(nb))
		copy(rewritten, nb)
		for k, j := range nb {
			if above[j] {
				continue
			}
			key := edgeKey(i, j)
			vid, ok := edgeVertex[key]
			if !ok {
				t := d[i] / (d[i] - d[j])
				pos := vector.Lerp3(p[i].Position, p[j].Position, t)
				clips := p[i].Clips.Intersect(p[j].Clips)
				if pl.ID != plane.Unlabeled {
					clips.Add(pl.ID)
				}
				newVerts = append(newVerts, polytope.Vertex3D{
					Position:  pos,
					Neighbors: make([]int, 3),
					Comp:      1,
					ID:        -1,
					Clips:     clips,
				})
				vid = n + len(newVerts) - 1
				edgeVertex[key] = vid
			}
			rewritten[k] = vid
		}
		newNeighbors[i] = rewritten
	}

	// Pass 2: fill in each intersection vertex's own neighbor list.
	for key, vid := range edgeVertex {
		a, b := key[0], key[1]
		aboveV, belowV := a, b
		if !above[aboveV] {
			aboveV, belowV = b, a
		}
		exitBelow, exitAbove := capExit(p, above, aboveV, belowV)
		v2 := edgeVertex[edgeKey(exitBelow, exitAbove)]
		entryAbove, entryBelow := capEntry(p, above, belowV, aboveV)
		v3 := edgeVertex[edgeKey(entryAbove, entryBelow)]

		nv := &newVerts[vid-n]
		nv.Neighbors[0] = v2
		nv.Neighbors[1] = aboveV
		nv.Neighbors[2] = v3
	}

	// Pass 3: compact into the final polyhedron.
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

	result := make(polytope.Polyhedron, finalCount)
	for i := 0; i < n; i++ {
		if !above[i] {
			continue
		}
		nb := newNeighbors[i]
		resolved := make([]int, len(nb))
		for k, v := range nb {
			resolved[k] = resolve(v)
		}
		result[oldToFinal[i]] = polytope.Vertex3D{
			Position:  p[i].Position,
			Neighbors: resolved,
			Comp:      1,
			ID:        p[i].ID,
			Clips:     p[i].Clips,
		}
	}
	for k := range newVerts {
		nb := newVerts[k].Neighbors
		resolved := make([]int, len(nb))
		for idx, v := range nb {
			resolved[idx] = resolve(v)
		}
		result[newBase+k] = polytope.Vertex3D{
			Position:  newVerts[k].Position,
			Neighbors: resolved,
			Comp:      1,
			ID:        -1,
			Clips:     newVerts[k].Clips,
		}
	}
	*poly = result
}
