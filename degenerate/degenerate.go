// Package degenerate collapses zero-length (or near-zero-length, within
// a caller tolerance) edges left behind by clipping — typically where
// a plane passes exactly through an existing vertex or nearly parallel
// to an incident edge (§4.3). Collapsing merges the two endpoints into
// the lower-indexed one, unions their clip-id sets, and repeats until
// no collapsible edge remains, so the result is stable under repeated
// application (tol = 0 still removes vertices that coincide exactly).
package degenerate

import (
	"github.com/polyclipper/polyclipper/polytope"
)

// CollapseDegenerates2D merges every boundary edge whose squared length
// is <= tol*tol, repeating until none remain, then compacts the result.
func CollapseDegenerates2D(poly polytope.Polygon, tol float64) polytope.Polygon {
	p := make(polytope.Polygon, len(poly))
	copy(p, poly)
	alive := make([]bool, len(p))
	for i := range alive {
		alive[i] = true
	}
	tol2 := tol * tol

	for {
		merged := false
		for i := range p {
			if !alive[i] {
				continue
			}
			j := p[i].Neighbors.Next
			if i == j || !alive[j] {
				continue
			}
			if squaredDist2(p[i].Position, p[j].Position) > tol2 {
				continue
			}
			keep, drop := i, j
			if drop < keep {
				keep, drop = drop, keep
			}
			mergeEdge2D(p, keep, drop)
			alive[drop] = false
			merged = true
		}
		if !merged {
			break
		}
	}

	return compact2D(p, alive)
}

// mergeEdge2D contracts the edge (keep, drop) — assumed adjacent via
// Next/Prev in either order — onto keep.
func mergeEdge2D(p polytope.Polygon, keep, drop int) {
	p[keep].Clips = p[keep].Clips.Union(p[drop].Clips)

	if p[keep].Neighbors.Next == drop {
		after := p[drop].Neighbors.Next
		p[keep].Neighbors.Next = after
		if after != keep {
			p[after].Neighbors.Prev = keep
		}
	} else { // p[keep].Neighbors.Prev == drop
		before := p[drop].Neighbors.Prev
		p[keep].Neighbors.Prev = before
		if before != keep {
			p[before].Neighbors.Next = keep
		}
	}
}

func squaredDist2(a, b [2]float64) float64 {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

func compact2D(p polytope.Polygon, alive []bool) polytope.Polygon {
	remap := make([]int, len(p))
	count := 0
	for i := range p {
		if alive[i] {
			remap[i] = count
			count++
		} else {
			remap[i] = -1
		}
	}
	out := make(polytope.Polygon, count)
	for i := range p {
		if !alive[i] {
			continue
		}
		v := p[i]
		v.Neighbors.Next = remap[v.Neighbors.Next]
		v.Neighbors.Prev = remap[v.Neighbors.Prev]
		out[remap[i]] = v
	}
	return out
}

// CollapseDegenerates3D merges every edge whose squared length is <=
// tol*tol, repeating until none remain, then compacts the result.
func CollapseDegenerates3D(poly polytope.Polyhedron, tol float64) polytope.Polyhedron {
	p := make(polytope.Polyhedron, len(poly))
	for i := range poly {
		p[i] = poly[i]
		p[i].Neighbors = append([]int(nil), poly[i].Neighbors...)
	}
	alive := make([]bool, len(p))
	for i := range alive {
		alive[i] = true
	}
	tol2 := tol * tol

	for {
		merged := false
		for i := range p {
			if !alive[i] {
				continue
			}
			for _, j := range p[i].Neighbors {
				if !alive[j] || i == j {
					continue
				}
				if squaredDist3(p[i].Position, p[j].Position) > tol2 {
					continue
				}
				keep, drop := i, j
				if drop < keep {
					keep, drop = drop, keep
				}
				if !alive[keep] || !alive[drop] {
					continue
				}
				mergeEdge3D(p, keep, drop)
				alive[drop] = false
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}

	return compact3D(p, alive)
}

// mergeEdge3D contracts the edge (keep, drop) onto keep: drop's other
// neighbors are spliced into keep's neighbor list at the position drop
// occupied, rotated to continue keep's cyclic order seamlessly, and
// every one of them is repointed from drop to keep.
func mergeEdge3D(p polytope.Polyhedron, keep, drop int) {
	p[keep].Clips = p[keep].Clips.Union(p[drop].Clips)

	posInKeep := indexOf(p[keep].Neighbors, drop)
	posInDrop := indexOf(p[drop].Neighbors, keep)

	dn := p[drop].Neighbors
	spliced := append(append([]int(nil), dn[posInDrop+1:]...), dn[:posInDrop]...)

	kn := p[keep].Neighbors
	next := make([]int, 0, len(kn)-1+len(spliced))
	next = append(next, kn[:posInKeep]...)
	next = append(next, spliced...)
	next = append(next, kn[posInKeep+1:]...)
	next = dedupeNoSelf(next, keep)
	p[keep].Neighbors = next

	for _, v := range spliced {
		if v == keep {
			continue
		}
		for k, n := range p[v].Neighbors {
			if n == drop {
				p[v].Neighbors[k] = keep
			}
		}
	}
}

func squaredDist3(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

func indexOf(nbrs []int, target int) int {
	for i, v := range nbrs {
		if v == target {
			return i
		}
	}
	return -1
}

func dedupeNoSelf(nbrs []int, self int) []int {
	out := make([]int, 0, len(nbrs))
	seen := make(map[int]bool, len(nbrs))
	for _, v := range nbrs {
		if v == self || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func compact3D(p polytope.Polyhedron, alive []bool) polytope.Polyhedron {
	remap := make([]int, len(p))
	count := 0
	for i := range p {
		if alive[i] {
			remap[i] = count
			count++
		} else {
			remap[i] = -1
		}
	}
	out := make(polytope.Polyhedron, count)
	for i := range p {
		if !alive[i] {
			continue
		}
		v := p[i]
		resolved := make([]int, len(v.Neighbors))
		for k, n := range v.Neighbors {
			resolved[k] = remap[n]
		}
		v.Neighbors = resolved
		out[remap[i]] = v
	}
	return out
}
