// Package faces extracts the face loops implicit in a clipped
// polygon's or polyhedron's neighbor graph (§4.5), and computes the set
// of clip-plane ids common to every vertex of a face (§4.6) — the
// mechanism by which a caller identifies which faces came from a given
// cutting plane.
package faces

import (
	"github.com/polyclipper/polyclipper/clipset"
	"github.com/polyclipper/polyclipper/polytope"
)

// Extract2D returns the polygon's face loops as one vertex-index cycle
// per connected component, walked via each vertex's Next pointer. A
// simple polygon has exactly one.
func Extract2D(poly polytope.Polygon) [][]int {
	n := len(poly)
	visited := make([]bool, n)
	var faces [][]int
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var loop []int
		cur := start
		for !visited[cur] {
			visited[cur] = true
			loop = append(loop, cur)
			cur = poly[cur].Neighbors.Next
		}
		faces = append(faces, loop)
	}
	return faces
}

// Extract3D returns the polyhedron's face loops. Each unvisited
// directed edge (i, j) seeds a trace: the next vertex is the neighbor
// of j immediately before i, cyclically, in j's neighbor list
// (Polyhedron.FaceTraceNext); the trace closes when the starting
// directed edge recurs, and every directed edge visited along the way
// is marked so it isn't traced again as part of another face.
func Extract3D(poly polytope.Polyhedron) [][]int {
	visited := make(map[[2]int]bool)
	var faces [][]int
	for i := range poly {
		for _, j := range poly[i].Neighbors {
			if visited[[2]int{i, j}] {
				continue
			}
			var loop []int
			from, to := i, j
			for {
				visited[[2]int{from, to}] = true
				loop = append(loop, from)
				next := poly.FaceTraceNext(from, to)
				from, to = to, next
				if from == i && to == j {
					break
				}
			}
			faces = append(faces, loop)
		}
	}
	return faces
}

// CommonFaceClips2D returns, for each face returned by Extract2D, the
// intersection of its vertices' clip-id sets — the ids of every plane
// that bounds the entire face.
func CommonFaceClips2D(poly polytope.Polygon, facesList [][]int) []clipset.Set {
	return commonClips(facesList, func(i int) clipset.Set { return poly[i].Clips })
}

// CommonFaceClips3D is CommonFaceClips2D for a Polyhedron.
func CommonFaceClips3D(poly polytope.Polyhedron, facesList [][]int) []clipset.Set {
	return commonClips(facesList, func(i int) clipset.Set { return poly[i].Clips })
}

func commonClips(facesList [][]int, clipsOf func(int) clipset.Set) []clipset.Set {
	out := make([]clipset.Set, len(facesList))
	for fi, loop := range facesList {
		if len(loop) == 0 {
			out[fi] = clipset.New()
			continue
		}
		common := clipsOf(loop[0]).Clone()
		for _, i := range loop[1:] {
			common = common.Intersect(clipsOf(i))
		}
		out[fi] = common
	}
	return out
}
