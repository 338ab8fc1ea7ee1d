// Package simplex decomposes a clipped polygon or polyhedron into
// triangles or tetrahedra (§4.7), fanning each face from its first
// vertex and discarding slivers at or below a caller-supplied tolerance
// so that near-degenerate fan triangles/tetrahedra — an artifact of
// collapse not having run, or of a tolerance looser than the caller's
// — don't pollute downstream consumers.
package simplex

import (
	"math"

	"github.com/polyclipper/polyclipper/faces"
	"github.com/polyclipper/polyclipper/polytope"
)

// Triangle is a fan triangle, indices into the source Polygon.
type Triangle [3]int

// Tetrahedron is a fan tetrahedron, indices into the source
// Polyhedron, plus the implicit apex (the polyhedron's own vertex 0)
// used to close the solid.
type Tetrahedron [3]int

// SplitIntoTriangles fans each face loop from its first vertex,
// dropping triangles whose doubled signed area has magnitude <= tol.
func SplitIntoTriangles(poly polytope.Polygon, tol float64) []Triangle {
	var out []Triangle
	for _, loop := range faces.Extract2D(poly) {
		if len(loop) < 3 {
			continue
		}
		a := loop[0]
		for k := 1; k < len(loop)-1; k++ {
			b, c := loop[k], loop[k+1]
			area := signedArea2(poly, a, b, c)
			if math.Abs(area) <= tol {
				continue
			}
			out = append(out, Triangle{a, b, c})
		}
	}
	return out
}

// SplitIntoTetrahedra fans each face loop from its first vertex,
// pairing each fan triangle with poly's own vertex 0 — a fixed interior
// reference point, not the world origin — to form a tetrahedron, and
// drops any whose scalar triple product (six times the signed volume,
// not the volume itself) has magnitude <= tol.
func SplitIntoTetrahedra(poly polytope.Polyhedron, tol float64) []Tetrahedron {
	var out []Tetrahedron
	for _, loop := range faces.Extract3D(poly) {
		if len(loop) < 3 {
			continue
		}
		a := loop[0]
		for k := 1; k < len(loop)-1; k++ {
			b, c := loop[k], loop[k+1]
			vol := signedVolume3(poly, a, b, c)
			if math.Abs(vol) <= tol {
				continue
			}
			out = append(out, Tetrahedron{a, b, c})
		}
	}
	return out
}

func signedArea2(poly polytope.Polygon, a, b, c int) float64 {
	pa, pb, pc := poly[a].Position, poly[b].Position, poly[c].Position
	return (pb[0]-pa[0])*(pc[1]-pa[1]) - (pc[0]-pa[0])*(pb[1]-pa[1])
}

func signedVolume3(poly polytope.Polyhedron, a, b, c int) float64 {
	origin := poly[0].Position
	pa := poly[a].Position.Sub(origin)
	pb := poly[b].Position.Sub(origin)
	pc := poly[c].Position.Sub(origin)
	return pa.Dot(pb.Cross(pc))
}
