// Package moments computes the zeroth (area/volume) and first
// (area/volume-weighted centroid numerator) moments of a clipped
// polygon or polyhedron about the origin (§4.4).
//
// The 2D formulas are the standard shoelace/Green's-theorem sums over
// oriented edges; the 3D formulas decompose the solid into tetrahedra
// fanned from the origin to each triangulated face, matching the
// reference moments_answer used by the original test suite. Both
// formulations handle non-convex input because signed contributions
// from oppositely-wound regions cancel.
package moments

import (
	"github.com/polyclipper/polyclipper/faces"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

// Moments2D returns the signed area and the first-moment vector (the
// area-weighted centroid numerator: divide by the area to get the
// centroid) of poly.
func Moments2D(poly polytope.Polygon) (zeroth float64, first vector.Vector2) {
	for i := range poly {
		j := poly[i].Neighbors.Next
		a, b := poly[i].Position, poly[j].Position
		cross := vector.Cross2(a, b)
		zeroth += cross
		first[0] += cross * (a[0] + b[0])
		first[1] += cross * (a[1] + b[1])
	}
	zeroth /= 2
	first[0] /= 6
	first[1] /= 6
	return zeroth, first
}

// Moments3D returns the signed volume and the first-moment vector of
// poly, decomposing each face into a triangle fan and each triangle
// into a tetrahedron with the origin.
func Moments3D(poly polytope.Polyhedron) (zeroth float64, first vector.Vector3) {
	for _, loop := range faces.Extract3D(poly) {
		if len(loop) < 3 {
			continue
		}
		a := poly[loop[0]].Position
		for k := 1; k < len(loop)-1; k++ {
			b := poly[loop[k]].Position
			c := poly[loop[k+1]].Position
			triple := a.Dot(b.Cross(c))
			zeroth += triple
			sum := a.Add(b).Add(c)
			first[0] += triple * sum[0]
			first[1] += triple * sum[1]
			first[2] += triple * sum[2]
		}
	}
	zeroth /= 6
	first = first.Mul(1.0 / 24.0)
	return zeroth, first
}
