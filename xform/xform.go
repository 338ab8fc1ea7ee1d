// Package xform applies rigid transforms to polygons, polyhedra, and
// planes, adapted from actor/transform.go's position+quaternion
// Transform. A remeshing driver keeps each target-mesh cell in its own
// local frame and transforms the cutting planes into it, rather than
// re-expressing every cell's vertices in a shared world frame.
package xform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/polyclipper/polyclipper/plane"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

// Transform3D is a rigid position+rotation transform in 3D.
type Transform3D struct {
	Position vector.Vector3
	Rotation mgl64.Quat
}

// Identity3D returns the identity transform.
func Identity3D() Transform3D {
	return Transform3D{Position: vector.Vector3{0, 0, 0}, Rotation: mgl64.QuatIdent()}
}

// Point transforms a point from local into world space.
func (t Transform3D) Point(p vector.Vector3) vector.Vector3 {
	return t.Rotation.Rotate(p).Add(t.Position)
}

// Direction rotates a direction without translating it — for plane
// normals, which have no position.
func (t Transform3D) Direction(d vector.Vector3) vector.Vector3 {
	return t.Rotation.Rotate(d)
}

// Inverse returns the transform that undoes t.
func (t Transform3D) Inverse() Transform3D {
	inv := t.Rotation.Inverse()
	return Transform3D{Position: inv.Rotate(vector.Negate3(t.Position)), Rotation: inv}
}

// Polyhedron returns a copy of poly with every vertex position mapped
// through t. Neighbor topology and clip sets are untouched.
func (t Transform3D) Polyhedron(poly polytope.Polyhedron) polytope.Polyhedron {
	out := make(polytope.Polyhedron, len(poly))
	for i, v := range poly {
		out[i] = v
		out[i].Position = t.Point(v.Position)
		out[i].Neighbors = append([]int(nil), v.Neighbors...)
	}
	return out
}

// Plane3D maps pl from world space into t's local frame — the
// transform a remeshing driver applies to a world-space cutting plane
// before clipping a cell kept in its own local frame.
func (t Transform3D) Plane3D(pl plane.Plane3D) plane.Plane3D {
	inv := t.Inverse()
	normal := inv.Direction(pl.Normal)
	point := inv.Point(pl.Normal.Mul(-pl.Dist))
	return plane.NewPlane3DFromPointID(point, normal, pl.ID)
}

// Transform2D is a rigid position+rotation transform in 2D.
type Transform2D struct {
	Position vector.Vector2
	Cos, Sin float64
}

// Identity2D returns the identity transform.
func Identity2D() Transform2D {
	return Transform2D{Position: vector.Vector2{0, 0}, Cos: 1, Sin: 0}
}

// Rotation2D returns the transform that rotates by angle radians about
// the origin, then translates by position.
func Rotation2D(position vector.Vector2, angle float64) Transform2D {
	return Transform2D{Position: position, Cos: math.Cos(angle), Sin: math.Sin(angle)}
}

// Point transforms a point from local into world space.
func (t Transform2D) Point(p vector.Vector2) vector.Vector2 {
	return vector.Vector2{
		t.Cos*p[0] - t.Sin*p[1] + t.Position[0],
		t.Sin*p[0] + t.Cos*p[1] + t.Position[1],
	}
}

// Direction rotates a direction without translating it.
func (t Transform2D) Direction(d vector.Vector2) vector.Vector2 {
	return vector.Vector2{t.Cos*d[0] - t.Sin*d[1], t.Sin*d[0] + t.Cos*d[1]}
}

// Inverse returns the transform that undoes t.
func (t Transform2D) Inverse() Transform2D {
	inv := Transform2D{Cos: t.Cos, Sin: -t.Sin}
	inv.Position = inv.Direction(vector.Negate2(t.Position))
	return inv
}

// Polygon returns a copy of poly with every vertex position mapped
// through t.
func (t Transform2D) Polygon(poly polytope.Polygon) polytope.Polygon {
	out := make(polytope.Polygon, len(poly))
	for i, v := range poly {
		out[i] = v
		out[i].Position = t.Point(v.Position)
	}
	return out
}

// Plane2D maps pl from world space into t's local frame.
func (t Transform2D) Plane2D(pl plane.Plane2D) plane.Plane2D {
	inv := t.Inverse()
	normal := inv.Direction(pl.Normal)
	point := inv.Point(pl.Normal.Mul(-pl.Dist))
	return plane.NewPlane2DFromPointID(point, normal, pl.ID)
}
