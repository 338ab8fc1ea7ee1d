// Package plane describes the half-space primitive clipping operates
// against: a unit normal, a signed distance from the origin, and an
// optional integer id used to label vertices the plane creates.
package plane

import (
	"math"

	"github.com/polyclipper/polyclipper/vector"
)

// Unlabeled is the sentinel plane id meaning "no id assigned". It is
// never written into a vertex's clip set.
const Unlabeled = math.MinInt

// Plane2D is a half-space in 2D: the set of points p with
// Normal.Dot(p) + Dist >= 0.
type Plane2D struct {
	Normal vector.Vector2
	Dist   float64
	ID     int
}

// NewPlane2D builds a plane from a raw signed distance and unit normal.
func NewPlane2D(dist float64, normal vector.Vector2) Plane2D {
	return Plane2D{Normal: normal, Dist: dist, ID: Unlabeled}
}

// NewPlane2DFromPoint builds a plane through point with unit normal
// normal: Dist = -point.Dot(normal).
func NewPlane2DFromPoint(point, normal vector.Vector2) Plane2D {
	return Plane2D{Normal: normal, Dist: -point.Dot(normal), ID: Unlabeled}
}

// NewPlane2DFromPointID is NewPlane2DFromPoint with an explicit plane id.
func NewPlane2DFromPointID(point, normal vector.Vector2, id int) Plane2D {
	return Plane2D{Normal: normal, Dist: -point.Dot(normal), ID: id}
}

// SignedDistance returns Normal.Dot(p) + Dist. The plane's positive
// half-space (retained by clipping) is where this is >= 0.
func (p Plane2D) SignedDistance(point vector.Vector2) float64 {
	return p.Normal.Dot(point) + p.Dist
}

// Less orders planes by signed distance from the origin.
func (p Plane2D) Less(other Plane2D) bool {
	return p.Dist < other.Dist
}

// Plane3D is a half-space in 3D: the set of points p with
// Normal.Dot(p) + Dist >= 0.
type Plane3D struct {
	Normal vector.Vector3
	Dist   float64
	ID     int
}

// NewPlane3D builds a plane from a raw signed distance and unit normal.
func NewPlane3D(dist float64, normal vector.Vector3) Plane3D {
	return Plane3D{Normal: normal, Dist: dist, ID: Unlabeled}
}

// NewPlane3DFromPoint builds a plane through point with unit normal
// normal: Dist = -point.Dot(normal).
func NewPlane3DFromPoint(point, normal vector.Vector3) Plane3D {
	return Plane3D{Normal: normal, Dist: -point.Dot(normal), ID: Unlabeled}
}

// NewPlane3DFromPointID is NewPlane3DFromPoint with an explicit plane id.
func NewPlane3DFromPointID(point, normal vector.Vector3, id int) Plane3D {
	return Plane3D{Normal: normal, Dist: -point.Dot(normal), ID: id}
}

// SignedDistance returns Normal.Dot(p) + Dist. The plane's positive
// half-space (retained by clipping) is where this is >= 0.
func (p Plane3D) SignedDistance(point vector.Vector3) float64 {
	return p.Normal.Dot(point) + p.Dist
}

// Less orders planes by signed distance from the origin.
func (p Plane3D) Less(other Plane3D) bool {
	return p.Dist < other.Dist
}
