// Package bounds computes axis-aligned bounding boxes for polygons and
// polyhedra, adapted from actor/aabb.go's AABB type. A remeshing driver
// uses these as a broad-phase reject: a cell whose AABB lies entirely
// to one side of a plane doesn't need a full clip against it.
package bounds

import (
	"math"

	"github.com/polyclipper/polyclipper/plane"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

// Box2 is an axis-aligned bounding box in 2D.
type Box2 struct {
	Min, Max vector.Vector2
}

// OfPolygon returns the bounding box of poly's vertices. The zero Box2
// is returned for an empty polygon.
func OfPolygon(poly polytope.Polygon) Box2 {
	if len(poly) == 0 {
		return Box2{}
	}
	b := Box2{Min: poly[0].Position, Max: poly[0].Position}
	for _, v := range poly[1:] {
		b.Min[0] = math.Min(b.Min[0], v.Position[0])
		b.Min[1] = math.Min(b.Min[1], v.Position[1])
		b.Max[0] = math.Max(b.Max[0], v.Position[0])
		b.Max[1] = math.Max(b.Max[1], v.Position[1])
	}
	return b
}

// Overlaps reports whether a and b intersect on both axes.
func (a Box2) Overlaps(b Box2) bool {
	return a.Max[0] >= b.Min[0] && a.Min[0] <= b.Max[0] &&
		a.Max[1] >= b.Min[1] && a.Min[1] <= b.Max[1]
}

// Side reports how b's box sits relative to pl: +1 if the whole box is
// on the plane's positive (retained) side, -1 if entirely on the
// negative side, 0 if the plane cuts through it. It evaluates all four
// corners; a caller can skip the full clip whenever Side != 0.
func (b Box2) Side(pl plane.Plane2D) int {
	corners := [4]vector.Vector2{
		{b.Min[0], b.Min[1]}, {b.Max[0], b.Min[1]},
		{b.Min[0], b.Max[1]}, {b.Max[0], b.Max[1]},
	}
	return sideOf2(pl, corners[:])
}

func sideOf2(pl plane.Plane2D, pts []vector.Vector2) int {
	anyAbove, anyBelow := false, false
	for _, p := range pts {
		if pl.SignedDistance(p) >= 0 {
			anyAbove = true
		} else {
			anyBelow = true
		}
	}
	switch {
	case anyAbove && !anyBelow:
		return 1
	case anyBelow && !anyAbove:
		return -1
	default:
		return 0
	}
}

// Box3 is an axis-aligned bounding box in 3D.
type Box3 struct {
	Min, Max vector.Vector3
}

// OfPolyhedron returns the bounding box of poly's vertices.
func OfPolyhedron(poly polytope.Polyhedron) Box3 {
	if len(poly) == 0 {
		return Box3{}
	}
	b := Box3{Min: poly[0].Position, Max: poly[0].Position}
	for _, v := range poly[1:] {
		for k := 0; k < 3; k++ {
			b.Min[k] = math.Min(b.Min[k], v.Position[k])
			b.Max[k] = math.Max(b.Max[k], v.Position[k])
		}
	}
	return b
}

// Overlaps reports whether a and b intersect on all three axes.
func (a Box3) Overlaps(b Box3) bool {
	for k := 0; k < 3; k++ {
		if a.Max[k] < b.Min[k] || a.Min[k] > b.Max[k] {
			return false
		}
	}
	return true
}

// Side is Box2.Side for a Box3 against a Plane3D, evaluated over all
// eight corners.
func (b Box3) Side(pl plane.Plane3D) int {
	var corners [8]vector.Vector3
	n := 0
	for _, x := range [2]float64{b.Min[0], b.Max[0]} {
		for _, y := range [2]float64{b.Min[1], b.Max[1]} {
			for _, z := range [2]float64{b.Min[2], b.Max[2]} {
				corners[n] = vector.Vector3{x, y, z}
				n++
			}
		}
	}
	anyAbove, anyBelow := false, false
	for _, p := range corners {
		if pl.SignedDistance(p) >= 0 {
			anyAbove = true
		} else {
			anyBelow = true
		}
	}
	switch {
	case anyAbove && !anyBelow:
		return 1
	case anyBelow && !anyAbove:
		return -1
	default:
		return 0
	}
}
