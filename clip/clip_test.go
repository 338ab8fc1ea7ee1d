package clip

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyclipper/polyclipper/moments"
	"github.com/polyclipper/polyclipper/plane"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

func unitSquare() polytope.Polygon {
	poly, err := polytope.InitPolygon(
		[]vector.Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{3, 1}, {0, 2}, {1, 3}, {2, 0}},
	)
	if err != nil {
		panic(err)
	}
	return poly
}

func unitCube() polytope.Polyhedron {
	poly, err := polytope.InitPolyhedron(
		[]vector.Vector3{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		[][]int{
			{1, 4, 3}, {5, 0, 2}, {3, 6, 1}, {7, 2, 0},
			{5, 7, 0}, {1, 6, 4}, {5, 2, 7}, {4, 6, 3},
		},
	)
	if err != nil {
		panic(err)
	}
	return poly
}

func cube() polytope.Polyhedron {
	poly, err := polytope.InitPolyhedron(
		[]vector.Vector3{
			{0, 0, 0}, {10, 0, 0}, {10, 10, 0}, {0, 10, 0},
			{0, 0, 10}, {10, 0, 10}, {10, 10, 10}, {0, 10, 10},
		},
		[][]int{
			{1, 4, 3}, {5, 0, 2}, {3, 6, 1}, {7, 2, 0},
			{5, 7, 0}, {1, 6, 4}, {5, 2, 7}, {4, 6, 3},
		},
	)
	if err != nil {
		panic(err)
	}
	return poly
}

func TestClipPolygonNoOp(t *testing.T) {
	poly := unitSquare()
	planes := []plane.Plane2D{plane.NewPlane2DFromPoint(vector.Vector2{-1, 0}, vector.Vector2{1, 0})}
	ClipPolygon(&poly, planes)
	assert.Len(t, poly, 4)
}

func TestClipPolygonFullyOutside(t *testing.T) {
	poly := unitSquare()
	planes := []plane.Plane2D{plane.NewPlane2DFromPoint(vector.Vector2{2, 0}, vector.Vector2{1, 0})}
	ClipPolygon(&poly, planes)
	assert.Empty(t, poly)
}

func TestClipPolygonHalf(t *testing.T) {
	poly := unitSquare()
	planes := []plane.Plane2D{plane.NewPlane2DFromPointID(vector.Vector2{0.5, 0}, vector.Vector2{1, 0}, 7)}
	ClipPolygon(&poly, planes)
	assert.Len(t, poly, 4)

	area := shoelaceArea(poly)
	assert.InDelta(t, 0.5, area, 1e-12)

	for _, v := range poly {
		assert.GreaterOrEqual(t, v.Position[0], 0.5-1e-12)
	}
	newVertexCount := 0
	for _, v := range poly {
		if v.Clips.Contains(7) {
			newVertexCount++
		}
	}
	assert.Equal(t, 2, newVertexCount)
}

func TestClipPolygonMultiplePlanes(t *testing.T) {
	poly := unitSquare()
	planes := []plane.Plane2D{
		plane.NewPlane2DFromPoint(vector.Vector2{0.25, 0}, vector.Vector2{1, 0}),
		plane.NewPlane2DFromPoint(vector.Vector2{0.75, 0}, vector.Vector2{-1, 0}),
	}
	ClipPolygon(&poly, planes)
	area := shoelaceArea(poly)
	assert.InDelta(t, 0.5, area, 1e-12)
}

func shoelaceArea(poly polytope.Polygon) float64 {
	var area float64
	for i := range poly {
		j := poly[i].Neighbors.Next
		area += vector.Cross2(poly[i].Position, poly[j].Position)
	}
	return area / 2
}

func firstMoment2D(poly polytope.Polygon) vector.Vector2 {
	var first vector.Vector2
	for i := range poly {
		j := poly[i].Neighbors.Next
		a, b := poly[i].Position, poly[j].Position
		cross := vector.Cross2(a, b)
		first[0] += cross * (a[0] + b[0])
		first[1] += cross * (a[1] + b[1])
	}
	return vector.Vector2{first[0] / 6, first[1] / 6}
}

func positionSet2D(poly polytope.Polygon) []vector.Vector2 {
	out := make([]vector.Vector2, len(poly))
	for i, v := range poly {
		out[i] = v.Position
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// TestClipPolygonS1 reproduces the 2D trivial scenario: clipping the
// unit square by the plane through (0.5,0) with normal (1,0) leaves the
// quadrilateral (0.5,0),(1,0),(1,1),(0.5,1), area 0.5, first moment
// (0.375, 0.25).
func TestClipPolygonS1(t *testing.T) {
	poly := unitSquare()
	planes := []plane.Plane2D{plane.NewPlane2DFromPoint(vector.Vector2{0.5, 0}, vector.Vector2{1, 0})}
	ClipPolygon(&poly, planes)

	want := []vector.Vector2{{0.5, 0}, {0.5, 1}, {1, 0}, {1, 1}}
	assert.Equal(t, want, positionSet2D(poly))

	assert.InDelta(t, 0.5, shoelaceArea(poly), 1e-12)
	first := firstMoment2D(poly)
	assert.InDelta(t, 0.375, first[0], 1e-12)
	assert.InDelta(t, 0.25, first[1], 1e-12)
}

// TestClipPolygonS2 reproduces the 2D corner scenario: clipping the unit
// square by the plane through (0.75,0.75) with normal (1,1)/sqrt(2)
// leaves the corner triangle (1,0.5),(1,1),(0.5,1), area 0.125,
// centroid near (0.833, 0.833).
func TestClipPolygonS2(t *testing.T) {
	poly := unitSquare()
	normal := vector.Unit2(vector.Vector2{1, 1})
	planes := []plane.Plane2D{plane.NewPlane2DFromPoint(vector.Vector2{0.75, 0.75}, normal)}
	ClipPolygon(&poly, planes)

	area := shoelaceArea(poly)
	assert.InDelta(t, 0.125, area, 1e-9)

	first := firstMoment2D(poly)
	centroid := vector.Vector2{first[0] / area, first[1] / area}
	assert.InDelta(t, 0.8333333333, centroid[0], 1e-6)
	assert.InDelta(t, 0.8333333333, centroid[1], 1e-6)
}

func TestClipPolygonCommutativity(t *testing.T) {
	planeA := plane.NewPlane2DFromPoint(vector.Vector2{0.25, 0}, vector.Vector2{1, 0})
	planeB := plane.NewPlane2DFromPoint(vector.Vector2{0.75, 0}, vector.Vector2{-1, 0})

	ab := unitSquare()
	ClipPolygon(&ab, []plane.Plane2D{planeA, planeB})

	ba := unitSquare()
	ClipPolygon(&ba, []plane.Plane2D{planeB, planeA})

	assert.Equal(t, positionSet2D(ab), positionSet2D(ba))
	assert.InDelta(t, shoelaceArea(ab), shoelaceArea(ba), 1e-12)
}

func TestClipPolyhedronNoOp(t *testing.T) {
	poly := cube()
	planes := []plane.Plane3D{plane.NewPlane3DFromPoint(vector.Vector3{-1, 0, 0}, vector.Vector3{1, 0, 0})}
	ClipPolyhedron(&poly, planes)
	assert.Len(t, poly, 8)
}

func TestClipPolyhedronFullyOutside(t *testing.T) {
	poly := cube()
	planes := []plane.Plane3D{plane.NewPlane3DFromPoint(vector.Vector3{20, 0, 0}, vector.Vector3{1, 0, 0})}
	ClipPolyhedron(&poly, planes)
	assert.Empty(t, poly)
}

func TestClipPolyhedronHalf(t *testing.T) {
	poly := cube()
	planes := []plane.Plane3D{plane.NewPlane3DFromPointID(vector.Vector3{5, 0, 0}, vector.Vector3{1, 0, 0}, 11)}
	ClipPolyhedron(&poly, planes)

	// 4 surviving corners + 4 new cap vertices.
	assert.Len(t, poly, 8)
	for _, v := range poly {
		assert.GreaterOrEqual(t, v.Position[0], 5-1e-9)
	}

	capVertices := 0
	for _, v := range poly {
		if v.Clips.Contains(11) {
			capVertices++
			assert.Len(t, v.Neighbors, 3)
		}
	}
	assert.Equal(t, 4, capVertices)

	// Every surviving vertex still has exactly 3 neighbors, and every
	// neighbor reference is in range.
	for i, v := range poly {
		assert.Len(t, v.Neighbors, 3)
		for _, j := range v.Neighbors {
			assert.GreaterOrEqual(t, j, 0)
			assert.Less(t, j, len(poly))
			assert.NotEqual(t, i, j)
		}
	}
}

// TestClipPolyhedronS4 reproduces the 3D trivial scenario: clipping the
// unit cube by the plane x >= 0.5 leaves volume 0.5, first moment
// (0.375, 0.25, 0.25).
func TestClipPolyhedronS4(t *testing.T) {
	poly := unitCube()
	planes := []plane.Plane3D{plane.NewPlane3DFromPoint(vector.Vector3{0.5, 0, 0}, vector.Vector3{1, 0, 0})}
	ClipPolyhedron(&poly, planes)

	vol, first := moments.Moments3D(poly)
	assert.InDelta(t, 0.5, vol, 1e-9)
	assert.InDelta(t, 0.375, first[0], 1e-9)
	assert.InDelta(t, 0.25, first[1], 1e-9)
	assert.InDelta(t, 0.25, first[2], 1e-9)
}

// TestClipPolyhedronS5 reproduces the 3D diagonal scenario: clipping
// the unit cube by the plane through (0.5,0.5,0.5) with normal
// (1,1,1)/sqrt(3) leaves volume 0.5 and a centroid symmetric in x, y, z.
func TestClipPolyhedronS5(t *testing.T) {
	poly := unitCube()
	normal := vector.Unit3(vector.Vector3{1, 1, 1})
	planes := []plane.Plane3D{plane.NewPlane3DFromPoint(vector.Vector3{0.5, 0.5, 0.5}, normal)}
	ClipPolyhedron(&poly, planes)

	vol, first := moments.Moments3D(poly)
	assert.InDelta(t, 0.5, vol, 1e-9)
	centroid := vector.Vector3{first[0] / vol, first[1] / vol, first[2] / vol}
	assert.InDelta(t, centroid[0], centroid[1], 1e-9)
	assert.InDelta(t, centroid[1], centroid[2], 1e-9)
	assert.Greater(t, centroid[0], 0.5)
}

func BenchmarkClipPolygon(b *testing.B) {
	planes := []plane.Plane2D{plane.NewPlane2DFromPointID(vector.Vector2{0.5, 0}, vector.Vector2{1, 0}, 7)}
	for i := 0; i < b.N; i++ {
		poly := unitSquare()
		ClipPolygon(&poly, planes)
	}
}

func BenchmarkClipPolyhedron(b *testing.B) {
	planes := []plane.Plane3D{plane.NewPlane3DFromPointID(vector.Vector3{5, 0, 0}, vector.Vector3{1, 0, 0}, 11)}
	for i := 0; i < b.N; i++ {
		poly := cube()
		ClipPolyhedron(&poly, planes)
	}
}
