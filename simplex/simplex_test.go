package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyclipper/polyclipper/moments"
	"github.com/polyclipper/polyclipper/polytope"
	"github.com/polyclipper/polyclipper/vector"
)

func TestSplitIntoTrianglesUnitSquare(t *testing.T) {
	poly, err := polytope.InitPolygon(
		[]vector.Vector2{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		[][]int{{3, 1}, {0, 2}, {1, 3}, {2, 0}},
	)
	assert.NoError(t, err)

	tris := SplitIntoTriangles(poly, 0)
	assert.Len(t, tris, 2)

	var total float64
	for _, tr := range tris {
		total += signedArea2(poly, tr[0], tr[1], tr[2])
	}
	assert.InDelta(t, 2.0, total, 1e-12) // doubled area
}

func TestSplitIntoTrianglesDropsSlivers(t *testing.T) {
	poly, err := polytope.InitPolygon(
		[]vector.Vector2{{0, 0}, {1, 0}, {1, 1e-9}, {0, 1}},
		[][]int{{3, 1}, {0, 2}, {1, 3}, {2, 0}},
	)
	assert.NoError(t, err)

	tris := SplitIntoTriangles(poly, 1e-6)
	assert.Len(t, tris, 1)
}

func TestSplitIntoTetrahedraCube(t *testing.T) {
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
	assert.NoError(t, err)

	tets := SplitIntoTetrahedra(poly, 0)
	assert.Len(t, tets, 12) // 6 faces x 2 triangles each

	var total float64
	for _, tet := range tets {
		total += signedVolume3(poly, tet[0], tet[1], tet[2])
	}
	assert.InDelta(t, 6000.0, total, 1e-6) // doubled-tripled volume: 6 * 1000
}

// TestSplitIntoTetrahedraTranslatedCube fans a cube whose vertex 0 sits
// away from the world origin. Fanning from the world origin instead of
// poly[0].Position would produce tetrahedra that no longer partition
// the cube, so the summed volume would drift from the true 1000.
func TestSplitIntoTetrahedraTranslatedCube(t *testing.T) {
	poly, err := polytope.InitPolyhedron(
		[]vector.Vector3{
			{5, 5, 5}, {15, 5, 5}, {15, 15, 5}, {5, 15, 5},
			{5, 5, 15}, {15, 5, 15}, {15, 15, 15}, {5, 15, 15},
		},
		[][]int{
			{1, 4, 3}, {5, 0, 2}, {3, 6, 1}, {7, 2, 0},
			{5, 7, 0}, {1, 6, 4}, {5, 2, 7}, {4, 6, 3},
		},
	)
	assert.NoError(t, err)
	assert.NotEqual(t, vector.Vector3{0, 0, 0}, poly[0].Position)

	tets := SplitIntoTetrahedra(poly, 0)
	assert.Len(t, tets, 12)

	var total float64
	for _, tet := range tets {
		total += signedVolume3(poly, tet[0], tet[1], tet[2])
	}
	assert.InDelta(t, 6000.0, total, 1e-6)

	volume, _ := moments.Moments3D(poly)
	assert.InDelta(t, 1000.0, volume, 1e-6)
}
