package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

func TestEdgeNumber(t *testing.T) {
	en := NewEdgeNumber([2]int{7, 3})
	assert.Equal(t, en, NewEdgeNumber([2]int{3, 7}))
	assert.Equal(t, [2]int{3, 7}, en.GetVertices())
	en = NewEdgeNumber([2]int{1 << 31, 12})
	assert.Equal(t, [2]int{12, 1 << 31}, en.GetVertices())
	assert.Panics(t, func() { NewEdgeNumber([2]int{-1, 2}) })
}

func TestSingleQuad(t *testing.T) {
	m := NewSingleQuad()
	assert.Equal(t, 3, m.Dimension())
	assert.Equal(t, 4, m.NEdges())
	assert.Equal(t, 1, m.NLevels())
	assert.Equal(t, 0, m.NElements(fem.VOL))
	assert.Equal(t, 1, m.NElements(fem.BND))
	assert.Equal(t, 4, m.NElements(fem.BBND))
	assert.Equal(t, 4, m.NElements(fem.BBBND))

	sel := fem.NewElementId(fem.BND, 0)
	assert.Equal(t, utils.Quad, m.ElementType(sel))
	assert.Equal(t, []int{0, 1, 2, 3}, m.ElementVertices(sel))
	assert.Equal(t, []int{0, 1, 2, 3}, m.ElementEdges(sel))
	assert.Equal(t, 1, m.ElementIndex(sel))

	ed := fem.NewElementId(fem.BBND, 3)
	assert.Equal(t, utils.Line, m.ElementType(ed))
	assert.Equal(t, []int{0, 3}, m.ElementVertices(ed))
	assert.Equal(t, []int{3}, m.ElementEdges(ed))
	assert.Equal(t, 0, m.ElementIndex(ed))

	pt := fem.NewElementId(fem.BBBND, 2)
	assert.Equal(t, utils.Point, m.ElementType(pt))
	assert.Equal(t, []int{2}, m.ElementVertices(pt))
	assert.Nil(t, m.ElementEdges(pt))
	assert.Equal(t, [3]float64{1, 1, 0}, m.Vertex(2))

	m.AddLevel()
	assert.Equal(t, 2, m.NLevels())
}

func TestSingleTet(t *testing.T) {
	m := NewSingleTet()
	assert.Equal(t, 1, m.NElements(fem.VOL))
	assert.Equal(t, 4, m.NElements(fem.BND))
	// Every edge of the boundary is an edge of the tet, numbered from the volume
	assert.Equal(t, 6, m.NEdges())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, m.ElementEdges(fem.NewElementId(fem.VOL, 0)))
	for k := 0; k < 4; k++ {
		ei := fem.NewElementId(fem.BND, k)
		assert.Equal(t, utils.Triangle, m.ElementType(ei))
		assert.Equal(t, k+1, m.ElementIndex(ei))
		verts := m.ElementVertices(ei)
		for i, ed := range m.ElementEdges(ei) {
			le := utils.Triangle.GetEdges()[i]
			assert.Equal(t, NewEdgeNumber([2]int{verts[le[0]], verts[le[1]]}),
				NewEdgeNumber(m.Edges[ed].Vertices))
		}
	}
	assert.Equal(t, []int{2, 1, 0}, m.ElementEdges(fem.NewElementId(fem.BND, 0)))
	assert.Equal(t, utils.Tet, m.ElementType(fem.NewElementId(fem.VOL, 0)))
}

func TestPlates(t *testing.T) {
	for _, tc := range []struct{ nx, ny int }{{1, 1}, {2, 1}, {3, 4}} {
		var (
			quads  = NewQuadPlate(tc.nx, tc.ny)
			trigs  = NewTrigPlate(tc.nx, tc.ny)
			nEdges = tc.nx*(tc.ny+1) + tc.ny*(tc.nx+1)
			nVerts = (tc.nx + 1) * (tc.ny + 1)
		)
		assert.Equal(t, nEdges, quads.NEdges())
		assert.Equal(t, nEdges+tc.nx*tc.ny, trigs.NEdges())
		assert.Equal(t, tc.nx*tc.ny, quads.NElements(fem.BND))
		assert.Equal(t, 2*tc.nx*tc.ny, trigs.NElements(fem.BND))
		assert.Equal(t, nVerts, quads.NElements(fem.BBBND))
		assert.Equal(t, nVerts, trigs.NElements(fem.BBBND))
		assert.Equal(t, 3, quads.Dimension())
	}
	m := NewQuadPlate(2, 1)
	assert.Equal(t, 1, m.ElementIndex(fem.NewElementId(fem.BND, 0)))
	assert.Equal(t, 2, m.ElementIndex(fem.NewElementId(fem.BND, 1)))

	assert.Equal(t, 2, NewPlanarQuadPlate(1, 1).Dimension())
	assert.Panics(t, func() { NewQuadPlate(0, 1) })
}

func TestBuildConnectivityErrors(t *testing.T) {
	m := NewSurfaceMesh(3)
	m.AddVertex(0, 0, 0)
	m.AddVertex(1, 0, 0)
	m.AddVertex(0, 1, 0)
	m.AddSurfaceElement(utils.Triangle, 1, 0, 1, 5)
	assert.Error(t, m.BuildConnectivity())

	m = NewSurfaceMesh(3)
	m.AddVertex(0, 0, 0)
	m.AddVertex(1, 0, 0)
	m.AddVertex(0, 1, 0)
	m.AddSurfaceElement(utils.Quad, 1, 0, 1, 2)
	assert.Error(t, m.BuildConnectivity())

	m = NewSurfaceMesh(3)
	m.AddVertex(0, 0, 0)
	m.AddVertex(1, 0, 0)
	m.AddSurfaceElement(utils.Line, 1, 0, 1)
	assert.Error(t, m.BuildConnectivity())

	// Rebuilding starts the numbering over
	m = NewSingleQuad()
	require.NoError(t, m.BuildConnectivity())
	assert.Equal(t, 4, m.NEdges())
	assert.Len(t, m.EdgeMap, 4)
}
