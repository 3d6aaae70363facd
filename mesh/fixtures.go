package mesh

import (
	"fmt"

	"github.com/notargets/facetsurf/utils"
)

// Standard meshes used by the command line driver and the tests. They are
// fixtures, every one is built from fixed connectivity.

// NewSingleQuad returns the unit square at z = 0 as one quad surface element
func NewSingleQuad() (m *SurfaceMesh) {
	m = NewSurfaceMesh(3)
	m.AddVertex(0, 0, 0)
	m.AddVertex(1, 0, 0)
	m.AddVertex(1, 1, 0)
	m.AddVertex(0, 1, 0)
	m.AddSurfaceElement(utils.Quad, 1, 0, 1, 2, 3)
	mustConnect(m)
	return
}

// NewSingleTet returns the unit tetrahedron together with its four boundary
// triangles, each in its own boundary region 1..4
func NewSingleTet() (m *SurfaceMesh) {
	m = NewSurfaceMesh(3)
	m.AddVertex(0, 0, 0)
	m.AddVertex(1, 0, 0)
	m.AddVertex(0, 1, 0)
	m.AddVertex(0, 0, 1)
	tet := []int{0, 1, 2, 3}
	m.AddElement(utils.Tet, tet...)
	for f, face := range utils.GetElementFaces(utils.Tet, tet) {
		m.AddSurfaceElement(utils.Triangle, f+1, face...)
	}
	mustConnect(m)
	return
}

// NewQuadPlate returns an nx by ny grid of unit quads at z = 0. Columns in the
// left half are boundary region 1, the rest region 2.
func NewQuadPlate(nx, ny int) (m *SurfaceMesh) {
	return newPlate(3, nx, ny, false)
}

// NewTrigPlate is NewQuadPlate with every quad split into two triangles
func NewTrigPlate(nx, ny int) (m *SurfaceMesh) {
	return newPlate(3, nx, ny, true)
}

// NewPlanarQuadPlate is the quad plate posed as a 2D mesh
func NewPlanarQuadPlate(nx, ny int) (m *SurfaceMesh) {
	return newPlate(2, nx, ny, false)
}

func newPlate(dim, nx, ny int, split bool) (m *SurfaceMesh) {
	if nx < 1 || ny < 1 {
		panic(fmt.Errorf("plate needs at least one cell in each direction, have %d x %d", nx, ny))
	}
	m = NewSurfaceMesh(dim)
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			m.AddVertex(float64(i), float64(j), 0)
		}
	}
	vid := func(i, j int) int { return i + j*(nx+1) }
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			tag := 1 + (2*i)/nx
			v0, v1, v2, v3 := vid(i, j), vid(i+1, j), vid(i+1, j+1), vid(i, j+1)
			if split {
				m.AddSurfaceElement(utils.Triangle, tag, v0, v1, v2)
				m.AddSurfaceElement(utils.Triangle, tag, v0, v2, v3)
			} else {
				m.AddSurfaceElement(utils.Quad, tag, v0, v1, v2, v3)
			}
		}
	}
	mustConnect(m)
	return
}

func mustConnect(m *SurfaceMesh) {
	if err := m.BuildConnectivity(); err != nil {
		panic(err)
	}
}
