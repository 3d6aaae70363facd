package fespace

import (
	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// MeshAccess is the read only view of the mesh topology the space is built
// on. mesh.SurfaceMesh implements it.
type MeshAccess interface {
	Dimension() int
	NElements(vb fem.VorB) int
	NEdges() int
	NLevels() int
	ElementType(ei fem.ElementId) utils.ElementType
	ElementVertices(ei fem.ElementId) []int
	ElementEdges(ei fem.ElementId) []int
	// ElementIndex is the region tag of the element
	ElementIndex(ei fem.ElementId) int
	Vertex(v int) [3]float64
}
