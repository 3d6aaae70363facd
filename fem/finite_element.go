package fem

import (
	"github.com/notargets/facetsurf/utils"
)

// FiniteElement describes the shape functions of one mesh element at one
// codimension. Values are built per call and own no global state.
type FiniteElement interface {
	ElementType() utils.ElementType
	NDof() int
	Order() int
	// CalcShape writes every shape function of the element at ip into shape[:NDof()]
	CalcShape(ip IntegrationPoint, shape []float64)
}

// FacetVolumeElement is an element whose degrees of freedom all live on its
// facets. Each facet owns the contiguous block GetFacetDofs(f) and is described
// by a self contained one dimensional element.
type FacetVolumeElement interface {
	FiniteElement
	NFacets() int
	GetFacetDofs(f int) utils.Range
	Facet(f int) FacetShape
}
