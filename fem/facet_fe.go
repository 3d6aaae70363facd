package fem

import (
	"fmt"

	"github.com/notargets/facetsurf/utils"
)

// FacetFE carries order+1 Legendre functions on every edge of a triangle or
// quad. Facet f owns dofs [f*(order+1), (f+1)*(order+1)).
type FacetFE struct {
	et    utils.ElementType
	vnums []int
	order int
}

func NewFacetFE(et utils.ElementType, vnums []int, order int, lh *Arena) (fe FacetFE, err error) {
	switch et {
	case utils.Triangle, utils.Quad:
	default:
		err = Wrap(ErrUnsupportedElementShape, "fem", "NewFacetFE", fmt.Sprintf("no facet element for %s", et))
		return
	}
	if len(vnums) != et.GetNumVertices() {
		err = fmt.Errorf("fem.NewFacetFE: %s needs %d vertex numbers, have %d", et, et.GetNumVertices(), len(vnums))
		return
	}
	if order < 0 {
		err = Wrap(ErrInvalidOrder, "fem", "NewFacetFE", fmt.Sprintf("order %d", order))
		return
	}
	fe = FacetFE{
		et:    et,
		vnums: lh.CopyInts(vnums),
		order: order,
	}
	return
}

func (fe FacetFE) ElementType() utils.ElementType { return fe.et }

func (fe FacetFE) Order() int { return fe.order }

func (fe FacetFE) NFacets() int { return fe.et.GetNumEdges() }

func (fe FacetFE) NDof() int { return fe.NFacets() * (fe.order + 1) }

func (fe FacetFE) VertexNumbers() []int { return fe.vnums }

func (fe FacetFE) GetFacetDofs(f int) utils.Range {
	nd := fe.order + 1
	return utils.Range{First: f * nd, Next: (f + 1) * nd}
}

// Facet returns the shape functions of facet f, which must be below NFacets
func (fe FacetFE) Facet(f int) FacetShape {
	return newFacetShape(fe.et, fe.et.GetEdges()[f], fe.vnums, fe.order)
}

// CalcShape evaluates every facet's functions at ip, each into its own block
func (fe FacetFE) CalcShape(ip IntegrationPoint, shape []float64) {
	for f := 0; f < fe.NFacets(); f++ {
		r := fe.GetFacetDofs(f)
		fe.Facet(f).CalcShape(ip, shape[r.First:r.Next])
	}
}
