package fem

import (
	"fmt"

	"github.com/notargets/facetsurf/utils"
)

// NewElement builds the finite element of entity ei with shape et, global
// vertex numbers vnums and polynomial order. The element's storage comes from
// lh; nothing is retained here, and repeated calls give fresh, equal values.
//
//	VOL   -> ErrUnsupportedCodimension
//	BND   -> FacetFE on triangles and quads
//	BBND  -> SegmentFE on segments
//	BBBND -> DummyFE
func NewElement(ei ElementId, et utils.ElementType, vnums []int, order int, lh *Arena) (fel FiniteElement, err error) {
	switch ei.VB {
	case VOL:
		err = Wrap(ErrUnsupportedCodimension, "fem", "NewElement",
			fmt.Sprintf("element %s: volume elements not available in a facet surface space", ei))
	case BND:
		switch et {
		case utils.Triangle, utils.Quad:
			var fe FacetFE
			if fe, err = NewFacetFE(et, vnums, order, lh); err == nil {
				fel = fe
			}
		default:
			err = Wrap(ErrUnsupportedElementShape, "fem", "NewElement", fmt.Sprintf("element %s of type %s", ei, et))
		}
	case BBND:
		switch et {
		case utils.Line:
			var fe SegmentFE
			if fe, err = NewSegmentFE(vnums, order, lh); err == nil {
				fel = fe
			}
		default:
			err = Wrap(ErrUnsupportedElementShape, "fem", "NewElement", fmt.Sprintf("element %s of type %s", ei, et))
		}
	case BBBND:
		fel = DummyFE{}
	default:
		err = Wrap(ErrUnsupportedCodimension, "fem", "NewElement", fmt.Sprintf("element %s", ei))
	}
	return
}
