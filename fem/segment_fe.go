package fem

import (
	"fmt"

	"github.com/notargets/facetsurf/utils"
)

// SegmentFE is the L2 high order element on a segment, order+1 Legendre
// functions in the segment coordinate oriented by global vertex numbers
type SegmentFE struct {
	vnums []int
	order int
}

func NewSegmentFE(vnums []int, order int, lh *Arena) (fe SegmentFE, err error) {
	if len(vnums) != 2 {
		err = fmt.Errorf("fem.NewSegmentFE: need 2 vertex numbers, have %d", len(vnums))
		return
	}
	if order < 0 {
		err = Wrap(ErrInvalidOrder, "fem", "NewSegmentFE", fmt.Sprintf("order %d", order))
		return
	}
	fe = SegmentFE{
		vnums: lh.CopyInts(vnums),
		order: order,
	}
	return
}

func (fe SegmentFE) ElementType() utils.ElementType { return utils.Line }

func (fe SegmentFE) Order() int { return fe.order }

func (fe SegmentFE) NDof() int { return fe.order + 1 }

func (fe SegmentFE) VertexNumbers() []int { return fe.vnums }

func (fe SegmentFE) CalcShape(ip IntegrationPoint, shape []float64) {
	newFacetShape(utils.Line, [2]int{0, 1}, fe.vnums, fe.order).CalcShape(ip, shape)
}
