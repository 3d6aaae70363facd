package fem

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/utils"
)

// FacetShape is the one dimensional L2 element living on one edge of a
// reference element. The edge is oriented from its lower to its higher global
// vertex number, so neighbouring elements see the same functions on a shared
// edge.
type FacetShape struct {
	et    utils.ElementType // Reference element the edge belongs to
	a, b  int               // Local vertices, a has the lower global number
	order int
}

func newFacetShape(et utils.ElementType, edge [2]int, vnums []int, order int) FacetShape {
	a, b := edge[0], edge[1]
	if vnums[a] > vnums[b] {
		a, b = b, a
	}
	return FacetShape{et: et, a: a, b: b, order: order}
}

func (fs FacetShape) NDof() int { return fs.order + 1 }

func (fs FacetShape) Order() int { return fs.order }

// EdgeCoordinate returns the oriented edge parameter s in [-1,1] seen from ip
func (fs FacetShape) EdgeCoordinate(ip IntegrationPoint) float64 {
	return vertexFunction(fs.et, fs.b, ip.Point) - vertexFunction(fs.et, fs.a, ip.Point)
}

// CalcShape writes the NDof() edge functions at ip into shape
func (fs FacetShape) CalcShape(ip IntegrationPoint, shape []float64) {
	LegendreBasis(fs.EdgeCoordinate(ip), fs.order, shape[:fs.NDof()])
}

// CalcShapeRule writes shape function i at point j of ir into M(first+i, j)
func (fs FacetShape) CalcShapeRule(ir IntegrationRule, M *mat.Dense, first int, lh *Arena) {
	var (
		nd    = fs.NDof()
		shape = lh.Floats(nd)
	)
	for j, ip := range ir {
		fs.CalcShape(ip, shape)
		for i, val := range shape {
			M.Set(first+i, j, val)
		}
	}
}

// Evaluate computes y[j] = sum_i shape_i(ir[j]) * coefs[i] for every point of ir
func (fs FacetShape) Evaluate(ir IntegrationRule, coefs []float64, y []float64, lh *Arena) {
	var (
		shape = lh.Floats(fs.NDof())
	)
	for j, ip := range ir {
		fs.CalcShape(ip, shape)
		y[j] = utils.Dot(shape, coefs)
	}
}

// AddTrans accumulates coefs[i] += sum_j shape_i(ir[j]) * y[j], the adjoint of Evaluate
func (fs FacetShape) AddTrans(ir IntegrationRule, y []float64, coefs []float64, lh *Arena) {
	var (
		shape = lh.Floats(fs.NDof())
	)
	for j, ip := range ir {
		fs.CalcShape(ip, shape)
		utils.Axpy(y[j], shape, coefs)
	}
}
