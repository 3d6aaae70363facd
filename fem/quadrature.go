package fem

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/utils"
)

// JacobiGQ returns the N+1 point Gauss quadrature for the Jacobi weight
// (1-x)^alpha (1+x)^beta on [-1,1], computed from the eigen decomposition of
// the symmetric tridiagonal Jacobi matrix
func JacobiGQ(alpha, beta float64, N int) (X, W []float64) {
	var (
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
		ab1        = alpha + beta + 1.
		gamma0     = math.Gamma(alpha+1.) * math.Gamma(beta+1.) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
	)
	if N == 0 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{gamma0}
		return
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag(-(alpha^2-beta^2)./(h1+2)./h1), the symmetric J+J'
	d0 = make([]float64, N+1)
	fac = -(alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	X = eig.Values(nil)

	VVr = mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VVr)
	W = make([]float64, N+1)
	for i := range W {
		v := VVr.At(0, i)
		W[i] = v * v * gamma0
	}
	return
}

// IntegrationPoint is a point in the reference element of the entity being
// evaluated. FacetNr names the local facet the point lies on, -1 if none.
type IntegrationPoint struct {
	Point   [3]float64
	Weight  float64
	FacetNr int
}

func NewIntegrationPoint(x, y, z, weight float64) IntegrationPoint {
	return IntegrationPoint{
		Point:   [3]float64{x, y, z},
		Weight:  weight,
		FacetNr: -1,
	}
}

// OnFacet returns a copy of ip tagged with facet number f
func (ip IntegrationPoint) OnFacet(f int) IntegrationPoint {
	ip.FacetNr = f
	return ip
}

type IntegrationRule []IntegrationPoint

// Size returns the number of points in the rule
func (ir IntegrationRule) Size() int { return len(ir) }

// SegmentRule is the Gauss-Legendre rule on [0,1] exact for polynomials of
// degree order. Weights sum to one.
func SegmentRule(order int) (ir IntegrationRule) {
	if order < 0 {
		order = 0
	}
	var (
		N    = order / 2 // N+1 points
		X, W = JacobiGQ(0, 0, N)
	)
	ir = make(IntegrationRule, N+1)
	for i := range ir {
		ir[i] = NewIntegrationPoint(0.5*(X[i]+1.), 0, 0, 0.5*W[i])
	}
	return
}

// FacetRule maps SegmentRule(order) onto local edge facet of the reference
// element et, running from the edge's first to its second local vertex. Every
// point is tagged with the facet number.
func FacetRule(et utils.ElementType, facet, order int) (ir IntegrationRule, err error) {
	var (
		edges = et.GetEdges()
		verts = ReferenceVertices(et)
	)
	if et.GetDimension() != 2 || verts == nil {
		err = Wrap(ErrUnsupportedElementShape, "fem", "FacetRule", fmt.Sprintf("element type %s", et))
		return
	}
	if facet < 0 || facet >= len(edges) {
		err = fmt.Errorf("fem.FacetRule: facet %d out of range for %s with %d facets", facet, et, len(edges))
		return
	}
	var (
		p0 = verts[edges[facet][0]]
		p1 = verts[edges[facet][1]]
	)
	ir = SegmentRule(order)
	for i, ip := range ir {
		t := ip.Point[0]
		for d := 0; d < 3; d++ {
			ir[i].Point[d] = (1-t)*p0[d] + t*p1[d]
		}
		ir[i].FacetNr = facet
	}
	return
}
