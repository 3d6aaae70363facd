package fem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/facetsurf/utils"
)

func TestJacobiGQ(t *testing.T) {
	X, W := JacobiGQ(0, 0, 0)
	assert.InDelta(t, 0., X[0], 1.e-15)
	assert.InDelta(t, 2., W[0], 1.e-14)

	X, W = JacobiGQ(0, 0, 1)
	assert.InDelta(t, -0.5773502691896257, X[0], 1.e-12)
	assert.InDelta(t, 0.5773502691896257, X[1], 1.e-12)
	assert.InDelta(t, 1., W[0], 1.e-12)
	assert.InDelta(t, 1., W[1], 1.e-12)

	// Unequal exponents: moments of (1-x)^a (1+x)^b against x = 2u-1 with u
	// Beta(b+1, a+1) distributed
	for _, ab := range [][2]float64{{0.5, 2}, {2, 0}, {1, 3}} {
		var (
			a, b = ab[0], ab[1]
			mass = math.Pow(2, a+b+1) * math.Gamma(a+1) * math.Gamma(b+1) / math.Gamma(a+b+2)
			eu   = (b + 1) / (a + b + 2)
			eu2  = eu*eu + (a+1)*(b+1)/((a+b+2)*(a+b+2)*(a+b+3))
		)
		var m0, m1, m2 float64
		X, W = JacobiGQ(a, b, 6)
		for i := range X {
			m0 += W[i]
			m1 += W[i] * X[i]
			m2 += W[i] * X[i] * X[i]
		}
		assert.InDelta(t, mass, m0, 1.e-12, "alpha %v beta %v", a, b)
		assert.InDelta(t, mass*(2*eu-1), m1, 1.e-12, "alpha %v beta %v", a, b)
		assert.InDelta(t, mass*(4*eu2-4*eu+1), m2, 1.e-12, "alpha %v beta %v", a, b)
		// One point rule sits at the weighted mean
		X, _ = JacobiGQ(a, b, 0)
		assert.InDelta(t, 2*eu-1, X[0], 1.e-14)
	}
}

func TestSegmentRule(t *testing.T) {
	for order := 0; order < 10; order++ {
		ir := SegmentRule(order)
		assert.Equal(t, order/2+1, ir.Size())
		// Exact for monomials up to degree order on [0,1]
		for p := 0; p <= order; p++ {
			var sum, wsum float64
			for _, ip := range ir {
				sum += ip.Weight * math.Pow(ip.Point[0], float64(p))
				wsum += ip.Weight
				assert.Equal(t, -1, ip.FacetNr)
			}
			assert.InDelta(t, 1./float64(p+1), sum, 1.e-12, "order %d, degree %d", order, p)
			assert.InDelta(t, 1., wsum, 1.e-12)
		}
	}
}

func TestFacetRule(t *testing.T) {
	for _, et := range []utils.ElementType{utils.Triangle, utils.Quad} {
		verts := ReferenceVertices(et)
		for f, e := range et.GetEdges() {
			ir, err := FacetRule(et, f, 4)
			require.NoError(t, err)
			for _, ip := range ir {
				assert.Equal(t, f, ip.FacetNr)
				// Points sit on the segment between the edge vertices
				p0, p1 := verts[e[0]], verts[e[1]]
				tt := ip.Point[0] - p0[0]
				if d := p1[0] - p0[0]; d != 0 {
					tt /= d
				} else {
					tt = (ip.Point[1] - p0[1]) / (p1[1] - p0[1])
				}
				for d := 0; d < 2; d++ {
					assert.InDelta(t, (1-tt)*p0[d]+tt*p1[d], ip.Point[d], 1.e-14)
				}
			}
		}
	}
	_, err := FacetRule(utils.Triangle, 3, 2)
	assert.Error(t, err)
	_, err = FacetRule(utils.Tet, 0, 2)
	assert.ErrorIs(t, err, ErrUnsupportedElementShape)
}
