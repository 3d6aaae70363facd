package diffop

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

func newQuad(t *testing.T, order int, lh *fem.Arena) fem.FacetFE {
	fe, err := fem.NewFacetFE(utils.Quad, []int{0, 1, 2, 3}, order, lh)
	require.NoError(t, err)
	return fe
}

func TestOperatorDimensions(t *testing.T) {
	for _, tc := range []struct {
		op       DifferentialOperator
		name     string
		dimElem  int
		dimSpace int
	}{
		{IdFacet{D: 3}, "IdFacet", 3, 3},
		{IdFacetSurface{D: 3}, "IdFacetSurface", 2, 3},
		{IdFacetSurfaceBoundary{D: 3}, "IdFacetSurfaceBoundary", 1, 3},
	} {
		assert.Equal(t, tc.name, tc.op.Name())
		assert.Equal(t, 1, tc.op.Dim())
		assert.Equal(t, tc.dimSpace, tc.op.DimSpace())
		assert.Equal(t, tc.dimElem, tc.op.DimElement())
		assert.Equal(t, 0, tc.op.DiffOrder())
	}
}

func TestIdFacet(t *testing.T) {
	var (
		lh  = fem.NewArena(1024)
		fe  = newQuad(t, 2, lh)
		op  = IdFacet{D: 3}
		M   = mat.NewDense(1, fe.NDof(), nil)
		ip  = fem.NewIntegrationPoint(1, 0.3, 0, 1)
		sh  = make([]float64, 3)
		all = make([]float64, fe.NDof())
	)
	// On facet 1 only the facet 1 block is set
	require.NoError(t, op.GenerateMatrix(fe, MappedPoint{IP: ip.OnFacet(1), VB: fem.BND, Measure: 1}, M, lh))
	fe.Facet(1).CalcShape(ip, sh)
	r := fe.GetFacetDofs(1)
	for i := 0; i < fe.NDof(); i++ {
		if r.Contains(i) {
			assert.Equal(t, sh[i-r.First], M.At(0, i))
		} else {
			assert.Equal(t, 0., M.At(0, i))
		}
	}

	// A surface point off the facets sees the whole element
	require.NoError(t, op.GenerateMatrix(fe, MappedPoint{IP: ip, VB: fem.BND, Measure: 1}, M, lh))
	fe.CalcShape(ip, all)
	assert.Equal(t, all, M.RawRowView(0))

	err := op.GenerateMatrix(fe, MappedPoint{IP: ip, VB: fem.VOL, Measure: 1}, M, lh)
	assert.ErrorIs(t, err, fem.ErrInvalidEvaluationContext)

	seg, err := fem.NewSegmentFE([]int{0, 1}, 2, lh)
	require.NoError(t, err)
	err = op.GenerateMatrix(seg, MappedPoint{IP: ip.OnFacet(0), VB: fem.BND}, mat.NewDense(1, 3, nil), lh)
	assert.ErrorIs(t, err, fem.ErrUnsupportedElementShape)

	err = op.GenerateMatrix(fe, MappedPoint{IP: ip.OnFacet(0), VB: fem.BND}, mat.NewDense(1, 3, nil), lh)
	assert.Error(t, err)

	// A quad has facets 0..3
	err = op.GenerateMatrix(fe, MappedPoint{IP: ip.OnFacet(fe.NFacets()), VB: fem.BND, Measure: 1}, M, lh)
	assert.ErrorIs(t, err, fem.ErrInvalidEvaluationContext)
}

func TestIdFacetRuleMatchesPointwise(t *testing.T) {
	var (
		lh    = fem.NewArena(1024)
		fe    = newQuad(t, 3, lh)
		ir, _ = fem.FacetRule(utils.Quad, 3, 6)
		mir   = NewMappedRule(ir, fem.BND, 1)
		op    = IdFacet{D: 3}
		B     = mat.NewDense(fe.NDof(), mir.Size(), nil)
		row   = mat.NewDense(1, fe.NDof(), nil)
	)
	require.NoError(t, op.GenerateMatrixRule(fe, mir, B, lh))
	for j := 0; j < mir.Size(); j++ {
		require.NoError(t, op.GenerateMatrix(fe, mir.Point(j), row, lh))
		assert.Equal(t, row.RawRowView(0), mat.Col(nil, j, B))
	}
}

func TestIdFacetSurface(t *testing.T) {
	var (
		lh    = fem.NewArena(1024)
		fe    = newQuad(t, 2, lh)
		op    = IdFacetSurface{D: 3}
		ir, _ = fem.FacetRule(utils.Quad, 2, 6) // 4 points on facet 2
		mir   = NewMappedRule(ir, fem.BND, 1)
		nd    = fe.NDof()
		x     = make([]float64, nd)
		rng   = rand.New(rand.NewSource(42))
	)
	require.Equal(t, 4, mir.Size())
	for i := range x {
		x[i] = rng.Float64() - 0.5
	}

	// Batched matrix equals the pointwise matrices
	B := mat.NewDense(nd, mir.Size(), nil)
	row := mat.NewDense(1, nd, nil)
	require.NoError(t, op.GenerateMatrixRule(fe, mir, B, lh))
	yPoint := make([]float64, mir.Size())
	for j := 0; j < mir.Size(); j++ {
		require.NoError(t, op.GenerateMatrix(fe, mir.Point(j), row, lh))
		assert.Equal(t, row.RawRowView(0), mat.Col(nil, j, B))
		yPoint[j] = utils.Dot(row.RawRowView(0), x)
	}

	// Batched evaluation equals pointwise evaluation
	y := make([]float64, mir.Size())
	require.NoError(t, op.Evaluate(fe, mir, x, y, lh))
	assert.InDeltaSlice(t, yPoint, y, 1.e-15)

	// <Evaluate(x), w> == <x, AddTrans(w)>
	w := make([]float64, mir.Size())
	for j := range w {
		w[j] = rng.Float64() - 0.5
	}
	xt := make([]float64, nd)
	require.NoError(t, op.AddTrans(fe, mir, w, xt, lh))
	assert.InDelta(t, utils.Dot(y, w), utils.Dot(x, xt), 1.e-13)
	r := fe.GetFacetDofs(2)
	for i := range xt {
		if !r.Contains(i) {
			assert.Equal(t, 0., xt[i])
		}
	}

	// AddTrans accumulates
	xt2 := make([]float64, nd)
	copy(xt2, xt)
	require.NoError(t, op.AddTrans(fe, mir, w, xt2, lh))
	for i := range xt {
		assert.InDelta(t, 2*xt[i], xt2[i], 1.e-15)
	}
}

func TestIdFacetSurfaceErrors(t *testing.T) {
	var (
		lh       = fem.NewArena(256)
		fe       = newQuad(t, 1, lh)
		op       = IdFacetSurface{D: 3}
		interior = fem.IntegrationRule{
			fem.NewIntegrationPoint(0.5, 0.5, 0, 1),
			fem.NewIntegrationPoint(0.2, 0.5, 0, 1),
		}
		mir = NewMappedRule(interior, fem.BND, 1)
		y   = make([]float64, 2)
		x   = make([]float64, fe.NDof())
	)
	err := op.GenerateMatrix(fe, mir.Point(0), mat.NewDense(1, fe.NDof(), nil), lh)
	assert.ErrorIs(t, err, fem.ErrInvalidEvaluationContext)

	err = op.GenerateMatrixRule(fe, mir, mat.NewDense(fe.NDof(), 2, nil), lh)
	assert.ErrorIs(t, err, fem.ErrUnsupportedBatchContext)
	assert.ErrorIs(t, op.Evaluate(fe, mir, x, y, lh), fem.ErrUnsupportedBatchContext)
	assert.ErrorIs(t, op.AddTrans(fe, mir, y, x, lh), fem.ErrUnsupportedBatchContext)

	// Facet numbers past the element's facets are rejected, not indexed
	pastLast := fem.IntegrationRule{interior[0].OnFacet(4), interior[1].OnFacet(4)}
	mir = NewMappedRule(pastLast, fem.BND, 1)
	err = op.GenerateMatrix(fe, mir.Point(0), mat.NewDense(1, fe.NDof(), nil), lh)
	assert.ErrorIs(t, err, fem.ErrInvalidEvaluationContext)
	err = op.GenerateMatrixRule(fe, mir, mat.NewDense(fe.NDof(), 2, nil), lh)
	assert.ErrorIs(t, err, fem.ErrInvalidEvaluationContext)
	assert.ErrorIs(t, op.Evaluate(fe, mir, x, y, lh), fem.ErrInvalidEvaluationContext)
	assert.ErrorIs(t, op.AddTrans(fe, mir, y, x, lh), fem.ErrInvalidEvaluationContext)

	// An empty rule is a no-op
	empty := NewMappedRule(nil, fem.BND, 1)
	assert.NoError(t, op.Evaluate(fe, empty, x, nil, lh))
	assert.NoError(t, op.AddTrans(fe, empty, nil, x, lh))
}

func TestIdFacetSurfaceBoundary(t *testing.T) {
	var (
		lh     = fem.NewArena(256)
		op     = IdFacetSurfaceBoundary{D: 3}
		seg, _ = fem.NewSegmentFE([]int{4, 1}, 2, lh)
		ir     = fem.SegmentRule(4)
		mir    = NewMappedRule(ir, fem.BBND, 2)
		B      = mat.NewDense(seg.NDof(), mir.Size(), nil)
		shape  = make([]float64, seg.NDof())
		x      = []float64{1, 2, 3}
		y      = make([]float64, mir.Size())
	)
	require.NoError(t, op.GenerateMatrixRule(seg, mir, B, lh))
	require.NoError(t, op.Evaluate(seg, mir, x, y, lh))
	for j, ip := range ir {
		seg.CalcShape(ip, shape)
		assert.Equal(t, shape, mat.Col(nil, j, B))
		assert.InDelta(t, utils.Dot(shape, x), y[j], 1.e-14)
	}
	assert.InDelta(t, 2., mir.Weight(0)/ir[0].Weight, 1.e-15)

	// Points carry no dofs
	var d fem.DummyFE
	assert.NoError(t, op.GenerateMatrix(d, MappedPoint{IP: ir[0], VB: fem.BBBND}, &mat.Dense{}, lh))
}
