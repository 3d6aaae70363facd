package assembly

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/diffop"
	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/fespace"
	"github.com/notargets/facetsurf/utils"
)

// Assembler runs element loops of a space on ParallelDegree go routines. Each
// go routine owns one arena, results are merged in bucket order so the output
// does not depend on scheduling.
type Assembler struct {
	Space            fespace.Space
	ParallelDegree   int // zero for one go routine per CPU
	IntegrationOrder int // zero for twice the element order
	logger           zerolog.Logger
}

func NewAssembler(space fespace.Space, parallelDegree, integrationOrder int, logger zerolog.Logger) *Assembler {
	return &Assembler{
		Space:            space,
		ParallelDegree:   parallelDegree,
		IntegrationOrder: integrationOrder,
		logger:           logger,
	}
}

type elementMatrix struct {
	dnums utils.Index
	elmat *mat.Dense
}

// elementFunc processes active element ei in bucket bn, with lh freshly reset
type elementFunc func(bn int, ei fem.ElementId, lh *fem.Arena) error

// ElementPartitioner is implemented by meshes that split their surface
// elements among workers themselves, EToP[k] is the bucket of element k
type ElementPartitioner interface {
	PartitionSurface(nparts int) (EToP []int, err error)
}

// buckets returns the element numbers handled by each go routine
func (a *Assembler) buckets(vb fem.VorB) (buckets [][]int, err error) {
	var (
		ma = a.Space.Mesh()
		ne = ma.NElements(vb)
		NP = utils.ParallelDegree(a.ParallelDegree, ne)
	)
	buckets = make([][]int, NP)
	if ep, ok := ma.(ElementPartitioner); ok && vb == fem.BND {
		var EToP []int
		if EToP, err = ep.PartitionSurface(NP); err != nil {
			return
		}
		for k, np := range EToP {
			buckets[np] = append(buckets[np], k)
		}
		return
	}
	pm := utils.NewPartitionMap(NP, ne)
	for np := range buckets {
		kMin, kMax := pm.GetBucketRange(np)
		buckets[np] = utils.NewRange(kMin, kMax-1)
	}
	return
}

func (a *Assembler) forElements(vb fem.VorB, buckets [][]int, fn elementFunc) (err error) {
	var (
		NP   = len(buckets)
		wg   = sync.WaitGroup{}
		errs = make([]error, NP)
	)
	for np := 0; np < NP; np++ {
		wg.Add(1)
		go func(np int) {
			defer wg.Done()
			lh := fem.NewArena(4096)
			for _, k := range buckets[np] {
				ei := fem.NewElementId(vb, k)
				if !a.Space.DefinedOn(ei) {
					continue
				}
				lh.Reset()
				if errs[np] = fn(np, ei, lh); errs[np] != nil {
					return
				}
			}
		}(np)
	}
	wg.Wait()
	for _, err = range errs {
		if err != nil {
			return
		}
	}
	return
}

// FacetRules returns one rule per facet of the surface element ei, each scaled
// by the physical length of its edge
func (a *Assembler) FacetRules(ei fem.ElementId, fel fem.FiniteElement) (rules []diffop.MappedRule, err error) {
	var (
		ma    = a.Space.Mesh()
		et    = fel.ElementType()
		verts = ma.ElementVertices(ei)
		order = a.IntegrationOrder
	)
	if order <= 0 {
		order = 2 * fel.Order()
	}
	fv, ok := fel.(fem.FacetVolumeElement)
	if !ok {
		err = fem.Wrap(fem.ErrUnsupportedElementShape, "assembly", "FacetRules",
			fmt.Sprintf("element %s of type %s has no facets", ei, et))
		return
	}
	rules = make([]diffop.MappedRule, fv.NFacets())
	for f, e := range et.GetEdges() {
		var ir fem.IntegrationRule
		if ir, err = fem.FacetRule(et, f, order); err != nil {
			return
		}
		rules[f] = diffop.NewMappedRule(ir, ei.VB, distance(ma.Vertex(verts[e[0]]), ma.Vertex(verts[e[1]])))
	}
	return
}

func distance(p, q [3]float64) float64 {
	var sum float64
	for d := 0; d < 3; d++ {
		sum += (q[d] - p[d]) * (q[d] - p[d])
	}
	return math.Sqrt(sum)
}

func (a *Assembler) integrator(vb fem.VorB) (integ diffop.Integrator, err error) {
	if integ = a.Space.GetIntegrator(vb); integ == nil {
		err = fem.Wrap(fem.ErrUnsupportedCodimension, "assembly", "Assembler",
			fmt.Sprintf("space %s has no integrator on %s", a.Space.Name(), vb))
	}
	return
}

// AssembleMatrix builds the global matrix of the space's default form on
// codimension vb
func (a *Assembler) AssembleMatrix(vb fem.VorB) (A utils.CSR, err error) {
	var (
		integ   diffop.Integrator
		results [][]elementMatrix
		buckets [][]int
		ndof    = a.Space.GetNDof()
	)
	if integ, err = a.integrator(vb); err != nil {
		return
	}
	if buckets, err = a.buckets(vb); err != nil {
		return
	}
	results = make([][]elementMatrix, len(buckets))
	err = a.forElements(vb, buckets, func(bn int, ei fem.ElementId, lh *fem.Arena) (err error) {
		var (
			fel   fem.FiniteElement
			rules []diffop.MappedRule
			elmat *mat.Dense
		)
		if fel, err = a.Space.GetFiniteElement(ei, lh); err != nil || fel.NDof() == 0 {
			return
		}
		if rules, err = a.FacetRules(ei, fel); err != nil {
			return
		}
		if elmat, err = integ.CalcElementMatrix(fel, rules, lh); err != nil {
			return
		}
		// The arena is reset for the next element
		results[bn] = append(results[bn], elementMatrix{
			dnums: a.Space.GetDofNumbers(ei),
			elmat: mat.DenseCopyOf(elmat),
		})
		return
	})
	if err != nil {
		return
	}
	dok := utils.NewDOK(ndof, ndof)
	for _, bucket := range results {
		for _, em := range bucket {
			if err = dok.Scatter(em.dnums, em.elmat); err != nil {
				return
			}
		}
	}
	dok.SetReadOnly(fmt.Sprintf("%s on %s", integ.Name(), vb))
	A = dok.ToCSR()
	a.logger.Debug().
		Int("parallel_degree", len(buckets)).
		Int("ndof", ndof).
		Int("nnz", A.NNZ()).
		Msg("assembled matrix")
	return
}

// Apply returns the global matrix of the space's default form on vb times x,
// computed element by element without assembling it
func (a *Assembler) Apply(vb fem.VorB, x []float64) (y []float64, err error) {
	var (
		integ   diffop.Integrator
		buckets [][]int
		ndof    = a.Space.GetNDof()
		parts   [][]float64
	)
	if len(x) != ndof {
		err = fmt.Errorf("assembly.Apply: vector has length %d, space has %d dofs", len(x), ndof)
		return
	}
	if integ, err = a.integrator(vb); err != nil {
		return
	}
	if buckets, err = a.buckets(vb); err != nil {
		return
	}
	parts = make([][]float64, len(buckets))
	for bn := range parts {
		parts[bn] = make([]float64, ndof)
	}
	err = a.forElements(vb, buckets, func(bn int, ei fem.ElementId, lh *fem.Arena) (err error) {
		var (
			fel   fem.FiniteElement
			rules []diffop.MappedRule
		)
		if fel, err = a.Space.GetFiniteElement(ei, lh); err != nil || fel.NDof() == 0 {
			return
		}
		if rules, err = a.FacetRules(ei, fel); err != nil {
			return
		}
		var (
			dnums = a.Space.GetDofNumbers(ei)
			xl    = lh.Floats(len(dnums))
			yl    = lh.Floats(len(dnums))
		)
		for i, d := range dnums {
			xl[i] = x[d]
		}
		if err = integ.ApplyElementMatrix(fel, rules, xl, yl, lh); err != nil {
			return
		}
		for i, d := range dnums {
			parts[bn][d] += yl[i]
		}
		return
	})
	if err != nil {
		return
	}
	y = make([]float64, ndof)
	for _, part := range parts {
		for i, val := range part {
			y[i] += val
		}
	}
	return
}
