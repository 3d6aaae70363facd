package diffop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// DifferentialOperator maps the coefficient vector of a finite element to
// values at mapped points. All the operators here are the identity of a
// scalar field, so Dim is 1 and every matrix row is a vector of shape values.
type DifferentialOperator interface {
	Name() string
	Dim() int
	DimSpace() int
	DimElement() int
	DiffOrder() int
	// GenerateMatrix fills the 1 x NDof matrix M at one point
	GenerateMatrix(fel fem.FiniteElement, mip MappedPoint, M *mat.Dense, lh *fem.Arena) error
	// GenerateMatrixRule fills the NDof x npts matrix M, column j for point j
	GenerateMatrixRule(fel fem.FiniteElement, mir MappedRule, M *mat.Dense, lh *fem.Arena) error
	// Evaluate sets y[j] to the field with coefficients x at point j
	Evaluate(fel fem.FiniteElement, mir MappedRule, x, y []float64, lh *fem.Arena) error
	// AddTrans accumulates the adjoint of Evaluate into x
	AddTrans(fel fem.FiniteElement, mir MappedRule, y, x []float64, lh *fem.Arena) error
}

// pointGenerator is the single point part of an operator, the rule versions
// below are built on it
type pointGenerator interface {
	Name() string
	GenerateMatrix(fel fem.FiniteElement, mip MappedPoint, M *mat.Dense, lh *fem.Arena) error
}

func checkDims(op, method string, M *mat.Dense, nr, nc int) error {
	if (nr == 0 || nc == 0) && M.IsEmpty() {
		return nil
	}
	if r, c := M.Dims(); r != nr || c != nc {
		return fmt.Errorf("diffop.%s.%s: matrix is %d x %d, need %d x %d", op, method, r, c, nr, nc)
	}
	return nil
}

func generateMatrixRule(op pointGenerator, fel fem.FiniteElement, mir MappedRule, M *mat.Dense, lh *fem.Arena) (err error) {
	var (
		nd = fel.NDof()
	)
	if err = checkDims(op.Name(), "GenerateMatrixRule", M, nd, mir.Size()); err != nil {
		return
	}
	if nd == 0 {
		return
	}
	row := lh.Matrix(1, nd)
	for j := 0; j < mir.Size(); j++ {
		if err = op.GenerateMatrix(fel, mir.Point(j), row, lh); err != nil {
			return
		}
		M.SetCol(j, row.RawRowView(0))
	}
	return
}

func evaluate(op pointGenerator, fel fem.FiniteElement, mir MappedRule, x, y []float64, lh *fem.Arena) (err error) {
	var (
		nd = fel.NDof()
	)
	if nd == 0 {
		for j := 0; j < mir.Size(); j++ {
			y[j] = 0
		}
		return
	}
	row := lh.Matrix(1, nd)
	for j := 0; j < mir.Size(); j++ {
		if err = op.GenerateMatrix(fel, mir.Point(j), row, lh); err != nil {
			return
		}
		y[j] = utils.Dot(row.RawRowView(0), x)
	}
	return
}

func addTrans(op pointGenerator, fel fem.FiniteElement, mir MappedRule, y, x []float64, lh *fem.Arena) (err error) {
	var (
		nd = fel.NDof()
	)
	if nd == 0 {
		return
	}
	row := lh.Matrix(1, nd)
	for j := 0; j < mir.Size(); j++ {
		if err = op.GenerateMatrix(fel, mir.Point(j), row, lh); err != nil {
			return
		}
		utils.Axpy(y[j], row.RawRowView(0), x)
	}
	return
}

func facetElement(op, method string, fel fem.FiniteElement) (fv fem.FacetVolumeElement, err error) {
	var ok bool
	if fv, ok = fel.(fem.FacetVolumeElement); !ok {
		err = fem.Wrap(fem.ErrUnsupportedElementShape, "diffop", op+"."+method,
			fmt.Sprintf("%s element has no facets", fel.ElementType()))
	}
	return
}

// elementFacet returns fel as a facet element after checking that f is one of
// its facets
func elementFacet(op, method string, fel fem.FiniteElement, f int) (fv fem.FacetVolumeElement, err error) {
	if fv, err = facetElement(op, method, fel); err != nil {
		return
	}
	if f >= fv.NFacets() {
		err = fem.Wrap(fem.ErrInvalidEvaluationContext, "diffop", op+"."+method,
			fmt.Sprintf("facet %d of a %s element with %d facets", f, fel.ElementType(), fv.NFacets()))
	}
	return
}

// setFacetRow writes the shapes of facet f at ip into the facet's block of
// row 0 of M, every other entry zero
func setFacetRow(fv fem.FacetVolumeElement, f int, ip fem.IntegrationPoint, M *mat.Dense) {
	M.Zero()
	fv.Facet(f).CalcShape(ip, utils.RowRange(M, 0, fv.GetFacetDofs(f)))
}
