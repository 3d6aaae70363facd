package diffop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// DimSpace is the dimension of the space every mesh of a facet surface space
// lives in
const DimSpace = 3

// IdFacet evaluates facet functions on elements of dimension D. A point on a
// facet sees only that facet's functions. Surface points off any facet see
// the whole element.
type IdFacet struct {
	D int
}

func (op IdFacet) Name() string    { return "IdFacet" }
func (op IdFacet) Dim() int        { return 1 }
func (op IdFacet) DimSpace() int   { return DimSpace }
func (op IdFacet) DimElement() int { return op.D }
func (op IdFacet) DiffOrder() int  { return 0 }

func (op IdFacet) GenerateMatrix(fel fem.FiniteElement, mip MappedPoint, M *mat.Dense, lh *fem.Arena) (err error) {
	if err = checkDims(op.Name(), "GenerateMatrix", M, 1, fel.NDof()); err != nil || fel.NDof() == 0 {
		return
	}
	f := mip.IP.FacetNr
	switch {
	case f >= 0:
		var fv fem.FacetVolumeElement
		if fv, err = elementFacet(op.Name(), "GenerateMatrix", fel, f); err != nil {
			return
		}
		setFacetRow(fv, f, mip.IP, M)
	case mip.VB == fem.BND:
		M.Zero()
		fel.CalcShape(mip.IP, M.RawRowView(0))
	default:
		err = fem.Wrap(fem.ErrInvalidEvaluationContext, "diffop", "IdFacet.GenerateMatrix",
			fmt.Sprintf("point off every facet on a %s element", mip.VB))
	}
	return
}

func (op IdFacet) GenerateMatrixRule(fel fem.FiniteElement, mir MappedRule, M *mat.Dense, lh *fem.Arena) error {
	return generateMatrixRule(op, fel, mir, M, lh)
}

func (op IdFacet) Evaluate(fel fem.FiniteElement, mir MappedRule, x, y []float64, lh *fem.Arena) error {
	return evaluate(op, fel, mir, x, y, lh)
}

func (op IdFacet) AddTrans(fel fem.FiniteElement, mir MappedRule, y, x []float64, lh *fem.Arena) error {
	return addTrans(op, fel, mir, y, x, lh)
}

// IdFacetSurface evaluates facet functions on surface elements, whose
// dimension is D-1. Every point must lie on a facet. A whole rule is treated as
// lying on the facet of its first point.
type IdFacetSurface struct {
	D int
}

func (op IdFacetSurface) Name() string    { return "IdFacetSurface" }
func (op IdFacetSurface) Dim() int        { return 1 }
func (op IdFacetSurface) DimSpace() int   { return DimSpace }
func (op IdFacetSurface) DimElement() int { return op.D - 1 }
func (op IdFacetSurface) DiffOrder() int  { return 0 }

func (op IdFacetSurface) GenerateMatrix(fel fem.FiniteElement, mip MappedPoint, M *mat.Dense, lh *fem.Arena) (err error) {
	if err = checkDims(op.Name(), "GenerateMatrix", M, 1, fel.NDof()); err != nil || fel.NDof() == 0 {
		return
	}
	f := mip.IP.FacetNr
	if f < 0 {
		err = fem.Wrap(fem.ErrInvalidEvaluationContext, "diffop", "IdFacetSurface.GenerateMatrix",
			"point is not on a facet")
		return
	}
	var fv fem.FacetVolumeElement
	if fv, err = elementFacet(op.Name(), "GenerateMatrix", fel, f); err != nil {
		return
	}
	setFacetRow(fv, f, mip.IP, M)
	return
}

// ruleFacet returns the facet of the first point of mir and its dof block
func (op IdFacetSurface) ruleFacet(method string, fel fem.FiniteElement, mir MappedRule) (
	fs fem.FacetShape, r utils.Range, err error) {
	var fv fem.FacetVolumeElement
	f := mir.IR[0].FacetNr
	if f < 0 {
		err = fem.Wrap(fem.ErrUnsupportedBatchContext, "diffop", "IdFacetSurface."+method,
			"rule is not on a facet")
		return
	}
	if fv, err = elementFacet(op.Name(), method, fel, f); err != nil {
		return
	}
	fs, r = fv.Facet(f), fv.GetFacetDofs(f)
	return
}

func (op IdFacetSurface) GenerateMatrixRule(fel fem.FiniteElement, mir MappedRule, M *mat.Dense, lh *fem.Arena) (err error) {
	if err = checkDims(op.Name(), "GenerateMatrixRule", M, fel.NDof(), mir.Size()); err != nil {
		return
	}
	if mir.Size() == 0 {
		return
	}
	var (
		fs fem.FacetShape
		r  utils.Range
	)
	if fs, r, err = op.ruleFacet("GenerateMatrixRule", fel, mir); err != nil {
		return
	}
	M.Zero()
	fs.CalcShapeRule(mir.IR, M, r.First, lh)
	return
}

func (op IdFacetSurface) Evaluate(fel fem.FiniteElement, mir MappedRule, x, y []float64, lh *fem.Arena) (err error) {
	if mir.Size() == 0 {
		return
	}
	var (
		fs fem.FacetShape
		r  utils.Range
	)
	if fs, r, err = op.ruleFacet("Evaluate", fel, mir); err != nil {
		return
	}
	fs.Evaluate(mir.IR, x[r.First:r.Next], y, lh)
	return
}

func (op IdFacetSurface) AddTrans(fel fem.FiniteElement, mir MappedRule, y, x []float64, lh *fem.Arena) (err error) {
	if mir.Size() == 0 {
		return
	}
	var (
		fs fem.FacetShape
		r  utils.Range
	)
	if fs, r, err = op.ruleFacet("AddTrans", fel, mir); err != nil {
		return
	}
	fs.AddTrans(mir.IR, y, x[r.First:r.Next], lh)
	return
}

// IdFacetSurfaceBoundary evaluates the functions of elements of dimension
// D-2, the edges of a surface
type IdFacetSurfaceBoundary struct {
	D int
}

func (op IdFacetSurfaceBoundary) Name() string    { return "IdFacetSurfaceBoundary" }
func (op IdFacetSurfaceBoundary) Dim() int        { return 1 }
func (op IdFacetSurfaceBoundary) DimSpace() int   { return DimSpace }
func (op IdFacetSurfaceBoundary) DimElement() int { return op.D - 2 }
func (op IdFacetSurfaceBoundary) DiffOrder() int  { return 0 }

func (op IdFacetSurfaceBoundary) GenerateMatrix(fel fem.FiniteElement, mip MappedPoint, M *mat.Dense, lh *fem.Arena) (err error) {
	if err = checkDims(op.Name(), "GenerateMatrix", M, 1, fel.NDof()); err != nil || fel.NDof() == 0 {
		return
	}
	M.Zero()
	fel.CalcShape(mip.IP, M.RawRowView(0))
	return
}

func (op IdFacetSurfaceBoundary) GenerateMatrixRule(fel fem.FiniteElement, mir MappedRule, M *mat.Dense, lh *fem.Arena) error {
	return generateMatrixRule(op, fel, mir, M, lh)
}

func (op IdFacetSurfaceBoundary) Evaluate(fel fem.FiniteElement, mir MappedRule, x, y []float64, lh *fem.Arena) error {
	return evaluate(op, fel, mir, x, y, lh)
}

func (op IdFacetSurfaceBoundary) AddTrans(fel fem.FiniteElement, mir MappedRule, y, x []float64, lh *fem.Arena) error {
	return addTrans(op, fel, mir, y, x, lh)
}
