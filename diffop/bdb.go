package diffop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/facetsurf/fem"
)

// Integrator builds element matrices of a bilinear form
type Integrator interface {
	Name() string
	CalcElementMatrix(fel fem.FiniteElement, rules []MappedRule, lh *fem.Arena) (*mat.Dense, error)
	ApplyElementMatrix(fel fem.FiniteElement, rules []MappedRule, x, y []float64, lh *fem.Arena) error
}

// BDBIntegrator is the form sum over points of w * Coef * B^T B, where B is the
// operator matrix. With an identity operator this is the mass matrix.
type BDBIntegrator struct {
	Op   DifferentialOperator
	Coef float64
}

func NewMassIntegrator(op DifferentialOperator, coef float64) *BDBIntegrator {
	return &BDBIntegrator{Op: op, Coef: coef}
}

func (bdb *BDBIntegrator) Name() string {
	return fmt.Sprintf("BDB(%s)", bdb.Op.Name())
}

// CalcElementMatrix returns the NDof x NDof element matrix, storage from lh
func (bdb *BDBIntegrator) CalcElementMatrix(fel fem.FiniteElement, rules []MappedRule, lh *fem.Arena) (elmat *mat.Dense, err error) {
	var (
		nd = fel.NDof()
	)
	elmat = lh.Matrix(nd, nd)
	if nd == 0 {
		return
	}
	tmp := lh.Matrix(nd, nd)
	for _, mir := range rules {
		np := mir.Size()
		if np == 0 {
			continue
		}
		var (
			B  = lh.Matrix(nd, np)
			DB = lh.Matrix(nd, np)
		)
		if err = bdb.Op.GenerateMatrixRule(fel, mir, B, lh); err != nil {
			return
		}
		DB.Apply(func(i, j int, v float64) float64 {
			return v * bdb.Coef * mir.Weight(j)
		}, B)
		tmp.Mul(DB, B.T())
		elmat.Add(elmat, tmp)
	}
	return
}

// ApplyElementMatrix sets y to the element matrix times x without forming it
func (bdb *BDBIntegrator) ApplyElementMatrix(fel fem.FiniteElement, rules []MappedRule, x, y []float64, lh *fem.Arena) (err error) {
	for i := range y[:fel.NDof()] {
		y[i] = 0
	}
	for _, mir := range rules {
		vals := lh.Floats(mir.Size())
		if err = bdb.Op.Evaluate(fel, mir, x, vals, lh); err != nil {
			return
		}
		for j := range vals {
			vals[j] *= bdb.Coef * mir.Weight(j)
		}
		if err = bdb.Op.AddTrans(fel, mir, vals, y, lh); err != nil {
			return
		}
	}
	return
}
