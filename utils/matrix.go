package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NewSymTriDiagonal builds a symmetric matrix from its main diagonal d0 and its
// first off diagonal d1.
func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	var (
		N = len(d0)
	)
	if len(d1) != N-1 {
		panic(fmt.Errorf("mismatch in tridiagonal: len(d0) = %d, len(d1) = %d", len(d0), len(d1)))
	}
	Tri = mat.NewSymDense(N, nil)
	for i := 0; i < N; i++ {
		Tri.SetSym(i, i, d0[i])
		if i < N-1 {
			Tri.SetSym(i, i+1, d1[i])
		}
	}
	return
}

// RowRange returns a writable view of columns [r.First, r.Next) of row i of M.
func RowRange(M *mat.Dense, i int, r Range) []float64 {
	return M.RawRowView(i)[r.First:r.Next]
}
