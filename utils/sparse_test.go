package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestDOKScatter(t *testing.T) {
	A := NewDOK(4, 4)
	el := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, A.Scatter(Index{1, 3}, el))
	require.NoError(t, A.Scatter(Index{1, 3}, el))
	assert.Equal(t, 2., A.At(1, 1))
	assert.Equal(t, 4., A.At(1, 3))
	assert.Equal(t, 6., A.At(3, 1))
	assert.Equal(t, 8., A.At(3, 3))
	assert.Equal(t, 0., A.At(0, 0))
	assert.Error(t, A.Scatter(Index{1}, el))

	C := A.ToCSR()
	assert.Equal(t, 4, C.NNZ())
	y := C.MulVec([]float64{1, 1, 1, 1})
	assert.Equal(t, []float64{0, 6, 0, 14}, y)

	A.SetReadOnly("A")
	assert.Panics(t, func() { A.AddAt(0, 0, 1) })
}
