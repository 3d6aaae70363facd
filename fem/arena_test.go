package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArena(t *testing.T) {
	lh := NewArena(8)
	a := lh.Floats(5)
	a[4] = 3
	b := lh.Floats(5) // Does not fit, a new block is started
	b[0] = 1
	assert.Equal(t, 3., a[4])
	assert.Len(t, b, 5)
	assert.Equal(t, 5, cap(b))
	nf, _ := lh.Used()
	assert.Equal(t, 5, nf)

	lh.Reset()
	c := lh.Floats(5)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, c)

	I := lh.CopyInts([]int{4, 5, 6})
	assert.Equal(t, []int{4, 5, 6}, I)

	M := lh.Matrix(2, 3)
	r, cc := M.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, cc)
	assert.True(t, lh.Matrix(0, 3).IsEmpty())

	// A nil arena allocates from the heap
	var nilArena *Arena
	assert.Len(t, nilArena.Floats(3), 3)
	assert.Len(t, nilArena.Ints(2), 2)
	nilArena.Reset()
}
