package fem

import (
	"gonum.org/v1/gonum/mat"
)

// Arena hands out scratch storage for the processing of one element. Storage
// handed out stays valid until Reset, after which it is reused. An Arena must
// not be shared between go routines; give each worker its own.
//
// A nil *Arena is valid and allocates from the heap on every call.
type Arena struct {
	floats []float64
	fnext  int
	ints   []int
	inext  int
}

func NewArena(size int) *Arena {
	return &Arena{
		floats: make([]float64, size),
		ints:   make([]int, size/4+16),
	}
}

// Floats returns n zeroed float64 slots
func (a *Arena) Floats(n int) (r []float64) {
	if a == nil {
		return make([]float64, n)
	}
	if a.fnext+n > len(a.floats) {
		// Earlier slices keep the old block alive, so nothing handed out moves
		a.floats = make([]float64, grow(len(a.floats), n))
		a.fnext = 0
	}
	r = a.floats[a.fnext : a.fnext+n : a.fnext+n]
	clear(r)
	a.fnext += n
	return
}

// Ints returns n zeroed int slots
func (a *Arena) Ints(n int) (r []int) {
	if a == nil {
		return make([]int, n)
	}
	if a.inext+n > len(a.ints) {
		a.ints = make([]int, grow(len(a.ints), n))
		a.inext = 0
	}
	r = a.ints[a.inext : a.inext+n : a.inext+n]
	clear(r)
	a.inext += n
	return
}

// CopyInts returns a copy of src placed in the arena
func (a *Arena) CopyInts(src []int) (r []int) {
	r = a.Ints(len(src))
	copy(r, src)
	return
}

// Matrix returns a zeroed nr x nc matrix backed by arena storage. A matrix
// with no rows or columns is returned empty.
func (a *Arena) Matrix(nr, nc int) *mat.Dense {
	if nr == 0 || nc == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(nr, nc, a.Floats(nr*nc))
}

// Reset releases everything handed out since the last Reset
func (a *Arena) Reset() {
	if a == nil {
		return
	}
	a.fnext, a.inext = 0, 0
}

// Used returns the number of float64 and int slots handed out from the current blocks
func (a *Arena) Used() (nf, ni int) {
	if a == nil {
		return
	}
	return a.fnext, a.inext
}

func grow(have, need int) int {
	size := 2 * have
	if size < need {
		size = need
	}
	if size < 64 {
		size = 64
	}
	return size
}
