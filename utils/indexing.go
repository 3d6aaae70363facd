package utils

import (
	"fmt"
)

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// Range is a half open interval of integers [First, Next).
type Range struct {
	First, Next int
}

func (r Range) Len() int { return r.Next - r.First }

func (r Range) Contains(i int) bool { return i >= r.First && i < r.Next }

// AppendTo appends the members of the range to I, in order.
func (r Range) AppendTo(I Index) Index {
	for i := r.First; i < r.Next; i++ {
		I = append(I, i)
	}
	return I
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.First, r.Next)
}
