package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/facetsurf/utils"
)

func TestNewElement(t *testing.T) {
	lh := NewArena(128)

	_, err := NewElement(NewElementId(VOL, 0), utils.Tet, []int{0, 1, 2, 3}, 2, lh)
	assert.ErrorIs(t, err, ErrUnsupportedCodimension)

	fel, err := NewElement(NewElementId(BND, 0), utils.Quad, []int{0, 1, 2, 3}, 2, lh)
	require.NoError(t, err)
	fv, ok := fel.(FacetVolumeElement)
	require.True(t, ok)
	assert.Equal(t, 4, fv.NFacets())
	assert.Equal(t, 12, fel.NDof())

	fel, err = NewElement(NewElementId(BND, 1), utils.Triangle, []int{0, 1, 2}, 0, lh)
	require.NoError(t, err)
	assert.Equal(t, 3, fel.NDof())

	_, err = NewElement(NewElementId(BND, 2), utils.Line, []int{0, 1}, 1, lh)
	assert.ErrorIs(t, err, ErrUnsupportedElementShape)

	fel, err = NewElement(NewElementId(BBND, 4), utils.Line, []int{3, 4}, 2, lh)
	require.NoError(t, err)
	assert.IsType(t, SegmentFE{}, fel)
	assert.Equal(t, 3, fel.NDof())
	assert.Equal(t, 2, fel.Order())

	_, err = NewElement(NewElementId(BBND, 4), utils.Triangle, []int{3, 4, 5}, 2, lh)
	assert.ErrorIs(t, err, ErrUnsupportedElementShape)

	fel, err = NewElement(NewElementId(BBBND, 7), utils.Point, []int{7}, 2, lh)
	require.NoError(t, err)
	assert.Equal(t, 0, fel.NDof())
}

func TestNewElementFresh(t *testing.T) {
	var (
		lh    = NewArena(128)
		vnums = []int{4, 2, 9}
		ei    = NewElementId(BND, 3)
	)
	a, err := NewElement(ei, utils.Triangle, vnums, 2, lh)
	require.NoError(t, err)
	b, err := NewElement(ei, utils.Triangle, vnums, 2, lh)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// The vertex numbers are copies, owned by the arena
	vnums[0] = 100
	assert.Equal(t, []int{4, 2, 9}, a.(FacetFE).VertexNumbers())
	a.(FacetFE).VertexNumbers()[1] = -1
	assert.Equal(t, []int{4, 2, 9}, b.(FacetFE).VertexNumbers())
}
