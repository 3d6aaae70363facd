package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceDualGraph(t *testing.T) {
	// 2 x 1 quads share one edge
	xadj, adjncy := NewQuadPlate(2, 1).SurfaceDualGraph()
	assert.Equal(t, []int32{0, 1, 2}, xadj)
	assert.Equal(t, []int32{1, 0}, adjncy)

	// Every face of a tet touches the other three
	xadj, adjncy = NewSingleTet().SurfaceDualGraph()
	require.Len(t, xadj, 5)
	for k := 0; k < 4; k++ {
		nbrs := adjncy[xadj[k]:xadj[k+1]]
		assert.Len(t, nbrs, 3)
		assert.NotContains(t, nbrs, int32(k))
	}
}

func TestPartitionSurface(t *testing.T) {
	m := NewTrigPlate(3, 3)
	for _, nparts := range []int{1, 2, 5} {
		EToP, err := m.PartitionSurface(nparts)
		require.NoError(t, err)
		require.Len(t, EToP, m.NumSurfaceElements)
		counts := make([]int, nparts)
		for _, np := range EToP {
			require.True(t, np >= 0 && np < nparts)
			counts[np]++
		}
		for _, c := range counts {
			assert.Positive(t, c)
		}
	}
	assert.Equal(t, []int{0, 0, 1, 1, 2}, contiguousPartition(5, 3))
}
