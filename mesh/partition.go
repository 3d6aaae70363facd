package mesh

import (
	"github.com/notargets/facetsurf/utils"
)

// SurfaceDualGraph returns the graph of surface elements joined by a shared
// edge in compressed row form: the neighbors of element k are
// adjncy[xadj[k]:xadj[k+1]]
func (m *SurfaceMesh) SurfaceDualGraph() (xadj, adjncy []int32) {
	var (
		ne       = m.NumSurfaceElements
		edgeToSE = make([][]int, m.NumEdges)
	)
	for k, edges := range m.SEToEdge {
		for _, ed := range edges {
			edgeToSE[ed] = append(edgeToSE[ed], k)
		}
	}
	xadj = make([]int32, ne+1)
	for k := 0; k < ne; k++ {
		for _, ed := range m.SEToEdge[k] {
			for _, nbr := range edgeToSE[ed] {
				if nbr != k {
					adjncy = append(adjncy, int32(nbr))
				}
			}
		}
		xadj[k+1] = int32(len(adjncy))
	}
	return
}

// contiguousPartition assigns elements to nparts buckets of consecutive
// element numbers
func contiguousPartition(ne, nparts int) (EToP []int) {
	if nparts < 1 {
		nparts = 1
	}
	EToP = make([]int, ne)
	pm := utils.NewPartitionMap(nparts, ne)
	for np := 0; np < nparts; np++ {
		kMin, kMax := pm.GetBucketRange(np)
		for k := kMin; k < kMax; k++ {
			EToP[k] = np
		}
	}
	return
}
