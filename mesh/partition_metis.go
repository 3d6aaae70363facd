//go:build cgo && metis

package mesh

import (
	"fmt"

	metis "github.com/notargets/go-metis"
)

// PartitionSurface splits the surface elements into nparts buckets with METIS,
// minimizing the number of edges shared between buckets
func (m *SurfaceMesh) PartitionSurface(nparts int) (EToP []int, err error) {
	if nparts <= 1 || m.NumSurfaceElements <= nparts {
		return contiguousPartition(m.NumSurfaceElements, nparts), nil
	}
	xadj, adjncy := m.SurfaceDualGraph()

	opts := make([]int32, metis.NoOptions)
	if err = metis.SetDefaultOptions(opts); err != nil {
		err = fmt.Errorf("failed to set METIS options: %w", err)
		return
	}
	opts[metis.OptionObjType] = metis.ObjTypeCut
	ubvec := []float32{1.05}

	part, _, err := metis.PartGraphKwayWeighted(xadj, adjncy, nil, nil, int32(nparts), nil, ubvec, opts)
	if err != nil {
		err = fmt.Errorf("METIS partitioning failed: %w", err)
		return
	}
	EToP = make([]int, m.NumSurfaceElements)
	for k := range EToP {
		EToP[k] = int(part[k])
	}
	return
}
