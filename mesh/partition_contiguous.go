//go:build !(cgo && metis)

package mesh

// PartitionSurface splits the surface elements into nparts buckets of
// consecutive element numbers
func (m *SurfaceMesh) PartitionSurface(nparts int) (EToP []int, err error) {
	return contiguousPartition(m.NumSurfaceElements, nparts), nil
}
