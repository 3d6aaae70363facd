package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// EdgeNumber packs the two vertices of an edge into one key, lowest vertex in
// the low 32 bits
type EdgeNumber uint64

func NewEdgeNumber(verts [2]int) (packed EdgeNumber) {
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] < verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeNumber(uint64(i1) + uint64(i2)<<32)
	return
}

func (en EdgeNumber) GetVertices() (verts [2]int) {
	var (
		enTmp EdgeNumber
	)
	enTmp = en >> 32
	verts[1] = int(enTmp)
	verts[0] = int(en - enTmp*(1<<32))
	return
}

// Edge is a unique mesh edge, vertices sorted ascending
type Edge struct {
	Vertices [2]int
}

// SurfaceMesh holds a mesh of surface elements (triangles and quads) embedded
// in Dim dimensional space, optionally together with the volume elements they
// bound.
type SurfaceMesh struct {
	Dim      int
	Vertices [][3]float64

	// Volume elements, may be empty
	EToV         [][]int
	ElementTypes []utils.ElementType

	// Surface elements, codimension 1
	SEToV        [][]int
	SurfaceTypes []utils.ElementType
	SurfaceTags  []int // Boundary region of each surface element

	// Connectivity, built by BuildConnectivity
	Edges    []Edge
	EdgeMap  map[EdgeNumber]int
	EToEdge  [][]int
	SEToEdge [][]int

	// Number of refinement levels known to the multilevel machinery
	Levels int

	NumElements        int
	NumSurfaceElements int
	NumVertices        int
	NumEdges           int
}

func NewSurfaceMesh(dim int) *SurfaceMesh {
	return &SurfaceMesh{
		Dim:     dim,
		EdgeMap: make(map[EdgeNumber]int),
		Levels:  1,
	}
}

// AddVertex appends a vertex and returns its index
func (m *SurfaceMesh) AddVertex(x, y, z float64) int {
	m.Vertices = append(m.Vertices, [3]float64{x, y, z})
	m.NumVertices = len(m.Vertices)
	return m.NumVertices - 1
}

// AddElement appends a volume element
func (m *SurfaceMesh) AddElement(et utils.ElementType, verts ...int) int {
	m.EToV = append(m.EToV, verts)
	m.ElementTypes = append(m.ElementTypes, et)
	m.NumElements = len(m.EToV)
	return m.NumElements - 1
}

// AddSurfaceElement appends a surface element within boundary region tag
func (m *SurfaceMesh) AddSurfaceElement(et utils.ElementType, tag int, verts ...int) int {
	m.SEToV = append(m.SEToV, verts)
	m.SurfaceTypes = append(m.SurfaceTypes, et)
	m.SurfaceTags = append(m.SurfaceTags, tag)
	m.NumSurfaceElements = len(m.SEToV)
	return m.NumSurfaceElements - 1
}

// AddLevel records one more refinement level produced by the external
// refinement machinery
func (m *SurfaceMesh) AddLevel() {
	m.Levels++
}

// BuildConnectivity numbers the unique edges of the mesh in order of first
// appearance, walking volume elements first and then surface elements, and
// builds the element to edge maps.
func (m *SurfaceMesh) BuildConnectivity() (err error) {
	m.Edges = m.Edges[:0]
	m.EdgeMap = make(map[EdgeNumber]int)
	if m.EToEdge, err = m.connect(m.EToV, m.ElementTypes, 3); err != nil {
		return
	}
	if m.SEToEdge, err = m.connect(m.SEToV, m.SurfaceTypes, 2); err != nil {
		return
	}
	m.NumElements = len(m.EToV)
	m.NumSurfaceElements = len(m.SEToV)
	m.NumVertices = len(m.Vertices)
	m.NumEdges = len(m.Edges)
	return
}

func (m *SurfaceMesh) connect(EToV [][]int, types []utils.ElementType, dim int) (EToEdge [][]int, err error) {
	if len(EToV) != len(types) {
		err = fmt.Errorf("mesh.BuildConnectivity: %d elements but %d element types", len(EToV), len(types))
		return
	}
	EToEdge = make([][]int, len(EToV))
	for k, verts := range EToV {
		et := types[k]
		if et.GetDimension() != dim {
			err = fmt.Errorf("mesh.BuildConnectivity: element %d has type %s, need a %dD element", k, et, dim)
			return
		}
		if len(verts) != et.GetNumVertices() {
			err = fmt.Errorf("mesh.BuildConnectivity: element %d of type %s has %d vertices", k, et, len(verts))
			return
		}
		for _, v := range verts {
			if v < 0 || v >= len(m.Vertices) {
				err = fmt.Errorf("mesh.BuildConnectivity: element %d references vertex %d, have %d vertices",
					k, v, len(m.Vertices))
				return
			}
		}
		localEdges := et.GetEdges()
		EToEdge[k] = make([]int, len(localEdges))
		for i, le := range localEdges {
			en := NewEdgeNumber([2]int{verts[le[0]], verts[le[1]]})
			ed, ok := m.EdgeMap[en]
			if !ok {
				ed = len(m.Edges)
				m.Edges = append(m.Edges, Edge{Vertices: en.GetVertices()})
				m.EdgeMap[en] = ed
			}
			EToEdge[k][i] = ed
		}
	}
	return
}

// The methods below provide the read only topology queries used by the space

func (m *SurfaceMesh) Dimension() int { return m.Dim }

func (m *SurfaceMesh) NEdges() int { return m.NumEdges }

func (m *SurfaceMesh) NLevels() int { return m.Levels }

func (m *SurfaceMesh) NElements(vb fem.VorB) int {
	switch vb {
	case fem.VOL:
		return m.NumElements
	case fem.BND:
		return m.NumSurfaceElements
	case fem.BBND:
		return m.NumEdges
	case fem.BBBND:
		return m.NumVertices
	}
	return 0
}

func (m *SurfaceMesh) ElementType(ei fem.ElementId) utils.ElementType {
	switch ei.VB {
	case fem.VOL:
		return m.ElementTypes[ei.Nr]
	case fem.BND:
		return m.SurfaceTypes[ei.Nr]
	case fem.BBND:
		return utils.Line
	case fem.BBBND:
		return utils.Point
	}
	return utils.Unknown
}

func (m *SurfaceMesh) ElementVertices(ei fem.ElementId) []int {
	switch ei.VB {
	case fem.VOL:
		return m.EToV[ei.Nr]
	case fem.BND:
		return m.SEToV[ei.Nr]
	case fem.BBND:
		v := m.Edges[ei.Nr].Vertices
		return []int{v[0], v[1]}
	case fem.BBBND:
		return []int{ei.Nr}
	}
	return nil
}

func (m *SurfaceMesh) ElementEdges(ei fem.ElementId) []int {
	switch ei.VB {
	case fem.VOL:
		return m.EToEdge[ei.Nr]
	case fem.BND:
		return m.SEToEdge[ei.Nr]
	case fem.BBND:
		return []int{ei.Nr}
	}
	return nil
}

// ElementIndex returns the boundary region of a surface element, zero for
// every other codimension
func (m *SurfaceMesh) ElementIndex(ei fem.ElementId) int {
	if ei.VB == fem.BND {
		return m.SurfaceTags[ei.Nr]
	}
	return 0
}

func (m *SurfaceMesh) Vertex(v int) [3]float64 { return m.Vertices[v] }
