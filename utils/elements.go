package utils

// ElementType represents the reference shape of a mesh entity

type ElementType int

const (
	Unknown ElementType = iota
	// 0D elements
	Point
	// 1D elements
	Line
	// 2D elements
	Triangle
	Quad
	// 3D elements
	Tet
)

// String representation of element types
func (e ElementType) String() string {
	names := []string{
		"Unknown",
		"Point",
		"Line",
		"Triangle", "Quad",
		"Tet",
	}
	if int(e) >= 0 && int(e) < len(names) {
		return names[e]
	}
	return "Invalid"
}

// GetDimension returns the topological dimension of the element
func (e ElementType) GetDimension() int {
	switch e {
	case Point:
		return 0
	case Line:
		return 1
	case Triangle, Quad:
		return 2
	case Tet:
		return 3
	default:
		return -1
	}
}

// GetNumVertices returns the number of corner vertices for each element type
func (e ElementType) GetNumVertices() int {
	switch e {
	case Point:
		return 1
	case Line:
		return 2
	case Triangle:
		return 3
	case Quad:
		return 4
	case Tet:
		return 4
	default:
		return 0
	}
}

// GetNumEdges returns the number of edges of the element
func (e ElementType) GetNumEdges() int {
	return len(e.GetEdges())
}

// GetEdges returns the local vertex pairs of each edge. The order of the pairs
// is the local edge numbering of the element.
func (e ElementType) GetEdges() [][2]int {
	switch e {
	case Line:
		return [][2]int{{0, 1}}
	case Triangle:
		return [][2]int{{0, 1}, {1, 2}, {2, 0}}
	case Quad:
		return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	case Tet:
		return [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}}
	default:
		return [][2]int{}
	}
}

// GetElementFaces returns the faces of a volume element as vertex lists
func GetElementFaces(elemType ElementType, v []int) [][]int {
	switch elemType {
	case Tet:
		return [][]int{
			{v[0], v[2], v[1]}, // Face 0
			{v[0], v[1], v[3]}, // Face 1
			{v[0], v[3], v[2]}, // Face 2
			{v[1], v[2], v[3]}, // Face 3
		}
	default:
		return [][]int{}
	}
}
