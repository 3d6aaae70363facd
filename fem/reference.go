package fem

import (
	"github.com/notargets/facetsurf/utils"
)

// ReferenceVertices returns the vertex coordinates of the reference element
//
//	Line:     0 --- 1 on [0,1]
//	Triangle: (0,0), (1,0), (0,1)
//	Quad:     (0,0), (1,0), (1,1), (0,1)
func ReferenceVertices(et utils.ElementType) [][3]float64 {
	switch et {
	case utils.Point:
		return [][3]float64{{0, 0, 0}}
	case utils.Line:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}}
	case utils.Triangle:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	case utils.Quad:
		return [][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	}
	return nil
}

// vertexFunction returns, for vertex v, the function used to build edge
// coordinates: the barycentric coordinate for segments and triangles, the
// bilinear sigma function for quads. Along any edge (a,b) the difference
// f_b - f_a runs from -1 at a to 1 at b.
func vertexFunction(et utils.ElementType, v int, p [3]float64) float64 {
	var (
		x, y = p[0], p[1]
	)
	switch et {
	case utils.Line:
		if v == 0 {
			return 1 - x
		}
		return x
	case utils.Triangle:
		switch v {
		case 0:
			return 1 - x - y
		case 1:
			return x
		default:
			return y
		}
	case utils.Quad:
		switch v {
		case 0:
			return (1 - x) + (1 - y)
		case 1:
			return x + (1 - y)
		case 2:
			return x + y
		default:
			return (1 - x) + y
		}
	}
	return 0
}
