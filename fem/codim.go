package fem

import "fmt"

// VorB tags the codimension of a mesh entity relative to the 3D ambient space
type VorB uint8

const (
	VOL   VorB = iota // codimension 0
	BND               // codimension 1, surface elements
	BBND              // codimension 2, edges of the surface
	BBBND             // codimension 3, points
)

func (vb VorB) String() string {
	switch vb {
	case VOL:
		return "VOL"
	case BND:
		return "BND"
	case BBND:
		return "BBND"
	case BBBND:
		return "BBBND"
	}
	return fmt.Sprintf("VorB(%d)", uint8(vb))
}

func (vb VorB) Codimension() int { return int(vb) }

// ElementId names one mesh entity: its codimension and its number within that
// codimension
type ElementId struct {
	VB VorB
	Nr int
}

func NewElementId(vb VorB, nr int) ElementId { return ElementId{VB: vb, Nr: nr} }

func (ei ElementId) String() string {
	return fmt.Sprintf("%s(%d)", ei.VB, ei.Nr)
}
