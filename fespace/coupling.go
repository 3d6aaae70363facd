package fespace

// CouplingType classifies the role of a dof for solvers
type CouplingType uint8

const (
	UnusedDof CouplingType = iota
	WirebasketDof
	LocalDof
)

func (ct CouplingType) String() string {
	switch ct {
	case UnusedDof:
		return "Unused"
	case WirebasketDof:
		return "Wirebasket"
	case LocalDof:
		return "Local"
	}
	return "Invalid"
}
