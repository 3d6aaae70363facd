package fespace

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// DofNumbering assigns order+1 contiguous dofs to every mesh edge, in
// ascending edge order, and classifies them. Update rebuilds everything; it
// must complete before any concurrent reads.
type DofNumbering struct {
	// NoWirebasket classifies active dofs as LocalDof instead of WirebasketDof
	NoWirebasket bool

	firstEdgeDof []int // len NEdges+1, firstEdgeDof[NEdges] == ndof
	ndof         int
	ndLevel      []int // ndof at each known refinement level
	ctofdof      []CouplingType
	logger       zerolog.Logger
}

func NewDofNumbering(logger zerolog.Logger) *DofNumbering {
	return &DofNumbering{logger: logger}
}

func (dn *DofNumbering) Update(ma MeshAccess, order int, definedOn func(fem.ElementId) bool) (err error) {
	if dim := ma.Dimension(); dim != 3 {
		err = fem.Wrap(fem.ErrUnsupportedDimension, "fespace", "DofNumbering.Update",
			fmt.Sprintf("mesh dimension %d, only 3D meshes are supported", dim))
		return
	}
	if order < 0 {
		err = fem.Wrap(fem.ErrInvalidOrder, "fespace", "DofNumbering.Update", fmt.Sprintf("order %d", order))
		return
	}
	var (
		nfa  = ma.NEdges()
		prev int
	)
	if len(dn.ndLevel) > 0 {
		prev = dn.ndLevel[len(dn.ndLevel)-1]
	}
	dn.firstEdgeDof = make([]int, nfa+1)
	dn.ndof = 0
	for ed := 0; ed < nfa; ed++ {
		dn.firstEdgeDof[ed] = dn.ndof
		dn.ndof += order + 1
	}
	dn.firstEdgeDof[nfa] = dn.ndof

	for ma.NLevels() > len(dn.ndLevel) {
		dn.ndLevel = append(dn.ndLevel, prev)
	}
	if len(dn.ndLevel) > 0 {
		dn.ndLevel[len(dn.ndLevel)-1] = dn.ndof
	}

	dn.updateCouplingDofArray(ma, definedOn)

	dn.logger.Debug().
		Int("order", order).
		Int("nedges", nfa).
		Int("ndof", dn.ndof).
		Ints("first_edge_dof", dn.firstEdgeDof).
		Ints("ndof_level", dn.ndLevel).
		Msg("facet surface dofs updated")
	return
}

func (dn *DofNumbering) updateCouplingDofArray(ma MeshAccess, definedOn func(fem.ElementId) bool) {
	var (
		active = WirebasketDof
	)
	if dn.NoWirebasket {
		active = LocalDof
	}
	dn.ctofdof = make([]CouplingType, dn.ndof)
	for k := 0; k < ma.NElements(fem.BND); k++ {
		ei := fem.NewElementId(fem.BND, k)
		if definedOn != nil && !definedOn(ei) {
			continue
		}
		for _, ed := range ma.ElementEdges(ei) {
			r := dn.GetEdgeDofs(ed)
			for d := r.First; d < r.Next; d++ {
				dn.ctofdof[d] = active
			}
		}
	}
}

// GetEdgeDofs returns the dof range of edge ed, which must be an edge of the
// mesh of the last Update. It panics before the first Update.
func (dn *DofNumbering) GetEdgeDofs(ed int) utils.Range {
	return utils.Range{First: dn.firstEdgeDof[ed], Next: dn.firstEdgeDof[ed+1]}
}

func (dn *DofNumbering) GetNDof() int { return dn.ndof }

// GetNDofAtLevel returns the dof count recorded for a refinement level. Levels
// exist only after Update; asking before the first Update, or past NLevels,
// panics.
func (dn *DofNumbering) GetNDofAtLevel(level int) int { return dn.ndLevel[level] }

func (dn *DofNumbering) NLevels() int { return len(dn.ndLevel) }

// GetCouplingType panics before the first Update
func (dn *DofNumbering) GetCouplingType(dof int) CouplingType { return dn.ctofdof[dof] }

// FirstEdgeDofs returns a copy of the dof block table
func (dn *DofNumbering) FirstEdgeDofs() []int {
	return append([]int(nil), dn.firstEdgeDof...)
}

// CouplingTypes returns a copy of the classification of every dof
func (dn *DofNumbering) CouplingTypes() []CouplingType {
	return append([]CouplingType(nil), dn.ctofdof...)
}
