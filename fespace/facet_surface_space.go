package fespace

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/notargets/facetsurf/diffop"
	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// SpaceName is the registry name of the facet surface space
const SpaceName = "facetsurface"

// FacetSurfaceSpace is the space of discontinuous polynomials living on the
// edges of a surface mesh in 3D. Every edge carries order+1 Legendre modes.
type FacetSurfaceSpace struct {
	ma           MeshAccess
	order        int
	relOrder     int
	varOrder     bool
	noWirebasket bool
	regions      map[int]bool // Surface region tags of the space, nil for all
	definedOn    func(fem.ElementId) bool
	dofs         *DofNumbering
	evaluators   [4]diffop.DifferentialOperator
	integrators  [4]diffop.Integrator
	logger       zerolog.Logger
}

type Option func(*FacetSurfaceSpace)

// WithDefinedOn replaces the region based activity test of the space
func WithDefinedOn(pred func(fem.ElementId) bool) Option {
	return func(s *FacetSurfaceSpace) { s.definedOn = pred }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *FacetSurfaceSpace) { s.logger = logger }
}

func NewFacetSurfaceSpace(ma MeshAccess, flags Flags, opts ...Option) (s *FacetSurfaceSpace, err error) {
	s = &FacetSurfaceSpace{
		ma:           ma,
		noWirebasket: flags.NoWirebasket,
		logger:       log.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if dim := ma.Dimension(); dim != 3 {
		return nil, fem.Wrap(fem.ErrUnsupportedDimension, "fespace", "NewFacetSurfaceSpace",
			fmt.Sprintf("mesh dimension %d, facet surface space is only implemented for 3D", dim))
	}
	s.order, s.relOrder, s.varOrder = flags.resolveOrder(s.logger)
	if len(flags.DefinedOn) != 0 {
		s.regions = make(map[int]bool, len(flags.DefinedOn))
		for _, tag := range flags.DefinedOn {
			s.regions[tag] = true
		}
	}
	s.dofs = NewDofNumbering(s.logger)
	s.dofs.NoWirebasket = s.noWirebasket

	s.evaluators[fem.VOL] = diffop.IdFacet{D: 3}
	s.evaluators[fem.BND] = diffop.IdFacetSurface{D: 3}
	s.evaluators[fem.BBND] = diffop.IdFacetSurfaceBoundary{D: 3}
	s.integrators[fem.BND] = diffop.NewMassIntegrator(s.evaluators[fem.BND], 1)
	return
}

// Update renumbers the dofs for the current state of the mesh
func (s *FacetSurfaceSpace) Update() error {
	s.logger.Debug().
		Int("order", s.order).
		Int("relorder", s.relOrder).
		Bool("variableorder", s.varOrder).
		Msg("updating facet surface space")
	return s.dofs.Update(s.ma, s.order, s.DefinedOn)
}

func (s *FacetSurfaceSpace) Name() string { return SpaceName }

func (s *FacetSurfaceSpace) Mesh() MeshAccess { return s.ma }

func (s *FacetSurfaceSpace) Order() int { return s.order }

func (s *FacetSurfaceSpace) RelOrder() int { return s.relOrder }

func (s *FacetSurfaceSpace) VariableOrder() bool { return s.varOrder }

func (s *FacetSurfaceSpace) GetNDof() int { return s.dofs.GetNDof() }

// GetNDofAtLevel, GetEdgeDofs, GetCouplingType and GetDofNumbers read the
// numbering of the last Update and panic if Update has not run yet.
func (s *FacetSurfaceSpace) GetNDofAtLevel(level int) int { return s.dofs.GetNDofAtLevel(level) }

func (s *FacetSurfaceSpace) GetEdgeDofs(ed int) utils.Range { return s.dofs.GetEdgeDofs(ed) }

func (s *FacetSurfaceSpace) GetCouplingType(dof int) CouplingType { return s.dofs.GetCouplingType(dof) }

// Dofs exposes the numbering tables
func (s *FacetSurfaceSpace) Dofs() *DofNumbering { return s.dofs }

// DefinedOn reports whether the space is active on ei. Only surface elements
// are restricted by region.
func (s *FacetSurfaceSpace) DefinedOn(ei fem.ElementId) bool {
	if s.definedOn != nil {
		return s.definedOn(ei)
	}
	if ei.VB == fem.BND && s.regions != nil {
		return s.regions[s.ma.ElementIndex(ei)]
	}
	return true
}

// GetDofNumbers returns the global dofs of ei in local dof order. Surface
// elements get the blocks of their edges in element edge order, edges get
// their own block. Volume elements, points and inactive elements have none.
// Surface elements and edges need a prior Update.
func (s *FacetSurfaceSpace) GetDofNumbers(ei fem.ElementId) (dnums utils.Index) {
	dnums = utils.Index{}
	if !s.DefinedOn(ei) {
		return
	}
	switch ei.VB {
	case fem.BND:
		for _, ed := range s.ma.ElementEdges(ei) {
			dnums = s.dofs.GetEdgeDofs(ed).AppendTo(dnums)
		}
	case fem.BBND:
		dnums = s.dofs.GetEdgeDofs(s.ma.ElementEdges(ei)[0]).AppendTo(dnums)
	}
	return
}

// GetFiniteElement builds the element of ei with its storage in lh
func (s *FacetSurfaceSpace) GetFiniteElement(ei fem.ElementId, lh *fem.Arena) (fem.FiniteElement, error) {
	if ei.VB == fem.VOL {
		return nil, fem.Wrap(fem.ErrUnsupportedCodimension, "fespace", "GetFiniteElement",
			fmt.Sprintf("element %s: volume elements not available for the facet surface space", ei))
	}
	return fem.NewElement(ei, s.ma.ElementType(ei), s.ma.ElementVertices(ei), s.order, lh)
}

// GetEvaluator returns the operator evaluating the space on elements of
// codimension vb, nil for points
func (s *FacetSurfaceSpace) GetEvaluator(vb fem.VorB) diffop.DifferentialOperator {
	if int(vb) >= len(s.evaluators) {
		return nil
	}
	return s.evaluators[vb]
}

// GetIntegrator returns the default bilinear form on codimension vb, nil if none
func (s *FacetSurfaceSpace) GetIntegrator(vb fem.VorB) diffop.Integrator {
	if int(vb) >= len(s.integrators) {
		return nil
	}
	return s.integrators[vb]
}
