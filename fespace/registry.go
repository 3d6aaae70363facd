package fespace

import (
	"fmt"
	"sort"
	"sync"

	"github.com/notargets/facetsurf/diffop"
	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/utils"
)

// Space is what the assembly layer needs from a finite element space
type Space interface {
	Name() string
	Mesh() MeshAccess
	Update() error
	GetNDof() int
	GetNDofAtLevel(level int) int
	GetCouplingType(dof int) CouplingType
	DefinedOn(ei fem.ElementId) bool
	GetDofNumbers(ei fem.ElementId) utils.Index
	GetFiniteElement(ei fem.ElementId, lh *fem.Arena) (fem.FiniteElement, error)
	GetEvaluator(vb fem.VorB) diffop.DifferentialOperator
	GetIntegrator(vb fem.VorB) diffop.Integrator
}

// Constructor builds a space over a mesh
type Constructor func(ma MeshAccess, flags Flags, opts ...Option) (Space, error)

// Registry creates spaces by name
type Registry struct {
	mu     sync.RWMutex
	spaces map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{spaces: make(map[string]Constructor)}
}

// DefaultRegistry holds every space of this module
var DefaultRegistry = NewRegistry()

func init() {
	err := DefaultRegistry.Register(SpaceName, func(ma MeshAccess, flags Flags, opts ...Option) (Space, error) {
		s, err := NewFacetSurfaceSpace(ma, flags, opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	if err != nil {
		panic(err)
	}
}

func (r *Registry) Register(name string, c Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.spaces[name]; ok {
		return fmt.Errorf("fespace.Registry.Register: space %q is registered already", name)
	}
	r.spaces[name] = c
	return nil
}

func (r *Registry) Create(name string, ma MeshAccess, flags Flags, opts ...Option) (Space, error) {
	r.mu.RLock()
	c, ok := r.spaces[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("fespace.Registry.Create: unknown space %q, have %v", name, r.Names())
	}
	return c(ma, flags, opts...)
}

// Names returns the registered names in sorted order
func (r *Registry) Names() (names []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name := range r.spaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
