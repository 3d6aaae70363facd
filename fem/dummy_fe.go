package fem

import "github.com/notargets/facetsurf/utils"

// DummyFE stands in for point elements, it has no dofs
type DummyFE struct{}

func (DummyFE) ElementType() utils.ElementType { return utils.Point }

func (DummyFE) Order() int { return 0 }

func (DummyFE) NDof() int { return 0 }

func (DummyFE) CalcShape(IntegrationPoint, []float64) {}
