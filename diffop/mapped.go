package diffop

import (
	"github.com/notargets/facetsurf/fem"
)

// MappedPoint is an integration point of an element of codimension VB, with
// the physical measure (length or area scale) of the mapping at that point
type MappedPoint struct {
	IP      fem.IntegrationPoint
	VB      fem.VorB
	Measure float64
}

// MappedRule is an integration rule on an element of codimension VB with one
// physical measure per point
type MappedRule struct {
	IR      fem.IntegrationRule
	VB      fem.VorB
	Measure []float64
}

// NewMappedRule maps ir with a constant measure, as for affine elements
func NewMappedRule(ir fem.IntegrationRule, vb fem.VorB, measure float64) (mr MappedRule) {
	mr = MappedRule{
		IR:      ir,
		VB:      vb,
		Measure: make([]float64, len(ir)),
	}
	for j := range mr.Measure {
		mr.Measure[j] = measure
	}
	return
}

func (mr MappedRule) Size() int { return len(mr.IR) }

func (mr MappedRule) Point(j int) MappedPoint {
	return MappedPoint{IP: mr.IR[j], VB: mr.VB, Measure: mr.Measure[j]}
}

// Weight is the physical quadrature weight of point j
func (mr MappedRule) Weight(j int) float64 {
	return mr.IR[j].Weight * mr.Measure[j]
}
