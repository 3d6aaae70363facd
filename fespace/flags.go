package fespace

import (
	"github.com/rs/zerolog"
)

// Flags configures a facet surface space. A nil Order or RelOrder is not set.
type Flags struct {
	Order         *int
	RelOrder      *int
	VariableOrder bool
	NoWirebasket  bool
	// DefinedOn lists the surface region tags the space lives on, empty for all
	DefinedOn []int
}

func IntFlag(i int) *int { return &i }

// resolveOrder turns the order flags into the effective order. Order and
// RelOrder together are inconsistent but allowed: variable order wins when
// VariableOrder is set, otherwise Order wins. Either way a warning is logged.
// A negative effective order is clamped to 0 with a warning.
func (f Flags) resolveOrder(logger zerolog.Logger) (order, relOrder int, varOrder bool) {
	varOrder = f.VariableOrder
	if f.RelOrder != nil && f.Order == nil {
		varOrder = true
	}
	switch {
	case f.Order != nil:
		relOrder = *f.Order - 1
		if f.RelOrder != nil {
			relOrder = *f.RelOrder
		}
		if varOrder {
			order = relOrder + 1
		} else {
			order = *f.Order
		}
		if f.RelOrder != nil {
			if varOrder {
				logger.Warn().Int("order", *f.Order).Int("relorder", relOrder).
					Msg("inconsistent flags variableorder, order and relorder: variable order space with relorder is used, order is ignored")
			} else {
				logger.Warn().Int("order", order).Int("relorder", *f.RelOrder).
					Msg("inconsistent flags order and relorder: uniform order space with order is used")
			}
		}
	case f.RelOrder != nil:
		relOrder = *f.RelOrder
		order = relOrder + 1
	default:
		relOrder = -1
	}
	if order < 0 {
		logger.Warn().Int("order", order).Int("relorder", relOrder).Bool("variableorder", varOrder).
			Msg("negative order from flags, lowest order 0 is used")
		order = 0
	}
	return
}
