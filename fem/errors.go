package fem

import (
	"errors"
	"fmt"
)

// Failure conditions of the space, its finite elements and its operators. All
// are reported synchronously, wrapped with the failing call, and are never
// retried.
var (
	// ErrUnsupportedDimension is returned for meshes not embedded in 3D
	ErrUnsupportedDimension = errors.New("unsupported dimension")
	// ErrUnsupportedCodimension is returned for volume element lookups
	ErrUnsupportedCodimension = errors.New("unsupported codimension")
	// ErrUnsupportedElementShape is returned when no finite element exists for a shape
	ErrUnsupportedElementShape = errors.New("unsupported element shape")
	// ErrInvalidEvaluationContext is returned when a facet operator has neither
	// a facet number nor a boundary fallback
	ErrInvalidEvaluationContext = errors.New("invalid evaluation context")
	// ErrUnsupportedBatchContext is returned for batched facet evaluation at
	// interior points
	ErrUnsupportedBatchContext = errors.New("unsupported batch context")
	// ErrInvalidOrder is returned when the flags resolve to a negative order
	ErrInvalidOrder = errors.New("invalid polynomial order")
)

// Wrap annotates err as "component.method: action: err", keeping it visible to
// errors.Is
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s: %w", component, method, action, err)
}
