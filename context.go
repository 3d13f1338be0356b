package peresil

import (
	"errors"
	"fmt"
)

// PosError annotates a failure with the input offset at which it
// occurred, the shape a caller surfaces as "parse failed at offset N".
type PosError struct {
	Offset int
	Err    error
}

func (e *PosError) Error() string {
	return fmt.Sprintf("parse failed at offset %d: %v", e.Offset, e.Err)
}

func (e *PosError) Unwrap() error { return e.Err }

// Recoverable delegates to the wrapped error, so annotating a failure
// never changes how the driver classifies it. Errors that do not
// classify themselves are treated as fatal.
func (e *PosError) Recoverable() bool {
	var r Recoverable
	if errors.As(e.Err, &r) {
		return r.Recoverable()
	}
	return false
}

// AtPos wraps an error-typed failure in a PosError carrying the failure
// site's offset. Successes, and the point itself, pass through
// untouched.
func AtPos[P Point, T any](p Progress[P, T, error]) Progress[P, T, error] {
	return MapErr(p, func(err error) error {
		return &PosError{Offset: p.Point.Pos(), Err: err}
	})
}
