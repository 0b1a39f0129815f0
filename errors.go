package memocell

import (
	"errors"
	"fmt"
)

// ErrNilCompute is returned by GetOrCompute when the slot is absent and no
// computation function was supplied.
var ErrNilCompute = errors.New("memocell: nil compute func")

// ComputeError wraps a failure of the injected computation. The cell is left
// unchanged: the derived slot stays absent and the next GetOrCompute runs
// the computation again.
type ComputeError struct {
	Err error
}

func (e *ComputeError) Error() string {
	return fmt.Sprintf("memocell: compute failed: %v", e.Err)
}

func (e *ComputeError) Unwrap() error { return e.Err }
