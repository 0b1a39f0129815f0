package memocell

// ComputeFunc derives a D from an S. It is injected per call so tests can
// substitute failing or counting computations. Implementations should be
// pure with respect to the cell: the cell never re-runs a computation whose
// result it already holds.
type ComputeFunc[S, D any] func(S) (D, error)

// Cell is a single-slot cache: one source value and, lazily, the value
// derived from it. S is the source type, D the derived type.
//
// A Cell is not safe for concurrent use.
type Cell[S, D any] interface {
	// Source returns the current source value.
	Source() S

	// SetSource replaces the source value and unconditionally discards any
	// stored derived value, even when the new source equals the old one.
	// Both fields change in the same call.
	SetSource(s S)

	// Derived returns the stored derived value and whether one is present.
	// It never computes anything.
	Derived() (D, bool)

	// SetDerived stores d as the derived value for the current source and
	// marks it present. The cell does not verify that d was actually
	// derived from the current source; that obligation is the caller's.
	SetDerived(d D)

	// GetOrCompute returns the stored derived value when present (a hit).
	// Otherwise it invokes compute on the current source; on success the
	// result is stored and returned, on failure the error is returned
	// wrapped in *ComputeError and the slot stays absent.
	GetOrCompute(compute ComputeFunc[S, D]) (D, error)
}

// Options configure a Cell. Only Source carries state; Logger and Hooks
// default to no-ops when nil.
type Options[S, D any] struct {
	// Source is the initial source value. Requiring it at construction makes
	// "read before any set" unreachable.
	Source S

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks
}

// New constructs a Cell holding opts.Source with no derived value present.
func New[S, D any](opts Options[S, D]) Cell[S, D] {
	return newCell(opts)
}
