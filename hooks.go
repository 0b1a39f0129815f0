package memocell

// Hooks are lightweight callbacks for cell events.
// Implementations MUST be cheap and non-blocking; the cell calls them
// inline. Wrap with hooks/async to offload expensive sinks.
//
// Hooks are informational only: they never affect what GetOrCompute
// returns.
type Hooks interface {
	// The derived value was served from the slot without recomputation.
	Hit()

	// The slot was absent and the computation was invoked.
	Miss()

	// The source was replaced and any stored derived value discarded.
	Invalidate()

	// The computation failed; nothing was stored.
	ComputeError(err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit()               {}
func (NopHooks) Miss()              {}
func (NopHooks) Invalidate()        {}
func (NopHooks) ComputeError(error) {}
