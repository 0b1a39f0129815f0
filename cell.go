package memocell

type cell[S, D any] struct {
	source  S
	derived D
	present bool

	log   Logger
	hooks Hooks
}

func newCell[S, D any](opts Options[S, D]) *cell[S, D] {
	c := &cell[S, D]{source: opts.Source}
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	return c
}

func (c *cell[S, D]) Source() S { return c.source }

func (c *cell[S, D]) SetSource(s S) {
	var zero D
	// source and derived change together; there is no state in which the
	// old derived value is readable against the new source
	c.source = s
	c.derived = zero
	c.present = false
	c.hooks.Invalidate()
	c.log.Debug("source replaced, derived discarded", nil)
}

func (c *cell[S, D]) Derived() (D, bool) {
	return c.derived, c.present
}

func (c *cell[S, D]) SetDerived(d D) {
	c.derived = d
	c.present = true
}
