package memocell

// GetOrCompute implements the compute-or-fetch decision for the cell.
//
// The derived value is stored only after compute succeeds, so the slot never
// holds the result of a failed computation and a reader only ever observes
// "absent" or a completed result.
func (c *cell[S, D]) GetOrCompute(compute ComputeFunc[S, D]) (D, error) {
	if c.present {
		c.hooks.Hit()
		c.log.Debug("derived served from cell", nil)
		return c.derived, nil
	}

	var zero D
	if compute == nil {
		return zero, ErrNilCompute
	}

	c.hooks.Miss()
	c.log.Debug("derived absent, computing", nil)

	d, err := compute(c.source)
	if err != nil {
		c.hooks.ComputeError(err)
		return zero, &ComputeError{Err: err}
	}

	c.SetDerived(d)
	return d, nil
}
