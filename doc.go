// Package memocell implements a single-slot derive-on-demand cache: one
// source value paired with the lazily computed value derived from it.
// Replacing the source always discards the derived value in the same
// operation, so a stale derived value is never readable against a new source.
//
// Components:
//   - Cell[S, D]: the slot. Holds the source (S) and, once computed, the
//     derived value (D). Constructed with an initial source via New.
//   - ComputeFunc[S, D]: the injected computation, supplied per call to
//     GetOrCompute. Expected to be a pure function of its input.
//   - Logger / Hooks: informational hit/miss/invalidation signals. Adapters
//     for zap, logrus and slog live under log/.
//
// Compute-or-fetch pattern:
//
//	cell := memocell.New(memocell.Options[matrix.Dense, matrix.Dense]{Source: m})
//	inv, err := cell.GetOrCompute(matrix.Inverse) // computes once
//	inv, err  = cell.GetOrCompute(matrix.Inverse) // served from the slot
//	cell.SetSource(m2)                            // discards the cached inverse
//
// A Cell stores the result of a successful computation only; a computation
// error leaves the slot absent, so the next GetOrCompute computes again.
//
// Cells are not safe for concurrent use. Callers sharing a Cell across
// goroutines must wrap every operation, reads included, in their own
// synchronization (e.g. a sync.Mutex around the whole read-modify-write).
package memocell
