// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/memocell"
//	"github.com/unkn0wn-root/memocell/hooks/async"
//	"github.com/unkn0wn-root/memocell/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    HitEvery: 100, // sample logs: ~every 100th hit
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	cell := memocell.New(memocell.Options[Input, Result]{
//	    Source: in,
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/memocell"
)

type Hooks struct {
	inner memocell.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ memocell.Hooks = (*Hooks)(nil)

func New(inner memocell.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Hit()                   { h.try(func() { h.inner.Hit() }) }
func (h *Hooks) Miss()                  { h.try(func() { h.inner.Miss() }) }
func (h *Hooks) Invalidate()            { h.try(func() { h.inner.Invalidate() }) }
func (h *Hooks) ComputeError(err error) { h.try(func() { h.inner.ComputeError(err) }) }
