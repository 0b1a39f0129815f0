// Package sloghooks logs cell events through log/slog.
// Hits are the hot path; sample them with Options.HitEvery to avoid floods.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/memocell"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ memocell.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit() {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("memocell.hit")
}

func (h *Hooks) Miss() {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("memocell.miss")
}

func (h *Hooks) Invalidate() {
	if h.l == nil {
		return
	}
	h.l.Debug("memocell.invalidate")
}

func (h *Hooks) ComputeError(err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("memocell.compute_error", "err", err)
}
