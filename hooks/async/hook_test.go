package asynchook

import (
	"errors"
	"sync"
	"testing"

	"github.com/unkn0wn-root/memocell"
)

// recordingHooks is a concurrency-safe spy; asynchook workers call it from
// their own goroutines.
type recordingHooks struct {
	mu     sync.Mutex
	events []string
}

var _ memocell.Hooks = (*recordingHooks)(nil)

func (r *recordingHooks) add(e string) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recordingHooks) Hit()                 { r.add("hit") }
func (r *recordingHooks) Miss()                { r.add("miss") }
func (r *recordingHooks) Invalidate()          { r.add("invalidate") }
func (r *recordingHooks) ComputeError(e error) { r.add("compute_error:" + e.Error()) }

func (r *recordingHooks) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func TestAsyncDeliversAndCloseDrains(t *testing.T) {
	inner := &recordingHooks{}
	h := New(inner, 1, 16)

	h.Miss()
	h.Hit()
	h.Invalidate()
	h.ComputeError(errors.New("boom"))

	// Close drains the queue before returning.
	h.Close()

	want := []string{"miss", "hit", "invalidate", "compute_error:boom"}
	got := inner.snapshot()
	if len(got) != len(want) {
		t.Fatalf("delivered %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d = %q, want %q (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestAsyncDropsWhenQueueFull(t *testing.T) {
	blocked := make(chan struct{})
	inner := &recordingHooks{}
	h := New(&gate{Hooks: inner, release: blocked}, 1, 1)

	// first event occupies the worker, second fills the queue, rest drop
	for i := 0; i < 10; i++ {
		h.Hit()
	}
	close(blocked)
	h.Close()

	if n := len(inner.snapshot()); n > 2 {
		t.Fatalf("delivered %d events, want at most 2 (rest dropped)", n)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	h := New(&recordingHooks{}, 2, 4)
	h.Close()
	h.Close() // must not panic
}

// gate blocks every callback until release is closed.
type gate struct {
	memocell.Hooks
	release <-chan struct{}
}

func (g *gate) Hit() {
	<-g.release
	g.Hooks.Hit()
}
