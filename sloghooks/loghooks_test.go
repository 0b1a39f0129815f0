package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newBufLogger() (*bytes.Buffer, *slog.Logger) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &buf, l
}

func TestEventsLogged(t *testing.T) {
	buf, l := newBufLogger()
	h := New(l, Options{})

	h.Hit()
	h.Miss()
	h.Invalidate()
	h.ComputeError(errors.New("singular"))

	out := buf.String()
	for _, want := range []string{
		"memocell.hit",
		"memocell.miss",
		"memocell.invalidate",
		"memocell.compute_error",
		"singular",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestHitSampling(t *testing.T) {
	buf, l := newBufLogger()
	h := New(l, Options{HitEvery: 2})

	for i := 0; i < 4; i++ {
		h.Hit()
	}

	if got := strings.Count(buf.String(), "memocell.hit"); got != 2 {
		t.Fatalf("sampled hit lines = %d, want 2 of 4", got)
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	h := New(nil, Options{})
	h.Hit()
	h.Miss()
	h.Invalidate()
	h.ComputeError(errors.New("x"))
}
