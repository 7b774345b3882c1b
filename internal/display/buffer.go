// Package display provides render.Sink implementations: an in-memory buffer,
// an ANSI terminal view, PNG snapshots and the WS281x strip itself.
package display

import (
	"slices"
	"sync"

	"ledmatrix/internal/render"
)

// Buffer is an in-memory sink. It backs the preview window and the null sink,
// and records what was flushed for tests.
type Buffer struct {
	mu      sync.Mutex
	pending []render.RGB
	shown   []render.RGB
	shows   int
	fail    error
}

// NewBuffer allocates a sink for n LEDs.
func NewBuffer(n int) *Buffer {
	return &Buffer{pending: make([]render.RGB, n), shown: make([]render.RGB, n)}
}

// SetPixel stages c at strip index i. Out of range indices are ignored.
func (b *Buffer) SetPixel(i int, c render.RGB) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.pending) {
		return
	}
	b.pending[i] = c
}

// Show publishes the staged pixels, or returns the injected failure.
func (b *Buffer) Show() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
	if b.fail != nil {
		return b.fail
	}
	copy(b.shown, b.pending)
	return nil
}

// FailWith makes every later Show return err. Pass nil to recover.
func (b *Buffer) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = err
}

// Shown returns a copy of the last successfully flushed strip.
func (b *Buffer) Shown() []render.RGB {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.shown)
}

// Shows counts Show calls, failed ones included.
func (b *Buffer) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Close implements io.Closer.
func (b *Buffer) Close() error { return nil }
