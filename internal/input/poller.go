// Package input captures single keystrokes on a background goroutine and
// hands the most recent one to the tick loop.
package input

import (
	"context"
	"sync/atomic"
	"time"
)

// Source yields one key per call, blocking until one is available.
type Source interface {
	ReadKey() (rune, error)
}

const defaultBackoff = 10 * time.Millisecond

// Poller keeps only the latest key. Keys that arrive between two TakeKey
// calls overwrite each other; the tick loop only ever acts on one per tick.
type Poller struct {
	src     Source
	backoff time.Duration
	last    atomic.Int32
}

// NewPoller wraps src.
func NewPoller(src Source) *Poller {
	return &Poller{src: src, backoff: defaultBackoff}
}

// WithBackoff sets the pause after a failed read.
func (p *Poller) WithBackoff(d time.Duration) *Poller {
	if d > 0 {
		p.backoff = d
	}
	return p
}

// Start launches the capture goroutine. It exits once ctx is done and its
// current read returns; nothing waits for it.
func (p *Poller) Start(ctx context.Context) {
	go p.loop(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		r, err := p.src.ReadKey()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			case <-time.After(p.backoff):
			}
			continue
		}
		p.offer(r)
	}
}

func (p *Poller) offer(r rune) {
	if r == 0 {
		return
	}
	p.last.Store(int32(r))
}

// TakeKey returns the latest key and clears the slot.
func (p *Poller) TakeKey() (rune, bool) {
	r := p.last.Swap(0)
	return rune(r), r != 0
}
