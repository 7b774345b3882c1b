package input

import (
	"errors"
	"io"
	"sync"
)

// ChanSource delivers keys pushed by another component, such as a TUI event
// loop, to a Poller.
type ChanSource struct {
	ch        chan rune
	done      chan struct{}
	closeOnce sync.Once
}

// NewChanSource returns a source buffering up to size keys.
func NewChanSource(size int) *ChanSource {
	if size < 1 {
		size = 1
	}
	return &ChanSource{ch: make(chan rune, size), done: make(chan struct{})}
}

// Send queues r without blocking. It reports false when the buffer is full or
// the source is closed.
func (s *ChanSource) Send(r rune) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.ch <- r:
		return true
	default:
		return false
	}
}

// ReadKey blocks until a key arrives or the source is closed.
func (s *ChanSource) ReadKey() (rune, error) {
	select {
	case r := <-s.ch:
		return r, nil
	case <-s.done:
		return 0, io.EOF
	}
}

// Close wakes blocked readers with io.EOF.
func (s *ChanSource) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// ErrScriptDone is returned by ScriptSource once its keys are used up.
var ErrScriptDone = errors.New("input: script exhausted")

// ScriptSource replays a fixed sequence of keys and errors.
type ScriptSource struct {
	mu    sync.Mutex
	steps []ScriptStep
	reads int
}

// ScriptStep is one scripted ReadKey result.
type ScriptStep struct {
	Key rune
	Err error
}

// NewScriptSource builds a source that returns keys in order.
func NewScriptSource(keys ...rune) *ScriptSource {
	steps := make([]ScriptStep, len(keys))
	for i, k := range keys {
		steps[i] = ScriptStep{Key: k}
	}
	return &ScriptSource{steps: steps}
}

// Then appends a step.
func (s *ScriptSource) Then(step ScriptStep) *ScriptSource {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, step)
	return s
}

// ReadKey returns the next scripted result, then ErrScriptDone forever.
func (s *ScriptSource) ReadKey() (rune, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	if len(s.steps) == 0 {
		return 0, ErrScriptDone
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return step.Key, step.Err
}

// Reads reports how many times ReadKey was called.
func (s *ScriptSource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}
