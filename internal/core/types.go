package core

import (
	"sort"
	"time"

	"ledmatrix/internal/render"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract every LED program implements. Step advances one
// tick and reports whether the run is still going; Frame renders the settled
// state at wall-clock time now.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() bool
	Frame(now time.Time) *render.Frame
	Interval() time.Duration
}

// KeyHandler is implemented by sims that take keyboard input. It returns true
// when the key asks the program to quit.
type KeyHandler interface {
	HandleKey(r rune) bool
}

// Restarter lets a sim hold its final frame for a while before the next run.
type Restarter interface {
	RestartDelay() time.Duration
}

// Outcomer describes how a finished run ended.
type Outcomer interface {
	Outcome() string
}

// Scorer is implemented by games that keep a score.
type Scorer interface {
	Score() int
}

// Configurable sims accept parameter updates; they take effect on the next
// Reset so a run never changes rules midway.
type Configurable interface {
	Configure(cfg map[string]string)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
