package life

import (
	"time"

	"ledmatrix/internal/core"
	"ledmatrix/internal/render"
	pcore "ledmatrix/pkg/core"
)

// Status reports where a run stands.
type Status int

const (
	// Running means the run has generations left.
	Running Status = iota
	// DiedOut means every cell died before the generation limit.
	DiedOut
	// Survived means the generation limit was reached with cells alive.
	Survived
)

func (s Status) String() string {
	switch s {
	case DiedOut:
		return "died out"
	case Survived:
		return "survived"
	default:
		return "running"
	}
}

// Life implements Conway's Game of Life on a bounded board (no wrapping).
// Each run is seeded with a random number of live cells and a random color
// and ends when the board dies out or the generation limit is reached.
type Life struct {
	cfg     Config
	pending *Config

	w, h       int
	board      *core.ByteGrid
	generation int
	color      render.RGB
	status     Status
}

// New returns a Life simulation for the provided configuration. The board is
// empty until Reset is called.
func New(cfg Config) *Life {
	return &Life{
		cfg:   cfg,
		w:     cfg.Width,
		h:     cfg.Height,
		board: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current board. The board is replaced every generation, so
// callers must fetch it again after Step.
func (l *Life) Cells() []uint8 { return l.board.Cells() }

// Generation returns the number of generations computed in this run.
func (l *Life) Generation() int { return l.generation }

// Status reports whether the run is still going and how it ended.
func (l *Life) Status() Status { return l.status }

// Color returns the color chosen for this run.
func (l *Life) Color() render.RGB { return l.color }

// Interval returns the pause between generations.
func (l *Life) Interval() time.Duration { return l.cfg.Interval }

// Outcome describes the finished run.
func (l *Life) Outcome() string { return l.status.String() }

// Parameters publishes run statistics for the HUD and run logs.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Run",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", l.generation),
			core.IntParam("alive", "Alive", l.board.Sum()),
			core.StringParam("color", "Color", l.color.Hex()),
			core.StringParam("status", "Status", l.status.String()),
		},
	}}}
}

// Configure queues new parameters for the next run. The board size is fixed
// for the lifetime of the program and is not changed.
func (l *Life) Configure(cfg map[string]string) {
	next := l.cfg.Apply(cfg)
	next.Width, next.Height = l.w, l.h
	l.pending = &next
}

// Reset starts a new run: an empty board with a random number of seeds placed
// uniformly at random (repeats allowed) and a random color.
func (l *Life) Reset(seed int64) {
	if l.pending != nil {
		l.cfg = *l.pending
		l.pending = nil
	}
	rng := pcore.NewRNG(seed)

	l.board = core.NewByteGrid(l.w, l.h)
	l.generation = 0
	l.status = Running

	total := l.w * l.h
	seeds := total
	if l.cfg.SeedMin < total {
		seeds = rng.Range(l.cfg.SeedMin, total)
	}
	for i := 0; i < seeds; i++ {
		l.board.Set(rng.Range(0, l.w), rng.Range(0, l.h), 1)
	}

	colorMax := l.cfg.ColorMax
	l.color = render.RGB{
		R: uint8(rng.Range(0, colorMax)),
		G: uint8(rng.Range(0, colorMax)),
		B: uint8(rng.Range(0, colorMax)),
	}
}

// Step advances the simulation by one generation and reports whether the run
// continues. A finished run is not stepped again.
func (l *Life) Step() bool {
	if l.status != Running {
		return false
	}
	l.board = NextGeneration(l.board, Neighbors(l.board))
	l.generation++

	switch {
	case l.board.Sum() == 0:
		l.status = DiedOut
	case l.generation >= l.cfg.MaxGenerations:
		l.status = Survived
	}
	return l.status == Running
}

// Frame paints live cells in the run color.
func (l *Life) Frame(time.Time) *render.Frame {
	f := render.NewFrame(l.w, l.h)
	render.FillBinary(f, l.board.Cells(), l.color)
	return f
}

// Neighbors returns a grid holding the live-neighbor count of every cell.
func Neighbors(board *core.ByteGrid) *core.ByteGrid {
	out := core.NewByteGrid(board.W, board.H)
	for y := 0; y < board.H; y++ {
		for x := 0; x < board.W; x++ {
			out.Set(x, y, uint8(board.CountNeighbors(x, y)))
		}
	}
	return out
}

// NextGeneration applies the Conway rules to a snapshot of the board. Both
// masks read only board and neighbors; the result is a new grid.
func NextGeneration(board, neighbors *core.ByteGrid) *core.ByteGrid {
	next := board.Clone()
	cells := board.Cells()
	counts := neighbors.Cells()
	out := next.Cells()
	for i, alive := range cells {
		n := counts[i]
		death := alive != 0 && n != 2 && n != 3
		birth := alive == 0 && n == 3
		switch {
		case death:
			out[i] = 0
		case birth:
			out[i] = 1
		}
	}
	return next
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
