package elementary

import (
	"strconv"
	"time"

	"ledmatrix/internal/core"
	"ledmatrix/internal/render"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width    int
	Height   int
	Rule     uint8
	Interval time.Duration
	Color    render.RGB
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 11, Height: 14, Rule: 110, Interval: 120 * time.Millisecond, Color: render.RGB{R: 180, G: 90}}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// The newest row is at the top and history scrolls down the matrix.
type Elementary struct {
	cfg  Config
	w, h int
	cur  []uint8
	tmp  []uint8
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	total := cfg.Width * cfg.Height
	return &Elementary{cfg: cfg, w: cfg.Width, h: cfg.Height, cur: make([]uint8, total), tmp: make([]uint8, cfg.Width)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.w, H: e.h} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.cur }

// Interval returns the tick interval.
func (e *Elementary) Interval() time.Duration { return e.cfg.Interval }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	for i := range e.cur {
		e.cur[i] = 0
	}
	center := e.w / 2
	if center >= 0 && center < e.w {
		e.cur[center] = 1
	}
}

// Step computes the next generation and scrolls history downwards. The
// automaton never ends on its own.
func (e *Elementary) Step() bool {
	copy(e.tmp, e.cur[:e.w])
	copy(e.cur[e.w:], e.cur[:e.w*(e.h-1)])
	for x := 0; x < e.w; x++ {
		left := e.tmp[(x-1+e.w)%e.w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%e.w]
		idx := (left << 2) | (center << 1) | right
		bit := (e.cfg.Rule >> idx) & 1
		e.cur[x] = bit
	}
	return true
}

// Frame draws active cells in the configured color.
func (e *Elementary) Frame(time.Time) *render.Frame {
	f := render.NewFrame(e.w, e.h)
	render.FillBinary(f, e.cur, e.cfg.Color)
	return f
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
