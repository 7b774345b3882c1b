package briansbrain

import (
	"strconv"
	"time"

	"ledmatrix/internal/core"
	"ledmatrix/internal/render"
	pcore "ledmatrix/pkg/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var palette = []render.RGB{
	stateDead:  render.Black,
	stateOn:    {R: 40, G: 120, B: 200},
	stateDying: {R: 10, G: 20, B: 60},
}

// Config holds parameters for Brian's Brain.
type Config struct {
	Width    int
	Height   int
	Density  int // one in Density cells starts firing
	Interval time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 11, Height: 14, Density: 4, Interval: 80 * time.Millisecond}
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
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	return c
}

// Brain implements Brian's Brain cellular automaton on a wrapping grid.
type Brain struct {
	cfg  Config
	w, h int
	cur  []uint8
	nxt  []uint8
}

// New creates a Brain simulation with the provided configuration.
func New(cfg Config) *Brain {
	cells := make([]uint8, cfg.Width*cfg.Height)
	return &Brain{cfg: cfg, w: cfg.Width, h: cfg.Height, cur: cells, nxt: make([]uint8, len(cells))}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return core.Size{W: b.w, H: b.h} }

// Cells exposes the current state buffer.
func (b *Brain) Cells() []uint8 { return b.cur }

// Interval returns the tick interval.
func (b *Brain) Interval() time.Duration { return b.cfg.Interval }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := pcore.NewRNG(seed).Source()
	for i := range b.cur {
		if rng.IntN(b.cfg.Density) == 0 {
			b.cur[i] = stateOn
			continue
		}
		b.cur[i] = stateDead
	}
}

// Step advances the automaton by one tick. It returns false once every cell
// is dead.
func (b *Brain) Step() bool {
	w, h := b.w, b.h
	active := false
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch b.cur[idx] {
			case stateOn:
				b.nxt[idx] = stateDying
			case stateDying:
				b.nxt[idx] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						if b.cur[ny*w+nx] == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					b.nxt[idx] = stateOn
				} else {
					b.nxt[idx] = stateDead
				}
			}
			if b.nxt[idx] != stateDead {
				active = true
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
	return active
}

// Frame colors firing cells bright and dying cells dim.
func (b *Brain) Frame(time.Time) *render.Frame {
	f := render.NewFrame(b.w, b.h)
	render.FillPalette(f, b.cur, palette)
	return f
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
