// Package ripples draws three expanding rings, one per color channel, whose
// centers drift in a random walk across a wrapping board.
package ripples

import (
	"math"
	"strconv"
	"time"

	"ledmatrix/internal/core"
	"ledmatrix/internal/render"
	pcore "ledmatrix/pkg/core"
)

const (
	bandWidth = 0.3
	ringLevel = 100
)

// Config holds parameters for the ripple animation.
type Config struct {
	Width    int
	Height   int
	Drift    float64 // standard deviation of the per-tick center walk
	Interval time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 11, Height: 14, Drift: 0.6, Interval: 40 * time.Millisecond}
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
	if v, ok := cfg["drift"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Drift = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	return c
}

// circle is one ring emitter. Its ring radius cycles every period ticks of
// its own clock, shifted by offset.
type circle struct {
	cx, cy float64
	period int
	offset int
}

// band reports whether (x, y) lies on the ring at clock value t. Distances are
// normalized by the board width.
func (c *circle) band(x, y, w int, t int) bool {
	dx, dy := float64(x)-c.cx, float64(y)-c.cy
	dist := math.Sqrt(dx*dx+dy*dy) / float64(w)
	tt := float64((t+c.offset)%c.period) / float64(c.period)
	return tt <= dist && dist <= tt+bandWidth
}

// Ripples is the animation state.
type Ripples struct {
	cfg     Config
	w, h    int
	circles [3]circle // red, green, blue
	tick    int
	frame   *render.Frame
	rng     *pcore.RNG
}

// New creates the animation.
func New(cfg Config) *Ripples {
	r := &Ripples{cfg: cfg, w: cfg.Width, h: cfg.Height}
	r.Reset(1)
	return r
}

// Name returns the simulation identifier.
func (r *Ripples) Name() string { return "ripples" }

// Size returns the board dimensions.
func (r *Ripples) Size() core.Size { return core.Size{W: r.w, H: r.h} }

// Interval returns the tick interval.
func (r *Ripples) Interval() time.Duration { return r.cfg.Interval }

// Reset recenters the emitters and restarts the clock.
func (r *Ripples) Reset(seed int64) {
	r.rng = pcore.NewRNG(seed)
	cx, cy := float64(r.w)/2, float64(r.h)/2
	r.circles = [3]circle{
		{cx: cx, cy: cy, period: 3, offset: 3},
		{cx: cx, cy: cy, period: 4, offset: 5},
		{cx: cx, cy: cy, period: 5, offset: 10},
	}
	r.tick = 0
	r.frame = render.NewFrame(r.w, r.h)
}

// channelClocks staggers the channels: each advances once every three ticks,
// red first, then green, then blue.
func channelClocks(tick int) [3]int {
	base := tick / 3
	switch tick % 3 {
	case 1:
		return [3]int{base + 1, base, base}
	case 2:
		return [3]int{base + 1, base + 1, base}
	}
	return [3]int{base, base, base}
}

// Step moves the emitters, draws the rings for the current tick and advances
// the clock. The animation never ends.
func (r *Ripples) Step() bool {
	clocks := channelClocks(r.tick)
	for i := range r.circles {
		r.walk(&r.circles[i])
	}

	f := render.NewFrame(r.w, r.h)
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			var c render.RGB
			if r.circles[0].band(x, y, r.w, clocks[0]) {
				c.R = ringLevel
			}
			if r.circles[1].band(x, y, r.w, clocks[1]) {
				c.G = ringLevel
			}
			if r.circles[2].band(x, y, r.w, clocks[2]) {
				c.B = ringLevel
			}
			f.Set(x, y, c)
		}
	}
	r.frame = f
	r.tick++
	return true
}

func (r *Ripples) walk(c *circle) {
	src := r.rng.Source()
	c.cx = wrap(c.cx+src.NormFloat64()*r.cfg.Drift, float64(r.w))
	c.cy = wrap(c.cy+src.NormFloat64()*r.cfg.Drift, float64(r.h))
}

func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}

// Frame returns the rings drawn by the last Step.
func (r *Ripples) Frame(time.Time) *render.Frame {
	out := render.NewFrame(r.w, r.h)
	copy(out.Pix, r.frame.Pix)
	return out
}

func init() {
	core.Register("ripples", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
