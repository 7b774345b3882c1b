// Package pattern provides static test images for checking matrix wiring.
package pattern

import (
	"strconv"
	"time"

	"ledmatrix/internal/core"
	"ledmatrix/internal/render"
)

// Modes.
const (
	ModeHI    = "hi"
	ModeIndex = "index"
	ModeRamp  = "ramp"
)

// hiBitmap is an 11x14 "HI", one row per line.
var hiBitmap = [14]string{
	"...........",
	"...........",
	".#....#..#.",
	".#....#..#.",
	".#....#....",
	".#....#..#.",
	".######..#.",
	".#....#..#.",
	".#....#..#.",
	".#....#..#.",
	".#....#..#.",
	"...........",
	"...........",
	"...........",
}

const hiLevel = 50

// Config holds parameters for the test pattern.
type Config struct {
	Width    int
	Height   int
	Mode     string
	Interval time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 11, Height: 14, Mode: ModeHI, Interval: time.Second}
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
	switch v := cfg["mode"]; v {
	case ModeHI, ModeIndex, ModeRamp:
		c.Mode = v
	}
	return c
}

// Pattern renders one fixed image. It never ends.
type Pattern struct {
	cfg   Config
	frame *render.Frame
}

// New builds the image for cfg.
func New(cfg Config) *Pattern {
	p := &Pattern{cfg: cfg}
	p.frame = p.build()
	return p
}

// Name returns the simulation identifier.
func (p *Pattern) Name() string { return "pattern" }

// Size returns the image dimensions.
func (p *Pattern) Size() core.Size { return core.Size{W: p.cfg.Width, H: p.cfg.Height} }

// Interval returns how often the image is re-sent.
func (p *Pattern) Interval() time.Duration { return p.cfg.Interval }

// Reset is a no-op; the image does not depend on the seed.
func (p *Pattern) Reset(int64) {}

// Step always reports the run as ongoing.
func (p *Pattern) Step() bool { return true }

// Frame returns a copy of the image.
func (p *Pattern) Frame(time.Time) *render.Frame {
	out := render.NewFrame(p.frame.W, p.frame.H)
	copy(out.Pix, p.frame.Pix)
	return out
}

func (p *Pattern) build() *render.Frame {
	w, h := p.cfg.Width, p.cfg.Height
	f := render.NewFrame(w, h)
	switch p.cfg.Mode {
	case ModeIndex:
		// Brightness rises along the strip, so a miswired column stands out
		// as a gradient running the wrong way.
		layout, err := render.NewLayout(w, h)
		if err != nil {
			return f
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				f.Set(x, y, render.RGB{R: clampLevel(layout.Index(x, y))})
			}
		}
	case ModeRamp:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				f.Set(x, y, render.RGB{R: clampLevel(x*h + y)})
			}
		}
	default:
		ox, oy := (w-len(hiBitmap[0]))/2, (h-len(hiBitmap))/2
		for row, line := range hiBitmap {
			for col, ch := range line {
				if ch == '#' {
					f.Set(ox+col, oy+row, render.RGB{R: hiLevel})
				}
			}
		}
	}
	return f
}

func clampLevel(v int) uint8 {
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func init() {
	core.Register("pattern", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
