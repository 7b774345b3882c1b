package life

import (
	"strconv"
	"time"
)

// Config holds parameters for the Game of Life program.
type Config struct {
	Width  int
	Height int

	// MaxGenerations ends a run as survived once reached.
	MaxGenerations int
	// SeedMin is the lower bound of the random seed count; the upper bound
	// is the number of cells.
	SeedMin int
	// ColorMax bounds each channel of the per-run color.
	ColorMax int

	Interval time.Duration
}

// DefaultConfig returns the configuration used on the 11×14 matrix.
func DefaultConfig() Config {
	return Config{
		Width:          11,
		Height:         14,
		MaxGenerations: 50,
		SeedMin:        60,
		ColorMax:       200,
		Interval:       50 * time.Millisecond,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the values present in cfg overriding it. Invalid values
// are ignored.
func (c Config) Apply(cfg map[string]string) Config {
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
	if v, ok := cfg["max_generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxGenerations = parsed
		}
	}
	if v, ok := cfg["seed_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedMin = parsed
		}
	}
	if v, ok := cfg["color_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 256 {
			c.ColorMax = parsed
		}
	}
	if v, ok := cfg["interval_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Interval = time.Duration(parsed) * time.Millisecond
		}
	}
	return c
}
