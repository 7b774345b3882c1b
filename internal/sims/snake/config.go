package snake

import (
	"strconv"
	"time"
)

// Config holds parameters for the snake game.
type Config struct {
	Width  int
	Height int

	// Interval is the starting tick interval. Each food eaten shortens it by
	// SpeedStep, never below MinInterval.
	Interval    time.Duration
	SpeedStep   time.Duration
	MinInterval time.Duration

	// RestartDelay is how long the game-over blink stays up before a new game.
	RestartDelay time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        11,
		Height:       14,
		Interval:     150 * time.Millisecond,
		SpeedStep:    5 * time.Millisecond,
		MinInterval:  50 * time.Millisecond,
		RestartDelay: 3 * time.Second,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the values present in cfg overriding it.
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
	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"interval_ms", &c.Interval},
		{"speed_step_ms", &c.SpeedStep},
		{"min_interval_ms", &c.MinInterval},
		{"restart_delay_ms", &c.RestartDelay},
	}
	for _, d := range durations {
		if v, ok := cfg[d.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*d.dst = time.Duration(parsed) * time.Millisecond
			}
		}
	}
	if c.MinInterval <= 0 {
		c.MinInterval = time.Millisecond
	}
	if c.Interval < c.MinInterval {
		c.Interval = c.MinInterval
	}
	return c
}
