package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"ledmatrix/internal/config"
	"ledmatrix/internal/core"
	"ledmatrix/internal/display"
	"ledmatrix/internal/render"
)

// Config represents the settings shared by every front end. Defaults come from
// NewConfig, then the optional JSON file, then explicitly set flags.
type Config struct {
	Sim    string `json:"sim"`
	Sink   string `json:"sink"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   int64  `json:"seed"` // 0 picks a seed from the clock

	Brightness int    `json:"brightness"`
	GPIOPin    int    `json:"gpio_pin"`
	PowerChip  string `json:"power_chip"`
	PowerLine  int    `json:"power_line"`

	SnapshotDir   string `json:"snapshot_dir"`
	SnapshotScale int    `json:"snapshot_scale"`
	SnapshotEvery int    `json:"snapshot_every"`

	Scale int `json:"scale"`
	TPS   int `json:"tps"`

	LogLevel string `json:"log_level"`
	LogJSON  bool   `json:"log_json"`

	// Sims holds per-program parameters, keyed by program name.
	Sims map[string]map[string]string `json:"sims,omitempty"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with the defaults for an 11x14 matrix
// on GPIO 18.
func NewConfig() *Config {
	return &Config{
		Sim:           "life",
		Sink:          display.KindTerminal,
		Width:         11,
		Height:        14,
		Brightness:    51,
		GPIOPin:       18,
		PowerChip:     "gpiochip0",
		PowerLine:     -1,
		SnapshotDir:   "snapshots",
		SnapshotScale: 24,
		SnapshotEvery: 1,
		Scale:         40,
		TPS:           60,
		LogLevel:      "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "program to run")
	fs.StringVar(&c.Sink, "sink", c.Sink, "display sink: terminal, ws281x, snapshot or null")
	fs.IntVar(&c.Width, "w", c.Width, "matrix columns")
	fs.IntVar(&c.Height, "h", c.Height, "matrix rows")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first run (0 = from clock)")
	fs.IntVar(&c.Brightness, "brightness", c.Brightness, "strip brightness 0-255")
	fs.IntVar(&c.GPIOPin, "gpio", c.GPIOPin, "strip data GPIO pin")
	fs.StringVar(&c.PowerChip, "power-chip", c.PowerChip, "GPIO chip of the strip power switch")
	fs.IntVar(&c.PowerLine, "power-line", c.PowerLine, "GPIO line of the strip power switch (-1 = none)")
	fs.StringVar(&c.SnapshotDir, "snapshot-dir", c.SnapshotDir, "directory for snapshot PNGs")
	fs.IntVar(&c.SnapshotScale, "snapshot-scale", c.SnapshotScale, "snapshot pixels per LED")
	fs.IntVar(&c.SnapshotEvery, "snapshot-every", c.SnapshotEvery, "save every Nth frame")
	fs.IntVar(&c.Scale, "scale", c.Scale, "preview pixels per LED")
	fs.IntVar(&c.TPS, "tps", c.TPS, "preview ticks per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&c.LogJSON, "log-json", c.LogJSON, "log as JSON")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON config file, created with defaults if missing")
}

// LoadFile replaces c with the defaults merged with the config file. Flags set
// explicitly on fs keep their command-line values. created reports whether
// the file was written with the defaults because it did not exist; flag
// values are never written to it.
func (c *Config) LoadFile(fs *flag.FlagSet) (created bool, err error) {
	if c.ConfigPath == "" {
		return false, nil
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })

	path := c.ConfigPath
	loaded := NewConfig()
	created, err = config.Load(path, loaded)
	if err != nil {
		return false, err
	}
	*c = *loaded
	c.ConfigPath = path
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return created, fmt.Errorf("app: flag -%s: %w", name, err)
		}
	}
	return created, nil
}

// Validate reports configuration errors before any hardware is touched.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Layout(); err != nil {
		errs = append(errs, err)
	}
	if _, ok := core.Sims()[c.Sim]; !ok {
		errs = append(errs, fmt.Errorf("unknown sim %q (have %v)", c.Sim, core.Names()))
	}
	if !slices.Contains(display.Kinds, c.Sink) {
		errs = append(errs, fmt.Errorf("unknown sink %q (have %v)", c.Sink, display.Kinds))
	}
	if c.Brightness < 0 || c.Brightness > 255 {
		errs = append(errs, fmt.Errorf("brightness %d out of range 0-255", c.Brightness))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	return errors.Join(errs...)
}

// Layout returns the matrix wiring for the configured size.
func (c *Config) Layout() (render.Layout, error) {
	return render.NewLayout(c.Width, c.Height)
}

// SimConfig returns the parameter map for the selected program with the
// matrix size filled in.
func (c *Config) SimConfig() map[string]string {
	params := maps.Clone(c.Sims[c.Sim])
	if params == nil {
		params = map[string]string{}
	}
	params["w"] = strconv.Itoa(c.Width)
	params["h"] = strconv.Itoa(c.Height)
	return params
}

// NewSim builds the selected program.
func (c *Config) NewSim() (core.Sim, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q", c.Sim)
	}
	return factory(c.SimConfig()), nil
}

// DisplayOptions describes the configured sink. out receives terminal output.
func (c *Config) DisplayOptions(layout render.Layout, out io.Writer) display.Options {
	return display.Options{
		Kind:          c.Sink,
		Layout:        layout,
		Out:           out,
		Brightness:    c.Brightness,
		GPIOPin:       c.GPIOPin,
		PowerChip:     c.PowerChip,
		PowerLine:     c.PowerLine,
		SnapshotDir:   c.SnapshotDir,
		SnapshotScale: c.SnapshotScale,
		SnapshotEvery: c.SnapshotEvery,
	}
}

// WatchFile re-reads the config file whenever it changes and queues the new
// program parameters on s for its next run. Size, sink and program changes
// need a restart and are only logged. It blocks until ctx is done.
func (c *Config) WatchFile(ctx context.Context, s *Session, logger *slog.Logger) error {
	if c.ConfigPath == "" {
		return nil
	}
	return config.Watch(ctx, c.ConfigPath, logger, func() {
		next := *c
		next.Sims = nil
		if _, err := config.Load(c.ConfigPath, &next); err != nil {
			logger.Warn("config reload failed", "path", c.ConfigPath, "err", err)
			return
		}
		if next.Width != c.Width || next.Height != c.Height || next.Sink != c.Sink || next.Sim != c.Sim {
			logger.Info("config change needs a restart; ignored",
				"sim", next.Sim, "sink", next.Sink, "width", next.Width, "height", next.Height)
		}
		next.Sim, next.Width, next.Height = c.Sim, c.Width, c.Height
		s.Configure(next.SimConfig())
		logger.Info("config reloaded", "path", c.ConfigPath, "sim", c.Sim)
	})
}
