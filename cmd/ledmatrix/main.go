package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledmatrix/internal/app"
	"ledmatrix/internal/core"
	"ledmatrix/internal/display"
	"ledmatrix/internal/input"
	"ledmatrix/internal/render"
	_ "ledmatrix/internal/sims/briansbrain"
	_ "ledmatrix/internal/sims/elementary"
	_ "ledmatrix/internal/sims/life"
	_ "ledmatrix/internal/sims/pattern"
	_ "ledmatrix/internal/sims/ripples"
	_ "ledmatrix/internal/sims/snake"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("ledmatrix: %v", err)
	}
}

func run() error {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	created, err := cfg.LoadFile(flag.CommandLine)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	sim, err := cfg.NewSim()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Keys are only read for programs that use them; the terminal stays in
	// cooked mode otherwise.
	var (
		logOut io.Writer = os.Stderr
		keys   app.KeySource
	)
	if _, ok := sim.(core.KeyHandler); ok {
		term, err := input.OpenTerminal(os.Stdin)
		if err != nil {
			return err
		}
		defer term.Restore()
		logOut = input.CRLFWriter{W: os.Stderr}
		poller := input.NewPoller(term)
		poller.Start(ctx)
		keys = poller
	}

	logger, err := app.NewLogger(logOut, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	if created {
		logger.Info("wrote default config", "path", cfg.ConfigPath)
	}

	dev, err := display.Open(cfg.DisplayOptions(layout, os.Stdout))
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Close(); err != nil {
			logger.Warn("closing display", "err", err)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	session := app.NewSession(sim, seed, logger)

	if cfg.ConfigPath != "" {
		go func() {
			if err := cfg.WatchFile(ctx, session, logger); err != nil {
				logger.Warn("config watch stopped", "err", err)
			}
		}()
	}

	logger.Info("starting",
		slog.String("sim", sim.Name()),
		slog.String("sink", cfg.Sink),
		slog.String("size", fmt.Sprintf("%dx%d", layout.Width(), layout.Height())))

	runner := &app.Runner{
		Session:  session,
		Renderer: render.NewRenderer(layout, dev),
		Keys:     keys,
		Logger:   logger,
	}
	err = runner.Run(ctx)
	if errors.Is(err, app.ErrQuit) {
		return nil
	}
	return err
}
