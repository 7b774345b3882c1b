//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"ledmatrix/internal/app"
	_ "ledmatrix/internal/sims/briansbrain"
	_ "ledmatrix/internal/sims/elementary"
	_ "ledmatrix/internal/sims/life"
	_ "ledmatrix/internal/sims/pattern"
	_ "ledmatrix/internal/sims/ripples"
	_ "ledmatrix/internal/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if _, err := cfg.LoadFile(flag.CommandLine); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	layout, err := cfg.Layout()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := app.New(app.NewSession(sim, seed, logger), layout, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ledmatrix - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
