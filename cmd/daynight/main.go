//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"daynight/internal/app"
	"daynight/internal/core"
	_ "daynight/internal/sims/daynight"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.Batch)
	size := sim.Size()

	ebiten.SetWindowTitle("daynight — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
