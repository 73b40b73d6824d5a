// Command daynight-stream runs the simulation headlessly and broadcasts
// per-step frames to websocket viewers on /ws.
package main

import (
	"flag"
	"log"
	"net/http"

	"daynight/internal/sims/daynight"
	"daynight/internal/stream"
)

func main() {
	addr := flag.String("addr", ":8408", "listen address")
	width := flag.Int("w", 128, "grid width in cells")
	height := flag.Int("h", 128, "grid height in cells")
	fill := flag.String("fill", "split", "initial fill: split, day, night or random")
	entities := flag.Int("entities", 0, "extra entities beyond the default pair")
	seed := flag.Int64("seed", 1337, "simulation seed")
	rate := flag.Int("rate", 30, "simulation steps per second")
	batch := flag.Bool("batch", true, "drive the batch step path")
	flag.Parse()

	cfg := daynight.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Fill = *fill
	cfg.ExtraEntities = *entities
	cfg.Seed = *seed
	cfg.UseBatch = *batch

	world, err := daynight.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	server := stream.NewServer(world, *rate)

	stop := make(chan struct{})
	defer close(stop)
	go server.Run(stop)

	http.HandleFunc("/ws", server.HandleViewer)
	log.Printf("daynight-stream: %dx%d grid, %d entities, listening on %s",
		cfg.Width, cfg.Height, len(world.Entities()), *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
