// Command daynight-bench compares the per-entity and batch step paths
// headlessly across a sweep of grid sizes and entity counts.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"daynight/internal/sims/daynight"
)

type scenario struct {
	size     int
	entities int
}

type result struct {
	scenario scenario

	single time.Duration
	batch  time.Duration

	day   int
	night int
}

func (r result) speedup() float64 {
	if r.batch <= 0 {
		return 0
	}
	return float64(r.single) / float64(r.batch)
}

func main() {
	steps := flag.Int("steps", 2000, "steps to simulate per scenario")
	seed := flag.Int64("seed", 1337, "seed shared by all scenarios")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	sizes := []int{32, 64, 128, 256}
	entityCounts := []int{2, 10, 50, 200}

	var scenarios []scenario
	for _, size := range sizes {
		for _, count := range entityCounts {
			scenarios = append(scenarios, scenario{size: size, entities: count})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps each)\n", len(scenarios), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan result)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, *steps, *seed)
			}
		}()
	}

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var collected []result
	for res := range results {
		collected = append(collected, res)
	}

	sort.Slice(collected, func(i, j int) bool {
		if collected[i].scenario.size != collected[j].scenario.size {
			return collected[i].scenario.size < collected[j].scenario.size
		}
		return collected[i].scenario.entities < collected[j].scenario.entities
	})

	fmt.Printf("\n%8s %9s %14s %14s %9s %18s\n",
		"grid", "entities", "per-entity", "batch", "speedup", "final day/night")
	for _, res := range collected {
		fmt.Printf("%4dx%-4d %9d %14s %14s %8.2fx %9d/%d\n",
			res.scenario.size, res.scenario.size, res.scenario.entities,
			res.single.Round(time.Microsecond), res.batch.Round(time.Microsecond),
			res.speedup(), res.day, res.night)
	}
}

func runScenario(sc scenario, steps int, seed int64) result {
	cfg := daynight.DefaultConfig()
	cfg.Width = sc.size
	cfg.Height = sc.size
	cfg.Seed = seed
	cfg.Fill = daynight.FillModeRandom
	if sc.entities > 2 {
		cfg.ExtraEntities = sc.entities - 2
	}

	single, err := daynight.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("scenario %dx%d: %v", sc.size, sc.size, err)
	}
	batch, err := daynight.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("scenario %dx%d: %v", sc.size, sc.size, err)
	}

	start := time.Now()
	for i := 0; i < steps; i++ {
		single.Step()
	}
	singleTime := time.Since(start)

	start = time.Now()
	for i := 0; i < steps; i++ {
		batch.StepBatch()
	}
	batchTime := time.Since(start)

	sd, sn := single.Counts()
	bd, bn := batch.Counts()
	if sd != bd || sn != bn {
		log.Fatalf("scenario %dx%d/%d: step paths diverged: (%d,%d) vs (%d,%d)",
			sc.size, sc.size, sc.entities, sd, sn, bd, bn)
	}

	return result{scenario: sc, single: singleTime, batch: batchTime, day: sd, night: sn}
}
