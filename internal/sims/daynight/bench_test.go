package daynight

import (
	"fmt"
	"testing"
)

func benchWorld(b *testing.B, size, extras int, batch bool) *World {
	b.Helper()
	cfg := DefaultConfig()
	cfg.Width = size
	cfg.Height = size
	cfg.Fill = FillModeRandom
	cfg.ExtraEntities = extras
	cfg.UseBatch = batch
	world, err := NewWithConfig(cfg)
	if err != nil {
		b.Fatal(err)
	}
	return world
}

func BenchmarkStep(b *testing.B) {
	for _, size := range []int{64, 128, 256} {
		for _, extras := range []int{0, 48} {
			name := fmt.Sprintf("%dx%d-%d", size, size, extras+2)
			b.Run(name, func(b *testing.B) {
				world := benchWorld(b, size, extras, false)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					world.Step()
				}
			})
		}
	}
}

func BenchmarkStepBatch(b *testing.B) {
	for _, size := range []int{64, 128, 256} {
		for _, extras := range []int{0, 48} {
			name := fmt.Sprintf("%dx%d-%d", size, size, extras+2)
			b.Run(name, func(b *testing.B) {
				world := benchWorld(b, size, extras, false)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					world.StepBatch()
				}
			})
		}
	}
}

func BenchmarkCountStates(b *testing.B) {
	world := benchWorld(b, 256, 0, false)
	grid := world.Grid()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		day, night := grid.CountStates()
		if day+night != 256*256 {
			b.Fatal("count invariant broken")
		}
	}
}
