package core

import (
	"errors"
	"testing"
)

func TestNewGridInvalidDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 5},
		{5, 0},
		{-1, 5},
		{5, -3},
		{0, 0},
	}
	for _, c := range cases {
		if _, err := NewGrid(c.w, c.h, nil); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGrid(%d, %d) error = %v, want ErrInvalidDimensions", c.w, c.h, err)
		}
	}
}

func TestToggleCell(t *testing.T) {
	g, err := NewGrid(5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := g.Toggle(2, 2); err != nil {
		t.Fatal(err)
	}
	if state, _ := g.Get(2, 2); state != Night {
		t.Fatalf("cell (2,2) = %v after toggle, want night", state)
	}

	if err := g.Toggle(2, 2); err != nil {
		t.Fatal(err)
	}
	if state, _ := g.Get(2, 2); state != Day {
		t.Fatalf("cell (2,2) = %v after double toggle, want day", state)
	}
}

func TestOutOfBoundsAccess(t *testing.T) {
	g, err := NewGrid(4, 3, nil)
	if err != nil {
		t.Fatal(err)
	}

	bad := []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {4, 3}}
	for _, p := range bad {
		if _, err := g.Get(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) error = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if err := g.Toggle(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) error = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
}

func TestFillSplit(t *testing.T) {
	g, err := NewGrid(6, 4, FillSplit(6))
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			state, _ := g.Get(x, y)
			want := Day
			if x >= 3 {
				want = Night
			}
			if state != want {
				t.Fatalf("cell (%d,%d) = %v, want %v", x, y, state, want)
			}
		}
	}

	day, night := g.CountStates()
	if day != 12 || night != 12 {
		t.Fatalf("split counts = (%d,%d), want (12,12)", day, night)
	}
}

func TestCountStatesInvariant(t *testing.T) {
	g, err := NewGrid(7, 5, FillRandom(42))
	if err != nil {
		t.Fatal(err)
	}

	day, night := g.CountStates()
	if day+night != 35 {
		t.Fatalf("day+night = %d, want 35", day+night)
	}

	// Toggling must shift exactly one unit between the two tallies.
	for i := 0; i < 10; i++ {
		if err := g.Toggle(i%g.W, i%g.H); err != nil {
			t.Fatal(err)
		}
		d, n := g.CountStates()
		if d+n != 35 {
			t.Fatalf("after toggle %d: day+night = %d, want 35", i, d+n)
		}
	}
}

func TestSnapshotRestore(t *testing.T) {
	g, err := NewGrid(4, 4, FillRandom(7))
	if err != nil {
		t.Fatal(err)
	}

	snap := g.Snapshot()
	if err := g.Toggle(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.Toggle(3, 2); err != nil {
		t.Fatal(err)
	}

	g.Restore(snap)
	for i, want := range snap {
		if g.Cells()[i] != want {
			t.Fatalf("cell %d = %v after restore, want %v", i, g.Cells()[i], want)
		}
	}
}

func TestFillRandomDeterministic(t *testing.T) {
	a, err := NewGrid(16, 16, FillRandom(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGrid(16, 16, FillRandom(99))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between equally seeded grids", i)
		}
	}
}
