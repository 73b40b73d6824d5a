package core

import (
	"errors"
	"fmt"
)

// CellState is one of the two values a grid cell can hold.
type CellState uint8

const (
	// Day is the light cell state.
	Day CellState = 0
	// Night is the dark cell state.
	Night CellState = 1
)

// Toggled returns the opposite cell state.
func (s CellState) Toggled() CellState { return 1 - s }

// String returns a human-readable name for the state.
func (s CellState) String() string {
	if s == Night {
		return "night"
	}
	return "day"
}

// ErrInvalidDimensions reports a grid constructed with a non-positive size.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// ErrOutOfBounds reports coordinates outside the grid.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// FillRule decides the initial state of the cell at (x, y).
type FillRule func(x, y int) CellState

// FillUniform fills every cell with the provided state.
func FillUniform(state CellState) FillRule {
	return func(int, int) CellState { return state }
}

// FillSplit fills the left half with Day and the right half with Night.
func FillSplit(width int) FillRule {
	mid := width / 2
	return func(x, _ int) CellState {
		if x >= mid {
			return Night
		}
		return Day
	}
}

// FillRandom fills cells with seeded random states.
func FillRandom(seed int64) FillRule {
	rng := NewRNG(seed)
	return func(int, int) CellState {
		if rng.Bool() {
			return Night
		}
		return Day
	}
}

// Grid stores a 2D field of binary cell states in row-major order. The
// dimensions are fixed after construction; cells change only via Toggle.
type Grid struct {
	W, H  int
	cells []CellState
}

// NewGrid allocates a grid and applies the fill rule to every cell. A nil
// rule yields an all-Day grid.
func NewGrid(w, h int, fill FillRule) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	g := &Grid{W: w, H: h, cells: make([]CellState, w*h)}
	if fill != nil {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g.cells[y*w+x] = fill(x, y)
			}
		}
	}
	return g, nil
}

// Cells exposes the backing slice. The rules engine indexes it directly on
// coordinates it has already clamped into range; anything else indexing out
// of range is a contract violation and panics.
func (g *Grid) Cells() []CellState { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the state of the cell at (x, y).
func (g *Grid) Get(x, y int) (CellState, error) {
	if !g.InBounds(x, y) {
		return Day, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	return g.cells[y*g.W+x], nil
}

// Toggle flips the cell at (x, y) in place.
func (g *Grid) Toggle(x, y int) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, g.W, g.H)
	}
	idx := y*g.W + x
	g.cells[idx] = g.cells[idx].Toggled()
	return nil
}

// CountStates tallies both cell states in one pass over the grid. The sum of
// the two counts always equals W*H.
func (g *Grid) CountStates() (day, night int) {
	for _, c := range g.cells {
		night += int(c)
	}
	return len(g.cells) - night, night
}

// Snapshot copies the current cell states into a fresh slice.
func (g *Grid) Snapshot() []CellState {
	return append([]CellState(nil), g.cells...)
}

// Restore overwrites the grid with a snapshot taken from a grid of the same
// dimensions. Mismatched lengths are ignored.
func (g *Grid) Restore(cells []CellState) {
	if len(cells) != len(g.cells) {
		return
	}
	copy(g.cells, cells)
}
