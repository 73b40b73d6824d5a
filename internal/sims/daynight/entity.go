package daynight

import "daynight/internal/core"

// Direction enumerates the eight compass headings an entity can travel.
// The ordering matches the direction vector table below.
type Direction uint8

const (
	DirLeftUp Direction = iota
	DirUp
	DirRightUp
	DirLeft
	DirRight
	DirLeftDown
	DirDown
	DirRightDown

	numDirections
)

// directionVectors maps each direction to its unit step. Immutable, shared.
var directionVectors = [numDirections]core.Point{
	DirLeftUp:    {X: -1, Y: -1},
	DirUp:        {X: 0, Y: -1},
	DirRightUp:   {X: 1, Y: -1},
	DirLeft:      {X: -1, Y: 0},
	DirRight:     {X: 1, Y: 0},
	DirLeftDown:  {X: -1, Y: 1},
	DirDown:      {X: 0, Y: 1},
	DirRightDown: {X: 1, Y: 1},
}

// diagonalDirections lists the headings used when spawning entities; the
// movement rules keep diagonal entities diagonal forever.
var diagonalDirections = [4]Direction{DirLeftUp, DirRightUp, DirLeftDown, DirRightDown}

// Vector returns the per-step displacement for the direction.
func (d Direction) Vector() (dx, dy int) {
	v := directionVectors[d]
	return v.X, v.Y
}

// String returns a short name for the direction.
func (d Direction) String() string {
	names := [numDirections]string{
		"left-up", "up", "right-up", "left", "right", "left-down", "down", "right-down",
	}
	if d >= numDirections {
		return "invalid"
	}
	return names[d]
}

// Entity is a point moving across the grid. Type never changes after
// creation; X, Y and Dir are mutated by the rules engine only. Entities live
// in an index-addressable arena on the World.
type Entity struct {
	X    int
	Y    int
	Type core.CellState
	Dir  Direction
}
