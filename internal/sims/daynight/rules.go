package daynight

import "daynight/internal/core"

// Side is a bitmask of grid edges a proposed move crosses. Corner strikes
// set one horizontal and one vertical bit.
type Side uint8

const (
	SideLeft Side = 1 << iota
	SideRight
	SideTop
	SideBottom

	numSideMasks = 16
)

// reflectTable maps (direction, side mask) to the reflected direction: a
// horizontal strike mirrors dx, a vertical strike mirrors dy, a corner
// mirrors both. Built once at init and total by construction: every entry
// holds a defined direction, with mask 0 as identity.
var reflectTable [numDirections][numSideMasks]Direction

func init() {
	for d := Direction(0); d < numDirections; d++ {
		v := directionVectors[d]
		for mask := Side(0); mask < numSideMasks; mask++ {
			dx, dy := v.X, v.Y
			if mask&(SideLeft|SideRight) != 0 {
				dx = -dx
			}
			if mask&(SideTop|SideBottom) != 0 {
				dy = -dy
			}
			reflectTable[d][mask] = directionFromVector(dx, dy)
		}
	}
}

func directionFromVector(dx, dy int) Direction {
	for d := Direction(0); d < numDirections; d++ {
		if directionVectors[d].X == dx && directionVectors[d].Y == dy {
			return d
		}
	}
	// Mirroring never zeroes a component, so this is unreachable.
	panic("daynight: no direction for vector")
}

// strikes reports which grid edges the position (x, y) lies beyond.
func strikes(x, y, w, h int) Side {
	var s Side
	if x < 0 {
		s |= SideLeft
	} else if x >= w {
		s |= SideRight
	}
	if y < 0 {
		s |= SideTop
	} else if y >= h {
		s |= SideBottom
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveResult reports the outcome of moving one entity for one step.
type MoveResult struct {
	Success bool
	X       int
	Y       int
	Toggles []core.Point
}

// MoveEntity advances one entity by one step: propose the move, reflect off
// struck boundaries via the lookup table, clamp as a final guard, then
// collision-test the destination cell. The entity's position and direction
// are committed; the toggle (at most one) is returned for the caller to
// apply, so that every entity in a step decides against the same grid state.
func MoveEntity(e *Entity, g *core.Grid) MoveResult {
	dx, dy := e.Dir.Vector()
	nx, ny := e.X+dx, e.Y+dy

	if s := strikes(nx, ny, g.W, g.H); s != 0 {
		e.Dir = reflectTable[e.Dir][s]
		dx, dy = e.Dir.Vector()
		nx, ny = e.X+dx, e.Y+dy
		// Degenerate grids (1-wide or 1-tall) can leave the reflected move
		// out of range; clamping terminates instead of re-reflecting.
		nx = clamp(nx, 0, g.W-1)
		ny = clamp(ny, 0, g.H-1)
	}

	res := MoveResult{Success: true, X: nx, Y: ny}
	if g.Cells()[g.Index(nx, ny)] == e.Type {
		res.Toggles = append(res.Toggles, core.Point{X: nx, Y: ny})
	}

	e.X, e.Y = nx, ny
	return res
}

// batchMove advances every entity in the arena with the same per-entity
// logic, organized as a single pass. Toggles are appended to dst in entity
// index order; collision tests read the grid as it stood before any of this
// step's toggles, so the outcome matches per-entity stepping exactly.
func batchMove(entities []Entity, g *core.Grid, dst []core.Point) []core.Point {
	w, h := g.W, g.H
	cells := g.Cells()

	for i := range entities {
		e := &entities[i]
		dx, dy := e.Dir.Vector()
		nx, ny := e.X+dx, e.Y+dy

		if s := strikes(nx, ny, w, h); s != 0 {
			e.Dir = reflectTable[e.Dir][s]
			dx, dy = e.Dir.Vector()
			nx, ny = e.X+dx, e.Y+dy
			nx = clamp(nx, 0, w-1)
			ny = clamp(ny, 0, h-1)
		}

		if cells[ny*w+nx] == e.Type {
			dst = append(dst, core.Point{X: nx, Y: ny})
		}
		e.X, e.Y = nx, ny
	}
	return dst
}
