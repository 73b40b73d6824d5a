package daynight

import (
	"testing"

	"daynight/internal/core"
)

func TestDirectionVectors(t *testing.T) {
	seen := map[core.Point]Direction{}
	for d := Direction(0); d < numDirections; d++ {
		dx, dy := d.Vector()
		if dx == 0 && dy == 0 {
			t.Fatalf("direction %v has zero vector", d)
		}
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("direction %v vector (%d,%d) is not a unit step", d, dx, dy)
		}
		p := core.Point{X: dx, Y: dy}
		if prev, dup := seen[p]; dup {
			t.Fatalf("directions %v and %v share vector (%d,%d)", prev, d, dx, dy)
		}
		seen[p] = d
	}
	if len(seen) != 8 {
		t.Fatalf("expected 8 distinct vectors, got %d", len(seen))
	}
}

// Every (direction, side mask) entry must hold the direction whose vector is
// the sign-mirrored original; the table is total, and mask 0 is identity.
func TestReflectionTotality(t *testing.T) {
	for d := Direction(0); d < numDirections; d++ {
		dx, dy := d.Vector()
		for mask := Side(0); mask < numSideMasks; mask++ {
			wantX, wantY := dx, dy
			if mask&(SideLeft|SideRight) != 0 {
				wantX = -wantX
			}
			if mask&(SideTop|SideBottom) != 0 {
				wantY = -wantY
			}
			got := reflectTable[d][mask]
			if got >= numDirections {
				t.Fatalf("reflect(%v, %04b) undefined", d, mask)
			}
			gx, gy := got.Vector()
			if gx != wantX || gy != wantY {
				t.Fatalf("reflect(%v, %04b) = %v (%d,%d), want vector (%d,%d)",
					d, mask, got, gx, gy, wantX, wantY)
			}
		}
	}
}

func TestEdgeReflections(t *testing.T) {
	cases := []struct {
		dir  Direction
		side Side
		want Direction
	}{
		{DirLeftUp, SideTop, DirLeftDown},
		{DirRightUp, SideTop, DirRightDown},
		{DirLeftDown, SideBottom, DirLeftUp},
		{DirRightDown, SideBottom, DirRightUp},
		{DirLeftUp, SideLeft, DirRightUp},
		{DirLeftDown, SideLeft, DirRightDown},
		{DirRightUp, SideRight, DirLeftUp},
		{DirRightDown, SideRight, DirLeftDown},
		{DirLeftUp, SideLeft | SideTop, DirRightDown},
		{DirRightDown, SideRight | SideBottom, DirLeftUp},
		{DirUp, SideTop, DirDown},
		{DirLeft, SideLeft, DirRight},
	}
	for _, c := range cases {
		if got := reflectTable[c.dir][c.side]; got != c.want {
			t.Fatalf("reflect(%v, %v) = %v, want %v", c.dir, c.side, got, c.want)
		}
	}
}

func TestReflectionKeepsDiagonal(t *testing.T) {
	diagonal := map[Direction]bool{
		DirLeftUp: true, DirRightUp: true, DirLeftDown: true, DirRightDown: true,
	}
	for _, d := range diagonalDirections {
		for mask := Side(0); mask < numSideMasks; mask++ {
			if got := reflectTable[d][mask]; !diagonal[got] {
				t.Fatalf("reflect(%v, %04b) = %v leaves the diagonal set", d, mask, got)
			}
		}
	}
}

// The worked example: 5x5 all-day grid, a day entity at (4,4) heading
// left-up lands on (3,3), collides with the matching cell and toggles it.
func TestMoveCollisionTogglesDestination(t *testing.T) {
	g, err := core.NewGrid(5, 5, core.FillUniform(core.Day))
	if err != nil {
		t.Fatal(err)
	}
	e := Entity{X: 4, Y: 4, Type: core.Day, Dir: DirLeftUp}

	res := MoveEntity(&e, g)
	if !res.Success {
		t.Fatal("move failed")
	}
	if e.X != 3 || e.Y != 3 {
		t.Fatalf("entity at (%d,%d), want (3,3)", e.X, e.Y)
	}
	if len(res.Toggles) != 1 || res.Toggles[0] != (core.Point{X: 3, Y: 3}) {
		t.Fatalf("toggles = %v, want [(3,3)]", res.Toggles)
	}

	for _, p := range res.Toggles {
		if err := g.Toggle(p.X, p.Y); err != nil {
			t.Fatal(err)
		}
	}
	day, night := g.CountStates()
	if day != 24 || night != 1 {
		t.Fatalf("counts = (%d,%d), want (24,1)", day, night)
	}
	if state, _ := g.Get(3, 3); state != core.Night {
		t.Fatalf("cell (3,3) = %v, want night", state)
	}
}

// The worked example: 3x3 grid, entity at the (0,0) corner heading left-up
// must reflect back into bounds.
func TestCornerReflection(t *testing.T) {
	g, err := core.NewGrid(3, 3, core.FillUniform(core.Night))
	if err != nil {
		t.Fatal(err)
	}
	e := Entity{X: 0, Y: 0, Type: core.Day, Dir: DirLeftUp}

	res := MoveEntity(&e, g)
	if !res.Success {
		t.Fatal("move failed")
	}
	if e.Dir != DirRightDown {
		t.Fatalf("direction = %v after corner strike, want right-down", e.Dir)
	}
	if e.X != 1 || e.Y != 1 {
		t.Fatalf("entity at (%d,%d), want (1,1)", e.X, e.Y)
	}
	if len(res.Toggles) != 0 {
		t.Fatalf("toggles = %v on a mismatched cell, want none", res.Toggles)
	}
}

func TestNoCollisionOnMismatchedCell(t *testing.T) {
	g, err := core.NewGrid(5, 5, core.FillUniform(core.Night))
	if err != nil {
		t.Fatal(err)
	}
	e := Entity{X: 2, Y: 2, Type: core.Day, Dir: DirRightDown}

	res := MoveEntity(&e, g)
	if e.X != 3 || e.Y != 3 {
		t.Fatalf("entity at (%d,%d), want (3,3)", e.X, e.Y)
	}
	if len(res.Toggles) != 0 {
		t.Fatalf("toggles = %v, want none", res.Toggles)
	}
}

// A 1x1 grid exercises the clamp guard: reflection alone cannot bring the
// move in range, clamping must terminate the step in place.
func TestDegenerateGridClamps(t *testing.T) {
	g, err := core.NewGrid(1, 1, core.FillUniform(core.Night))
	if err != nil {
		t.Fatal(err)
	}
	e := Entity{X: 0, Y: 0, Type: core.Day, Dir: DirLeftUp}

	for i := 0; i < 10; i++ {
		res := MoveEntity(&e, g)
		if !res.Success {
			t.Fatalf("step %d failed", i)
		}
		if e.X != 0 || e.Y != 0 {
			t.Fatalf("step %d: entity at (%d,%d), want (0,0)", i, e.X, e.Y)
		}
	}
}

func TestStrikes(t *testing.T) {
	cases := []struct {
		x, y int
		want Side
	}{
		{1, 1, 0},
		{-1, 1, SideLeft},
		{3, 1, SideRight},
		{1, -1, SideTop},
		{1, 3, SideBottom},
		{-1, -1, SideLeft | SideTop},
		{3, 3, SideRight | SideBottom},
	}
	for _, c := range cases {
		if got := strikes(c.x, c.y, 3, 3); got != c.want {
			t.Fatalf("strikes(%d,%d) = %04b, want %04b", c.x, c.y, got, c.want)
		}
	}
}
