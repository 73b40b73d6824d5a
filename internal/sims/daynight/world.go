package daynight

import "daynight/internal/core"

// World holds the grid and the entity arena and drives discrete steps. The
// per-entity and batch step paths produce identical grid states and counts
// for the same starting configuration.
type World struct {
	cfg Config

	grid     *core.Grid
	entities []Entity

	// Construction-time snapshot restored by Reset.
	initCells    []core.CellState
	initEntities []Entity

	dayCount   int
	nightCount int
	steps      int

	toggles []core.Point
	display []uint8
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a World from the provided configuration. Non-positive
// dimensions are fatal here, never later.
func NewWithConfig(cfg Config) (*World, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height, cfg.fillRule())
	if err != nil {
		return nil, err
	}
	w := &World{
		cfg:     cfg,
		grid:    grid,
		display: make([]uint8, cfg.Width*cfg.Height),
	}
	w.spawnEntities(cfg.Seed)
	w.captureSnapshot()
	w.refreshCounts()
	return w, nil
}

// NewFromParts wraps an existing grid and entity arena in a World. The
// caller is responsible for entity positions being in bounds.
func NewFromParts(grid *core.Grid, entities []Entity) *World {
	cfg := DefaultConfig()
	cfg.Width = grid.W
	cfg.Height = grid.H
	w := &World{
		cfg:      cfg,
		grid:     grid,
		entities: append([]Entity(nil), entities...),
		display:  make([]uint8, grid.W*grid.H),
	}
	w.captureSnapshot()
	w.refreshCounts()
	return w
}

// spawnEntities places the classic pair (a night runner in the upper left
// region, a day runner in the lower right) plus any configured extras.
func (w *World) spawnEntities(seed int64) {
	width, height := w.cfg.Width, w.cfg.Height
	w.entities = w.entities[:0]
	w.entities = append(w.entities,
		Entity{X: width / 2, Y: height / 4, Type: core.Night, Dir: DirLeftUp},
		Entity{X: 3 * width / 4, Y: 3 * height / 4, Type: core.Day, Dir: DirLeftUp},
	)

	if w.cfg.ExtraEntities > 0 {
		rng := core.NewRNG(seed)
		for i := 0; i < w.cfg.ExtraEntities; i++ {
			w.entities = append(w.entities, Entity{
				X:    rng.IntN(width),
				Y:    rng.IntN(height),
				Type: core.CellState(i % 2),
				Dir:  diagonalDirections[rng.IntN(len(diagonalDirections))],
			})
		}
	}
}

func (w *World) captureSnapshot() {
	w.initCells = w.grid.Snapshot()
	w.initEntities = append(w.initEntities[:0], w.entities...)
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "daynight" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Grid exposes the underlying cell storage.
func (w *World) Grid() *core.Grid { return w.grid }

// Counts returns the cached day and night cell totals, refreshed once per
// step by a full-grid pass.
func (w *World) Counts() (day, night int) { return w.dayCount, w.nightCount }

// StepCount reports how many steps have run since the last reset.
func (w *World) StepCount() int { return w.steps }

// Entities returns a copy of the entity arena for read-only inspection.
func (w *World) Entities() []Entity {
	return append([]Entity(nil), w.entities...)
}

// EntityPositions returns just the entity coordinates, for overlays that do
// not care about type or heading.
func (w *World) EntityPositions() []core.Point {
	points := make([]core.Point, len(w.entities))
	for i, e := range w.entities {
		points[i] = core.Point{X: e.X, Y: e.Y}
	}
	return points
}

// Step advances the simulation by one step using the per-entity path. Each
// entity is moved in arena order; toggles are collected and applied to the
// grid in that same order after every entity has decided, then the counts
// are recomputed from scratch.
func (w *World) Step() {
	if w.cfg.UseBatch {
		w.StepBatch()
		return
	}
	w.toggles = w.toggles[:0]
	for i := range w.entities {
		res := MoveEntity(&w.entities[i], w.grid)
		if res.Success {
			w.toggles = append(w.toggles, res.Toggles...)
		}
	}
	w.commitStep()
}

// StepBatch advances the simulation by one step using the batch path. It is
// observably equivalent to Step for any grid and entity configuration.
func (w *World) StepBatch() {
	w.toggles = batchMove(w.entities, w.grid, w.toggles[:0])
	w.commitStep()
}

func (w *World) commitStep() {
	cells := w.grid.Cells()
	for _, p := range w.toggles {
		idx := w.grid.Index(p.X, p.Y)
		cells[idx] = cells[idx].Toggled()
	}
	w.refreshCounts()
	w.steps++
}

func (w *World) refreshCounts() {
	w.dayCount, w.nightCount = w.grid.CountStates()
}

// Reset restores the construction-time grid and entities. A non-zero seed
// different from the configured one rebuilds the world deterministically
// from that seed and re-captures the snapshot.
func (w *World) Reset(seed int64) {
	if seed != 0 && seed != w.cfg.Seed {
		w.cfg.Seed = seed
		grid, err := core.NewGrid(w.cfg.Width, w.cfg.Height, w.cfg.fillRule())
		if err != nil {
			// Dimensions were validated at construction.
			panic(err)
		}
		w.grid = grid
		w.spawnEntities(seed)
		w.captureSnapshot()
	} else {
		w.grid.Restore(w.initCells)
		w.entities = append(w.entities[:0], w.initEntities...)
	}
	w.steps = 0
	w.refreshCounts()
}

func init() {
	core.Register("daynight", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		world, err := NewWithConfig(c)
		if err != nil {
			// FromMap clamps dimensions to positive values.
			panic(err)
		}
		return world
	})
}
