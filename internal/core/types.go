package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point identifies a single grid cell by its coordinates.
type Point struct {
	X int
	Y int
}

// Sim defines the minimal contract a grid simulation must implement. Cells
// returns a display buffer suitable for palette-based rendering.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Counter is implemented by simulations that maintain aggregate cell-state
// totals alongside the grid itself.
type Counter interface {
	Counts() (day, night int)
}

// Stepper is implemented by simulations that track how many steps have run
// since the last reset.
type Stepper interface {
	StepCount() int
}

// BatchStepper is implemented by simulations that offer a batch step path
// equivalent to Step.
type BatchStepper interface {
	StepBatch()
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
