package core

// Size describes the pixel dimensions of a board.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a front end drives once per frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances the simulation by dt seconds of wall-clock time.
	Step(dt float64)
}

// Dropper is implemented by sims that accept user-placed bodies.
type Dropper interface {
	Drop(x, y float64) bool
}
