package physics

// CollisionEvent records one resolved peg/marble collision during a step.
// Speed is the magnitude of the marble's velocity along the contact normal
// before the impulse, independent of the peg's restitution.
type CollisionEvent struct {
	Peg    *Peg
	Marble *Marble
	Speed  float64
	Time   float64
}

// StepResult is everything a step produced besides the in-place state update.
type StepResult struct {
	// Spawned marbles are not yet part of State.Marbles; merge them with
	// State.Add before the next step.
	Spawned []*Marble
	Events  []CollisionEvent

	Substeps int
	Culled   int
	Evicted  int
}
