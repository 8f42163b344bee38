package plinko

import (
	"fmt"
	"math"

	"plinkotone/internal/board"
	"plinkotone/internal/core"
	"plinkotone/internal/physics"
	"plinkotone/internal/scales"
	prng "plinkotone/pkg/core"
)

// RandomPreset names a freshly generated random layout.
const RandomPreset = "random"

// SharedPreset names a layout loaded from a share code.
const SharedPreset = "shared"

// FullImpactSpeed is the collision speed that maps to full note velocity.
const FullImpactSpeed = 600.0

// EventSink consumes collision events after each step, e.g. the audio engine.
type EventSink interface {
	OnCollision(ev physics.CollisionEvent, freq, velocity float64)
}

// VolumeSetter is implemented by sinks whose loudness follows the HUD.
type VolumeSetter interface {
	SetVolume(v float64)
}

// Stats accumulates counters across steps.
type Stats struct {
	Frames     int
	Collisions int
	Spawned    int
	Culled     int
	Evicted    int
	Peak       int
}

// World is one interactive board: pegs, marbles, the active scale, and the
// collision stream of the latest step.
type World struct {
	cfg Config

	state  *physics.State
	rng    *prng.RNG
	layout []board.Descriptor
	preset string
	scale  string

	events []physics.CollisionEvent
	sink   EventSink
	stats  Stats
}

// New returns a session with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	world, _ := NewWithConfig(cfg)
	return world
}

// NewWithConfig returns a session with the configured preset loaded. An
// unknown preset falls back to classic and the error is returned alongside.
func NewWithConfig(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if !scales.Known(cfg.Scale) {
		cfg.Scale = scales.Names()[0]
	}
	w := &World{
		cfg:   cfg,
		rng:   prng.NewRNG(cfg.Seed),
		scale: cfg.Scale,
	}
	err := w.LoadPreset(cfg.Preset)
	if err != nil {
		if fallback := w.LoadPreset("classic"); fallback != nil {
			return nil, fallback
		}
	}
	return w, err
}

// SetSink attaches the collision consumer. Pass nil to detach.
func (w *World) SetSink(s EventSink) {
	w.sink = s
	if vs, ok := s.(VolumeSetter); ok {
		vs.SetVolume(w.cfg.Volume)
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "plinko" }

// Size reports the board dimensions in pixels.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Reset clears all marbles and rebuilds the current layout with a fresh RNG.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = prng.NewRNG(effective)
	w.materialize()
}

// Step advances the board by one frame of dt seconds and forwards the
// resulting collisions to the sink.
func (w *World) Step(dt float64) {
	res := physics.Step(w.state, dt, w.rng)
	w.state.Add(res.Spawned...)

	w.events = append(w.events[:0], res.Events...)
	w.stats.Frames++
	w.stats.Collisions += len(res.Events)
	w.stats.Spawned += len(res.Spawned)
	w.stats.Culled += res.Culled
	w.stats.Evicted += res.Evicted
	if n := len(w.state.Marbles); n > w.stats.Peak {
		w.stats.Peak = n
	}

	if w.sink == nil {
		return
	}
	for _, ev := range w.events {
		freq := scales.PositionToFrequency(ev.Peg.NX, ev.Peg.NY, w.scale)
		w.sink.OnCollision(ev, freq, NoteVelocity(ev.Speed))
	}
}

// NoteVelocity maps an impact speed to a note velocity in [0, 1].
func NoteVelocity(speed float64) float64 {
	return math.Max(0, math.Min(1, speed/FullImpactSpeed))
}

// Drop adds a marble at (x, y), clamped horizontally inside the board. Drops
// below the board are ignored. At the population cap the oldest marble is
// evicted at the end of the next step.
func (w *World) Drop(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) || y > float64(w.cfg.Height) {
		return false
	}
	r := w.state.Radii.Marble
	x = math.Max(r, math.Min(float64(w.cfg.Width)-r, x))
	w.state.Add(physics.NewMarble(x, y, w.state.Radii, w.rng))
	return true
}

// Clear removes every marble but keeps the board.
func (w *World) Clear() { w.state.Clear() }

// LoadPreset switches to a registered preset or RandomPreset.
func (w *World) LoadPreset(name string) error {
	if name == RandomPreset {
		w.LoadRandom()
		return nil
	}
	descs, err := board.Generate(name)
	if err != nil {
		return err
	}
	w.setLayout(name, descs)
	return nil
}

// LoadRandom generates and loads a random layout.
func (w *World) LoadRandom() {
	w.setLayout(RandomPreset, board.Random(w.rng))
}

// LoadCode loads a layout from a share code. A known scale in the code
// replaces the active one.
func (w *World) LoadCode(code string) error {
	shared, err := board.Decode(code)
	if err != nil {
		return fmt.Errorf("load board code: %w", err)
	}
	if scales.Known(shared.Scale) {
		w.scale = shared.Scale
	}
	w.setLayout(SharedPreset, shared.Pegs)
	return nil
}

// ShareCode encodes the current layout and scale.
func (w *World) ShareCode() string {
	return board.Encode(w.layout, w.scale)
}

func (w *World) setLayout(name string, descs []board.Descriptor) {
	w.preset = name
	w.layout = descs
	w.materialize()
}

func (w *World) materialize() {
	pegs, radii := board.Materialize(w.layout, float64(w.cfg.Width), float64(w.cfg.Height))
	w.state = physics.NewState(float64(w.cfg.Width), float64(w.cfg.Height), pegs, radii)
	w.state.Gravity = w.cfg.Gravity
	w.events = w.events[:0]
}

// Preset returns the name of the loaded layout.
func (w *World) Preset() string { return w.preset }

// Scale returns the active scale name.
func (w *World) Scale() string { return w.scale }

// SetScale switches scale; unknown names are rejected.
func (w *World) SetScale(name string) bool {
	if !scales.Known(name) {
		return false
	}
	w.scale = name
	return true
}

// Gravity returns the gravity multiplier.
func (w *World) Gravity() float64 { return w.state.Gravity }

// Pegs exposes the board's pegs for rendering.
func (w *World) Pegs() []*physics.Peg { return w.state.Pegs }

// Marbles exposes live marbles for rendering.
func (w *World) Marbles() []*physics.Marble { return w.state.Marbles }

// Radii exposes the board's body sizes.
func (w *World) Radii() physics.Radii { return w.state.Radii }

// Events returns the collisions resolved by the most recent Step. The slice
// is reused by the next Step.
func (w *World) Events() []physics.CollisionEvent { return w.events }

// Time returns the simulated clock in seconds.
func (w *World) Time() float64 { return w.state.Time }

// Stats returns accumulated counters.
func (w *World) Stats() Stats { return w.stats }

// PegColor returns the note color of a peg under the active scale.
func (w *World) PegColor(p *physics.Peg) (r, g, b uint8) {
	c := scales.PositionToColor(p.NX, w.scale)
	return c.R, c.G, c.B
}
