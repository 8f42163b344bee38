package plinko

import (
	"errors"
	"testing"

	"plinkotone/internal/board"
	"plinkotone/internal/core"
	"plinkotone/internal/physics"
)

var (
	_ core.Sim                       = (*World)(nil)
	_ core.Dropper                   = (*World)(nil)
	_ core.ParameterProvider         = (*World)(nil)
	_ core.ParameterControlsProvider = (*World)(nil)
	_ core.FloatParameterSetter      = (*World)(nil)
	_ core.ChoiceParameterSetter     = (*World)(nil)
)

type recordingSink struct {
	events  []physics.CollisionEvent
	freqs   []float64
	vels    []float64
	volumes []float64
}

func (r *recordingSink) OnCollision(ev physics.CollisionEvent, freq, velocity float64) {
	r.events = append(r.events, ev)
	r.freqs = append(r.freqs, freq)
	r.vels = append(r.vels, velocity)
}

func (r *recordingSink) SetVolume(v float64) { r.volumes = append(r.volumes, v) }

func TestFromMapParsesKnownKeys(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":       "640",
		"h":       "480",
		"seed":    "7",
		"preset":  "rain",
		"scale":   "blues",
		"gravity": "1.5",
		"volume":  "2",
	})
	if cfg.Width != 640 || cfg.Height != 480 || cfg.Seed != 7 {
		t.Fatalf("unexpected dims/seed: %+v", cfg)
	}
	if cfg.Preset != "rain" || cfg.Scale != "blues" || cfg.Gravity != 1.5 {
		t.Fatalf("unexpected board settings: %+v", cfg)
	}
	if cfg.Volume != DefaultConfig().Volume {
		t.Fatalf("out of range volume should be ignored, got %f", cfg.Volume)
	}
}

func TestNewWithConfigUnknownPresetFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "nope"
	w, err := NewWithConfig(cfg)
	if !errors.Is(err, board.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	if w == nil || w.Preset() != "classic" {
		t.Fatalf("expected classic fallback")
	}
}

func TestNewLoadsPresetAndSizesBodies(t *testing.T) {
	w := New(900, 700)
	if w.Size() != (core.Size{W: 900, H: 700}) {
		t.Fatalf("unexpected size %+v", w.Size())
	}
	if len(w.Pegs()) == 0 {
		t.Fatalf("expected pegs from classic preset")
	}
	want := physics.RadiiForPegs(w.Pegs(), 900)
	if w.Radii() != want {
		t.Fatalf("radii = %+v, want %+v", w.Radii(), want)
	}
	for _, p := range w.Pegs() {
		if p.Radius != w.Radii().Peg {
			t.Fatalf("peg radius %f does not match board radius %f", p.Radius, w.Radii().Peg)
		}
	}
}

func TestDropClampsInsideBoard(t *testing.T) {
	w := New(900, 700)
	if !w.Drop(-50, 10) {
		t.Fatalf("drop rejected")
	}
	m := w.Marbles()[0]
	if m.X != w.Radii().Marble {
		t.Fatalf("x = %f, want clamp to %f", m.X, w.Radii().Marble)
	}
	if w.Drop(100, 900) {
		t.Fatalf("drop below the board should be rejected")
	}
	if len(w.Marbles()) != 1 {
		t.Fatalf("expected one marble, got %d", len(w.Marbles()))
	}
}

func TestStepForwardsEventsToSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "classic"
	w, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	sink := &recordingSink{}
	w.SetSink(sink)
	if len(sink.volumes) != 1 || sink.volumes[0] != cfg.Volume {
		t.Fatalf("sink volume not seeded: %v", sink.volumes)
	}

	target := w.Pegs()[0]
	w.Drop(target.X, target.Y-w.Radii().Peg-w.Radii().Marble-2)
	for i := 0; i < 60 && len(sink.events) == 0; i++ {
		w.Step(1.0 / 60)
	}
	if len(sink.events) == 0 {
		t.Fatalf("expected a collision with the peg below the drop")
	}
	if sink.freqs[0] <= 0 {
		t.Fatalf("expected positive frequency, got %f", sink.freqs[0])
	}
	if sink.vels[0] < 0 || sink.vels[0] > 1 {
		t.Fatalf("velocity %f outside [0,1]", sink.vels[0])
	}
	if w.Stats().Collisions < len(sink.events) {
		t.Fatalf("stats did not count collisions: %+v", w.Stats())
	}
}

func TestEventsReflectLatestStep(t *testing.T) {
	w := New(900, 700)
	target := w.Pegs()[0]
	w.Drop(target.X, target.Y-w.Radii().Peg-w.Radii().Marble-2)
	hit := false
	for i := 0; i < 60; i++ {
		w.Step(1.0 / 60)
		if len(w.Events()) > 0 {
			hit = true
			break
		}
	}
	if !hit {
		t.Fatalf("expected events from a step")
	}
	w.Clear()
	w.Step(1.0 / 60)
	if len(w.Events()) != 0 {
		t.Fatalf("events should reset each step, got %d", len(w.Events()))
	}
}

func TestPopulationCapHoldsUnderHeavyDropping(t *testing.T) {
	w := New(900, 700)
	for i := 0; i < 200; i++ {
		w.Drop(float64(100+i%700), 5)
		w.Step(1.0 / 60)
		if n := len(w.Marbles()); n > physics.MaxMarbles {
			t.Fatalf("frame %d: %d marbles exceeds cap", i, n)
		}
	}
	if w.Stats().Peak > physics.MaxMarbles {
		t.Fatalf("peak %d exceeds cap", w.Stats().Peak)
	}
}

func TestClearKeepsBoard(t *testing.T) {
	w := New(900, 700)
	pegs := len(w.Pegs())
	w.Drop(450, 10)
	w.Clear()
	if len(w.Marbles()) != 0 {
		t.Fatalf("marbles remain after clear")
	}
	if len(w.Pegs()) != pegs {
		t.Fatalf("clear changed peg count")
	}
}

func TestResetRestoresTimeAndMarbles(t *testing.T) {
	w := New(900, 700)
	w.Drop(450, 10)
	w.Step(0.1)
	if w.Time() == 0 {
		t.Fatalf("time did not advance")
	}
	w.Reset(0)
	if w.Time() != 0 || len(w.Marbles()) != 0 {
		t.Fatalf("reset left time=%f marbles=%d", w.Time(), len(w.Marbles()))
	}
}

func TestRunsAreDeterministicForSeed(t *testing.T) {
	run := func() []float64 {
		w := New(900, 700)
		w.Reset(99)
		for i := 0; i < 10; i++ {
			w.Drop(300+float64(i)*30, 5)
		}
		for i := 0; i < 120; i++ {
			w.Step(1.0 / 60)
		}
		out := make([]float64, 0, 2*len(w.Marbles()))
		for _, m := range w.Marbles() {
			out = append(out, m.X, m.Y)
		}
		return out
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("marble counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("position %d differs: %f vs %f", i, a[i], b[i])
		}
	}
}

func TestShareCodeRoundTrip(t *testing.T) {
	w := New(900, 700)
	if err := w.LoadPreset("funnel"); err != nil {
		t.Fatalf("load funnel: %v", err)
	}
	w.SetScale("blues")
	code := w.ShareCode()

	other := New(900, 700)
	if err := other.LoadCode(code); err != nil {
		t.Fatalf("load code: %v", err)
	}
	if other.Preset() != SharedPreset || other.Scale() != "blues" {
		t.Fatalf("unexpected preset/scale %q/%q", other.Preset(), other.Scale())
	}
	if len(other.Pegs()) != len(w.Pegs()) {
		t.Fatalf("peg count %d, want %d", len(other.Pegs()), len(w.Pegs()))
	}
}

func TestLoadCodeRejectsGarbage(t *testing.T) {
	w := New(900, 700)
	before := len(w.Pegs())
	err := w.LoadCode("!!not a board!!")
	if !errors.Is(err, board.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
	if len(w.Pegs()) != before || w.Preset() != "classic" {
		t.Fatalf("failed load must leave the board untouched")
	}
}

func TestLoadRandomChangesPreset(t *testing.T) {
	w := New(900, 700)
	w.LoadRandom()
	if w.Preset() != RandomPreset {
		t.Fatalf("preset = %q", w.Preset())
	}
	if n := len(w.Pegs()); n < 25 || n > 39 {
		t.Fatalf("random peg count %d out of range", n)
	}
}

func TestParameterSetters(t *testing.T) {
	w := New(900, 700)
	sink := &recordingSink{}
	w.SetSink(sink)

	if !w.SetFloatParameter("gravity", 10) {
		t.Fatalf("gravity rejected")
	}
	if w.Gravity() != maxGravity {
		t.Fatalf("gravity = %f, want clamp to %f", w.Gravity(), maxGravity)
	}
	if !w.SetFloatParameter("volume", 0.25) {
		t.Fatalf("volume rejected")
	}
	if got := sink.volumes[len(sink.volumes)-1]; got != 0.25 {
		t.Fatalf("sink volume = %f", got)
	}
	if w.SetFloatParameter("unknown", 1) {
		t.Fatalf("unknown key accepted")
	}
	if !w.SetChoiceParameter("scale", "major") || w.Scale() != "major" {
		t.Fatalf("scale not applied")
	}
	if w.SetChoiceParameter("scale", "klingon") {
		t.Fatalf("unknown scale accepted")
	}
	if !w.SetChoiceParameter("preset", "rain") || w.Preset() != "rain" {
		t.Fatalf("preset not applied")
	}

	snap := w.Parameters()
	p, ok := snap.Lookup("gravity")
	if !ok || p.Value != "3.00" {
		t.Fatalf("gravity snapshot = %+v", p)
	}
	if p, ok := snap.Lookup("preset"); !ok || p.Value != "rain" {
		t.Fatalf("preset snapshot = %+v", p)
	}
}

func TestParameterControlsOfferRandomPreset(t *testing.T) {
	w := New(900, 700)
	for _, c := range w.ParameterControls() {
		if c.Key != "preset" {
			continue
		}
		for _, choice := range c.Choices {
			if choice == RandomPreset {
				return
			}
		}
	}
	t.Fatalf("random preset missing from controls")
}
