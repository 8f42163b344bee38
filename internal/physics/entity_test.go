package physics

import (
	"testing"

	"plinkotone/pkg/core"
)

func TestNewPegUsesRoundedIDAndBoardRadius(t *testing.T) {
	radii := Radii{Peg: 22, Marble: 12}
	p := NewPeg(100.4, 200.6, PegBounce, radii)
	if p.ID != "100_201" {
		t.Fatalf("peg id = %q, want 100_201", p.ID)
	}
	if p.Radius != 22 {
		t.Fatalf("peg radius = %f, want 22", p.Radius)
	}
	if p.Kind != PegBounce || p.LastHit != 0 {
		t.Fatalf("unexpected peg state: %+v", p)
	}
}

func TestNewMarbleInitialState(t *testing.T) {
	rng := core.NewRNG(3)
	for i := 0; i < 200; i++ {
		m := NewMarble(10, 20, DefaultRadii(), rng)
		if !m.Alive || m.VY != 0 || len(m.Trail) != 0 {
			t.Fatalf("unexpected marble state: %+v", m)
		}
		if m.VX < -20 || m.VX >= 20 {
			t.Fatalf("initial vx out of range: %f", m.VX)
		}
		if m.Radius != DefaultMarbleRadius {
			t.Fatalf("marble radius = %f, want %f", m.Radius, DefaultMarbleRadius)
		}
	}
}

func TestPegKindTable(t *testing.T) {
	cases := map[PegKind]float64{
		PegTone:     RestitutionTone,
		PegBounce:   RestitutionBounce,
		PegSplit:    RestitutionSplit,
		PegKind(99): RestitutionTone,
	}
	for kind, want := range cases {
		if got := kind.Restitution(); got != want {
			t.Fatalf("%v restitution = %f, want %f", kind, got, want)
		}
	}
	for _, name := range []string{"tone", "bounce", "split"} {
		kind, ok := ParsePegKind(name)
		if !ok || kind.String() != name {
			t.Fatalf("ParsePegKind(%q) = %v, %v", name, kind, ok)
		}
	}
	if _, ok := ParsePegKind("wobble"); ok {
		t.Fatalf("expected unknown kind to fail")
	}
}

func TestTrailCapped(t *testing.T) {
	m := &Marble{Alive: true}
	for i := 0; i < 12; i++ {
		m.X = float64(i)
		m.pushTrail()
	}
	if len(m.Trail) != TrailLength {
		t.Fatalf("trail length = %d, want %d", len(m.Trail), TrailLength)
	}
	if m.Trail[0].X != 7 || m.Trail[TrailLength-1].X != 11 {
		t.Fatalf("trail kept wrong samples: %+v", m.Trail)
	}
}
