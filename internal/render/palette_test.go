package render

import (
	"image/color"
	"math"
	"testing"

	"plinkotone/internal/physics"
	"plinkotone/internal/scales"
)

func TestHitPulseDecay(t *testing.T) {
	tests := []struct {
		now, hit float64
		want     float64
	}{
		{now: 1, hit: 0, want: 0},
		{now: 1, hit: 1, want: 1},
		{now: 1.1, hit: 1, want: 0.5},
		{now: 1.2, hit: 1, want: 0},
		{now: 0.5, hit: 1, want: 0},
	}
	for _, tc := range tests {
		got := HitPulse(tc.now, tc.hit)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("HitPulse(%v, %v) = %v, want %v", tc.now, tc.hit, got, tc.want)
		}
	}
}

func TestStylePegByKind(t *testing.T) {
	radii := physics.DefaultRadii()
	tone := physics.NewPeg(100, 100, physics.PegTone, radii)
	tone.NX = 0.3
	if got, want := StylePeg(tone, "major", 5).Fill, scales.PositionToColor(0.3, "major"); got != want {
		t.Fatalf("tone fill = %+v, want %+v", got, want)
	}
	if got := StylePeg(physics.NewPeg(0, 0, physics.PegBounce, radii), "major", 5).Fill; got != bouncePegColor {
		t.Fatalf("bounce fill = %+v", got)
	}
	if got := StylePeg(physics.NewPeg(0, 0, physics.PegSplit, radii), "major", 5).Fill; got != splitPegColor {
		t.Fatalf("split fill = %+v", got)
	}
}

func TestStylePegPulsesAfterHit(t *testing.T) {
	radii := physics.DefaultRadii()
	peg := physics.NewPeg(100, 100, physics.PegTone, radii)
	idle := StylePeg(peg, "pentatonic", 2)
	if idle.Radius != peg.Radius || idle.Glow.A != 0 {
		t.Fatalf("idle peg should not pulse: %+v", idle)
	}
	peg.LastHit = 2
	hit := StylePeg(peg, "pentatonic", 2)
	if math.Abs(hit.Radius-peg.Radius*1.4) > 1e-9 {
		t.Fatalf("radius = %f, want %f", hit.Radius, peg.Radius*1.4)
	}
	if hit.Glow.A != 102 {
		t.Fatalf("glow alpha = %d, want 102", hit.Glow.A)
	}
}

func TestPremultiply(t *testing.T) {
	got := Premultiply(color.RGBA{R: 200, G: 100, B: 0, A: 128})
	if got.A != 128 || got.R > got.A || got.G > got.A {
		t.Fatalf("premultiplied color invalid: %+v", got)
	}
	if opaque := Premultiply(splitPegColor); opaque != splitPegColor {
		t.Fatalf("opaque color changed: %+v", opaque)
	}
}

func TestMarbleShadeEndpoints(t *testing.T) {
	if MarbleShade(0) != marbleRim || MarbleShade(1) != marbleCore {
		t.Fatalf("unexpected shade endpoints")
	}
	if MarbleShade(-1) != marbleRim || MarbleShade(2) != marbleCore {
		t.Fatalf("shade should clamp")
	}
}

func TestSpeedColorBrightensWithSpeed(t *testing.T) {
	slow, fast := SpeedColor(0), SpeedColor(1)
	if fast.R <= slow.R || fast.A <= slow.A {
		t.Fatalf("fast %+v should be redder and more opaque than slow %+v", fast, slow)
	}
}
