package scales

import (
	"math"
	"testing"
)

func TestFrequencyOctaves(t *testing.T) {
	if got := Frequency(0); got != BaseFrequency {
		t.Fatalf("Frequency(0) = %f", got)
	}
	if got := Frequency(12); math.Abs(got-2*BaseFrequency) > 1e-9 {
		t.Fatalf("Frequency(12) = %f, want %f", got, 2*BaseFrequency)
	}
}

func TestPositionToFrequency(t *testing.T) {
	// bottom-left of a pentatonic board is the root
	if got := PositionToFrequency(0, 1, "pentatonic"); math.Abs(got-BaseFrequency) > 1e-9 {
		t.Fatalf("bottom-left = %f, want %f", got, BaseFrequency)
	}
	// top rows sit two octaves up; x=0.5 picks degree index 2 (4 semitones)
	want := Frequency(2*12 + 4)
	if got := PositionToFrequency(0.5, 0.2, "pentatonic"); math.Abs(got-want) > 1e-9 {
		t.Fatalf("PositionToFrequency(0.5,0.2) = %f, want %f", got, want)
	}
	// higher on the board is never lower in pitch
	if PositionToFrequency(0.3, 0.1, "major") < PositionToFrequency(0.3, 0.9, "major") {
		t.Fatalf("pitch should rise toward the top")
	}
}

func TestLookupFallback(t *testing.T) {
	if got := Lookup("klingon"); got.Name != "pentatonic" {
		t.Fatalf("fallback scale = %q", got.Name)
	}
	if Known("klingon") || !Known("blues") {
		t.Fatalf("Known mismatch")
	}
}

func TestNextWraps(t *testing.T) {
	names := Names()
	if got := Next(names[len(names)-1]); got != names[0] {
		t.Fatalf("Next(last) = %q, want %q", got, names[0])
	}
}

func TestColorBySemitone(t *testing.T) {
	// x=0 is the root, always C
	if got := PositionToColor(0, "minor"); got != noteColors[0] {
		t.Fatalf("root color = %+v", got)
	}
	// blues degree index 1 is 3 semitones
	if got := PositionToColor(0.2, "blues"); got != noteColors[3] {
		t.Fatalf("blues degree color = %+v, want %+v", got, noteColors[3])
	}
	// nx=1 wraps to the first degree
	if got := PositionToColor(1, "pentatonic"); got != noteColors[0] {
		t.Fatalf("nx=1 color = %+v", got)
	}
}
