package board

import (
	"encoding/base64"
	"errors"
	"math"
	"slices"
	"testing"

	"plinkotone/internal/physics"
	"plinkotone/pkg/core"
)

func TestPresetsRegistered(t *testing.T) {
	want := []string{"cascade", "classic", "funnel", "rain"}
	if got := Names(); !slices.Equal(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if _, err := Generate("nope"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("Generate(nope) err = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetCounts(t *testing.T) {
	cases := map[string]int{
		"classic": 9*5 + 8*4,
		"cascade": 10 + 9 + 8 + 7 + 6 + 5 + 4 + 3 + 3,
		"funnel":  2 + 3 + 4 + 5 + 6 + 7 + 8 + 9 + 10,
		"rain":    28,
	}
	for name, want := range cases {
		descs, err := Generate(name)
		if err != nil {
			t.Fatalf("Generate(%s): %v", name, err)
		}
		if len(descs) != want {
			t.Fatalf("%s: %d pegs, want %d", name, len(descs), want)
		}
		for _, d := range descs {
			if d.NX < 0 || d.NX > 1 || d.NY < 0 || d.NY > 1 {
				t.Fatalf("%s: peg out of unit square: %+v", name, d)
			}
		}
	}
}

func TestRainIsStable(t *testing.T) {
	a, _ := Generate("rain")
	b, _ := Generate("rain")
	if !slices.Equal(a, b) {
		t.Fatalf("rain preset not stable between calls")
	}
}

func TestRandomBoardBounds(t *testing.T) {
	rng := core.NewRNG(8)
	for i := 0; i < 20; i++ {
		descs := Random(rng)
		if len(descs) < 25 || len(descs) > 39 {
			t.Fatalf("random board has %d pegs", len(descs))
		}
		for _, d := range descs {
			if d.NX < 0.08 || d.NX >= 0.92 || d.NY < 0.08 || d.NY >= 0.90 {
				t.Fatalf("random peg out of bounds: %+v", d)
			}
		}
	}
}

func TestMaterializeScalesAndSizes(t *testing.T) {
	descs := []Descriptor{
		{NX: 0.1, NY: 0.2},
		{NX: 0.1, NY: 0.4, Kind: physics.PegBounce},
		{NX: 0.3, NY: 0.2, Kind: physics.PegSplit},
		{NX: 0.5, NY: 0.2},
	}
	pegs, radii := Materialize(descs, 900, 600)
	if radii.Peg != physics.MaxPegRadius {
		t.Fatalf("peg radius = %f, want %f", radii.Peg, physics.MaxPegRadius)
	}
	if len(pegs) != len(descs) {
		t.Fatalf("materialized %d pegs, want %d", len(pegs), len(descs))
	}
	p := pegs[2]
	if math.Abs(p.X-270) > 1e-9 || math.Abs(p.Y-120) > 1e-9 {
		t.Fatalf("peg at (%f,%f), want (270,120)", p.X, p.Y)
	}
	if p.NX != 0.3 || p.NY != 0.2 || p.Kind != physics.PegSplit || p.Radius != radii.Peg {
		t.Fatalf("unexpected peg: %+v", p)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	descs := []Descriptor{
		{NX: 0.123, NY: 0.456},
		{NX: 0.5, NY: 0.9, Kind: physics.PegBounce},
		{NX: 0.25, NY: 0.75, Kind: physics.PegSplit},
	}
	shared, err := Decode(Encode(descs, "blues"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if shared.Scale != "blues" {
		t.Fatalf("scale = %q, want blues", shared.Scale)
	}
	if !slices.Equal(shared.Pegs, descs) {
		t.Fatalf("pegs = %+v, want %+v", shared.Pegs, descs)
	}
}

func TestDecodeDefaultsAndUnknownKinds(t *testing.T) {
	code := base64.StdEncoding.EncodeToString([]byte(`{"p":[[100,200,7],[300,400,1]]}`))
	shared, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if shared.Scale != DefaultScale {
		t.Fatalf("scale = %q, want %q", shared.Scale, DefaultScale)
	}
	if shared.Pegs[0].Kind != physics.PegTone || shared.Pegs[1].Kind != physics.PegBounce {
		t.Fatalf("unexpected kinds: %+v", shared.Pegs)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, code := range []string{"!!!", base64.StdEncoding.EncodeToString([]byte("not json")), base64.StdEncoding.EncodeToString([]byte(`{"s":"major"}`))} {
		if _, err := Decode(code); !errors.Is(err, ErrInvalidCode) {
			t.Fatalf("Decode(%q) err = %v, want ErrInvalidCode", code, err)
		}
	}
}
