package board

import (
	"errors"
	"fmt"
	"slices"

	"plinkotone/internal/physics"
	"plinkotone/pkg/core"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("unknown board preset")

// Descriptor is one peg in normalized board space.
type Descriptor struct {
	NX, NY float64
	Kind   physics.PegKind
}

// Preset generates a fixed layout.
type Preset struct {
	Label    string
	Generate func() []Descriptor
}

var presets = map[string]Preset{}

// Register adds a preset under the provided name.
func Register(name string, p Preset) {
	if name == "" || p.Generate == nil {
		return
	}
	presets[name] = p
}

// Presets exposes the registry of available presets.
func Presets() map[string]Preset {
	return presets
}

// Names returns registered preset names in a stable order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Generate returns the layout for a registered preset.
func Generate(name string) ([]Descriptor, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.Generate(), nil
}

func init() {
	Register("classic", Preset{Label: "Classic", Generate: func() []Descriptor { return classic(9, 9) }})
	Register("cascade", Preset{Label: "Cascade", Generate: cascade})
	Register("funnel", Preset{Label: "Funnel", Generate: funnel})
	Register("rain", Preset{Label: "Rain", Generate: rain})
}

// classic is staggered triangle rows.
func classic(cols, rows int) []Descriptor {
	var out []Descriptor
	spacingX := 1 / float64(cols+1)
	spacingY := 1 / float64(rows+2)
	for row := 0; row < rows; row++ {
		offset := 0.0
		count := cols
		if row%2 == 1 {
			offset = spacingX * 0.5
			count = cols - 1
		}
		for col := 0; col < count; col++ {
			out = append(out, Descriptor{
				NX: spacingX*float64(col+1) + offset,
				NY: spacingY * (float64(row) + 1.5),
			})
		}
	}
	return out
}

// cascade is dense at the top and sparse at the bottom.
func cascade() []Descriptor {
	rows := []int{10, 9, 8, 7, 6, 5, 4, 3, 3}
	var out []Descriptor
	for row, count := range rows {
		ny := float64(row+1) / float64(len(rows)+2)
		for col := 0; col < count; col++ {
			out = append(out, Descriptor{NX: float64(col+1) / float64(count+1), NY: ny})
		}
	}
	return out
}

// funnel is a V that converges toward the middle.
func funnel() []Descriptor {
	const rows = 9
	var out []Descriptor
	for row := 0; row < rows; row++ {
		spread := 0.48 - float64(row)*0.04
		count := 2 + row
		ny := (float64(row) + 1.5) / (rows + 2)
		for col := 0; col < count; col++ {
			t := float64(col) / float64(count-1)
			out = append(out, Descriptor{NX: 0.5 - spread + t*spread*2, NY: ny})
		}
	}
	return out
}

// rain scatters pegs from a fixed Park-Miller sequence so the layout never
// changes between runs.
func rain() []Descriptor {
	seed := int64(42)
	next := func() float64 {
		seed = (seed * 16807) % 2147483647
		return float64(seed-1) / 2147483646
	}
	out := make([]Descriptor, 0, 28)
	for i := 0; i < 28; i++ {
		nx := 0.1 + next()*0.8
		ny := 0.08 + next()*0.8
		out = append(out, Descriptor{NX: nx, NY: ny})
	}
	return out
}

var randomKinds = [...]physics.PegKind{
	physics.PegTone, physics.PegTone, physics.PegTone, physics.PegTone,
	physics.PegBounce, physics.PegSplit,
}

// Random returns a scattered board of 25 to 39 pegs with mixed kinds.
func Random(rng *core.RNG) []Descriptor {
	count := 25 + rng.IntN(15)
	out := make([]Descriptor, 0, count)
	for i := 0; i < count; i++ {
		nx := rng.Range(0.08, 0.92)
		ny := rng.Range(0.08, 0.90)
		out = append(out, Descriptor{NX: nx, NY: ny, Kind: randomKinds[rng.IntN(len(randomKinds))]})
	}
	return out
}
