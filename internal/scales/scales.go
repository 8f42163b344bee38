// Package scales maps normalized board positions to pitches and note colors.
package scales

import (
	"image/color"
	"math"
)

// BaseFrequency is C3 in Hz.
const BaseFrequency = 130.81

// Octaves is the vertical pitch range of a board, top to bottom.
const Octaves = 3

// Scale is a named set of semitone offsets within one octave.
type Scale struct {
	Name    string
	Label   string
	Degrees []int
}

var scales = []Scale{
	{Name: "pentatonic", Label: "Pentatonic", Degrees: []int{0, 2, 4, 7, 9}},
	{Name: "major", Label: "Major", Degrees: []int{0, 2, 4, 5, 7, 9, 11}},
	{Name: "minor", Label: "Minor", Degrees: []int{0, 2, 3, 5, 7, 8, 10}},
	{Name: "blues", Label: "Blues", Degrees: []int{0, 3, 5, 6, 7, 10}},
	{Name: "wholetone", Label: "Whole Tone", Degrees: []int{0, 2, 4, 6, 8, 10}},
}

var noteColors = [12]color.RGBA{
	{R: 0xE8, G: 0x48, B: 0x55, A: 0xFF}, // C
	{R: 0xEC, G: 0x65, B: 0x47, A: 0xFF},
	{R: 0xF1, G: 0x8F, B: 0x01, A: 0xFF}, // D
	{R: 0xF5, G: 0xA6, B: 0x23, A: 0xFF},
	{R: 0xF9, G: 0xC2, B: 0x2E, A: 0xFF}, // E
	{R: 0x73, G: 0xD2, B: 0xA0, A: 0xFF}, // F
	{R: 0x4F, G: 0xC4, B: 0xA0, A: 0xFF},
	{R: 0x3A, G: 0xAF, B: 0xB9, A: 0xFF}, // G
	{R: 0x4A, G: 0x97, B: 0xD8, A: 0xFF},
	{R: 0x5B, G: 0x7F, B: 0xFF, A: 0xFF}, // A
	{R: 0x7B, G: 0x6F, B: 0xE8, A: 0xFF},
	{R: 0x9B, G: 0x5D, B: 0xE5, A: 0xFF}, // B
}

// Names lists the known scales in display order.
func Names() []string {
	out := make([]string, len(scales))
	for i, s := range scales {
		out[i] = s.Name
	}
	return out
}

// Lookup returns the named scale, falling back to pentatonic.
func Lookup(name string) Scale {
	for _, s := range scales {
		if s.Name == name {
			return s
		}
	}
	return scales[0]
}

// Known reports whether name is a registered scale.
func Known(name string) bool {
	for _, s := range scales {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Next returns the scale after name, wrapping around.
func Next(name string) string {
	for i, s := range scales {
		if s.Name == name {
			return scales[(i+1)%len(scales)].Name
		}
	}
	return scales[0].Name
}

// Frequency converts semitones above BaseFrequency to Hz.
func Frequency(semitones int) float64 {
	return BaseFrequency * math.Pow(2, float64(semitones)/12)
}

// Semitone picks the scale degree for a normalized x position.
func (s Scale) Semitone(nx float64) int {
	n := len(s.Degrees)
	idx := int(math.Floor(nx*float64(n))) % n
	if idx < 0 {
		idx += n
	}
	return s.Degrees[idx]
}

// PositionToFrequency maps x across scale degrees and y across octaves, high
// at the top of the board.
func PositionToFrequency(nx, ny float64, name string) float64 {
	s := Lookup(name)
	octave := int(math.Floor((1 - ny) * Octaves))
	return Frequency(octave*12 + s.Semitone(nx))
}

// PositionToColor returns the note color for a normalized x position.
func PositionToColor(nx float64, name string) color.RGBA {
	return noteColors[Lookup(name).Semitone(nx)%12]
}
