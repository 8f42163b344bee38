package render

import (
	"image/color"
	"math"

	"plinkotone/internal/physics"
	"plinkotone/internal/scales"
)

// HitAnimDuration is how long a peg pulses after being struck, in seconds.
const HitAnimDuration = 0.2

var (
	// Background is the board fill.
	Background = color.RGBA{R: 245, G: 240, B: 232, A: 255}

	bouncePegColor = color.RGBA{R: 0xBB, G: 0xBB, B: 0xC0, A: 0xFF}
	splitPegColor  = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
	marbleCore     = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	marbleRim      = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xFF}
	shadowColor    = color.RGBA{A: 26}
	trailColor     = color.RGBA{R: 50, G: 50, B: 50, A: 38}
	highlight      = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	gridDot        = color.RGBA{A: 18}
)

// HitPulse returns 1 immediately after a hit, falling linearly to 0 over
// HitAnimDuration. Pegs that were never hit return 0.
func HitPulse(now, lastHit float64) float64 {
	if lastHit <= 0 {
		return 0
	}
	since := now - lastHit
	if since < 0 || since >= HitAnimDuration {
		return 0
	}
	return 1 - since/HitAnimDuration
}

// PegStyle is the resolved appearance of a peg for one frame.
type PegStyle struct {
	Fill   color.RGBA
	Glow   color.RGBA
	Radius float64
	GlowR  float64
}

// StylePeg computes fill, glow and pulse radius for a peg.
func StylePeg(p *physics.Peg, scale string, now float64) PegStyle {
	var fill color.RGBA
	switch p.Kind {
	case physics.PegBounce:
		fill = bouncePegColor
	case physics.PegSplit:
		fill = splitPegColor
	default:
		fill = scales.PositionToColor(p.NX, scale)
	}
	pulse := HitPulse(now, p.LastHit)
	radius := p.Radius * (1 + 0.4*pulse)
	glow := fill
	glow.A = uint8(math.Round(0.4 * pulse * 255))
	return PegStyle{Fill: fill, Glow: glow, Radius: radius, GlowR: radius * 1.8}
}

// SpeedColor maps a normalized speed onto a cool-to-bright tint.
func SpeedColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 170*t))
	g := uint8(math.Round(170 - 60*t))
	b := uint8(math.Round(230 - 180*t))
	a := uint8(math.Round(150 + 90*t))
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Premultiply converts a straight-alpha color to the premultiplied form
// image/color expects.
func Premultiply(c color.RGBA) color.RGBA {
	f := float64(c.A) / 255
	return color.RGBA{
		R: scaleColorComponent(c.R, f),
		G: scaleColorComponent(c.G, f),
		B: scaleColorComponent(c.B, f),
		A: c.A,
	}
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// MarbleShade blends from the marble's rim (t=0) to its core (t=1).
func MarbleShade(t float64) color.RGBA {
	return lerpRGBA(marbleRim, marbleCore, t)
}
