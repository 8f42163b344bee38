//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"plinkotone/internal/physics"
	"plinkotone/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type marbleProvider interface {
	Marbles() []*physics.Marble
}

type eventProvider interface {
	Events() []physics.CollisionEvent
}

const (
	fullSpeed     = 600.0
	maxArrowLen   = 40.0
	flashDuration = 0.25
)

type flash struct {
	x, y float64
	age  float64
}

// Overlay draws optional debugging visuals on top of the board.
type Overlay struct {
	sim        any
	showStatus bool
	showVel    bool
	status     Status

	pixel   *ebiten.Image
	flashes []flash
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim any) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Visible reports whether the status readout is shown.
func (o *Overlay) Visible() bool { return o.showStatus }

// Update toggles layers and ages collision flashes by dt seconds.
func (o *Overlay) Update(status Status, dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		o.showVel = !o.showVel
	}
	o.status = status

	kept := o.flashes[:0]
	for _, f := range o.flashes {
		f.age += dt
		if f.age < flashDuration {
			kept = append(kept, f)
		}
	}
	o.flashes = kept
	if !o.showStatus {
		return
	}
	if provider, ok := o.sim.(eventProvider); ok {
		for _, ev := range provider.Events() {
			o.flashes = append(o.flashes, flash{x: ev.Marble.X, y: ev.Marble.Y})
		}
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showVel {
		if provider, ok := o.sim.(marbleProvider); ok {
			for _, m := range provider.Marbles() {
				dx, dy, norm := VelocityVector(m.VX, m.VY, fullSpeed, maxArrowLen)
				if norm == 0 {
					continue
				}
				o.drawLine(screen, m.X, m.Y, m.X+dx, m.Y+dy, 2, render.SpeedColor(norm))
			}
		}
	}
	if !o.showStatus {
		return
	}
	for _, f := range o.flashes {
		fade := 1 - f.age/flashDuration
		size := 6 + 10*(1-fade)
		o.drawPoint(screen, f.x, f.y, size, color.RGBA{R: 255, G: 80, B: 40, A: uint8(math.Round(180 * fade))})
	}

	face := basicfont.Face7x13
	lines := StatusLines(o.status)
	bg := color.RGBA{R: 10, G: 10, B: 14, A: 170}
	o.drawRect(screen, 6, 6, 200, float64(len(lines)*16+8), bg)
	for i, line := range lines {
		text.Draw(screen, line, face, 12, 22+i*16, color.White)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
