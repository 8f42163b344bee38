//go:build ebiten

package render

import (
	"image/color"

	"plinkotone/internal/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Board is the read-only view a BoardPainter draws.
type Board interface {
	Pegs() []*physics.Peg
	Marbles() []*physics.Marble
	Scale() string
	Time() float64
}

// BoardPainter draws pegs, marbles and trails with vector primitives.
type BoardPainter struct {
	ShowTrails bool

	// GridStep, when positive, draws the peg placement grid at that spacing.
	GridStep float64
}

// NewBoardPainter constructs a painter with trails enabled.
func NewBoardPainter() *BoardPainter {
	return &BoardPainter{ShowTrails: true}
}

// Draw paints the full board onto dst.
func (p *BoardPainter) Draw(dst *ebiten.Image, b Board) {
	dst.Fill(Background)
	if p.GridStep > 0 {
		p.drawGrid(dst)
	}
	now := b.Time()
	scale := b.Scale()
	for _, peg := range b.Pegs() {
		p.drawPeg(dst, peg, scale, now)
	}
	for _, m := range b.Marbles() {
		if !m.Alive {
			continue
		}
		p.drawMarble(dst, m)
	}
}

func (p *BoardPainter) drawGrid(dst *ebiten.Image) {
	bounds := dst.Bounds()
	c := Premultiply(gridDot)
	for x := p.GridStep; x < float64(bounds.Dx()); x += p.GridStep {
		for y := p.GridStep; y < float64(bounds.Dy()); y += p.GridStep {
			vector.DrawFilledCircle(dst, float32(x), float32(y), 1.5, c, true)
		}
	}
}

func (p *BoardPainter) drawPeg(dst *ebiten.Image, peg *physics.Peg, scale string, now float64) {
	st := StylePeg(peg, scale, now)
	x, y := float32(peg.X), float32(peg.Y)
	if st.Glow.A > 0 {
		vector.DrawFilledCircle(dst, x, y, float32(st.GlowR), Premultiply(st.Glow), true)
	}
	vector.DrawFilledCircle(dst, x, y+2, float32(st.Radius), Premultiply(shadowColor), true)
	vector.DrawFilledCircle(dst, x, y, float32(st.Radius), st.Fill, true)
	vector.DrawFilledCircle(dst, x-3, y-3, float32(st.Radius*0.4), Premultiply(highlight), true)

	switch peg.Kind {
	case physics.PegBounce:
		vector.StrokeCircle(dst, x, y, float32(st.Radius*0.5), 1.5, Premultiply(color.RGBA{R: 255, G: 255, B: 255, A: 128}), true)
	case physics.PegSplit:
		arm := float32(st.Radius * 0.35)
		mark := color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
		vector.StrokeLine(dst, x-arm, y-arm, x+arm, y+arm, 2, mark, true)
		vector.StrokeLine(dst, x-arm, y+arm, x+arm, y-arm, 2, mark, true)
	}
}

func (p *BoardPainter) drawMarble(dst *ebiten.Image, m *physics.Marble) {
	r := float32(m.Radius)
	if p.ShowTrails && len(m.Trail) > 1 {
		tc := Premultiply(trailColor)
		for i := 1; i < len(m.Trail); i++ {
			a, b := m.Trail[i-1], m.Trail[i]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r*1.5, tc, true)
		}
		last := m.Trail[len(m.Trail)-1]
		vector.StrokeLine(dst, float32(last.X), float32(last.Y), float32(m.X), float32(m.Y), r*1.5, tc, true)
	}

	x, y := float32(m.X), float32(m.Y)
	vector.DrawFilledCircle(dst, x, y+2, r, Premultiply(color.RGBA{A: 31}), true)
	const rings = 4
	for i := 0; i < rings; i++ {
		t := float64(i) / float64(rings-1)
		rr := r * float32(1-0.6*t)
		vector.DrawFilledCircle(dst, x-2*float32(t), y-2*float32(t), rr, MarbleShade(t), true)
	}
	vector.DrawFilledCircle(dst, x-2, y-2, r*0.35, Premultiply(color.RGBA{R: 255, G: 255, B: 255, A: 102}), true)
}
