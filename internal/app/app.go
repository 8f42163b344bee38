//go:build ebiten

package app

import (
	"plinkotone/internal/render"
	"plinkotone/internal/sims/plinko"
	"plinkotone/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the control panel right of the board.
const HUDWidth = 220

var keyActions = map[ebiten.Key]Action{
	ebiten.KeyQ:      ActionQuit,
	ebiten.KeyEscape: ActionQuit,
	ebiten.KeySpace:  ActionPause,
	ebiten.KeyC:      ActionClear,
	ebiten.KeyR:      ActionReset,
	ebiten.KeyB:      ActionRandom,
	ebiten.KeyM:      ActionMute,
	ebiten.KeyK:      ActionNextScale,
	ebiten.KeyP:      ActionPrintCode,
	ebiten.KeyDigit1: ActionPreset1,
	ebiten.KeyDigit2: ActionPreset2,
	ebiten.KeyDigit3: ActionPreset3,
	ebiten.KeyDigit4: ActionPreset4,
	ebiten.KeyE:      ActionEdit,
	ebiten.KeyT:      ActionEditKind,
	ebiten.KeyX:      ActionClearPegs,
}

// Game adapts a plinko session to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.BoardPainter
	hud     *ui.HUD
	overlay *ui.Overlay
}

// New constructs a Game around the controller's world.
func New(ctl *Controller) *Game {
	hud := ui.NewHUD(ctl.World, HUDWidth)
	hud.SetFooter("click: drop", "space: pause", "1-4 presets, B random", "K scale, M mute", "P share code, F1 debug",
		"E edit, T peg kind, X clear pegs")
	return &Game{
		ctl:     ctl,
		painter: render.NewBoardPainter(),
		hud:     hud,
		overlay: ui.NewOverlay(ctl.World),
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) && g.ctl.Apply(action) {
			return ebiten.Termination
		}
	}

	size := g.ctl.World.Size()
	onPanel := g.hud.Update(size.W)
	if !onPanel && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx < size.W {
			g.ctl.Click(float64(mx), float64(my))
		}
	}

	dt := g.ctl.Clock.Tick()
	if dt > 0 {
		g.ctl.World.Step(dt)
	}
	g.overlay.Update(g.status(), dt)
	return nil
}

func (g *Game) status() ui.Status {
	w := g.ctl.World
	return ui.Status{
		FPS:        ebiten.ActualFPS(),
		TPS:        ebiten.ActualTPS(),
		Time:       w.Time(),
		Pegs:       len(w.Pegs()),
		Marbles:    len(w.Marbles()),
		Collisions: w.Stats().Collisions,
		Preset:     w.Preset(),
		Scale:      w.Scale(),
		Paused:     g.ctl.Paused(),
		Muted:      g.ctl.Muted(),
		Editing:    g.editing(),
	}
}

func (g *Game) editing() string {
	if !g.ctl.Editing {
		return ""
	}
	return g.ctl.EditKind.String()
}

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.GridStep = 0
	if g.ctl.Editing {
		g.painter.GridStep = plinko.EditGrid
	}
	g.painter.Draw(screen, g.ctl.World)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctl.World.Size().W)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.World.Size()
	return s.W + HUDWidth, s.H
}
