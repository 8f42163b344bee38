// Package term renders a plinko session in a terminal with tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"plinkotone/internal/app"
	"plinkotone/internal/physics"
	"plinkotone/internal/render"
	"plinkotone/internal/sims/plinko"
	"plinkotone/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const (
	runeTone   = 'o'
	runeBounce = '*'
	runeSplit  = '%'
	runeMarble = '●'
	runeTrail  = '·'
	runeCursor = 'v'
	runeEdit   = '+'

	dropY = 4.0
)

var (
	styleBoard  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleMarble = styleBoard.Foreground(tcell.ColorWhite).Bold(true)
	styleTrail  = styleBoard.Foreground(tcell.ColorGray)
	styleCursor = styleBoard.Foreground(tcell.ColorYellow).Bold(true)
	styleGrid   = styleBoard.Foreground(tcell.ColorDimGray)
	styleStatus = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
)

// View projects a session onto a tcell screen and routes key presses.
type View struct {
	screen tcell.Screen
	ctl    *app.Controller

	cols, rows int
	cursor     int
	cursorRow  int
	message    string
}

// New constructs a view. The screen must already be initialized.
func New(screen tcell.Screen, ctl *app.Controller) *View {
	v := &View{screen: screen, ctl: ctl}
	prev := ctl.Printf
	ctl.Printf = func(format string, args ...any) {
		v.message = fmt.Sprintf(format, args...)
		if prev != nil {
			prev(format, args...)
		}
	}
	v.resize()
	v.cursor = v.cols / 2
	v.cursorRow = v.boardRows() / 2
	return v
}

func (v *View) resize() {
	v.cols, v.rows = v.screen.Size()
	if v.cursor >= v.cols {
		v.cursor = v.cols - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
	if v.cursorRow >= v.boardRows() {
		v.cursorRow = v.boardRows() - 1
	}
	if v.cursorRow < 0 {
		v.cursorRow = 0
	}
}

// boardRows is the number of rows used by the board; the last is status.
func (v *View) boardRows() int {
	if v.rows <= 1 {
		return v.rows
	}
	return v.rows - 1
}

// cell maps board coordinates to a screen cell.
func (v *View) cell(x, y float64) (int, int, bool) {
	size := v.ctl.World.Size()
	rows := v.boardRows()
	if v.cols <= 0 || rows <= 0 || size.W <= 0 || size.H <= 0 {
		return 0, 0, false
	}
	cx := int(x / float64(size.W) * float64(v.cols))
	cy := int(y / float64(size.H) * float64(rows))
	if cx < 0 || cx >= v.cols || cy < 0 || cy >= rows {
		return 0, 0, false
	}
	return cx, cy, true
}

// cursorX converts the cursor column to a board x at the column center.
func (v *View) cursorX() float64 {
	size := v.ctl.World.Size()
	if v.cols <= 0 {
		return float64(size.W) / 2
	}
	return (float64(v.cursor) + 0.5) / float64(v.cols) * float64(size.W)
}

// cursorY converts the edit cursor row to a board y at the row center.
func (v *View) cursorY() float64 {
	size := v.ctl.World.Size()
	rows := v.boardRows()
	if rows <= 0 {
		return float64(size.H) / 2
	}
	return (float64(v.cursorRow) + 0.5) / float64(rows) * float64(size.H)
}

// Draw renders the current frame and shows it.
func (v *View) Draw() {
	v.screen.SetStyle(styleBoard)
	v.screen.Clear()
	w := v.ctl.World
	now := w.Time()

	if v.ctl.Editing {
		v.drawGrid()
	}
	for _, peg := range w.Pegs() {
		cx, cy, ok := v.cell(peg.X, peg.Y)
		if !ok {
			continue
		}
		v.screen.SetContent(cx, cy, pegRune(peg.Kind), nil, pegStyle(peg, w.Scale(), now))
	}
	for _, m := range w.Marbles() {
		for _, p := range m.Trail {
			if cx, cy, ok := v.cell(p.X, p.Y); ok {
				v.screen.SetContent(cx, cy, runeTrail, nil, styleTrail)
			}
		}
	}
	for _, m := range w.Marbles() {
		if cx, cy, ok := v.cell(m.X, m.Y); ok {
			v.screen.SetContent(cx, cy, runeMarble, nil, styleMarble)
		}
	}
	switch {
	case v.boardRows() <= 0:
	case v.ctl.Editing:
		v.screen.SetContent(v.cursor, v.cursorRow, runeEdit, nil, styleCursor)
	default:
		v.screen.SetContent(v.cursor, 0, runeCursor, nil, styleCursor)
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *View) drawGrid() {
	size := v.ctl.World.Size()
	for x := plinko.EditGrid; x < float64(size.W); x += plinko.EditGrid {
		for y := plinko.EditGrid; y < float64(size.H); y += plinko.EditGrid {
			if cx, cy, ok := v.cell(x, y); ok {
				v.screen.SetContent(cx, cy, runeTrail, nil, styleGrid)
			}
		}
	}
}

func (v *View) drawStatus() {
	if v.rows <= 1 {
		return
	}
	w := v.ctl.World
	lines := ui.StatusLines(ui.Status{
		Time:       w.Time(),
		Pegs:       len(w.Pegs()),
		Marbles:    len(w.Marbles()),
		Collisions: w.Stats().Collisions,
		Preset:     w.Preset(),
		Scale:      w.Scale(),
		Paused:     v.ctl.Paused(),
		Muted:      v.ctl.Muted(),
		Editing:    v.editing(),
	})
	text := lines[0] + " | " + lines[1]
	if v.message != "" {
		text = v.message
	}
	y := v.rows - 1
	x := 0
	for _, r := range text {
		if x >= v.cols {
			break
		}
		v.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
	for ; x < v.cols; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}

func (v *View) editing() string {
	if !v.ctl.Editing {
		return ""
	}
	return v.ctl.EditKind.String()
}

func pegRune(k physics.PegKind) rune {
	switch k {
	case physics.PegBounce:
		return runeBounce
	case physics.PegSplit:
		return runeSplit
	default:
		return runeTone
	}
}

func pegStyle(p *physics.Peg, scale string, now float64) tcell.Style {
	st := render.StylePeg(p, scale, now)
	style := styleBoard.Foreground(tcell.NewRGBColor(int32(st.Fill.R), int32(st.Fill.G), int32(st.Fill.B)))
	if render.HitPulse(now, p.LastHit) > 0 {
		style = style.Bold(true).Reverse(true)
	}
	return style
}

// HandleEvent applies one terminal event. It returns false when the view
// should exit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.resize()
		v.screen.Sync()
	case *tcell.EventKey:
		return v.handleKey(ev.Key(), ev.Rune())
	}
	return true
}

func (v *View) handleKey(key tcell.Key, r rune) bool {
	v.message = ""
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		if v.cursor > 0 {
			v.cursor--
		}
		return true
	case tcell.KeyRight:
		if v.cursor < v.cols-1 {
			v.cursor++
		}
		return true
	case tcell.KeyUp:
		if v.ctl.Editing && v.cursorRow > 0 {
			v.cursorRow--
		}
		return true
	case tcell.KeyDown:
		if v.ctl.Editing && v.cursorRow < v.boardRows()-1 {
			v.cursorRow++
		}
		return true
	case tcell.KeyEnter:
		return !v.ctl.Apply(app.ActionPause)
	case tcell.KeyRune:
	default:
		return true
	}

	if r == ' ' {
		if v.ctl.Editing {
			v.ctl.Click(v.cursorX(), v.cursorY())
		} else {
			v.ctl.Click(v.cursorX(), dropY)
		}
		return true
	}
	return !v.ctl.Apply(runeAction(r))
}

func runeAction(r rune) app.Action {
	switch r {
	case 'q':
		return app.ActionQuit
	case 'c':
		return app.ActionClear
	case 'r':
		return app.ActionRandom
	case 'R':
		return app.ActionReset
	case 'm':
		return app.ActionMute
	case 'k':
		return app.ActionNextScale
	case 'p':
		return app.ActionPrintCode
	case '1':
		return app.ActionPreset1
	case '2':
		return app.ActionPreset2
	case '3':
		return app.ActionPreset3
	case '4':
		return app.ActionPreset4
	case 'e':
		return app.ActionEdit
	case 't':
		return app.ActionEditKind
	case 'x':
		return app.ActionClearPegs
	default:
		return app.ActionNone
	}
}

// Run drives the view at tps frames per second until ctx is cancelled or the
// user quits.
func (v *View) Run(ctx context.Context, tps int) error {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(v.screen, done, 100)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok || !v.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if dt := v.ctl.Clock.Tick(); dt > 0 {
				v.ctl.World.Step(dt)
			}
			v.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed. The returned channel is closed when forwarding stops.
func pollEvents(screen tcell.Screen, done <-chan struct{}, buffer int) <-chan tcell.Event {
	events := make(chan tcell.Event, buffer)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
