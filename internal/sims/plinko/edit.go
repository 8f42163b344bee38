package plinko

import (
	"math"
	"slices"

	"plinkotone/internal/board"
	"plinkotone/internal/physics"
)

// EditGrid is the spacing in pixels of the points pegs snap to when placed
// by hand.
const EditGrid = 30.0

// CustomPreset names a layout changed by hand.
const CustomPreset = "custom"

// Snap returns the grid point nearest (x, y) and whether it lies strictly
// inside the board.
func (w *World) Snap(x, y float64) (float64, float64, bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0, 0, false
	}
	sx := math.Round(x/EditGrid) * EditGrid
	sy := math.Round(y/EditGrid) * EditGrid
	ok := sx > 0 && sx < float64(w.cfg.Width) && sy > 0 && sy < float64(w.cfg.Height)
	return sx, sy, ok
}

// AddPeg places a peg of the given kind on the grid point nearest (x, y).
// It reports false when the point is off the board or already taken.
func (w *World) AddPeg(x, y float64, kind physics.PegKind) bool {
	sx, sy, ok := w.Snap(x, y)
	if !ok {
		return false
	}
	width, height := float64(w.cfg.Width), float64(w.cfg.Height)
	for _, d := range w.layout {
		if math.Abs(d.NX*width-sx) < 0.5 && math.Abs(d.NY*height-sy) < 0.5 {
			return false
		}
	}
	layout := slices.Clone(w.layout)
	w.layout = append(layout, board.Descriptor{NX: sx / width, NY: sy / height, Kind: kind})
	w.rebuildPegs()
	return true
}

// RemovePeg deletes the peg covering (x, y). It reports whether one was
// found; when pegs overlap the nearest wins.
func (w *World) RemovePeg(x, y float64) bool {
	idx := -1
	best := math.Inf(1)
	for i, p := range w.state.Pegs {
		dx, dy := p.X-x, p.Y-y
		d := dx*dx + dy*dy
		if d <= p.Radius*p.Radius && d < best {
			idx, best = i, d
		}
	}
	if idx < 0 {
		return false
	}
	w.layout = slices.Delete(slices.Clone(w.layout), idx, idx+1)
	w.rebuildPegs()
	return true
}

// TogglePeg removes the peg under (x, y) or, when there is none, adds one of
// the given kind. It reports whether the board changed.
func (w *World) TogglePeg(x, y float64, kind physics.PegKind) bool {
	if w.RemovePeg(x, y) {
		return true
	}
	return w.AddPeg(x, y, kind)
}

// ClearPegs removes every peg, leaving an empty custom board.
func (w *World) ClearPegs() {
	w.layout = nil
	w.rebuildPegs()
}

// rebuildPegs re-materializes the layout after an edit. Radii follow the new
// density; live marbles keep the size they were created with.
func (w *World) rebuildPegs() {
	pegs, radii := board.Materialize(w.layout, float64(w.cfg.Width), float64(w.cfg.Height))
	w.state.Pegs = pegs
	w.state.Radii = radii
	w.preset = CustomPreset
	w.events = w.events[:0]
}
