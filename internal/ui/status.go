package ui

import (
	"fmt"
	"math"
)

// Status is the debug readout shown by the overlay and the terminal view.
type Status struct {
	FPS        float64
	TPS        float64
	Time       float64
	Pegs       int
	Marbles    int
	Collisions int
	Preset     string
	Scale      string
	Paused     bool
	Muted      bool

	// Editing is the peg kind placed by clicks, empty outside edit mode.
	Editing string
}

// StatusLines formats a status readout, one fact per line.
func StatusLines(s Status) []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	sound := "on"
	if s.Muted {
		sound = "muted"
	}
	if s.Editing != "" {
		state += "  edit " + s.Editing
	}
	lines := []string{
		fmt.Sprintf("board %s / %s", orDash(s.Preset), orDash(s.Scale)),
		fmt.Sprintf("marbles %d  pegs %d", s.Marbles, s.Pegs),
		fmt.Sprintf("hits %d  t=%.2fs", s.Collisions, s.Time),
		fmt.Sprintf("%s  sound %s", state, sound),
	}
	if s.FPS > 0 || s.TPS > 0 {
		lines = append(lines, fmt.Sprintf("fps %.0f  tps %.0f", s.FPS, s.TPS))
	}
	return lines
}

// VelocityVector returns a screen-space arrow for a marble velocity. Length
// grows with the square root of speed and is capped at maxLen.
func VelocityVector(vx, vy, fullSpeed, maxLen float64) (dx, dy, norm float64) {
	speed := math.Hypot(vx, vy)
	if speed < 1e-6 || fullSpeed <= 0 {
		return 0, 0, 0
	}
	norm = clamp01(speed / fullSpeed)
	length := maxLen * math.Sqrt(norm)
	return vx / speed * length, vy / speed * length, norm
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
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
