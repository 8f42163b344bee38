package app

import (
	"plinkotone/internal/core"
	"plinkotone/internal/physics"
	"plinkotone/internal/scales"
	"plinkotone/internal/sims/plinko"
)

// Action is a front-end independent command.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionClear
	ActionReset
	ActionRandom
	ActionMute
	ActionNextScale
	ActionPrintCode
	ActionPreset1
	ActionPreset2
	ActionPreset3
	ActionPreset4
	ActionEdit
	ActionEditKind
	ActionClearPegs
)

// PresetKeys is the preset loaded by each number key.
var PresetKeys = [...]string{"classic", "cascade", "funnel", "rain"}

// Sound is the subset of the audio engine the controller drives.
type Sound interface {
	ToggleMute() bool
	Muted() bool
	Reset()
}

// Controller applies actions to a session. Both front ends share it.
type Controller struct {
	World *plinko.World
	Clock *core.FrameClock
	Sound Sound
	Seed  int64

	// Editing routes clicks to peg placement instead of drops.
	Editing  bool
	EditKind physics.PegKind

	// Printf receives user-facing messages such as the share code.
	Printf func(format string, args ...any)
}

// Apply runs one action and reports whether the front end should exit.
func (c *Controller) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionPause:
		if c.Clock != nil {
			c.Clock.Toggle()
		}
	case ActionClear:
		c.World.Clear()
	case ActionReset:
		c.World.Reset(c.Seed)
		c.resetSound()
	case ActionRandom:
		c.World.LoadRandom()
		c.resetSound()
	case ActionMute:
		if c.Sound != nil {
			muted := c.Sound.ToggleMute()
			c.printf("sound muted: %t", muted)
		}
	case ActionNextScale:
		c.World.SetScale(scales.Next(c.World.Scale()))
		c.printf("scale: %s", c.World.Scale())
	case ActionPrintCode:
		c.printf("board code: %s", c.World.ShareCode())
	case ActionPreset1, ActionPreset2, ActionPreset3, ActionPreset4:
		name := PresetKeys[a-ActionPreset1]
		if err := c.World.LoadPreset(name); err != nil {
			c.printf("load preset %s: %v", name, err)
			break
		}
		c.resetSound()
	case ActionEdit:
		c.Editing = !c.Editing
		if c.Editing {
			c.printf("edit mode: placing %s pegs", c.EditKind)
		} else {
			c.printf("edit mode off")
		}
	case ActionEditKind:
		c.EditKind = c.EditKind.Next()
		c.printf("peg kind: %s", c.EditKind)
	case ActionClearPegs:
		if c.Editing {
			c.World.ClearPegs()
		}
	}
	return false
}

// Click drops a marble at (x, y), or in edit mode toggles a peg there. It
// reports whether anything changed.
func (c *Controller) Click(x, y float64) bool {
	if c.Editing {
		return c.World.TogglePeg(x, y, c.EditKind)
	}
	return c.World.Drop(x, y)
}

// Muted reports the sound state for status readouts.
func (c *Controller) Muted() bool {
	return c.Sound != nil && c.Sound.Muted()
}

// Paused reports whether the clock is paused.
func (c *Controller) Paused() bool {
	return c.Clock != nil && c.Clock.Paused()
}

func (c *Controller) resetSound() {
	if c.Sound != nil {
		c.Sound.Reset()
	}
}

func (c *Controller) printf(format string, args ...any) {
	if c.Printf != nil {
		c.Printf(format, args...)
	}
}
