package ui

import (
	"image"
	"math"
	"strconv"

	"plinkotone/internal/core"
)

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	choice     int
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	out := make([]controlState, len(controls))
	for i, ctrl := range controls {
		out[i] = controlState{control: ctrl, value: "--"}
	}
	return out
}

// refreshControls copies current values from the snapshot into each control.
func refreshControls(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		case core.ParamTypeChoice:
			state.choice = indexOf(state.control.Choices, param.Value)
			state.value = param.Value
			state.hasValue = true
		default:
			state.value = param.Value
			state.hasValue = false
		}
	}
}

// floatTarget returns the next value for a float control, or false when the
// control is already at the bound in that direction.
func floatTarget(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || state.control.Type != core.ParamTypeFloat {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 0.05
	}
	target := state.floatValue + float64(direction)*step
	bounded := state.control.Max > state.control.Min
	if bounded && target < state.control.Min {
		target = state.control.Min
	}
	if bounded && target > state.control.Max {
		target = state.control.Max
	}
	if math.Abs(target-state.floatValue) < 1e-9 {
		return 0, false
	}
	return target, true
}

// choiceTarget cycles through the control's choices with wraparound.
func choiceTarget(state *controlState, direction int) (string, bool) {
	if state == nil || direction == 0 || state.control.Type != core.ParamTypeChoice {
		return "", false
	}
	n := len(state.control.Choices)
	if n < 2 {
		return "", false
	}
	idx := state.choice
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+direction)%n + n) % n
	}
	return state.control.Choices[idx], true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func layoutControls(states []controlState, width int) {
	if width <= 0 {
		return
	}
	for i := range states {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = top
		states[i].minusRect = minusRect
		states[i].plusRect = plusRect
	}
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
