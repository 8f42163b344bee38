package plinko

import (
	"math"
	"strconv"

	"plinkotone/internal/board"
	"plinkotone/internal/core"
	"plinkotone/internal/scales"
)

const (
	minGravity  = 0.1
	maxGravity  = 3.0
	gravityStep = 0.1
	volumeStep  = 0.05
)

// Parameters returns the current tunables grouped for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Physics",
				Params: []core.Parameter{
					{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Value: formatFloat(w.state.Gravity)},
				},
			},
			{
				Name: "Sound",
				Params: []core.Parameter{
					{Key: "volume", Label: "Volume", Type: core.ParamTypeFloat, Value: formatFloat(w.cfg.Volume)},
					{Key: "scale", Label: "Scale", Type: core.ParamTypeChoice, Value: w.scale},
				},
			},
			{
				Name: "Board",
				Params: []core.Parameter{
					{Key: "preset", Label: "Preset", Type: core.ParamTypeChoice, Value: w.preset},
					{Key: "pegs", Label: "Pegs", Type: core.ParamTypeInt, Value: strconv.Itoa(len(w.state.Pegs))},
					{Key: "marbles", Label: "Marbles", Type: core.ParamTypeInt, Value: strconv.Itoa(len(w.state.Marbles))},
				},
			},
		},
	}
}

// ParameterControls lists HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	presets := append(board.Names(), RandomPreset)
	return []core.ParameterControl{
		{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Step: gravityStep, Min: minGravity, Max: maxGravity},
		{Key: "volume", Label: "Volume", Type: core.ParamTypeFloat, Step: volumeStep, Min: 0, Max: 1},
		{Key: "scale", Label: "Scale", Type: core.ParamTypeChoice, Choices: scales.Names()},
		{Key: "preset", Label: "Preset", Type: core.ParamTypeChoice, Choices: presets},
	}
}

// SetFloatParameter updates float-valued parameters.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "gravity":
		value = clamp(round2(value), minGravity, maxGravity)
		w.cfg.Gravity = value
		w.state.Gravity = value
		return true
	case "volume":
		value = clamp(round2(value), 0, 1)
		w.cfg.Volume = value
		if vs, ok := w.sink.(VolumeSetter); ok {
			vs.SetVolume(value)
		}
		return true
	default:
		return false
	}
}

// SetChoiceParameter updates list-valued parameters.
func (w *World) SetChoiceParameter(key, value string) bool {
	switch key {
	case "scale":
		return w.SetScale(value)
	case "preset":
		return w.LoadPreset(value) == nil
	default:
		return false
	}
}

// Volume returns the configured master volume.
func (w *World) Volume() float64 { return w.cfg.Volume }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// round2 snaps HUD arithmetic to two decimals so repeated steps don't drift.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
