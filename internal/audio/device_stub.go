//go:build !ebiten && !speaker

package audio

import "github.com/gopxl/beep"

// Builds without the ebiten or speaker tag carry no output device.
func openDevice(beep.SampleRate, int, beep.Streamer) error { return ErrNoDevice }

func lockDevice()   {}
func unlockDevice() {}
func closeDevice()  {}
