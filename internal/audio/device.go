//go:build ebiten || speaker

package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

func openDevice(rate beep.SampleRate, bufferSize int, s beep.Streamer) error {
	if err := speaker.Init(rate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s)
	return nil
}

func lockDevice()   { speaker.Lock() }
func unlockDevice() { speaker.Unlock() }
func closeDevice()  { speaker.Close() }
