package audio

import "time"

// Config controls the tone engine.
type Config struct {
	Enabled      bool
	SampleRate   int
	BufferSize   time.Duration
	MasterVolume float64

	// Retrigger is the minimum gap between two notes from the same peg.
	Retrigger time.Duration
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   48000,
		BufferSize:   100 * time.Millisecond,
		MasterVolume: 0.5,
		Retrigger:    50 * time.Millisecond,
	}
}

const (
	minGain   = 0.15
	gainRange = 0.35

	attack       = 5 * time.Millisecond
	toneDecay    = 400 * time.Millisecond
	toneLength   = 500 * time.Millisecond
	subDecay     = 300 * time.Millisecond
	subLength    = 400 * time.Millisecond
	subGainRatio = 0.4
	decayFloor   = 0.001
)

// Output chain: the note mix feeds a reverb send, then a compressor.
const (
	reverbLength  = 800 * time.Millisecond
	reverbDensity = 400 // taps per second of tail
	reverbCurve   = 2.5
	reverbWet     = 0.3
	reverbDry     = 0.7
	reverbSeed    = 7

	compThreshold = -20.0 // dBFS
	compRatio     = 4.0
	compKnee      = 30.0 // dB
	compAttack    = 3 * time.Millisecond
	compRelease   = 100 * time.Millisecond
)

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
