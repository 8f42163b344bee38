package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep"

	"plinkotone/internal/physics"
)

// ErrNoDevice is returned by Init in builds without an output device.
var ErrNoDevice = errors.New("audio output not compiled in; build with -tags speaker")

// Engine turns collision events into short plucked notes. Notes are mixed,
// sent through a reverb and compressed before reaching the device.
type Engine struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	output      beep.Streamer
	throttle    *Throttle
	initialized bool
	deferred    bool
	muted       bool
}

// NewEngine creates an engine. Nothing is audible until Init succeeds.
func NewEngine(cfg Config) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultConfig().BufferSize
	}
	cfg.MasterVolume = clampVolume(cfg.MasterVolume)
	rate := beep.SampleRate(cfg.SampleRate)
	mixer := &beep.Mixer{}
	wet := NewReverb(mixer, rate, reverbLength, reverbDensity, reverbWet, reverbDry, reverbSeed)
	return &Engine{
		cfg:      cfg,
		rate:     rate,
		mixer:    mixer,
		output:   NewCompressor(wet, rate, compThreshold, compRatio, compKnee, compAttack, compRelease),
		throttle: NewThrottle(cfg.Retrigger),
		muted:    !cfg.Enabled,
	}
}

// Init opens the output device and starts the output chain. A disabled
// engine opens nothing until it is first unmuted. On failure the engine
// stays silent and the error is returned for logging.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.Enabled {
		e.deferred = true
		return nil
	}
	return e.open()
}

func (e *Engine) open() error {
	if e.initialized {
		return nil
	}
	if err := openDevice(e.rate, e.rate.N(e.cfg.BufferSize), e.output); err != nil {
		return err
	}
	e.initialized = true
	return nil
}

// Disabled reports whether no output device is attached.
func (e *Engine) Disabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.initialized
}

// Play schedules a note for the peg unless it is throttled, muted, or the
// device is unavailable. It reports whether a note was queued.
func (e *Engine) Play(pegID string, freq, velocity float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted || e.cfg.MasterVolume <= 0 {
		return false
	}
	if !e.throttle.Allow(pegID) {
		return false
	}
	voice := NewVoice(freq, velocity, e.cfg.MasterVolume, e.rate)
	lockDevice()
	e.mixer.Add(voice)
	unlockDevice()
	return true
}

// OnCollision plays the note for one collision event.
func (e *Engine) OnCollision(ev physics.CollisionEvent, freq, velocity float64) {
	e.Play(ev.Peg.ID, freq, velocity)
}

// SetVolume sets master volume, clamped to [0, 1].
func (e *Engine) SetVolume(v float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.MasterVolume = clampVolume(v)
}

// Volume returns the master volume.
func (e *Engine) Volume() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.MasterVolume
}

// ToggleMute flips the mute state and returns the new value. Unmuting an
// engine that started disabled opens the device; if that fails the engine
// stays silent.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = !e.muted
	if !e.muted && e.deferred {
		e.deferred = false
		_ = e.open()
	}
	return e.muted
}

// Muted reports the mute state.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Reset forgets per-peg retrigger history.
func (e *Engine) Reset() {
	e.throttle.Reset()
}

// Close stops all notes and releases the device.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	lockDevice()
	e.mixer.Clear()
	unlockDevice()
	closeDevice()
	e.initialized = false
}
