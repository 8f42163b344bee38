package core

import "time"

// FrameClock measures wall-clock time between rendered frames.
type FrameClock struct {
	last   time.Time
	paused bool
	now    func() time.Time
}

// NewFrameClock constructs a clock backed by time.Now.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick. The first tick
// and every tick while paused return zero.
func (f *FrameClock) Tick() float64 {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if f.paused || delta < 0 {
		return 0
	}
	return delta.Seconds()
}

// SetPaused pauses or resumes the clock. Time spent paused is never reported.
func (f *FrameClock) SetPaused(p bool) { f.paused = p }

// Paused reports whether the clock is paused.
func (f *FrameClock) Paused() bool { return f.paused }

// Toggle flips the paused state and returns it.
func (f *FrameClock) Toggle() bool {
	f.paused = !f.paused
	return f.paused
}
