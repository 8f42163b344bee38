package audio

import (
	"sync"
	"time"
)

// Throttle rejects retriggers of the same key inside a minimum interval.
type Throttle struct {
	mu   sync.Mutex
	min  time.Duration
	last map[string]time.Time
	now  func() time.Time
}

// NewThrottle creates a throttle using the wall clock.
func NewThrottle(min time.Duration) *Throttle {
	return &Throttle{min: min, last: make(map[string]time.Time), now: time.Now}
}

// Allow reports whether key may trigger now and, if so, records the trigger.
func (t *Throttle) Allow(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[key]; ok && now.Sub(last) < t.min {
		return false
	}
	t.last[key] = now
	return true
}

// Reset forgets every recorded trigger, e.g. when a new board is loaded.
func (t *Throttle) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.last)
}
