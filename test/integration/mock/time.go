package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. After SetCurrentTime it keeps ticking from the
// given instant at wall-clock speed.
type Time struct {
	mu        sync.RWMutex
	start     time.Time
	setAt     time.Time
	overridden bool
}

// NewTime returns a clock following the real time.
func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime moves the clock to currentTime.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.start = currentTime
	t.setAt = time.Now()
	t.overridden = true
}

// Reset returns the clock to real time.
func (t *Time) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.overridden = false
}

// Now implements adapter.Clock.
func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.overridden {
		return time.Now().UTC()
	}
	return t.start.Add(time.Since(t.setAt)).UTC()
}
