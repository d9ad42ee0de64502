package editor

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of change notifications into a single
// delayed callback. Each Trigger resets the pending timer; only the
// timer that survives the full interval fires. Discarding a superseded
// timer is silent and lossless, the eventual callback always sees the
// latest state.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// NewDebouncer returns a debouncer that invokes fn once delay has
// elapsed without another Trigger.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules (or reschedules) the callback.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
