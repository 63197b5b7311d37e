// Package watcher provides the event plumbing between hosts and metric
// consumers: a debouncer that coalesces rapid dimension-change bursts
// (continuous resize, rotation animations, file-change storms) and a
// broadcast registry with strict cancellation semantics.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the default coalescing window for resize bursts.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces rapid events into a single callback invocation.
// When Trigger is called multiple times within the debounce window,
// only the last callback runs, after the window elapses.
type Debouncer struct {
	window time.Duration
	timer  *time.Timer
	mu     sync.Mutex
	seq    uint64
}

// NewDebouncer creates a Debouncer with the given window.
// A zero window means DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window == 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Trigger schedules the callback to run after the debounce window.
// Triggering again before the window elapses cancels the previously
// scheduled callback and schedules the new one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		shouldRun := func() bool {
			d.mu.Lock()
			defer d.mu.Unlock()

			// Only run the most recently scheduled callback. This avoids races
			// where Stop() returns false because the timer has already fired and
			// the stale callback starts running concurrently.
			if seq != d.seq {
				return false
			}
			d.timer = nil
			return true
		}()
		if !shouldRun {
			return
		}

		callback()
	})
}

// Cancel cancels any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Invalidate a callback that may already be executing due to timer races.
	d.seq++

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the debounce window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
