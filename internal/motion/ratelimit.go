package motion

import (
	"sync"
	"time"
)

// Throttle wraps action so it runs at most once per interval. The first call
// in a window executes synchronously; calls arriving while the window is open
// are dropped, not queued. The suppression window lifts automatically.
func Throttle(action func(), interval time.Duration) func() {
	var mu sync.Mutex
	suppressing := false

	return func() {
		mu.Lock()
		if suppressing {
			mu.Unlock()
			return
		}
		suppressing = true
		mu.Unlock()

		action()

		time.AfterFunc(interval, func() {
			mu.Lock()
			suppressing = false
			mu.Unlock()
		})
	}
}

// Debounce wraps action so a burst of calls collapses into a single run. Each
// call cancels the previously scheduled run and schedules a new one wait in
// the future, so only the last call of a burst executes. With immediate set,
// the leading call of a burst runs synchronously instead and the trailing run
// is skipped for that burst.
func Debounce(action func(), wait time.Duration, immediate bool) func() {
	var mu sync.Mutex
	var timer *time.Timer

	return func() {
		mu.Lock()
		pending := timer != nil
		if pending {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, func() {
			mu.Lock()
			timer = nil
			mu.Unlock()
			if !immediate {
				action()
			}
		})
		mu.Unlock()

		if immediate && !pending {
			action()
		}
	}
}
