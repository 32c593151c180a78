package motion

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestThrottleRunsFirstCallImmediately(t *testing.T) {
	var calls int32
	wrapped := Throttle(func() { atomic.AddInt32(&calls, 1) }, 50*time.Millisecond)

	wrapped()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "leading call must run synchronously")
}

func TestThrottleDropsCallsInsideWindow(t *testing.T) {
	var calls int32
	wrapped := Throttle(func() { atomic.AddInt32(&calls, 1) }, 100*time.Millisecond)

	for i := 0; i < 10; i++ {
		wrapped()
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "calls inside the window are dropped, not queued")
}

func TestThrottleLiftsAutomatically(t *testing.T) {
	var calls int32
	wrapped := Throttle(func() { atomic.AddInt32(&calls, 1) }, 30*time.Millisecond)

	wrapped()
	time.Sleep(90 * time.Millisecond)
	wrapped()

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "suppression must lift after the interval")
}

func TestDebounceCollapsesBurst(t *testing.T) {
	var calls int32
	wrapped := Debounce(func() { atomic.AddInt32(&calls, 1) }, 40*time.Millisecond, false)

	for i := 0; i < 5; i++ {
		wrapped()
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "nothing runs before the quiet period")

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "exactly one trailing run per burst")
}

func TestDebounceSupersedesPendingRun(t *testing.T) {
	var calls int32
	wrapped := Debounce(func() { atomic.AddInt32(&calls, 1) }, 50*time.Millisecond, false)

	wrapped()
	time.Sleep(20 * time.Millisecond)
	wrapped() // cancels the first pending run

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "superseded run must not fire on the old schedule")

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebounceImmediate(t *testing.T) {
	var calls int32
	wrapped := Debounce(func() { atomic.AddInt32(&calls, 1) }, 40*time.Millisecond, true)

	wrapped()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "leading call runs synchronously when nothing is pending")

	wrapped()
	wrapped()
	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no trailing run for an immediate burst")

	wrapped()
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "next burst leads again after the quiet period")
}
