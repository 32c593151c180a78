package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCounter(t *testing.T, c *Counter, maxSteps int) (string, int) {
	t.Helper()

	var text string
	var done bool
	steps := 0
	for !done {
		require.Less(t, steps, maxSteps, "counter did not terminate")
		text, done = c.Step()
		steps++
	}
	return text, steps
}

func TestCounterEndsExactlyOnTarget(t *testing.T) {
	counter := NewCounter(100, 2*time.Second, "")

	text, steps := runCounter(t, counter, 200)

	assert.Equal(t, "100", text, "final frame must show the exact target")
	// 2000ms / 16ms ≈ 125 frames; allow slack for float accumulation.
	assert.InDelta(t, 125, steps, 3)
	assert.True(t, counter.Done())
}

func TestCounterStepCountIndependentOfMagnitude(t *testing.T) {
	small := NewCounter(7, 2*time.Second, "")
	large := NewCounter(150000, 2*time.Second, "")

	_, smallSteps := runCounter(t, small, 200)
	_, largeSteps := runCounter(t, large, 200)

	assert.InDelta(t, smallSteps, largeSteps, 3, "frame count derives from duration, not target magnitude")
}

func TestCounterSuffix(t *testing.T) {
	counter := NewCounter(50, 800*time.Millisecond, "+")

	text, _ := runCounter(t, counter, 100)

	assert.Equal(t, "50+", text)
}

func TestCounterIntermediateFramesAreFloored(t *testing.T) {
	counter := NewCounter(10, 160*time.Millisecond, "")

	// increment = 10/10 = 1 per frame; the first frame shows 1.
	text, done := counter.Step()
	assert.False(t, done)
	assert.Equal(t, "1", text)
}

func TestCounterShortDurationSingleStep(t *testing.T) {
	counter := NewCounter(42, 5*time.Millisecond, "")

	text, done := counter.Step()

	assert.True(t, done, "durations under one frame complete in a single step")
	assert.Equal(t, "42", text)
}

func TestCounterStableAfterCompletion(t *testing.T) {
	counter := NewCounter(3, 5*time.Millisecond, "%")

	first, _ := runCounter(t, counter, 10)
	again, done := counter.Step()

	assert.True(t, done)
	assert.Equal(t, first, again, "completed counters keep returning the final text")
}
