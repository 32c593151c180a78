package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func staticSpan(top, bottom float32) SpanFunc {
	return func() Span { return Span{Top: top, Bottom: bottom} }
}

func TestActivatorFiresAtMostOnce(t *testing.T) {
	activator := NewActivator(0)

	fired := 0
	activator.Add(staticSpan(100, 200), func() { fired++ })

	viewport := Viewport{Top: 0, Height: 600}
	for i := 0; i < 10; i++ {
		activator.Check(viewport)
	}

	assert.Equal(t, 1, fired, "effect must fire at most once across qualifying checks")
}

func TestActivatorSkipsOutOfView(t *testing.T) {
	activator := NewActivator(0)

	fired := 0
	target := activator.Add(staticSpan(2000, 2200), func() { fired++ })

	activated := activator.Check(Viewport{Top: 0, Height: 600})

	assert.Equal(t, 0, activated)
	assert.Equal(t, 0, fired)
	assert.False(t, target.Activated())

	// Scrolling the viewport down reaches the target.
	activated = activator.Check(Viewport{Top: 1800, Height: 600})

	assert.Equal(t, 1, activated)
	assert.Equal(t, 1, fired)
	assert.True(t, target.Activated())
}

func TestActivatorPending(t *testing.T) {
	activator := NewActivator(0)
	activator.Add(staticSpan(100, 200), func() {})
	activator.Add(staticSpan(3000, 3200), func() {})

	assert.Equal(t, 2, activator.Pending())

	activator.Check(Viewport{Top: 0, Height: 600})
	assert.Equal(t, 1, activator.Pending(), "only the visible target activates")
}

func TestActivatorReevaluatesSpans(t *testing.T) {
	activator := NewActivator(0)

	// The span moves between checks, simulating a layout change.
	top := float32(2000)
	fired := 0
	activator.Add(func() Span { return Span{Top: top, Bottom: top + 100} }, func() { fired++ })

	viewport := Viewport{Top: 0, Height: 600}
	activator.Check(viewport)
	assert.Equal(t, 0, fired)

	top = 300
	activator.Check(viewport)
	assert.Equal(t, 1, fired, "span must be recomputed on every check")
}

func TestWatcherOneShotUnregistersOnFire(t *testing.T) {
	watcher := NewWatcher(0)

	entered := 0
	watcher.Watch(staticSpan(100, 200), func() { entered++ })

	assert.Equal(t, 1, watcher.Watching())

	viewport := Viewport{Top: 0, Height: 600}
	watcher.Notify(viewport)
	watcher.Notify(viewport)

	assert.Equal(t, 1, entered)
	assert.Equal(t, 0, watcher.Watching(), "one-shot entries unregister on fire")
}

func TestWatcherContinuousReportsTransitions(t *testing.T) {
	watcher := NewWatcher(0)

	enters, leaves := 0, 0
	watcher.WatchContinuous(staticSpan(1000, 1200), func() { enters++ }, func() { leaves++ })

	inView := Viewport{Top: 900, Height: 600}
	outOfView := Viewport{Top: 0, Height: 600}

	watcher.Notify(outOfView)
	assert.Equal(t, 0, enters)

	watcher.Notify(inView)
	watcher.Notify(inView) // still inside, no new transition
	assert.Equal(t, 1, enters)
	assert.Equal(t, 0, leaves)

	watcher.Notify(outOfView)
	assert.Equal(t, 1, leaves)

	watcher.Notify(inView)
	assert.Equal(t, 2, enters, "continuous entries keep firing on re-entry")
	assert.Equal(t, 1, watcher.Watching())
}

func TestWatcherMargin(t *testing.T) {
	watcher := NewWatcher(50)

	entered := 0
	watcher.Watch(staticSpan(580, 800), func() { entered++ })

	// Visible without margin, but the margin demands deeper entry.
	watcher.Notify(Viewport{Top: 0, Height: 600})
	assert.Equal(t, 0, entered)

	watcher.Notify(Viewport{Top: 100, Height: 600})
	assert.Equal(t, 1, entered)
}
