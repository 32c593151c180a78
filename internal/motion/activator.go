package motion

// SpanFunc returns the current vertical extent of a tracked element. It is
// re-evaluated on every check because layout can change between calls.
type SpanFunc func() Span

// Effect is the caller-supplied activation side effect. It is opaque to the
// activator: animating a counter, filling a progress bar, revealing a section.
type Effect func()

// Target tracks one element and its activation state. The activated flag
// flips false to true exactly once per page lifetime and never reverts.
type Target struct {
	span      SpanFunc
	effect    Effect
	activated bool
}

// Activated returns whether the target's effect has already fired
func (t *Target) Activated() bool {
	return t.activated
}

// Activator applies each target's effect at most once, on the first check
// that finds the target inside the viewport (polling mode). It is driven by
// rate-limited scroll ticks; already-activated targets are excluded from
// further checks.
type Activator struct {
	offset  float32
	targets []*Target
}

// NewActivator creates an activator with the given visibility offset
// tolerance in content units
func NewActivator(offset float32) *Activator {
	return &Activator{offset: offset}
}

// Add registers an element with its activation effect and returns the
// tracked target
func (a *Activator) Add(span SpanFunc, effect Effect) *Target {
	target := &Target{span: span, effect: effect}
	a.targets = append(a.targets, target)
	return target
}

// Check runs the effect of every pending target currently in view, marks it
// activated, and returns the number of targets activated by this check.
// Single-writer: callers must drive Check from one event stream.
func (a *Activator) Check(v Viewport) int {
	fired := 0
	for _, target := range a.targets {
		if target.activated {
			continue
		}
		if !InView(target.span(), v, a.offset) {
			continue
		}
		target.activated = true
		target.effect()
		fired++
	}
	return fired
}

// Pending returns how many targets have not yet activated
func (a *Activator) Pending() int {
	pending := 0
	for _, target := range a.targets {
		if !target.activated {
			pending++
		}
	}
	return pending
}
