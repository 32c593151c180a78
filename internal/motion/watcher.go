package motion

// watchEntry tracks one watched element and its last known visibility
type watchEntry struct {
	span       SpanFunc
	onEnter    func()
	onLeave    func()
	continuous bool
	inside     bool
}

// Watcher reports visibility transitions for registered elements (observer
// mode). One-shot entries fire onEnter once and are unregistered; continuous
// entries fire onEnter on every entry and onLeave on every exit, which the
// navigation highlight uses to keep the active section in sync.
type Watcher struct {
	margin  float32
	entries []*watchEntry
}

// NewWatcher creates a watcher with the given trigger margin in content units
func NewWatcher(margin float32) *Watcher {
	return &Watcher{margin: margin}
}

// Watch registers a one-shot element: onEnter fires on the first entry and
// the element is unregistered from future notifications.
func (w *Watcher) Watch(span SpanFunc, onEnter func()) {
	w.entries = append(w.entries, &watchEntry{span: span, onEnter: onEnter})
}

// WatchContinuous registers an element whose enter and leave transitions are
// reported for the lifetime of the watcher. onLeave may be nil.
func (w *Watcher) WatchContinuous(span SpanFunc, onEnter, onLeave func()) {
	w.entries = append(w.entries, &watchEntry{
		span:       span,
		onEnter:    onEnter,
		onLeave:    onLeave,
		continuous: true,
	})
}

// Notify re-evaluates every entry against the viewport and fires transition
// callbacks. One-shot entries are removed after firing.
func (w *Watcher) Notify(v Viewport) {
	kept := w.entries[:0]
	for _, entry := range w.entries {
		in := InView(entry.span(), v, w.margin)

		switch {
		case in && !entry.inside:
			entry.inside = true
			if entry.onEnter != nil {
				entry.onEnter()
			}
			if !entry.continuous {
				continue // unregister on fire
			}
		case !in && entry.inside:
			entry.inside = false
			if entry.continuous && entry.onLeave != nil {
				entry.onLeave()
			}
		}

		kept = append(kept, entry)
	}
	w.entries = kept
}

// Watching returns the number of currently registered entries
func (w *Watcher) Watching() int {
	return len(w.entries)
}
