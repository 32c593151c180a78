// Package motion implements the scroll-driven animation core: rate limiting
// for high-frequency event streams (throttle/debounce), viewport visibility
// geometry, one-shot and continuous activation of targets entering the
// viewport, and frame-based counter interpolation. It has no Fyne dependency;
// the ui package adapts scroll offsets and widget geometry into these types.
package motion
