package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// IsNarrow reports whether the window width calls for the collapsed (mobile)
// navigation layout
func IsNarrow(width float32) bool {
	return width < NarrowLayoutWidth
}

// ResizeObserver wraps content and reports size changes, standing in for the
// window resize events Fyne does not expose directly. The root UI debounces
// the callback before re-evaluating the layout mode.
type ResizeObserver struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	onResize func(fyne.Size)
}

// NewResizeObserver creates a resize-aware wrapper around content
func NewResizeObserver(content fyne.CanvasObject, onResize func(fyne.Size)) *ResizeObserver {
	ro := &ResizeObserver{content: content, onResize: onResize}
	ro.ExtendBaseWidget(ro)
	return ro
}

// Resize propagates the new size and fires the callback
func (ro *ResizeObserver) Resize(size fyne.Size) {
	ro.BaseWidget.Resize(size)
	if ro.onResize != nil {
		ro.onResize(size)
	}
}

// CreateRenderer renders the wrapped content
func (ro *ResizeObserver) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ro.content)
}
