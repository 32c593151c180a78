package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Reveal wraps a section and fades it in the first time it scrolls into
// view: a background-colored cover sits on top of the content and its alpha
// animates to zero. Play is the activation effect registered with the
// watcher; Skip applies the final state immediately (reduce motion).
type Reveal struct {
	widget.BaseWidget

	content fyne.CanvasObject
	cover   *canvas.Rectangle
}

// NewReveal creates a reveal wrapper around content, initially covered
func NewReveal(content fyne.CanvasObject) *Reveal {
	r := &Reveal{
		content: content,
		cover:   canvas.NewRectangle(backgroundColor()),
	}
	r.ExtendBaseWidget(r)
	return r
}

// CreateRenderer stacks the cover over the content
func (r *Reveal) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(r.content, r.cover))
}

// Play fades the cover out over the given duration
func (r *Reveal) Play(duration time.Duration) {
	base := toNRGBA(backgroundColor())

	animation := fyne.NewAnimation(duration, func(progress float32) {
		faded := base
		faded.A = uint8(float32(base.A) * (1 - progress))
		r.cover.FillColor = faded
		canvas.Refresh(r.cover)

		if progress >= 1 {
			r.cover.Hide()
		}
	})
	animation.Curve = fyne.AnimationEaseOut
	animation.Start()
}

// Skip uncovers the content without animating
func (r *Reveal) Skip() {
	r.cover.Hide()
	r.Refresh()
}

// Revealed reports whether the cover is gone
func (r *Reveal) Revealed() bool {
	return !r.cover.Visible()
}

// backgroundColor resolves the current theme background
func backgroundColor() color.Color {
	app := fyne.CurrentApp()
	return app.Settings().Theme().Color(theme.ColorNameBackground, app.Settings().ThemeVariant())
}

// toNRGBA normalizes a color for alpha manipulation
func toNRGBA(c color.Color) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(a >> 8),
	}
}
