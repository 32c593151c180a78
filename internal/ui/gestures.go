package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// SwipeDirection represents a detected swipe gesture direction
type SwipeDirection int

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

// Gesture thresholds
const (
	SwipeThreshold   float32 = 50.0
	SwipeMaxDuration         = 500 * time.Millisecond
)

// swipeDetector turns raw touch down/up positions into swipe directions
type swipeDetector struct {
	startTime time.Time
	startPos  fyne.Position
}

func (sd *swipeDetector) down(pos fyne.Position) {
	sd.startTime = time.Now()
	sd.startPos = pos
}

// up classifies the gesture ending at pos. Slow or short movements are not
// swipes.
func (sd *swipeDetector) up(pos fyne.Position) SwipeDirection {
	if sd.startTime.IsZero() || time.Since(sd.startTime) > SwipeMaxDuration {
		return SwipeNone
	}

	dx := pos.X - sd.startPos.X
	dy := pos.Y - sd.startPos.Y
	absDx, absDy := abs32(dx), abs32(dy)

	if absDx < SwipeThreshold && absDy < SwipeThreshold {
		return SwipeNone
	}

	if absDx > absDy {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// SwipeArea wraps content and reports swipe gestures on it. The navigation
// drawer uses it to close on a leftward swipe.
type SwipeArea struct {
	widget.BaseWidget

	content     fyne.CanvasObject
	detector    swipeDetector
	lastDragPos fyne.Position
	onSwipe     func(SwipeDirection)
}

// NewSwipeArea creates a swipe-aware wrapper around content
func NewSwipeArea(content fyne.CanvasObject, onSwipe func(SwipeDirection)) *SwipeArea {
	sa := &SwipeArea{content: content, onSwipe: onSwipe}
	sa.ExtendBaseWidget(sa)
	return sa
}

// CreateRenderer renders the wrapped content
func (sa *SwipeArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sa.content)
}

// TouchDown handles touch down events
func (sa *SwipeArea) TouchDown(event *mobile.TouchEvent) {
	sa.detector.down(event.Position)
}

// TouchUp handles touch up events
func (sa *SwipeArea) TouchUp(event *mobile.TouchEvent) {
	if direction := sa.detector.up(event.Position); direction != SwipeNone && sa.onSwipe != nil {
		sa.onSwipe(direction)
	}
}

// TouchCancel handles touch cancel events
func (sa *SwipeArea) TouchCancel(*mobile.TouchEvent) {
	sa.detector.startTime = time.Time{}
}

// Dragged lets mouse drags count as swipes on desktop
func (sa *SwipeArea) Dragged(event *fyne.DragEvent) {
	if sa.detector.startTime.IsZero() {
		sa.detector.down(event.Position)
	}
	sa.lastDragPos = event.Position
}

// DragEnd finishes a mouse drag gesture
func (sa *SwipeArea) DragEnd() {
	if direction := sa.detector.up(sa.lastDragPos); direction != SwipeNone && sa.onSwipe != nil {
		sa.onSwipe(direction)
	}
	sa.detector.startTime = time.Time{}
}
