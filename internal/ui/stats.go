package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/model"
	"github.com/ricar232/Portafolio/internal/motion"
)

// StatsSection shows the animated counters. The numbers stay at zero until
// Animate fires, which the root UI triggers the first time the section
// scrolls into view.
type StatsSection struct {
	widget.BaseWidget

	stats        []model.Stat
	valueLabels  []*widget.Label
	reduceMotion bool
}

// NewStatsSection creates the stats section with all counters at zero
func NewStatsSection(stats []model.Stat, reduceMotion bool) *StatsSection {
	ss := &StatsSection{stats: stats, reduceMotion: reduceMotion}
	ss.ExtendBaseWidget(ss)

	for range stats {
		value := widget.NewLabel(CounterStartText)
		value.TextStyle = fyne.TextStyle{Bold: true}
		value.Alignment = fyne.TextAlignCenter
		ss.valueLabels = append(ss.valueLabels, value)
	}
	return ss
}

// CreateRenderer builds the counter grid
func (ss *StatsSection) CreateRenderer() fyne.WidgetRenderer {
	cells := make([]fyne.CanvasObject, 0, len(ss.stats))
	for i, stat := range ss.stats {
		caption := widget.NewLabel(stat.Label)
		caption.Alignment = fyne.TextAlignCenter
		caption.Wrapping = fyne.TextWrapWord
		cells = append(cells, container.NewVBox(ss.valueLabels[i], caption))
	}
	return widget.NewSimpleRenderer(container.NewGridWithColumns(len(cells), cells...))
}

// Animate counts every stat up from zero to its target. With reduce motion
// enabled the final values are shown immediately.
func (ss *StatsSection) Animate() {
	for i, stat := range ss.stats {
		counter := motion.NewCounter(stat.Target, stat.Duration, stat.Suffix)
		label := ss.valueLabels[i]

		if ss.reduceMotion {
			text, _ := finalText(counter)
			label.SetText(text)
			continue
		}

		go runCounter(counter, label)
	}
}

// runCounter drives one counter at the frame interval until it completes
func runCounter(counter *motion.Counter, label *widget.Label) {
	ticker := time.NewTicker(motion.FrameInterval)
	defer ticker.Stop()

	for range ticker.C {
		text, done := counter.Step()
		fyne.Do(func() {
			label.SetText(text)
		})
		if done {
			return
		}
	}
}

// finalText advances a counter straight to its final frame
func finalText(counter *motion.Counter) (string, bool) {
	text, done := counter.Step()
	for !done {
		text, done = counter.Step()
	}
	return text, done
}
