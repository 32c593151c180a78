package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Header is the sticky navigation bar. It hides when the page scrolls down
// past HeaderHideOffset and reappears on any upward scroll. In the narrow
// layout the per-section links collapse into a menu button.
type Header struct {
	widget.BaseWidget

	loc        *Localization
	onNavigate func(sectionID string)
	onMenu     func()
	onSettings func()

	title       *widget.Label
	navButtons  map[string]*widget.Button
	navBar      *fyne.Container
	menuButton  *widget.Button
	lastScrollY float32
	hidden      bool
	activeID    string
}

// NewHeader creates the navigation header in the wide layout
func NewHeader(loc *Localization, onNavigate func(sectionID string), onMenu, onSettings func()) *Header {
	h := &Header{
		loc:        loc,
		onNavigate: onNavigate,
		onMenu:     onMenu,
		onSettings: onSettings,
		navButtons: make(map[string]*widget.Button),
	}
	h.ExtendBaseWidget(h)

	h.title = widget.NewLabel(loc.GetText(KeyAppTitle))
	h.title.TextStyle = fyne.TextStyle{Bold: true}

	items := make([]fyne.CanvasObject, 0, len(SectionOrder))
	for _, id := range SectionOrder {
		sectionID := id
		btn := widget.NewButton(loc.GetText(navKeyFor(id)), func() {
			h.onNavigate(sectionID)
		})
		btn.Importance = widget.LowImportance
		h.navButtons[id] = btn
		items = append(items, btn)
	}
	h.navBar = container.NewHBox(items...)

	h.menuButton = widget.NewButton(IconMenu, func() {
		h.onMenu()
	})
	h.menuButton.Hide()

	return h
}

// CreateRenderer builds the header layout
func (h *Header) CreateRenderer() fyne.WidgetRenderer {
	settingsBtn := widget.NewButton(IconSettings, func() {
		h.onSettings()
	})
	settingsBtn.Importance = widget.LowImportance

	right := container.NewHBox(h.navBar, h.menuButton, settingsBtn)
	bar := container.NewBorder(nil, widget.NewSeparator(), h.title, right)
	return widget.NewSimpleRenderer(bar)
}

// OnScroll updates header visibility from the new scroll position. Scrolling
// down past the threshold hides the bar, any upward movement shows it again.
func (h *Header) OnScroll(scrollY float32) {
	defer func() { h.lastScrollY = scrollY }()

	if scrollY > h.lastScrollY && scrollY > HeaderHideOffset {
		if !h.hidden {
			h.hidden = true
			h.Hide()
		}
		return
	}
	if scrollY < h.lastScrollY && h.hidden {
		h.hidden = false
		h.Show()
	}
}

// SetNarrow switches between the inline nav links and the menu button
func (h *Header) SetNarrow(narrow bool) {
	if narrow {
		h.navBar.Hide()
		h.menuButton.Show()
	} else {
		h.navBar.Show()
		h.menuButton.Hide()
	}
	h.Refresh()
}

// SetActiveSection highlights the nav link of the section currently in view
func (h *Header) SetActiveSection(sectionID string) {
	if sectionID == h.activeID {
		return
	}
	h.activeID = sectionID

	for id, btn := range h.navButtons {
		if id == sectionID {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}

// ActiveSection returns the currently highlighted section id
func (h *Header) ActiveSection() string {
	return h.activeID
}
