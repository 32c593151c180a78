package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Section identifiers, in page order
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionStats    = "stats"
	SectionSkills   = "skills"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// SectionOrder lists the sections as they appear on the page
var SectionOrder = []string{
	SectionHome,
	SectionAbout,
	SectionStats,
	SectionSkills,
	SectionProjects,
	SectionContact,
}

// navKeyFor maps a section id to its localization key
func navKeyFor(sectionID string) string {
	switch sectionID {
	case SectionHome:
		return KeyNavHome
	case SectionAbout:
		return KeyNavAbout
	case SectionStats:
		return KeyNavStats
	case SectionSkills:
		return KeyNavSkills
	case SectionProjects:
		return KeyNavProjects
	case SectionContact:
		return KeyNavContact
	default:
		return sectionID
	}
}

// NavMenu is the slide-in navigation drawer used in the narrow layout. It
// closes when a link is chosen, on tap outside (popup behavior), on a
// leftward swipe, or when the window grows back to the wide layout.
type NavMenu struct {
	loc        *Localization
	canvas     fyne.Canvas
	onNavigate func(sectionID string)

	popup *widget.PopUp
	open  bool
}

// NewNavMenu creates a closed navigation drawer on the given canvas
func NewNavMenu(loc *Localization, canvas fyne.Canvas, onNavigate func(sectionID string)) *NavMenu {
	return &NavMenu{loc: loc, canvas: canvas, onNavigate: onNavigate}
}

// Open shows the drawer anchored to the left edge
func (nm *NavMenu) Open() {
	if nm.open {
		return
	}

	title := widget.NewLabel(nm.loc.GetText(KeyMenu))
	title.TextStyle = fyne.TextStyle{Bold: true}

	closeBtn := widget.NewButton(IconClose, func() {
		nm.Close()
	})
	closeBtn.Importance = widget.LowImportance

	items := []fyne.CanvasObject{container.NewBorder(nil, nil, title, closeBtn), widget.NewSeparator()}
	for _, id := range SectionOrder {
		sectionID := id
		btn := widget.NewButton(nm.loc.GetText(navKeyFor(id)), func() {
			nm.Close()
			nm.onNavigate(sectionID)
		})
		btn.Alignment = widget.ButtonAlignLeading
		btn.Importance = widget.LowImportance
		items = append(items, btn)
	}

	// Swiping the drawer left closes it
	content := NewSwipeArea(container.NewVBox(items...), func(direction SwipeDirection) {
		if direction == SwipeLeft {
			nm.Close()
		}
	})

	nm.popup = widget.NewPopUp(content, nm.canvas)
	nm.popup.Resize(fyne.NewSize(DrawerWidth, nm.canvas.Size().Height))
	nm.popup.ShowAtPosition(fyne.NewPos(0, 0))
	nm.open = true
}

// Close hides the drawer
func (nm *NavMenu) Close() {
	if !nm.open {
		return
	}
	nm.open = false
	if nm.popup != nil {
		nm.popup.Hide()
		nm.popup = nil
	}
}

// Toggle opens the drawer if closed and closes it if open
func (nm *NavMenu) Toggle() {
	if nm.open {
		nm.Close()
		return
	}
	nm.Open()
}

// IsOpen reports whether the drawer is showing
func (nm *NavMenu) IsOpen() bool {
	return nm.open
}
