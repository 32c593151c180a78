package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/model"
)

// Hero is the landing section: name, role, tagline, social links and a
// call-to-action that smooth-scrolls down to the contact form
type Hero struct {
	widget.BaseWidget

	profile   *model.Profile
	loc       *Localization
	openLink  func(url string)
	onContact func()
}

// NewHero creates the hero section
func NewHero(profile *model.Profile, loc *Localization, openLink func(url string), onContact func()) *Hero {
	h := &Hero{profile: profile, loc: loc, openLink: openLink, onContact: onContact}
	h.ExtendBaseWidget(h)
	return h
}

// CreateRenderer builds the hero layout
func (h *Hero) CreateRenderer() fyne.WidgetRenderer {
	name := widget.NewRichText(&widget.TextSegment{
		Text:  h.profile.Name,
		Style: widget.RichTextStyleHeading,
	})

	role := widget.NewLabel(h.profile.Role)
	role.Alignment = fyne.TextAlignCenter

	tagline := widget.NewLabel(h.profile.Tagline)
	tagline.Alignment = fyne.TextAlignCenter
	tagline.Wrapping = fyne.TextWrapWord
	tagline.TextStyle = fyne.TextStyle{Italic: true}

	location := widget.NewLabel(h.profile.Location)
	location.Alignment = fyne.TextAlignCenter

	socials := container.NewHBox()
	for _, link := range h.profile.Socials {
		url := link.URL
		btn := widget.NewButton(link.Label, func() {
			h.openLink(url)
		})
		btn.Importance = widget.LowImportance
		socials.Add(btn)
	}

	contactBtn := widget.NewButton(IconMail+" "+h.loc.GetText(KeyNavContact), func() {
		h.onContact()
	})
	contactBtn.Importance = widget.HighImportance

	body := container.NewVBox(
		container.NewCenter(name), role, tagline, location,
		container.NewCenter(socials),
		container.NewCenter(contactBtn),
	)
	return widget.NewSimpleRenderer(container.NewCenter(body))
}

// MinSize keeps the hero tall enough to read as a landing section
func (h *Hero) MinSize() fyne.Size {
	min := h.BaseWidget.MinSize()
	if min.Height < HeroMinHeight {
		min.Height = HeroMinHeight
	}
	return min
}
