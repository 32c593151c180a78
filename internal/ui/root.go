package ui

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ricar232/Portafolio/internal/config"
	"github.com/ricar232/Portafolio/internal/contact"
	"github.com/ricar232/Portafolio/internal/model"
	"github.com/ricar232/Portafolio/internal/motion"
	"github.com/ricar232/Portafolio/internal/platform"
)

// RootUI assembles the whole page: the sticky header, the scrolling section
// stack, and the scroll-driven effects. Scroll events are throttled before
// the visibility machinery runs; window resizes are debounced before the
// layout mode is re-evaluated.
type RootUI struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
	loc      *Localization
	profile  *model.Profile
	service  contact.Submitter

	scroll   *container.Scroll
	page     *fyne.Container
	sections map[string]fyne.CanvasObject

	header  *Header
	navMenu *NavMenu

	activator *motion.Activator
	watcher   *motion.Watcher

	insideSections map[string]bool

	scrollTick  func()
	resizeCheck func()
	lastWidth   float32
	narrow      bool
	scrolling   bool
}

// NewRootUI creates the root UI controller
func NewRootUI(app fyne.App, window fyne.Window, settings *config.Settings, profile *model.Profile, service contact.Submitter) *RootUI {
	loc := NewLocalization()
	loc.SetLanguage(settings.GetLanguage())

	return &RootUI{
		app:      app,
		window:   window,
		settings: settings,
		loc:      loc,
		profile:  profile,
		service:  service,
	}
}

// BuildUI constructs the full window content. It can be called again after a
// settings change; all scroll-effect state starts over.
func (r *RootUI) BuildUI() fyne.CanvasObject {
	reduceMotion := r.settings.GetReduceMotion()

	r.sections = make(map[string]fyne.CanvasObject)
	r.insideSections = make(map[string]bool)
	r.activator = motion.NewActivator(ActivationOffset)
	r.watcher = motion.NewWatcher(RevealMargin)
	r.scrollTick = motion.Throttle(r.onScrollTick, ScrollTickInterval)
	r.resizeCheck = motion.Debounce(r.onResizeSettled, ResizeDebounce, false)

	r.header = NewHeader(r.loc, r.ScrollToSection, r.toggleMenu, r.openSettings)
	r.navMenu = NewNavMenu(r.loc, r.window.Canvas(), r.ScrollToSection)

	hero := NewHero(r.profile, r.loc, r.openLink, func() {
		r.ScrollToSection(SectionContact)
	})

	stats := NewStatsSection(r.profile.Stats, reduceMotion)
	skills := NewSkillsSection(r.profile.Skills, reduceMotion)
	projects := NewProjectsSection(r.profile.Projects, r.loc, r.openLink)
	form := NewContactForm(r.loc, r.window.Canvas(), r.service)

	r.page = container.NewVBox()
	r.addSection(SectionHome, hero, reduceMotion)
	r.addSection(SectionAbout, r.buildAbout(), reduceMotion)
	r.addSection(SectionStats, r.titledSection(KeyStatsTitle, stats), reduceMotion)
	r.addSection(SectionSkills, r.titledSection(KeySkillsTitle, skills), reduceMotion)
	r.addSection(SectionProjects, r.titledSection(KeyProjectsTitle, projects), reduceMotion)
	r.addSection(SectionContact, r.titledSection(KeyContactTitle, form), reduceMotion)

	// Counters and skill bars fire once, the first time their section shows
	r.activator.Add(r.spanOf(SectionStats), stats.Animate)
	r.activator.Add(r.spanOf(SectionSkills), skills.Animate)

	r.scroll = container.NewVScroll(container.NewPadded(r.page))
	r.scroll.OnScrolled = func(fyne.Position) {
		r.scrollTick()
	}

	root := container.NewBorder(r.header, nil, nil, nil, r.scroll)
	return NewResizeObserver(root, func(size fyne.Size) {
		r.lastWidth = size.Width
		r.resizeCheck()
	})
}

// Start runs the initial visibility pass once the window has laid out, so
// above-the-fold sections activate without any scrolling. It must be called
// from outside the UI goroutine.
func (r *RootUI) Start() {
	time.Sleep(StartupSettleDelay)
	fyne.DoAndWait(func() {
		r.onScrollTick()
		r.applyLayoutMode(IsNarrow(r.window.Canvas().Size().Width))
	})
}

// addSection wraps content as a page section: reveal-on-scroll plus the
// continuous visibility tracking behind the nav highlight
func (r *RootUI) addSection(id string, content fyne.CanvasObject, reduceMotion bool) {
	reveal := NewReveal(content)
	r.sections[id] = reveal
	r.page.Add(reveal)

	span := r.spanOf(id)

	if reduceMotion || id == SectionHome {
		reveal.Skip()
	} else {
		r.watcher.Watch(span, func() {
			reveal.Play(RevealDuration)
		})
	}

	sectionID := id
	r.watcher.WatchContinuous(span,
		func() {
			r.insideSections[sectionID] = true
			r.updateActiveSection()
		},
		func() {
			delete(r.insideSections, sectionID)
			r.updateActiveSection()
		})
}

// spanOf returns a span function for a section. The span is recomputed on
// every call because the layout moves sections as the window resizes.
func (r *RootUI) spanOf(id string) motion.SpanFunc {
	return func() motion.Span {
		obj := r.sections[id]
		top := obj.Position().Y
		return motion.Span{Top: top, Bottom: top + obj.Size().Height}
	}
}

// onScrollTick is the rate-limited scroll handler: one visibility pass over
// the one-shot activations, the watched sections, and the header
func (r *RootUI) onScrollTick() {
	if r.scroll == nil {
		return
	}

	viewport := motion.Viewport{
		Top:    r.scroll.Offset.Y,
		Height: r.scroll.Size().Height,
	}

	r.activator.Check(viewport)
	r.watcher.Notify(viewport)
	r.header.OnScroll(viewport.Top)
}

// updateActiveSection highlights the topmost section currently in view
func (r *RootUI) updateActiveSection() {
	for _, id := range SectionOrder {
		if r.insideSections[id] {
			r.header.SetActiveSection(id)
			return
		}
	}
}

// ScrollToSection smooth-scrolls the page so the section starts at the top
// of the viewport. With reduce motion enabled the jump is instant.
func (r *RootUI) ScrollToSection(id string) {
	section, exists := r.sections[id]
	if !exists {
		log.Printf("Unknown section: %s", id)
		return
	}

	target := section.Position().Y
	maxOffset := r.scroll.Content.Size().Height - r.scroll.Size().Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if target > maxOffset {
		target = maxOffset
	}

	if r.settings.GetReduceMotion() {
		r.setScrollOffset(target)
		return
	}
	if r.scrolling {
		return
	}
	r.scrolling = true

	start := r.scroll.Offset.Y
	animation := fyne.NewAnimation(SmoothScrollDuration, func(progress float32) {
		r.setScrollOffset(start + (target-start)*progress)
		if progress >= 1 {
			r.scrolling = false
		}
	})
	animation.Curve = fyne.AnimationEaseInOut
	animation.Start()
}

// setScrollOffset moves the scroll position and runs a visibility pass so
// programmatic scrolling triggers the same effects as user scrolling
func (r *RootUI) setScrollOffset(y float32) {
	r.scroll.Offset.Y = y
	r.scroll.Refresh()
	r.onScrollTick()
}

// onResizeSettled runs after a resize burst goes quiet. The debounce timer
// fires off the UI thread, so the layout switch is funneled through fyne.Do.
func (r *RootUI) onResizeSettled() {
	narrow := IsNarrow(r.lastWidth)
	fyne.Do(func() {
		r.applyLayoutMode(narrow)
	})
}

// applyLayoutMode switches between the wide and narrow navigation layouts.
// Growing back to the wide layout closes the drawer.
func (r *RootUI) applyLayoutMode(narrow bool) {
	if narrow == r.narrow {
		return
	}
	r.narrow = narrow
	r.header.SetNarrow(narrow)
	if !narrow {
		r.navMenu.Close()
	}
	log.Printf("Layout mode changed: narrow=%v", narrow)
}

// toggleMenu opens or closes the navigation drawer
func (r *RootUI) toggleMenu() {
	r.navMenu.Toggle()
}

// openSettings shows the settings dialog and rebuilds the page when saved
func (r *RootUI) openSettings() {
	ShowSettingsDialog(r.window, r.settings, r.loc, func() {
		r.loc.SetLanguage(r.settings.GetLanguage())
		r.app.Settings().SetTheme(NewPortfolioTheme(r.settings.GetTheme()))
		r.window.SetContent(r.BuildUI())
		go r.Start()
	})
}

// openLink opens an external URL in the system browser
func (r *RootUI) openLink(url string) {
	if err := platform.OpenURLInBrowser(url); err != nil {
		log.Printf("Error opening link %s: %v", url, err)
		ShowToast(r.window.Canvas(), IconError, r.loc.GetText(KeyErrorOpenLink))
	}
}

// buildAbout renders the about section paragraphs
func (r *RootUI) buildAbout() fyne.CanvasObject {
	paragraphs := make([]fyne.CanvasObject, 0, len(r.profile.About))
	for _, paragraph := range r.profile.About {
		label := widget.NewLabel(paragraph)
		label.Wrapping = fyne.TextWrapWord
		paragraphs = append(paragraphs, label)
	}
	return r.titledSection(KeyAboutTitle, container.NewVBox(paragraphs...))
}

// titledSection prefixes content with a section heading
func (r *RootUI) titledSection(titleKey string, content fyne.CanvasObject) fyne.CanvasObject {
	title := widget.NewRichText(&widget.TextSegment{
		Text:  r.loc.GetText(titleKey),
		Style: widget.RichTextStyleSubHeading,
	})
	return container.NewVBox(widget.NewSeparator(), title, content)
}
