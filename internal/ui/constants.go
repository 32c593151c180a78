package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMenu     = "☰"
	IconClose    = "×"
	IconMoon     = "🌙"
	IconSun      = "☀"
	IconMail     = "✉"
	IconLink     = "🔗"
	IconCode     = "⌨"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	CounterStartText   = "0"
)

// Layout sizing
const (
	NarrowLayoutWidth float32 = 680
	DrawerWidth       float32 = 240
	SectionPadding    float32 = 24
	HeroMinHeight     float32 = 360
	SkillBarWidth     float32 = 320
	CardMinWidth      float32 = 300
	ProjectColumns            = 2
)

// Scroll behavior
const (
	// ScrollTickInterval throttles scroll events before visibility checks run.
	ScrollTickInterval = 100 * time.Millisecond

	// ActivationOffset is the visibility tolerance for one-shot activations,
	// in content units.
	ActivationOffset float32 = 40

	// RevealMargin is the trigger margin for scroll-reveal sections.
	RevealMargin float32 = 60

	// HeaderHideOffset is how far the page must scroll down before the
	// header hides.
	HeaderHideOffset float32 = 120

	SmoothScrollDuration = 400 * time.Millisecond

	// StartupSettleDelay gives the first layout pass time to finish before
	// the initial visibility check runs.
	StartupSettleDelay = 150 * time.Millisecond
)

// Resize handling
const (
	// ResizeDebounce collapses window resize bursts into one layout check.
	ResizeDebounce = 250 * time.Millisecond
)

// Animation behavior
const (
	RevealDuration    = 450 * time.Millisecond
	SkillFillDuration = 700 * time.Millisecond

	// SkillFillJitter staggers skill bar fills by a random delay below this.
	SkillFillJitter = 400 * time.Millisecond
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 110
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
