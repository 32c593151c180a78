package config

import (
	"fyne.io/fyne/v2"
)

// Theme is the persisted color scheme flag
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Settings keys for Fyne preferences
const (
	KeyTheme        = "app_theme"
	KeyLanguage     = "app_language"
	KeyReduceMotion = "reduce_motion"
)

// Default values
const (
	DefaultTheme        = ThemeDark
	DefaultLanguage     = "system"
	DefaultReduceMotion = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetTheme returns the persisted theme flag, defaulting to dark when absent
func (s *Settings) GetTheme() Theme {
	value := s.app.Preferences().String(KeyTheme)
	if value == "" {
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
	if value != string(ThemeDark) && value != string(ThemeLight) {
		return DefaultTheme
	}
	return Theme(value)
}

// SetTheme persists the theme flag
func (s *Settings) SetTheme(theme Theme) {
	if theme != ThemeDark && theme != ThemeLight {
		theme = DefaultTheme
	}
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// ToggleTheme switches between dark and light and returns the new value
func (s *Settings) ToggleTheme() Theme {
	next := ThemeLight
	if s.GetTheme() == ThemeLight {
		next = ThemeDark
	}
	s.SetTheme(next)
	return next
}

// GetThemeOptions returns the available theme flags
func (s *Settings) GetThemeOptions() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"es":     "Español",
	}
}

// GetReduceMotion returns whether decorative animations are skipped
func (s *Settings) GetReduceMotion() bool {
	return s.app.Preferences().BoolWithFallback(KeyReduceMotion, DefaultReduceMotion)
}

// SetReduceMotion sets whether decorative animations are skipped
func (s *Settings) SetReduceMotion(reduce bool) {
	s.app.Preferences().SetBool(KeyReduceMotion, reduce)
}
