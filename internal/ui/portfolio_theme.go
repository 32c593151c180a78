package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ricar232/Portafolio/internal/config"
)

// PortfolioTheme forces the persisted theme flag (dark/light) regardless of
// the OS preference and applies the portfolio palette on top of the defaults
type PortfolioTheme struct {
	variant fyne.ThemeVariant
}

// NewPortfolioTheme creates a theme locked to the given flag
func NewPortfolioTheme(flag config.Theme) fyne.Theme {
	variant := theme.VariantDark
	if flag == config.ThemeLight {
		variant = theme.VariantLight
	}
	return &PortfolioTheme{variant: variant}
}

// Color returns theme colors, ignoring the OS-provided variant
func (t *PortfolioTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 99, G: 102, B: 241, A: 255} // Indigo accent
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for sent messages
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for failures
	case theme.ColorNameBackground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 15, G: 17, B: 26, A: 255} // Deep navy
		}
		return color.RGBA{R: 250, G: 250, B: 252, A: 255}
	case theme.ColorNameForeground:
		if t.variant == theme.VariantDark {
			return color.RGBA{R: 235, G: 238, B: 245, A: 255}
		}
		return color.RGBA{R: 28, G: 30, B: 38, A: 255}
	}

	// Use default colors for everything else, pinned to our variant
	return theme.DefaultTheme().Color(name, t.variant)
}

// Font returns theme fonts
func (t *PortfolioTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *PortfolioTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with slightly roomier section text
func (t *PortfolioTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameLineSpacing:
		return 5
	}

	return theme.DefaultTheme().Size(name)
}

// Variant returns the forced variant, used by reveal covers to match the
// background color
func (t *PortfolioTheme) Variant() fyne.ThemeVariant {
	return t.variant
}
