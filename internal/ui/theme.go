package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/countdown-tracker/internal/config"
)

// CountdownTheme is a compact theme with an optional forced light or dark
// variant
type CountdownTheme struct {
	variant config.ThemeVariant
}

// NewCountdownTheme creates a theme for the configured variant
func NewCountdownTheme(variant config.ThemeVariant) fyne.Theme {
	return &CountdownTheme{variant: variant}
}

// resolve applies the forced variant, if any, over the one Fyne asks for
func (t *CountdownTheme) resolve(variant fyne.ThemeVariant) fyne.ThemeVariant {
	switch t.variant {
	case config.ThemeLight:
		return theme.VariantLight
	case config.ThemeDark:
		return theme.VariantDark
	default:
		return variant
	}
}

// Color returns theme colors
func (t *CountdownTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	variant = t.resolve(variant)

	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 34, G: 197, B: 94, A: 255} // Low priority, active count
	case theme.ColorNameError:
		return color.RGBA{R: 239, G: 68, B: 68, A: 255} // High priority, destructive actions
	case theme.ColorNameWarning:
		return color.RGBA{R: 234, G: 179, B: 8, A: 255} // Medium priority
	case theme.ColorNamePrimary:
		return color.RGBA{R: 59, G: 130, B: 246, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 17, G: 24, B: 39, A: 255}
		}
		return color.RGBA{R: 245, G: 247, B: 255, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 243, G: 244, B: 246, A: 255}
		}
		return color.RGBA{R: 31, G: 41, B: 55, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CountdownTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CountdownTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CountdownTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}

	return theme.DefaultTheme().Size(name)
}
