package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// RecipeTheme is a dark-friendly green theme with compact padding
type RecipeTheme struct{}

// NewRecipeTheme creates a new recipe theme
func NewRecipeTheme() fyne.Theme {
	return &RecipeTheme{}
}

// Color returns theme colors
func (t *RecipeTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 47, G: 165, B: 114, A: 255} // Green for primary actions
	case theme.ColorNameHover:
		return color.RGBA{R: 33, G: 138, B: 91, A: 64}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for missing ingredients
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 26, G: 26, B: 26, A: 255}
		}
		return color.RGBA{R: 248, G: 250, B: 248, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *RecipeTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *RecipeTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *RecipeTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameScrollBar:
		return 12
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 22 // Larger than default for the app title
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameInputRadius:
		return 6
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
