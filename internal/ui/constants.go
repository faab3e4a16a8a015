package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
	IconRecipe   = "🍴"
	IconUsed     = "✅"
	IconMissing  = "⚠"
	IconError    = "❌"
	IconLanguage = "🌐"
)

// Text fragments
const (
	RecipeIDFormat = "Recipe ID: %d"
)

// Layout sizing
const (
	WindowWidth  float32 = 950
	WindowHeight float32 = 700

	CardImageSize  float32 = 150
	PopupImageSize float32 = 250

	DetailWindowWidth  float32 = 700
	DetailWindowHeight float32 = 600

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 360
)

// Notification behavior
const (
	NotificationAutoHide = 4 * time.Second
)
