package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user input to the search service and renders recipe cards, the
// recipe detail window, notifications, and settings. All UI strings are
// localized via Localization.
