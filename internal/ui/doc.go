package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the countdown store and renders the form, the
// live countdown rows, the stats and filter bar, toasts and settings. All UI
// strings are localized via Localization.
