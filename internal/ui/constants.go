package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconTimer    = "⏱"
	IconClose    = "×"
	IconSettings = "⚙"
)

// Text fragments
const (
	TargetTimeLayout = "2006-01-02 15:04"
)

// Layout sizing
const (
	WindowWidth        float32 = 960
	WindowHeight       float32 = 720
	SplitOffset                = 0.38
	StackedSplitOffset         = 0.45
)

// Toast notification sizing
const (
	ToastWidth   float32 = 300
	ToastHeight  float32 = 56
	ToastMargin  float32 = 20
	ToastSpacing float32 = 8
)

// Refresh cadence of a mounted countdown row
const (
	RowRefreshInterval = time.Second
)
