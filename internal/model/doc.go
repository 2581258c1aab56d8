package model

// Package model defines the domain data used across the app: countdown
// records, the time-remaining breakdown, display filters and toasts. All
// computations here are pure and take the evaluation instant explicitly.
