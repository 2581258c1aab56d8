package store

// Package store owns the countdown collection. Every mutation rewrites the
// whole collection to the preferences backend before it becomes visible, so
// the persisted copy and the in-memory copy never diverge.
