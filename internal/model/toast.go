package model

import "time"

// ToastKind controls how a toast is styled
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Toast is a transient notification shown to the user. Toasts are never
// persisted.
type Toast struct {
	ID        string
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
}
