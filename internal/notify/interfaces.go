package notify

import (
	"time"

	"github.com/ytget/countdown-tracker/internal/model"
)

// Notifier defines the toast operations the UI depends on.
type Notifier interface {
	SetUpdateCallback(func([]model.Toast))
	SetDuration(time.Duration)
	Push(message string, kind model.ToastKind) model.Toast
	Dismiss(id string) bool
	List() []model.Toast
	Close()
}
