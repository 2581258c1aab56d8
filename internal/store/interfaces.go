package store

import (
	"github.com/ytget/countdown-tracker/internal/model"
)

// Backend is durable key/value storage. fyne.Preferences satisfies it.
type Backend interface {
	String(key string) string
	SetString(key string, value string)
}

// Repository defines the countdown operations the UI depends on.
type Repository interface {
	SetUpdateCallback(func([]model.Countdown))
	All() []model.Countdown
	Get(id int64) (model.Countdown, bool)
	Len() int
	Create(in model.CountdownInput) (model.Countdown, error)
	Edit(id int64, in model.CountdownInput) (model.Countdown, error)
	Remove(id int64) error
	RemoveExpired() (int, error)
	Clear() error
}
