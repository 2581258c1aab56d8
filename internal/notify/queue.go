package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/ytget/countdown-tracker/internal/model"
)

// DefaultDuration is how long a toast stays visible
const DefaultDuration = 3000 * time.Millisecond

// Queue is an ordered list of live toasts
type Queue struct {
	mu       sync.Mutex
	duration time.Duration
	toasts   []model.Toast
	timers   map[string]*time.Timer
	onUpdate func([]model.Toast)
	closed   bool
}

// NewQueue creates a queue whose toasts expire after duration. A
// non-positive duration uses DefaultDuration.
func NewQueue(duration time.Duration) *Queue {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Queue{
		duration: duration,
		toasts:   make([]model.Toast, 0),
		timers:   make(map[string]*time.Timer),
	}
}

// SetUpdateCallback sets the function called with the current toasts after
// every push and removal. It may run on a timer goroutine.
func (q *Queue) SetUpdateCallback(callback func([]model.Toast)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onUpdate = callback
}

// SetDuration changes the lifetime of toasts pushed from now on
func (q *Queue) SetDuration(duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.duration = duration
}

// Duration returns the lifetime applied to new toasts
func (q *Queue) Duration() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.duration
}

// Push appends a toast and schedules its removal
func (q *Queue) Push(message string, kind model.ToastKind) model.Toast {
	toast := model.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return toast
	}
	q.toasts = append(q.toasts, toast)
	q.timers[toast.ID] = time.AfterFunc(q.duration, func() {
		q.expire(toast.ID)
	})
	callback, snapshot := q.onUpdate, q.snapshot()
	q.mu.Unlock()

	zlog.Logger.Debug().Str("kind", string(kind)).Str("message", message).Msg("toast pushed")

	if callback != nil {
		callback(snapshot)
	}
	return toast
}

// Dismiss removes a toast before it expires. It reports whether the toast
// was still present.
func (q *Queue) Dismiss(id string) bool {
	return q.remove(id, true)
}

// List returns the live toasts in insertion order
func (q *Queue) List() []model.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshot()
}

// Len returns the number of live toasts
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Close stops all pending timers and drops every toast. Pushes after Close
// are ignored.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = q.toasts[:0]
	q.closed = true
}

func (q *Queue) expire(id string) {
	q.remove(id, false)
}

func (q *Queue) remove(id string, stopTimer bool) bool {
	q.mu.Lock()
	idx := -1
	for i, t := range q.toasts {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		q.mu.Unlock()
		return false
	}

	q.toasts = append(q.toasts[:idx], q.toasts[idx+1:]...)
	if timer, ok := q.timers[id]; ok {
		if stopTimer {
			timer.Stop()
		}
		delete(q.timers, id)
	}
	callback, snapshot := q.onUpdate, q.snapshot()
	q.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return true
}

func (q *Queue) snapshot() []model.Toast {
	out := make([]model.Toast, len(q.toasts))
	copy(out, q.toasts)
	return out
}
