package notify

// Package notify keeps the list of transient toasts shown by the UI. Each
// toast removes itself after the queue's duration unless dismissed first.
