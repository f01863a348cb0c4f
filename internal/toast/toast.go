// Package toast is the ephemeral user-feedback queue: pushed notifications
// auto-expire after their duration unless dismissed earlier, and any number
// can be active at once, each on its own timer.
package toast

import (
	"sync"
	"time"

	"silent-auction/utils"
)

// Kind classifies a notification and fixes its icon.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// Icon returns the fixed glyph for a notification kind.
func (k Kind) Icon() string {
	switch k {
	case KindSuccess:
		return "✓"
	case KindError:
		return "✕"
	case KindWarning:
		return "⚠"
	case KindInfo:
		return "ℹ"
	default:
		return "★"
	}
}

// DefaultDuration is applied when Push receives a non-positive duration.
const DefaultDuration = 3 * time.Second

// Notification is one active toast.
type Notification struct {
	ID       string        `json:"id"`
	Message  string        `json:"message"`
	Kind     Kind          `json:"kind"`
	Icon     string        `json:"icon"`
	Duration time.Duration `json:"duration_ms"`
	PushedAt time.Time     `json:"pushed_at"`
}

type entry struct {
	notification Notification
	timer        *time.Timer
}

// Queue holds the active notifications. Safe for concurrent use.
type Queue struct {
	mu     sync.Mutex
	active map[string]*entry
	order  []string
}

// NewQueue creates an empty notification queue.
func NewQueue() *Queue {
	return &Queue{active: make(map[string]*entry)}
}

// Push adds a notification and arms its auto-dismiss timer. A non-positive
// duration falls back to DefaultDuration. Returns the notification id.
func (q *Queue) Push(message string, kind Kind, duration time.Duration) string {
	if duration <= 0 {
		duration = DefaultDuration
	}
	n := Notification{
		ID:       utils.GenerateID(),
		Message:  message,
		Kind:     kind,
		Icon:     kind.Icon(),
		Duration: duration,
		PushedAt: time.Now(),
	}

	q.mu.Lock()
	e := &entry{notification: n}
	e.timer = time.AfterFunc(duration, func() { q.Dismiss(n.ID) })
	q.active[n.ID] = e
	q.order = append(q.order, n.ID)
	q.mu.Unlock()

	return n.ID
}

// Dismiss removes a notification and cancels its pending timer, so an early
// manual dismissal never fires a second removal later. Dismissing an unknown
// or already-dismissed id is a no-op and returns false.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e, ok := q.active[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(q.active, id)
	return true
}

// Active returns the live notifications in push order.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, 0, len(q.active))
	kept := q.order[:0]
	for _, id := range q.order {
		if e, ok := q.active[id]; ok {
			out = append(out, e.notification)
			kept = append(kept, id)
		}
	}
	// Drop dismissed ids from the order list while we are here.
	q.order = kept
	return out
}
