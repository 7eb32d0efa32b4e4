package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindSuccess    Kind = "success"
	KindError      Kind = "error"
	KindValidation Kind = "validation"
)

// Notification is a transient operator message.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Slot holds at most one notification. Push replaces whatever is shown;
// there is no queue.
type Slot struct {
	mu      sync.Mutex
	current *Notification
	now     func() time.Time
}

func NewSlot() *Slot {
	return &Slot{now: time.Now}
}

// Push replaces the current notification and returns the new one.
func (s *Slot) Push(kind Kind, message string) Notification {
	n := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: s.now(),
	}
	s.mu.Lock()
	s.current = &n
	s.mu.Unlock()
	return n
}

// Current returns the shown notification, if any.
func (s *Slot) Current() (Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// Dismiss clears the slot. A non-nil id only dismisses that notification,
// so a stale dismiss does not clear a newer message.
func (s *Slot) Dismiss(id *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	if id != nil && s.current.ID != *id {
		return
	}
	s.current = nil
}
