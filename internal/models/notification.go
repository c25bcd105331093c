package models

import "time"

// Notification is an append-only message delivered to a user by the
// background queue worker. EventID is nil for messages not tied to an event.
type Notification struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	EventID   *int      `json:"event_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
