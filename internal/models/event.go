package models

import "time"

type EventStatus string

const (
	StatusPlanned   EventStatus = "planned"
	StatusCanceled  EventStatus = "canceled"
	StatusCompleted EventStatus = "completed"
)

// ValidStatus reports whether s is one of the three known event statuses.
func ValidStatus(s EventStatus) bool {
	switch s {
	case StatusPlanned, StatusCanceled, StatusCompleted:
		return true
	}
	return false
}

// BookingCutoff is how close to start_time booking stays open.
const BookingCutoff = 30 * time.Minute

// SweepThreshold is how long after start_time a planned event becomes overdue.
const SweepThreshold = 2 * time.Hour

// DeletionWindow is how long after creation the organizer may delete an event.
const DeletionWindow = 1 * time.Hour

type Event struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Location    string      `json:"location"`
	StartTime   time.Time   `json:"start_time"`
	Seats       int         `json:"seats"`
	Status      EventStatus `json:"status"`
	OrganizerID string      `json:"organizer_id"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CanBook reports whether the event still accepts bookings: it must be
// planned and more than BookingCutoff away from starting.
func (e *Event) CanBook(now time.Time) bool {
	return e.Status == StatusPlanned && e.StartTime.Sub(now) > BookingCutoff
}

// SortRank orders events for listing: upcoming planned events first, then
// everything no longer planned, then planned events whose start time has
// already passed but which have not been swept yet.
func (e *Event) SortRank(now time.Time) int {
	switch {
	case e.Status == StatusPlanned && !e.StartTime.Before(now):
		return 1
	case e.Status != StatusPlanned:
		return 2
	default:
		return 3
	}
}

// AnnotatedEvent is an event enriched with the per-query aggregates the
// listing endpoint exposes. AvgRating is nil when the event has no ratings;
// it is never coerced to zero.
type AnnotatedEvent struct {
	Event
	BookedCount int      `json:"booked_count"`
	AvgRating   *float64 `json:"avg_rating"`
	TagIDs      []int    `json:"tag_ids,omitempty"`
}
