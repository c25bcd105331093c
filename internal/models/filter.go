package models

import "time"

// EventFilter carries the optional predicates of the event listing query.
// Nil fields mean "not filtered". Tags is conjoined: an event must carry
// every listed tag to match.
type EventFilter struct {
	Location     *string
	Status       *EventStatus
	StartTimeGte *time.Time
	StartTimeLte *time.Time
	Seats        *int
	SeatsGte     *int
	SeatsLte     *int
	Available    *bool
	AvgRatingGte *float64
	Tags         []int
}
