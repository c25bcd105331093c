// Package storage defines the errors shared between the persistence layer
// and its consumers.
package storage

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrTagNotFound     = errors.New("tag not found")

	ErrAlreadyBooked    = errors.New("user already booked this event")
	ErrNoSeatsAvailable = errors.New("no seats available")
	ErrDuplicateRating  = errors.New("user already rated this event")
	ErrTagExists        = errors.New("tag already exists")
)
