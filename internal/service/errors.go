package service

import "errors"

var (
	ErrBookingClosed   = errors.New("booking is closed")
	ErrNotBookingOwner = errors.New("booking belongs to another user")

	ErrEventNotCompleted = errors.New("only completed events can be rated")
	ErrNotAttended       = errors.New("only attended events can be rated")
	ErrInvalidScore      = errors.New("score must be between 1 and 5")

	ErrNotOrganizer          = errors.New("available to the organizer only")
	ErrDeletionWindowExpired = errors.New("deletion is available within 1 hour after creation")
	ErrInvalidStatus         = errors.New("invalid event status")
)
