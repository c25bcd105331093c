package service

import (
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingStorage
type BookingStorage interface {
	CreateBooking(eventID int, userID string) (*models.Booking, error)
	GetBooking(id int) (*models.Booking, error)
	DeleteBooking(id int) error
	HasBooking(eventID int, userID string) (bool, error)
	ListUserBookings(userID string) ([]models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventProvider
type EventProvider interface {
	GetEvent(id int) (*models.AnnotatedEvent, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Notifier
type Notifier interface {
	Enqueue(userID string, eventID *int, message string)
}

type BookingService struct {
	log      *slog.Logger
	bookings BookingStorage
	events   EventProvider
	notifier Notifier
}

func NewBookingService(
	log *slog.Logger,
	bookings BookingStorage,
	events EventProvider,
	notifier Notifier,
) *BookingService {
	return &BookingService{
		log:      log,
		bookings: bookings,
		events:   events,
		notifier: notifier,
	}
}

// CreateBooking admits a user to an event. Eligibility is checked here; the
// capacity decision itself happens inside the storage transaction, which
// holds the event row lock while counting and inserting, so concurrent
// requests for the last seat cannot both pass.
func (s *BookingService) CreateBooking(eventID int, userID string) (*models.Booking, error) {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	booked, err := s.bookings.HasBooking(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("check existing booking: %w", err)
	}

	if booked {
		return nil, storage.ErrAlreadyBooked
	}

	if !event.CanBook(time.Now()) {
		return nil, ErrBookingClosed
	}

	booking, err := s.bookings.CreateBooking(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking created",
		slog.Int("booking_id", booking.ID),
		slog.Int("event_id", eventID),
		slog.String("user_id", userID),
	)

	s.notifier.Enqueue(userID, &event.ID,
		fmt.Sprintf("You have booked the event: %s", event.Title))

	return booking, nil
}

// CancelBooking hard-deletes the booking. A second cancel of the same
// booking reports not found rather than succeeding silently.
func (s *BookingService) CancelBooking(userID string, bookingID int) error {
	booking, err := s.bookings.GetBooking(bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if booking.UserID != userID {
		return ErrNotBookingOwner
	}

	event, err := s.events.GetEvent(booking.EventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if err = s.bookings.DeleteBooking(bookingID); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.log.Info("booking cancelled",
		slog.Int("booking_id", bookingID),
		slog.Int("event_id", booking.EventID),
		slog.String("user_id", userID),
	)

	s.notifier.Enqueue(userID, &event.ID,
		fmt.Sprintf("You have cancelled your booking for the event: %s", event.Title))

	return nil
}

func (s *BookingService) ListUserBookings(userID string) ([]models.Booking, error) {
	return s.bookings.ListUserBookings(userID)
}
