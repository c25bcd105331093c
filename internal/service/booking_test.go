package service_test

import (
	"testing"
	"time"

	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/service"
	"eventhub/internal/service/mocks"
	"eventhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func plannedEvent(id int, startsIn time.Duration) *models.AnnotatedEvent {
	return &models.AnnotatedEvent{
		Event: models.Event{
			ID:        id,
			Title:     "Go Meetup",
			StartTime: time.Now().Add(startsIn),
			Seats:     10,
			Status:    models.StatusPlanned,
		},
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name        string
		setup       func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier)
		expectedErr error
	}{
		{
			name: "Success",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				events.On("GetEvent", 1).Return(plannedEvent(1, 2*time.Hour), nil)
				bookings.On("HasBooking", 1, "user1").Return(false, nil)
				bookings.On("CreateBooking", 1, "user1").
					Return(&models.Booking{ID: 7, EventID: 1, UserID: "user1"}, nil)
				notifier.On("Enqueue", "user1", mock.AnythingOfType("*int"),
					"You have booked the event: Go Meetup").Return()
			},
		},
		{
			name: "Event not found",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				events.On("GetEvent", 1).Return(nil, storage.ErrEventNotFound)
			},
			expectedErr: storage.ErrEventNotFound,
		},
		{
			name: "Already booked",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				events.On("GetEvent", 1).Return(plannedEvent(1, 2*time.Hour), nil)
				bookings.On("HasBooking", 1, "user1").Return(true, nil)
			},
			expectedErr: storage.ErrAlreadyBooked,
		},
		{
			name: "Booking closed, starts in 20 minutes",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				events.On("GetEvent", 1).Return(plannedEvent(1, 20*time.Minute), nil)
				bookings.On("HasBooking", 1, "user1").Return(false, nil)
			},
			expectedErr: service.ErrBookingClosed,
		},
		{
			name: "Booking closed, event canceled",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				event := plannedEvent(1, 2*time.Hour)
				event.Status = models.StatusCanceled
				events.On("GetEvent", 1).Return(event, nil)
				bookings.On("HasBooking", 1, "user1").Return(false, nil)
			},
			expectedErr: service.ErrBookingClosed,
		},
		{
			name: "No seats available",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				events.On("GetEvent", 1).Return(plannedEvent(1, 2*time.Hour), nil)
				bookings.On("HasBooking", 1, "user1").Return(false, nil)
				bookings.On("CreateBooking", 1, "user1").Return(nil, storage.ErrNoSeatsAvailable)
			},
			expectedErr: storage.ErrNoSeatsAvailable,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings := mocks.NewBookingStorage(t)
			events := mocks.NewEventProvider(t)
			notifier := mocks.NewNotifier(t)
			tc.setup(bookings, events, notifier)

			svc := service.NewBookingService(logger, bookings, events, notifier)

			booking, err := svc.CreateBooking(1, "user1")

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, booking)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, booking)
			assert.Equal(t, 7, booking.ID)
		})
	}
}

func TestBookingService_CancelBooking(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name        string
		userID      string
		setup       func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier)
		expectedErr error
	}{
		{
			name:   "Success",
			userID: "user1",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				bookings.On("GetBooking", 7).
					Return(&models.Booking{ID: 7, EventID: 1, UserID: "user1"}, nil)
				events.On("GetEvent", 1).Return(plannedEvent(1, 2*time.Hour), nil)
				bookings.On("DeleteBooking", 7).Return(nil)
				notifier.On("Enqueue", "user1", mock.AnythingOfType("*int"),
					"You have cancelled your booking for the event: Go Meetup").Return()
			},
		},
		{
			name:   "Booking not found",
			userID: "user1",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				bookings.On("GetBooking", 7).Return(nil, storage.ErrBookingNotFound)
			},
			expectedErr: storage.ErrBookingNotFound,
		},
		{
			name:   "Belongs to another user",
			userID: "user2",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				bookings.On("GetBooking", 7).
					Return(&models.Booking{ID: 7, EventID: 1, UserID: "user1"}, nil)
			},
			expectedErr: service.ErrNotBookingOwner,
		},
		{
			name:   "Already cancelled",
			userID: "user1",
			setup: func(bookings *mocks.BookingStorage, events *mocks.EventProvider, notifier *mocks.Notifier) {
				bookings.On("GetBooking", 7).
					Return(&models.Booking{ID: 7, EventID: 1, UserID: "user1"}, nil)
				events.On("GetEvent", 1).Return(plannedEvent(1, 2*time.Hour), nil)
				bookings.On("DeleteBooking", 7).Return(storage.ErrBookingNotFound)
			},
			expectedErr: storage.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings := mocks.NewBookingStorage(t)
			events := mocks.NewEventProvider(t)
			notifier := mocks.NewNotifier(t)
			tc.setup(bookings, events, notifier)

			svc := service.NewBookingService(logger, bookings, events, notifier)

			err := svc.CancelBooking(tc.userID, 7)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}
