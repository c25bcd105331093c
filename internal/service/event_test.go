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

func organizerEvent(id int, organizerID string, createdAgo time.Duration) *models.AnnotatedEvent {
	return &models.AnnotatedEvent{
		Event: models.Event{
			ID:          id,
			Title:       "Go Meetup",
			StartTime:   time.Now().Add(24 * time.Hour),
			Seats:       10,
			Status:      models.StatusPlanned,
			OrganizerID: organizerID,
			CreatedAt:   time.Now().Add(-createdAgo),
		},
	}
}

func TestEventService_DeleteEvent(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name        string
		userID      string
		setup       func(events *mocks.EventStorage)
		expectedErr error
	}{
		{
			name:   "Success",
			userID: "org1",
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(organizerEvent(1, "org1", 10*time.Minute), nil)
				events.On("DeleteEvent", 1).Return(nil)
			},
		},
		{
			name:   "Event not found",
			userID: "org1",
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(nil, storage.ErrEventNotFound)
			},
			expectedErr: storage.ErrEventNotFound,
		},
		{
			name:   "Not the organizer",
			userID: "user2",
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(organizerEvent(1, "org1", 10*time.Minute), nil)
			},
			expectedErr: service.ErrNotOrganizer,
		},
		{
			name:   "Deletion window expired",
			userID: "org1",
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(organizerEvent(1, "org1", 2*time.Hour), nil)
			},
			expectedErr: service.ErrDeletionWindowExpired,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := mocks.NewEventStorage(t)
			tc.setup(events)

			svc := service.NewEventService(logger, events)

			err := svc.DeleteEvent(tc.userID, 1)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestEventService_UpdateStatus(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name        string
		userID      string
		status      models.EventStatus
		setup       func(events *mocks.EventStorage)
		expectedErr error
	}{
		{
			name:   "Success",
			userID: "org1",
			status: models.StatusCanceled,
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(organizerEvent(1, "org1", 10*time.Minute), nil)
				events.On("UpdateEventStatus", 1, models.StatusCanceled).Return(nil)
			},
		},
		{
			name:   "Completed back to planned is allowed",
			userID: "org1",
			status: models.StatusPlanned,
			setup: func(events *mocks.EventStorage) {
				event := organizerEvent(1, "org1", 10*time.Minute)
				event.Status = models.StatusCompleted
				events.On("GetEvent", 1).Return(event, nil)
				events.On("UpdateEventStatus", 1, models.StatusPlanned).Return(nil)
			},
		},
		{
			name:   "Not the organizer",
			userID: "user2",
			status: models.StatusCanceled,
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(organizerEvent(1, "org1", 10*time.Minute), nil)
			},
			expectedErr: service.ErrNotOrganizer,
		},
		{
			name:   "Invalid status",
			userID: "org1",
			status: models.EventStatus("postponed"),
			setup: func(events *mocks.EventStorage) {
				events.On("GetEvent", 1).Return(organizerEvent(1, "org1", 10*time.Minute), nil)
			},
			expectedErr: service.ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			events := mocks.NewEventStorage(t)
			tc.setup(events)

			svc := service.NewEventService(logger, events)

			err := svc.UpdateStatus(tc.userID, 1, tc.status)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestEventService_SweepOverdueEvents(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("passes the two hour cutoff to storage", func(t *testing.T) {
		t.Parallel()

		events := mocks.NewEventStorage(t)
		events.On("CompleteOverdueEvents", now.Add(-2*time.Hour)).Return(int64(3), nil)

		svc := service.NewEventService(logger, events)

		count, err := svc.SweepOverdueEvents(now)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("nothing to sweep is not an error", func(t *testing.T) {
		t.Parallel()

		events := mocks.NewEventStorage(t)
		events.On("CompleteOverdueEvents", mock.AnythingOfType("time.Time")).Return(int64(0), nil)

		svc := service.NewEventService(logger, events)

		count, err := svc.SweepOverdueEvents(now)

		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("repeated sweep stays a no-op", func(t *testing.T) {
		t.Parallel()

		events := mocks.NewEventStorage(t)
		events.On("CompleteOverdueEvents", now.Add(-2*time.Hour)).Return(int64(2), nil).Once()
		events.On("CompleteOverdueEvents", now.Add(-2*time.Hour)).Return(int64(0), nil)

		svc := service.NewEventService(logger, events)

		first, err := svc.SweepOverdueEvents(now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), first)

		second, err := svc.SweepOverdueEvents(now)
		require.NoError(t, err)
		assert.Zero(t, second)

		third, err := svc.SweepOverdueEvents(now)
		require.NoError(t, err)
		assert.Zero(t, third)
	})
}
