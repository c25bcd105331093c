package service

import (
	"fmt"
	"log/slog"
	"time"

	"eventhub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventStorage
type EventStorage interface {
	CreateEvent(event *models.Event) (*models.Event, error)
	GetEvent(id int) (*models.AnnotatedEvent, error)
	DeleteEvent(id int) error
	UpdateEventStatus(id int, status models.EventStatus) error
	CompleteOverdueEvents(cutoff time.Time) (int64, error)
	ListEvents(filter models.EventFilter, now time.Time) ([]models.AnnotatedEvent, error)
	SetEventTags(eventID int, tagIDs []int) error
}

type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	Seats       int
	OrganizerID string
}

type EventService struct {
	log    *slog.Logger
	events EventStorage
}

func NewEventService(log *slog.Logger, events EventStorage) *EventService {
	return &EventService{
		log:    log,
		events: events,
	}
}

func (s *EventService) CreateEvent(input CreateEventInput) (*models.Event, error) {
	event := &models.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		StartTime:   input.StartTime,
		Seats:       input.Seats,
		Status:      models.StatusPlanned,
		OrganizerID: input.OrganizerID,
	}

	created, err := s.events.CreateEvent(event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("event created",
		slog.Int("event_id", created.ID),
		slog.String("organizer_id", created.OrganizerID),
	)

	return created, nil
}

func (s *EventService) GetEvent(id int) (*models.AnnotatedEvent, error) {
	return s.events.GetEvent(id)
}

func (s *EventService) ListEvents(filter models.EventFilter) ([]models.AnnotatedEvent, error) {
	return s.events.ListEvents(filter, time.Now())
}

// DeleteEvent removes the event and, by cascade, its bookings, ratings and
// notifications. Only the organizer may delete, and only within one hour of
// creation.
func (s *EventService) DeleteEvent(userID string, eventID int) error {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.OrganizerID != userID {
		return ErrNotOrganizer
	}

	if time.Since(event.CreatedAt) > models.DeletionWindow {
		return ErrDeletionWindowExpired
	}

	if err = s.events.DeleteEvent(eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.Info("event deleted",
		slog.Int("event_id", eventID),
		slog.String("organizer_id", userID),
	)

	return nil
}

// UpdateStatus overwrites the event status. Any status may move to any
// other; there is no transition graph.
func (s *EventService) UpdateStatus(userID string, eventID int, status models.EventStatus) error {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.OrganizerID != userID {
		return ErrNotOrganizer
	}

	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}

	if err = s.events.UpdateEventStatus(eventID, status); err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	s.log.Info("event status updated",
		slog.Int("event_id", eventID),
		slog.String("status", string(status)),
	)

	return nil
}

func (s *EventService) SetEventTags(userID string, eventID int, tagIDs []int) error {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.OrganizerID != userID {
		return ErrNotOrganizer
	}

	if err = s.events.SetEventTags(eventID, tagIDs); err != nil {
		return fmt.Errorf("set event tags: %w", err)
	}

	return nil
}

// SweepOverdueEvents transitions planned events that started more than two
// hours ago to completed. The predicate excludes already-completed events,
// so repeated sweeps are no-ops. Finding nothing to sweep is routine.
func (s *EventService) SweepOverdueEvents(now time.Time) (int64, error) {
	count, err := s.events.CompleteOverdueEvents(now.Add(-models.SweepThreshold))
	if err != nil {
		return 0, fmt.Errorf("complete overdue events: %w", err)
	}

	if count > 0 {
		s.log.Info("overdue events completed", slog.Int64("count", count))
	} else {
		s.log.Debug("no overdue events found")
	}

	return count, nil
}
