package service

import (
	"fmt"
	"log/slog"

	"eventhub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RatingStorage
type RatingStorage interface {
	CreateRating(eventID int, userID string, score int) (*models.Rating, error)
	ListUserRatings(userID string) ([]models.Rating, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceChecker
type AttendanceChecker interface {
	HasBooking(eventID int, userID string) (bool, error)
}

type RatingService struct {
	log        *slog.Logger
	ratings    RatingStorage
	events     EventProvider
	attendance AttendanceChecker
}

func NewRatingService(
	log *slog.Logger,
	ratings RatingStorage,
	events EventProvider,
	attendance AttendanceChecker,
) *RatingService {
	return &RatingService{
		log:        log,
		ratings:    ratings,
		events:     events,
		attendance: attendance,
	}
}

// SubmitRating records a one-time score for an event the user attended.
// Attendance is proven by having ever booked; the booking does not need to
// survive until rating time. Ratings are immutable, there is no edit path.
func (s *RatingService) SubmitRating(eventID int, userID string, score int) (*models.Rating, error) {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.Status != models.StatusCompleted {
		return nil, ErrEventNotCompleted
	}

	attended, err := s.attendance.HasBooking(eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("check attendance: %w", err)
	}

	if !attended {
		return nil, ErrNotAttended
	}

	if score < models.MinScore || score > models.MaxScore {
		return nil, ErrInvalidScore
	}

	rating, err := s.ratings.CreateRating(eventID, userID, score)
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("rating submitted",
		slog.Int("event_id", eventID),
		slog.String("user_id", userID),
		slog.Int("score", score),
	)

	return rating, nil
}

func (s *RatingService) ListUserRatings(userID string) ([]models.Rating, error) {
	return s.ratings.ListUserRatings(userID)
}
