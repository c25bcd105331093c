package postgres

import (
	"fmt"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

func (s *Storage) CreateRating(eventID int, userID string, score int) (*models.Rating, error) {
	rating := &models.Rating{
		EventID: eventID,
		UserID:  userID,
		Score:   score,
	}

	query := `
		INSERT INTO ratings (event_id, user_id, score)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := s.DB.QueryRow(query, eventID, userID, score).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		if isPqError(err, uniqueViolation) {
			return nil, storage.ErrDuplicateRating
		}
		if isPqError(err, foreignKeyViolation) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	return rating, nil
}

func (s *Storage) ListUserRatings(userID string) ([]models.Rating, error) {
	query := `
		SELECT id, event_id, user_id, score, created_at
		FROM ratings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	var ratings []models.Rating
	for rows.Next() {
		var rating models.Rating
		err = rows.Scan(
			&rating.ID,
			&rating.EventID,
			&rating.UserID,
			&rating.Score,
			&rating.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}

	return ratings, nil
}
