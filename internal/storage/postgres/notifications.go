package postgres

import (
	"fmt"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

// CreateNotification appends a notification row. If the referenced event was
// deleted between enqueue and delivery the foreign key rejects the insert
// and ErrEventNotFound is returned so the worker can drop the job.
func (s *Storage) CreateNotification(userID string, eventID *int, message string) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  userID,
		EventID: eventID,
		Message: message,
	}

	query := `
		INSERT INTO notifications (user_id, event_id, message)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := s.DB.QueryRow(query, userID, eventID, message).Scan(&notification.ID, &notification.CreatedAt)
	if err != nil {
		if isPqError(err, foreignKeyViolation) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification, nil
}

func (s *Storage) ListUserNotifications(userID string) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, event_id, message, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var notification models.Notification
		err = rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.EventID,
			&notification.Message,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, notification)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}
