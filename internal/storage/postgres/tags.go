package postgres

import (
	"fmt"

	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/lib/pq"
)

func (s *Storage) CreateTag(name string) (*models.Tag, error) {
	tag := &models.Tag{Name: name}

	err := s.DB.QueryRow(`INSERT INTO tags (name) VALUES ($1) RETURNING id`, name).Scan(&tag.ID)
	if err != nil {
		if isPqError(err, uniqueViolation) {
			return nil, storage.ErrTagExists
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tag, nil
}

func (s *Storage) ListTags() ([]models.Tag, error) {
	rows, err := s.DB.Query(`SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err = rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tags: %w", err)
	}

	return tags, nil
}

// SetEventTags replaces the tag set of an event. Every listed tag must
// exist, otherwise the whole replacement is rolled back.
func (s *Storage) SetEventTags(eventID int, tagIDs []int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return storage.ErrEventNotFound
	}

	if _, err = tx.Exec(`DELETE FROM event_tags WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("failed to clear event tags: %w", err)
	}

	if len(tagIDs) > 0 {
		insertQuery := `
			INSERT INTO event_tags (event_id, tag_id)
			SELECT $1, id FROM tags WHERE id = ANY($2)`

		result, err := tx.Exec(insertQuery, eventID, pq.Array(tagIDs))
		if err != nil {
			return fmt.Errorf("failed to set event tags: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}

		if affected != int64(len(tagIDs)) {
			return storage.ErrTagNotFound
		}
	}

	return tx.Commit()
}
