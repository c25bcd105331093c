package postgres

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/lib/pq"
)

func (s *Storage) CreateEvent(event *models.Event) (*models.Event, error) {
	query := `
		INSERT INTO events (title, description, location, start_time, seats, status, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	err := s.DB.QueryRow(query,
		event.Title,
		event.Description,
		event.Location,
		event.StartTime,
		event.Seats,
		event.Status,
		event.OrganizerID,
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetEvent(id int) (*models.AnnotatedEvent, error) {
	query := `
		SELECT e.id, e.title, e.description, e.location, e.start_time, e.seats,
		       e.status, e.organizer_id, e.created_at,
		       (SELECT COUNT(*) FROM bookings b WHERE b.event_id = e.id),
		       (SELECT AVG(r.score)::float8 FROM ratings r WHERE r.event_id = e.id)
		FROM events e
		WHERE e.id = $1`

	var event models.AnnotatedEvent
	var avgRating sql.NullFloat64

	err := s.DB.QueryRow(query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.StartTime,
		&event.Seats,
		&event.Status,
		&event.OrganizerID,
		&event.CreatedAt,
		&event.BookedCount,
		&avgRating,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if avgRating.Valid {
		event.AvgRating = &avgRating.Float64
	}

	tagQuery := `SELECT tag_id FROM event_tags WHERE event_id = $1 ORDER BY tag_id`

	rows, err := s.DB.Query(tagQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tagID int
		if err = rows.Scan(&tagID); err != nil {
			return nil, fmt.Errorf("failed to scan tag id: %w", err)
		}
		event.TagIDs = append(event.TagIDs, tagID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event tags: %w", err)
	}

	return &event, nil
}

func (s *Storage) DeleteEvent(id int) error {
	result, err := s.DB.Exec(`DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) UpdateEventStatus(id int, status models.EventStatus) error {
	result, err := s.DB.Exec(`UPDATE events SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// CompleteOverdueEvents transitions every planned event whose start time is
// before the cutoff to completed and returns how many rows changed. Running
// it again with the same cutoff is a no-op: completed events no longer match.
func (s *Storage) CompleteOverdueEvents(cutoff time.Time) (int64, error) {
	query := `
		UPDATE events
		SET status = 'completed'
		WHERE status = 'planned' AND start_time < $1`

	result, err := s.DB.Exec(query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to complete overdue events: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected, nil
}

// ListEvents returns events annotated with booked seat count and average
// rating, ordered by display rank and start time. The rank and both
// aggregates are computed inside the query so the whole listing comes from
// one snapshot.
func (s *Storage) ListEvents(filter models.EventFilter, now time.Time) ([]models.AnnotatedEvent, error) {
	query, args := buildListQuery(filter, now)

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []models.AnnotatedEvent
	for rows.Next() {
		var event models.AnnotatedEvent
		var avgRating sql.NullFloat64
		var sortRank int

		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.StartTime,
			&event.Seats,
			&event.Status,
			&event.OrganizerID,
			&event.CreatedAt,
			&event.BookedCount,
			&avgRating,
			&sortRank,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		if avgRating.Valid {
			event.AvgRating = &avgRating.Float64
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// buildListQuery assembles the annotated listing query. Aggregates are
// computed in a derived table so filter predicates can reference them.
func buildListQuery(filter models.EventFilter, now time.Time) (string, []any) {
	var sb strings.Builder

	sb.WriteString(`
		SELECT id, title, description, location, start_time, seats, status,
		       organizer_id, created_at, booked_count, avg_rating, sort_rank
		FROM (
			SELECT e.id, e.title, e.description, e.location, e.start_time, e.seats,
			       e.status, e.organizer_id, e.created_at,
			       (SELECT COUNT(*) FROM bookings b WHERE b.event_id = e.id) AS booked_count,
			       (SELECT AVG(r.score)::float8 FROM ratings r WHERE r.event_id = e.id) AS avg_rating,
			       CASE
			           WHEN e.status = 'planned' AND e.start_time >= $1 THEN 1
			           WHEN e.status <> 'planned' THEN 2
			           ELSE 3
			       END AS sort_rank
			FROM events e
		) ev`)

	args := []any{now}
	var conds []string

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Location != nil {
		conds = append(conds, "location = "+arg(*filter.Location))
	}
	if filter.Status != nil {
		conds = append(conds, "status = "+arg(*filter.Status))
	}
	if filter.StartTimeGte != nil {
		conds = append(conds, "start_time >= "+arg(*filter.StartTimeGte))
	}
	if filter.StartTimeLte != nil {
		conds = append(conds, "start_time <= "+arg(*filter.StartTimeLte))
	}
	if filter.Seats != nil {
		conds = append(conds, "seats = "+arg(*filter.Seats))
	}
	if filter.SeatsGte != nil {
		conds = append(conds, "seats >= "+arg(*filter.SeatsGte))
	}
	if filter.SeatsLte != nil {
		conds = append(conds, "seats <= "+arg(*filter.SeatsLte))
	}
	if filter.Available != nil {
		if *filter.Available {
			conds = append(conds, "booked_count < seats")
		} else {
			conds = append(conds, "booked_count >= seats")
		}
	}
	if filter.AvgRatingGte != nil {
		// NULL averages never satisfy the comparison, so unrated events
		// are excluded rather than treated as zero-rated.
		conds = append(conds, "avg_rating >= "+arg(*filter.AvgRatingGte))
	}
	if len(filter.Tags) > 0 {
		// Conjoined tag filter: the event must carry every listed tag.
		conds = append(conds, fmt.Sprintf(`id IN (
			SELECT event_id FROM event_tags
			WHERE tag_id = ANY(%s)
			GROUP BY event_id
			HAVING COUNT(DISTINCT tag_id) = %s
		)`, arg(pq.Array(filter.Tags)), arg(len(filter.Tags))))
	}

	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	sb.WriteString("\n\t\tORDER BY sort_rank, start_time")

	return sb.String(), args
}
