package postgres

import (
	"database/sql"
	"fmt"

	"eventhub/internal/models"
	"eventhub/internal/storage"
)

// CreateBooking performs seat admission in a single transaction: the event
// row is locked with SELECT ... FOR UPDATE, then the live booking count is
// compared against capacity, then the row is inserted. The lock serializes
// concurrent admissions per event so the booked count can never exceed
// seats. The unique (user_id, event_id) index independently rejects a
// double booking by the same user.
func (s *Storage) CreateBooking(eventID int, userID string) (*models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seats int
	err = tx.QueryRow(`SELECT seats FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&seats)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}

	var booked int
	err = tx.QueryRow(`SELECT COUNT(*) FROM bookings WHERE event_id = $1`, eventID).Scan(&booked)
	if err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	if booked >= seats {
		return nil, storage.ErrNoSeatsAvailable
	}

	booking := &models.Booking{
		EventID: eventID,
		UserID:  userID,
	}

	insertQuery := `
		INSERT INTO bookings (event_id, user_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err = tx.QueryRow(insertQuery, eventID, userID).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if isPqError(err, uniqueViolation) {
			return nil, storage.ErrAlreadyBooked
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

func (s *Storage) GetBooking(id int) (*models.Booking, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM bookings
		WHERE id = $1`

	var booking models.Booking
	err := s.DB.QueryRow(query, id).Scan(
		&booking.ID,
		&booking.EventID,
		&booking.UserID,
		&booking.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

// DeleteBooking removes the booking row. A cancel that races another cancel
// of the same booking sees zero affected rows and reports not found.
func (s *Storage) DeleteBooking(id int) error {
	result, err := s.DB.Exec(`DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}

	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

func (s *Storage) HasBooking(eventID int, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE event_id = $1 AND user_id = $2)`

	var exists bool
	if err := s.DB.QueryRow(query, eventID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check booking: %w", err)
	}

	return exists, nil
}

func (s *Storage) ListUserBookings(userID string) ([]models.Booking, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.UserID,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
