package models

import "time"

const (
	MinScore = 1
	MaxScore = 5
)

type Rating struct {
	ID        int       `json:"id"`
	EventID   int       `json:"event_id"`
	UserID    string    `json:"user_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}
