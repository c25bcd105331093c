package postgres

import (
	"testing"
	"time"

	"eventhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery_NoFilters(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	query, args := buildListQuery(models.EventFilter{}, now)

	require.Len(t, args, 1)
	assert.Equal(t, now, args[0])

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY sort_rank, start_time")
	assert.Contains(t, query, "AS booked_count")
	assert.Contains(t, query, "AS avg_rating")
	assert.Contains(t, query, "e.start_time >= $1 THEN 1")
}

func TestBuildListQuery_ArgsStayPositional(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	location := "Berlin"
	status := models.StatusPlanned
	seatsGte := 5
	rating := 4.0

	query, args := buildListQuery(models.EventFilter{
		Location:     &location,
		Status:       &status,
		SeatsGte:     &seatsGte,
		AvgRatingGte: &rating,
	}, now)

	require.Len(t, args, 5)
	assert.Equal(t, now, args[0])
	assert.Equal(t, "Berlin", args[1])
	assert.Equal(t, models.StatusPlanned, args[2])
	assert.Equal(t, 5, args[3])
	assert.Equal(t, 4.0, args[4])

	assert.Contains(t, query, "location = $2")
	assert.Contains(t, query, "status = $3")
	assert.Contains(t, query, "seats >= $4")
	assert.Contains(t, query, "avg_rating >= $5")
}

func TestBuildListQuery_AvailableFilter(t *testing.T) {
	t.Parallel()

	now := time.Now()

	available := true
	query, args := buildListQuery(models.EventFilter{Available: &available}, now)

	require.Len(t, args, 1)
	assert.Contains(t, query, "booked_count < seats")

	available = false
	query, args = buildListQuery(models.EventFilter{Available: &available}, now)

	require.Len(t, args, 1)
	assert.Contains(t, query, "booked_count >= seats")
}

func TestBuildListQuery_ConjoinedTags(t *testing.T) {
	t.Parallel()

	now := time.Now()

	query, args := buildListQuery(models.EventFilter{Tags: []int{2, 5, 9}}, now)

	require.Len(t, args, 3)
	assert.Equal(t, 3, args[2])

	assert.Contains(t, query, "tag_id = ANY($2)")
	assert.Contains(t, query, "HAVING COUNT(DISTINCT tag_id) = $3")
}

func TestBuildListQuery_CombinedConditionsJoinWithAnd(t *testing.T) {
	t.Parallel()

	now := time.Now()

	available := true
	from := now.Add(time.Hour)
	to := now.Add(48 * time.Hour)

	query, args := buildListQuery(models.EventFilter{
		StartTimeGte: &from,
		StartTimeLte: &to,
		Available:    &available,
	}, now)

	require.Len(t, args, 3)
	assert.Contains(t, query, "start_time >= $2 AND start_time <= $3 AND booked_count < seats")
}
