package getAllEvents

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.AnnotatedEvent `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListEvents(filter models.EventFilter) ([]models.AnnotatedEvent, error)
}

func New(log *slog.Logger, eventsLister EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log = log.With(slog.String("op", op))

		filter, err := parseFilter(r)
		if err != nil {
			// Malformed filters degrade to an empty listing, they are
			// never surfaced as request errors.
			log.Warn("malformed filter, returning empty result", sl.Err(err))
			responseOK(w, r, []models.AnnotatedEvent{})
			return
		}

		events, err := eventsLister.ListEvents(filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(events)))

		responseOK(w, r, events)
	}
}

func parseFilter(r *http.Request) (models.EventFilter, error) {
	var filter models.EventFilter

	query := r.URL.Query()

	if v := query.Get("location"); v != "" {
		filter.Location = &v
	}

	if v := query.Get("status"); v != "" {
		status := models.EventStatus(v)
		if !models.ValidStatus(status) {
			return models.EventFilter{}, fmt.Errorf("unknown status %q", v)
		}
		filter.Status = &status
	}

	if v := query.Get("start_time_gte"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid start_time_gte: %w", err)
		}
		filter.StartTimeGte = &t
	}

	if v := query.Get("start_time_lte"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid start_time_lte: %w", err)
		}
		filter.StartTimeLte = &t
	}

	if v := query.Get("seats"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid seats: %w", err)
		}
		filter.Seats = &n
	}

	if v := query.Get("seats_gte"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid seats_gte: %w", err)
		}
		filter.SeatsGte = &n
	}

	if v := query.Get("seats_lte"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid seats_lte: %w", err)
		}
		filter.SeatsLte = &n
	}

	if v := query.Get("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid available: %w", err)
		}
		filter.Available = &b
	}

	if v := query.Get("avg_rating_gte"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid avg_rating_gte: %w", err)
		}
		filter.AvgRatingGte = &f
	}

	for _, v := range query["tags"] {
		id, err := strconv.Atoi(v)
		if err != nil {
			return models.EventFilter{}, fmt.Errorf("invalid tag id %q", v)
		}
		filter.Tags = append(filter.Tags, id)
	}

	return filter, nil
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.AnnotatedEvent) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
