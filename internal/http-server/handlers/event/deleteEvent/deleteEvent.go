package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/service"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(userID string, eventID int) error
}

func New(log *slog.Logger, eventDeleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		if eventIdStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		log = log.With(slog.Int("event_id", eventID), slog.String("user_id", userID))

		err = eventDeleter.DeleteEvent(userID, eventID)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, service.ErrNotOrganizer):
				log.Warn("delete denied, not the organizer")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("available to the organizer only"))
			case errors.Is(err, service.ErrDeletionWindowExpired):
				log.Info("deletion window expired")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("deletion is available within 1 hour after creation"))
			default:
				log.Error("failed to delete event", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete event"))
			}
			return
		}

		log.Info("event deleted successfully")

		render.JSON(w, r, response.OK())
	}
}
