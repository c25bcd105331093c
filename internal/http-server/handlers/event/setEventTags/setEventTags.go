package setEventTags

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
	"github.com/go-playground/validator/v10"
)

type TagsRequest struct {
	UserId string `json:"user_id" validate:"required"`
	TagIds []int  `json:"tag_ids"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TagSetter
type TagSetter interface {
	SetEventTags(userID string, eventID int, tagIDs []int) error
}

func New(log *slog.Logger, tagSetter TagSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.setEventTags.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		var req TagsRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = tagSetter.SetEventTags(req.UserId, eventID, req.TagIds)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found", slog.Int("event_id", eventID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, service.ErrNotOrganizer):
				log.Warn("tag update denied, not the organizer")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("available to the organizer only"))
			case errors.Is(err, storage.ErrTagNotFound):
				log.Info("unknown tag in request")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown tag"))
			default:
				log.Error("failed to set event tags", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to set event tags"))
			}
			return
		}

		log.Info("event tags updated", slog.Int("event_id", eventID), slog.Int("count", len(req.TagIds)))

		render.JSON(w, r, response.OK())
	}
}
