package updateStatus

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/service"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type StatusRequest struct {
	UserId string `json:"user_id" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type StatusResponse struct {
	response.Response
	Status string `json:"event_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateStatus(userID string, eventID int, status models.EventStatus) error
}

func New(log *slog.Logger, statusUpdater StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateStatus.New"

		log = log.With(slog.String("op", op))

		eventIdStr := chi.URLParam(r, "id")
		eventID, err := strconv.Atoi(eventIdStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		var req StatusRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err = statusUpdater.UpdateStatus(req.UserId, eventID, models.EventStatus(req.Status))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found", slog.Int("event_id", eventID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, service.ErrNotOrganizer):
				log.Warn("status update denied, not the organizer")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("available to the organizer only"))
			case errors.Is(err, service.ErrInvalidStatus):
				log.Info("invalid status value", slog.String("status", req.Status))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid event status"))
			default:
				log.Error("failed to update event status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update event status"))
			}
			return
		}

		log.Info("event status updated", slog.Int("event_id", eventID), slog.String("status", req.Status))

		render.JSON(w, r, StatusResponse{
			Response: response.OK(),
			Status:   req.Status,
		})
	}
}
