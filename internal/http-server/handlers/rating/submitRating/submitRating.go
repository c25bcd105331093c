package submitRating

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

type RatingRequest struct {
	UserId string `json:"user_id" validate:"required"`
	Score  int    `json:"score" validate:"required"`
}

type RatingResponse struct {
	response.Response
	Rating *models.Rating `json:"rating"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RatingSubmitter
type RatingSubmitter interface {
	SubmitRating(eventID int, userID string, score int) (*models.Rating, error)
}

func New(log *slog.Logger, ratingSubmitter RatingSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rating.submitRating.New"

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

		log = log.With(slog.Int("event_id", eventID))

		var req RatingRequest

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

		rating, err := ratingSubmitter.SubmitRating(eventID, req.UserId, req.Score)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, service.ErrEventNotCompleted):
				log.Info("event is not completed")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("only completed events can be rated"))
			case errors.Is(err, service.ErrNotAttended):
				log.Info("user did not attend the event", slog.String("user_id", req.UserId))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("only attended events can be rated"))
			case errors.Is(err, service.ErrInvalidScore):
				log.Info("invalid score", slog.Int("score", req.Score))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("score must be between 1 and 5"))
			case errors.Is(err, storage.ErrDuplicateRating):
				log.Info("user already rated this event", slog.String("user_id", req.UserId))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("user already rated this event"))
			default:
				log.Error("failed to submit rating", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit rating"))
			}
			return
		}

		log.Info("rating submitted successfully", slog.String("user_id", req.UserId), slog.Int("score", req.Score))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RatingResponse{
			Response: response.OK(),
			Rating:   rating,
		})
	}
}
