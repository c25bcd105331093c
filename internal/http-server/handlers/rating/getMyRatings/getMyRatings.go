package getMyRatings

import (
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type RatingsResponse struct {
	response.Response
	Ratings []models.Rating `json:"ratings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RatingsLister
type RatingsLister interface {
	ListUserRatings(userID string) ([]models.Rating, error)
}

func New(log *slog.Logger, ratingsLister RatingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rating.getMyRatings.New"

		log = log.With(slog.String("op", op))

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		ratings, err := ratingsLister.ListUserRatings(userID)
		if err != nil {
			log.Error("failed to get ratings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ratings"))
			return
		}

		log.Info("ratings retrieved successfully", slog.Int("count", len(ratings)))

		render.JSON(w, r, RatingsResponse{
			Response: response.OK(),
			Ratings:  ratings,
		})
	}
}
