package getAllTags

import (
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type TagsResponse struct {
	response.Response
	Tags []models.Tag `json:"tags"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TagsLister
type TagsLister interface {
	ListTags() ([]models.Tag, error)
}

func New(log *slog.Logger, tagsLister TagsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tag.getAllTags.New"

		log = log.With(slog.String("op", op))

		tags, err := tagsLister.ListTags()
		if err != nil {
			log.Error("failed to get tags", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tags"))
			return
		}

		log.Info("tags retrieved successfully", slog.Int("count", len(tags)))

		render.JSON(w, r, TagsResponse{
			Response: response.OK(),
			Tags:     tags,
		})
	}
}
