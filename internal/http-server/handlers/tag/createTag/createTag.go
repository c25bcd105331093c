package createTag

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type TagRequest struct {
	Name string `json:"name" validate:"required"`
}

type TagResponse struct {
	response.Response
	Tag *models.Tag `json:"tag"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TagCreator
type TagCreator interface {
	CreateTag(name string) (*models.Tag, error)
}

func New(log *slog.Logger, tagCreator TagCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.tag.createTag.New"

		log = log.With(slog.String("op", op))

		var req TagRequest

		err := render.DecodeJSON(r.Body, &req)
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

		tag, err := tagCreator.CreateTag(req.Name)
		if err != nil {
			if errors.Is(err, storage.ErrTagExists) {
				log.Info("tag already exists", slog.String("name", req.Name))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("tag already exists"))
				return
			}

			log.Error("failed to create tag", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create tag"))
			return
		}

		log.Info("tag created successfully", slog.Int("tag_id", tag.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, TagResponse{
			Response: response.OK(),
			Tag:      tag,
		})
	}
}
