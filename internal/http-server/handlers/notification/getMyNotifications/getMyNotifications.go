package getMyNotifications

import (
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type NotificationsResponse struct {
	response.Response
	Notifications []models.Notification `json:"notifications"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationsLister
type NotificationsLister interface {
	ListUserNotifications(userID string) ([]models.Notification, error)
}

func New(log *slog.Logger, notificationsLister NotificationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.notification.getMyNotifications.New"

		log = log.With(slog.String("op", op))

		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("user id is required"))
			return
		}

		notifications, err := notificationsLister.ListUserNotifications(userID)
		if err != nil {
			log.Error("failed to get notifications", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get notifications"))
			return
		}

		log.Info("notifications retrieved successfully", slog.Int("count", len(notifications)))

		render.JSON(w, r, NotificationsResponse{
			Response:      response.OK(),
			Notifications: notifications,
		})
	}
}
