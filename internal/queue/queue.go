// Package queue implements the in-process notification queue. Producers
// hand off jobs without blocking; a background worker writes notification
// rows. Delivery is best-effort: a job whose references vanished is logged
// and dropped, never retried.
package queue

import (
	"errors"
	"log/slog"

	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/google/uuid"
)

type Job struct {
	ID      uuid.UUID
	UserID  string
	EventID *int
	Message string
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationStore
type NotificationStore interface {
	CreateNotification(userID string, eventID *int, message string) (*models.Notification, error)
}

type Queue struct {
	log   *slog.Logger
	store NotificationStore
	jobs  chan Job
	done  chan struct{}
}

func New(log *slog.Logger, store NotificationStore, bufferSize int) *Queue {
	return &Queue{
		log:   log,
		store: store,
		jobs:  make(chan Job, bufferSize),
		done:  make(chan struct{}),
	}
}

// Enqueue submits a notification job. It never blocks the caller: when the
// buffer is full the job is dropped with an error log, and the producing
// operation still succeeds.
func (q *Queue) Enqueue(userID string, eventID *int, message string) {
	job := Job{
		ID:      uuid.New(),
		UserID:  userID,
		EventID: eventID,
		Message: message,
	}

	select {
	case q.jobs <- job:
	default:
		q.log.Error("notification queue is full, job dropped",
			slog.String("job_id", job.ID.String()),
			slog.String("user_id", userID),
		)
	}
}

// Run consumes jobs until Stop is called and the buffer drains.
func (q *Queue) Run() {
	defer close(q.done)

	for job := range q.jobs {
		q.deliver(job)
	}
}

// Stop closes the queue and waits for the worker to drain remaining jobs.
func (q *Queue) Stop() {
	close(q.jobs)
	<-q.done
}

func (q *Queue) deliver(job Job) {
	log := q.log.With(
		slog.String("job_id", job.ID.String()),
		slog.String("user_id", job.UserID),
	)

	_, err := q.store.CreateNotification(job.UserID, job.EventID, job.Message)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Warn("notification dropped, event no longer exists")
			return
		}

		log.Error("failed to deliver notification", sl.Err(err))
		return
	}

	log.Info("notification delivered", slog.String("message", job.Message))
}
