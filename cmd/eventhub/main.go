package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventhub/internal/config"
	"eventhub/internal/http-server/handlers/booking/cancelBooking"
	"eventhub/internal/http-server/handlers/booking/createBooking"
	"eventhub/internal/http-server/handlers/booking/getMyBookings"
	"eventhub/internal/http-server/handlers/event/createEvent"
	"eventhub/internal/http-server/handlers/event/deleteEvent"
	"eventhub/internal/http-server/handlers/event/getAllEvents"
	"eventhub/internal/http-server/handlers/event/getEventInfo"
	"eventhub/internal/http-server/handlers/event/setEventTags"
	"eventhub/internal/http-server/handlers/event/updateStatus"
	"eventhub/internal/http-server/handlers/notification/getMyNotifications"
	"eventhub/internal/http-server/handlers/rating/getMyRatings"
	"eventhub/internal/http-server/handlers/rating/submitRating"
	"eventhub/internal/http-server/handlers/tag/createTag"
	"eventhub/internal/http-server/handlers/tag/getAllTags"
	"eventhub/internal/http-server/middleware/mwlogger"
	"eventhub/internal/lib/logger/handlers/slogpretty"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/queue"
	"eventhub/internal/scheduler"
	"eventhub/internal/service"
	"eventhub/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventhub", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	notificationQueue := queue.New(log, storage, cfg.Queue.BufferSize)
	go notificationQueue.Run()

	eventService := service.NewEventService(log, storage)
	bookingService := service.NewBookingService(log, storage, storage, notificationQueue)
	ratingService := service.NewRatingService(log, storage, storage, storage)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepScheduler := scheduler.New(log, eventService, cfg.Scheduler.SweepInterval)
	go sweepScheduler.Start(ctx)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/events", createEvent.New(log, eventService))
	router.Get("/events", getAllEvents.New(log, eventService))
	router.Get("/events/{id}", getEventInfo.New(log, eventService))
	router.Delete("/events/{id}", deleteEvent.New(log, eventService))
	router.Patch("/events/{id}/status", updateStatus.New(log, eventService))
	router.Put("/events/{id}/tags", setEventTags.New(log, eventService))

	router.Post("/events/{id}/book", createBooking.New(log, bookingService))
	router.Post("/bookings/{id}/cancel", cancelBooking.New(log, bookingService))
	router.Get("/bookings", getMyBookings.New(log, bookingService))

	router.Post("/events/{id}/ratings", submitRating.New(log, ratingService))
	router.Get("/ratings", getMyRatings.New(log, ratingService))

	router.Get("/notifications", getMyNotifications.New(log, storage))

	router.Post("/tags", createTag.New(log, storage))
	router.Get("/tags", getAllTags.New(log, storage))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	cancel()

	if err = srv.Shutdown(context.Background()); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	notificationQueue.Stop()

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
