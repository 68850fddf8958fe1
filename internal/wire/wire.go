package wire

import (
	"net/http"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/notifier"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service, handler and routing graph.
func Wiring(repo *repository.Repository, events notifier.EventPublisher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, events, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireAvailability(r, handler.Availability)
	wireBooking(r, handler.Booking, repo, logger)
	wireRoom(r, handler.Room, repo, logger)
	wireRoomType(r, handler.RoomType, repo, logger)
	wireRating(r, handler.Rating, repo, logger)
	wireSession(r, handler.Session, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
