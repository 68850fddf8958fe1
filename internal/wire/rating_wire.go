package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== GUEST ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings/{id}/rating - Rate a checked-out stay
		r.Post("/api/bookings/{id}/rating", ratingHandler.RateBooking)

		// PUT /api/ratings/{id} - Edit an existing rating
		r.Put("/api/ratings/{id}", ratingHandler.UpdateRating)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/room-types/{id}/ratings - Paginated testimonials
	r.Get("/api/room-types/{id}/ratings", ratingHandler.GetRoomTypeRatings)

	// GET /api/room-types/{id}/rating-stats - Average and count
	r.Get("/api/room-types/{id}/rating-stats", ratingHandler.GetRoomTypeStats)
}
