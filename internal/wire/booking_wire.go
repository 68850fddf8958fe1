package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== GUEST ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Create online booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - View own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// PUT /api/bookings/{id}/cancel - Withdraw own pending booking
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})

	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(entity.RoleStaff, log))

		// POST /api/bookings/walk-in - Desk booking with explicit room
		r.Post("/api/bookings/walk-in", bookingHandler.CreateWalkIn)

		// GET /api/bookings/{id} - View any booking
		r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

		// POST /api/bookings/{id}/payments - Record a payment
		r.Post("/api/bookings/{id}/payments", bookingHandler.RecordPayment)

		// PUT /api/bookings/{id}/check-in - Stamp arrival
		r.Put("/api/bookings/{id}/check-in", bookingHandler.CheckIn)

		// PUT /api/bookings/{id}/extend - Push checkout date forward
		r.Put("/api/bookings/{id}/extend", bookingHandler.ExtendStay)

		// PUT /api/bookings/{id}/check-out - Stamp departure
		r.Put("/api/bookings/{id}/check-out", bookingHandler.CheckOut)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(entity.RoleAdmin, log))

		// PUT /api/admin/bookings/{id}/approve - Bind room, pending -> approved
		r.Put("/{id}/approve", bookingHandler.ApproveBooking)

		// PUT /api/admin/bookings/{id}/reject - Decline with reason
		r.Put("/{id}/reject", bookingHandler.RejectBooking)
	})
}
