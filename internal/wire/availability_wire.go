package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAvailability(r chi.Router, availabilityHandler *adaptor.AvailabilityHandler) {
	// POST /api/availability/check - Day-granular capacity check (public)
	r.Post("/api/availability/check", availabilityHandler.CheckAvailability)
}
