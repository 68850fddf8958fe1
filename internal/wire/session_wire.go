package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSession(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== AUTHENTICATED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/session/logout - Revoke the presented token
		r.Post("/api/session/logout", sessionHandler.Logout)

		// POST /api/session/logout-all - Revoke every session of the caller
		r.Post("/api/session/logout-all", sessionHandler.LogoutEverywhere)
	})
}
