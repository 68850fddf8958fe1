package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoomType(
	r chi.Router,
	roomTypeHandler *adaptor.RoomTypeHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/room-types - Browse the bookable catalog
	r.Get("/api/room-types", roomTypeHandler.ListRoomTypes)

	// GET /api/room-types/{id} - Room type detail with rating stats
	r.Get("/api/room-types/{id}", roomTypeHandler.GetRoomTypeByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/room-types", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(entity.RoleAdmin, log))

		// POST /api/admin/room-types - Add a catalog entry
		r.Post("/", roomTypeHandler.CreateRoomType)

		// PUT /api/admin/room-types/{id} - Update rate, capacity or amenities
		r.Put("/{id}", roomTypeHandler.UpdateRoomType)

		// DELETE /api/admin/room-types/{id} - Soft delete a catalog entry
		r.Delete("/{id}", roomTypeHandler.DeleteRoomType)
	})
}
