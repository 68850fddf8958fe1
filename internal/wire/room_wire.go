package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(entity.RoleStaff, log))

		// GET /api/room-types/{id}/rooms - All rooms with derived status
		r.Get("/api/room-types/{id}/rooms", roomHandler.ListRooms)

		// GET /api/room-types/{id}/rooms/available - Assignable rooms for a range
		r.Get("/api/room-types/{id}/rooms/available", roomHandler.ListAvailableRooms)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.RequireRole(entity.RoleAdmin, log))

		// POST /api/admin/rooms - Register a physical room
		r.Post("/", roomHandler.CreateRoom)

		// PUT /api/admin/rooms/{id} - Update room number or floor
		r.Put("/{id}", roomHandler.UpdateRoom)

		// DELETE /api/admin/rooms/{id} - Retire a room
		r.Delete("/{id}", roomHandler.DeleteRoom)

		// PUT /api/admin/rooms/{id}/maintenance - Pull room from the pool
		r.Put("/{id}/maintenance", roomHandler.SetMaintenance)

		// DELETE /api/admin/rooms/{id}/maintenance - Return room to the pool
		r.Delete("/{id}/maintenance", roomHandler.ClearMaintenance)
	})
}
