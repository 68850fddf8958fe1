package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomTypeHandler struct {
	service usecase.RoomTypeService
	log     *zap.Logger
}

func NewRoomTypeHandler(service usecase.RoomTypeService, log *zap.Logger) *RoomTypeHandler {
	return &RoomTypeHandler{
		service: service,
		log:     log.With(zap.String("handler", "room_type")),
	}
}

// ListRoomTypes handles GET /api/room-types (public)
func (h *RoomTypeHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	// Public listings hide disabled types; ?all=true is wired behind the
	// admin router for catalog management.
	bookableOnly := r.URL.Query().Get("all") != "true"

	roomTypes, err := h.service.ListRoomTypes(r.Context(), bookableOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}

// GetRoomTypeByID handles GET /api/room-types/{id} (public)
func (h *RoomTypeHandler) GetRoomTypeByID(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	roomType, err := h.service.GetRoomTypeByID(r.Context(), roomTypeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get room type by ID")
		return
	}

	utils.ResponseSuccess(w, "success", roomType)
}

// CreateRoomType handles POST /api/admin/room-types (admin)
func (h *RoomTypeHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "success", roomType)
}

// UpdateRoomType handles PUT /api/admin/room-types/{id} (admin)
func (h *RoomTypeHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	var req request.UpdateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	roomType, err := h.service.UpdateRoomType(r.Context(), roomTypeID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room type")
		return
	}

	utils.ResponseSuccess(w, "success", roomType)
}

// DeleteRoomType handles DELETE /api/admin/room-types/{id} (admin)
func (h *RoomTypeHandler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	if err := h.service.DeleteRoomType(r.Context(), roomTypeID); err != nil {
		handleServiceError(w, h.log, err, "delete room type")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
