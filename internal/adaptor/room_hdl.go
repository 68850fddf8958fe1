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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/room-types/{id}/rooms (staff)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), roomTypeID)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// ListAvailableRooms handles GET /api/room-types/{id}/rooms/available?check_in&check_out (staff)
func (h *RoomHandler) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	query := r.URL.Query()
	checkIn := query.Get("check_in")
	checkOut := query.Get("check_out")
	if checkIn == "" || checkOut == "" {
		utils.ResponseBadRequest(w, "check_in and check_out query parameters are required", nil)
		return
	}

	rooms, err := h.service.ListAvailableRooms(r.Context(), roomTypeID, checkIn, checkOut)
	if err != nil {
		handleServiceError(w, h.log, err, "list available rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// CreateRoom handles POST /api/admin/rooms (admin)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SetMaintenance handles PUT /api/admin/rooms/{id}/maintenance (admin)
func (h *RoomHandler) SetMaintenance(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.SetMaintenance(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "set room maintenance")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ClearMaintenance handles DELETE /api/admin/rooms/{id}/maintenance (admin)
func (h *RoomHandler) ClearMaintenance(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.ClearMaintenance(r.Context(), roomID); err != nil {
		handleServiceError(w, h.log, err, "clear room maintenance")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
