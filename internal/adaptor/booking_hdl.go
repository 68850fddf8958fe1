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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (guest)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	principalID, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), principalID.String(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// CreateWalkIn handles POST /api/bookings/walk-in (staff)
func (h *BookingHandler) CreateWalkIn(w http.ResponseWriter, r *http.Request) {
	var req request.CreateWalkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.CreateWalkIn(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create walk-in booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (guest)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	principalID, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), principalID.String(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id} (staff)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ApproveBooking handles PUT /api/admin/bookings/{id}/approve (admin)
func (h *BookingHandler) ApproveBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.ApproveBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ApproveBooking(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "approve booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// RejectBooking handles PUT /api/admin/bookings/{id}/reject (admin)
func (h *BookingHandler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.RejectBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.RejectBooking(r.Context(), bookingID, &req); err != nil {
		handleServiceError(w, h.log, err, "reject booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CancelBooking handles PUT /api/bookings/{id}/cancel (guest)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	principalID, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.CancelBooking(r.Context(), principalID.String(), bookingID); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// RecordPayment handles POST /api/bookings/{id}/payments (staff)
func (h *BookingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.RecordPayment(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CheckIn handles PUT /api/bookings/{id}/check-in (staff)
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CheckIn(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "check in")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ExtendStay handles PUT /api/bookings/{id}/extend (staff)
func (h *BookingHandler) ExtendStay(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.ExtendStayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.ExtendStay(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "extend stay")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CheckOut handles PUT /api/bookings/{id}/check-out (staff)
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	booking, err := h.service.CheckOut(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "check out")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
