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

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// RateBooking handles POST /api/bookings/{id}/rating (guest)
func (h *RatingHandler) RateBooking(w http.ResponseWriter, r *http.Request) {
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

	var req request.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.RateBooking(r.Context(), principalID.String(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "rate booking")
		return
	}

	utils.ResponseCreated(w, "success", rating)
}

// UpdateRating handles PUT /api/ratings/{id} (guest)
func (h *RatingHandler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	principalID, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ratingID := chi.URLParam(r, "id")
	if ratingID == "" {
		utils.ResponseBadRequest(w, "Rating ID is required", nil)
		return
	}

	var req request.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.UpdateRating(r.Context(), principalID.String(), ratingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}

// GetRoomTypeRatings handles GET /api/room-types/{id}/ratings (public)
func (h *RatingHandler) GetRoomTypeRatings(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	ratings, err := h.service.GetRoomTypeRatings(r.Context(), roomTypeID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "get room type ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}

// GetRoomTypeStats handles GET /api/room-types/{id}/rating-stats (public)
func (h *RatingHandler) GetRoomTypeStats(w http.ResponseWriter, r *http.Request) {
	roomTypeID := chi.URLParam(r, "id")
	if roomTypeID == "" {
		utils.ResponseBadRequest(w, "Room type ID is required", nil)
		return
	}

	stats, err := h.service.GetRoomTypeStats(r.Context(), roomTypeID)
	if err != nil {
		handleServiceError(w, h.log, err, "get room type rating stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}
