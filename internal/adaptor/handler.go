package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Room         *RoomHandler
	RoomType     *RoomTypeHandler
	Rating       *RatingHandler
	Session      *SessionHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Availability: NewAvailabilityHandler(service.Availability, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Room:         NewRoomHandler(service.Room, log),
		RoomType:     NewRoomTypeHandler(service.RoomType, log),
		Rating:       NewRatingHandler(service.Rating, log),
		Session:      NewSessionHandler(service.Session, log),
	}
}

// handleServiceError maps the typed service errors onto HTTP status codes.
// Anything untyped is a server fault and stays opaque to the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		validationErr *usecase.ValidationError
		availErr      *usecase.AvailabilityError
		conflictErr   *usecase.ConflictError
		stateErr      *usecase.StateTransitionError
		notFoundErr   *usecase.NotFoundError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Error(), nil)

	case errors.As(err, &availErr):
		log.Warn(operation+" has no availability", zap.Error(err))
		utils.ResponseConflict(w, availErr.Error(), map[string]any{
			"reason":         availErr.Reason,
			"conflict_dates": formatConflictDates(availErr),
		})

	case errors.As(err, &conflictErr):
		log.Warn(operation+" lost a concurrent race", zap.Error(err))
		utils.ResponseConflict(w, conflictErr.Error(), nil)

	case errors.As(err, &stateErr):
		log.Warn(operation+" hit an illegal transition", zap.Error(err))
		utils.ResponseUnprocessable(w, stateErr.Error())

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, notFoundErr.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func formatConflictDates(err *usecase.AvailabilityError) []string {
	dates := make([]string, len(err.ConflictDates))
	for i, d := range err.ConflictDates {
		dates[i] = utils.FormatDate(d)
	}
	return dates
}
