package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/notifier"

	"go.uber.org/zap"
)

type Service struct {
	Availability AvailabilityService
	Booking      BookingService
	Room         RoomService
	RoomType     RoomTypeService
	Rating       RatingService
	Session      SessionService
}

func NewService(repo *repository.Repository, events notifier.EventPublisher, log *zap.Logger) *Service {
	return &Service{
		Availability: NewAvailabilityService(repo, log),
		Booking:      NewBookingService(repo, events, log),
		Room:         NewRoomService(repo, log),
		RoomType:     NewRoomTypeService(repo, log),
		Rating:       NewRatingService(repo, log),
		Session:      NewSessionService(repo, log),
	}
}
