package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session      SessionRepository
	GuestProfile GuestProfileRepository
	RoomType     RoomTypeRepository
	Room         RoomRepository
	Booking      BookingRepository
	Rating       RatingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Session:      NewSessionRepository(db, log),
		GuestProfile: NewGuestProfileRepository(db, log),
		RoomType:     NewRoomTypeRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Rating:       NewRatingRepository(db, log),
	}
}
