package entity

import (
	"github.com/google/uuid"
)

// Rating is the post-checkout guest testimonial, one per booking.
type Rating struct {
	BaseNoDelete
	BookingID  uuid.UUID `db:"booking_id"`
	RoomTypeID uuid.UUID `db:"room_type_id"`
	GuestID    uuid.UUID `db:"guest_id"`
	Rating     int       `db:"rating"` // 1-5
	Comment    *string   `db:"comment"`
}
