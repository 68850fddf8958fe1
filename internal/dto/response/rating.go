package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RatingResponse struct {
	ID         string    `json:"id"`
	BookingID  string    `json:"booking_id"`
	RoomTypeID string    `json:"room_type_id"`
	GuestID    string    `json:"guest_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type RatingStatsResponse struct {
	RoomTypeID string  `json:"room_type_id"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}

func RatingToResponse(r *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:         r.ID.String(),
		BookingID:  r.BookingID.String(),
		RoomTypeID: r.RoomTypeID.String(),
		GuestID:    r.GuestID.String(),
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
