package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID         string            `json:"id"`
	RoomTypeID string            `json:"room_type_id"`
	RoomNumber string            `json:"room_number"`
	Floor      *string           `json:"floor,omitempty"`
	Status     entity.RoomStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

func RoomToResponse(room *entity.Room, status entity.RoomStatus) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		RoomTypeID: room.RoomTypeID.String(),
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Status:     status,
		CreatedAt:  room.CreatedAt,
	}
}
