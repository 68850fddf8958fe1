package request

type CreateRoomRequest struct {
	RoomTypeID string  `json:"room_type_id" validate:"required,uuid4"`
	RoomNumber string  `json:"room_number" validate:"required,min=1,max=10"`
	Floor      *string `json:"floor,omitempty"`
}

type UpdateRoomRequest struct {
	RoomNumber *string `json:"room_number,omitempty" validate:"omitempty,min=1,max=10"`
	Floor      *string `json:"floor,omitempty"`
}
