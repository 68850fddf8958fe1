package request

type CheckAvailabilityRequest struct {
	RoomTypeID   string `json:"room_type_id" validate:"required,uuid4"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	GuestCount   int    `json:"guest_count" validate:"required,min=1"`
}
