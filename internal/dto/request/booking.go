package request

type CreateBookingRequest struct {
	RoomTypeID   string `json:"room_type_id" validate:"required,uuid4"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	GuestCount   int    `json:"guest_count" validate:"required,min=1"`
	// RFC3339; before 14:00 on the check-in day it triggers the early fee.
	DesiredCheckIn *string `json:"desired_check_in,omitempty"`
	DiscountType   string  `json:"discount_type" validate:"omitempty,oneof=none senior repeater"`
}

type CreateWalkInRequest struct {
	RoomID         string  `json:"room_id" validate:"required,uuid4"`
	GuestName      string  `json:"guest_name" validate:"required,min=2"`
	GuestEmail     *string `json:"guest_email,omitempty" validate:"omitempty,email"`
	GuestPhone     string  `json:"guest_phone" validate:"required,min=6"`
	CheckInDate    string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	GuestCount     int     `json:"guest_count" validate:"required,min=1"`
	DesiredCheckIn *string `json:"desired_check_in,omitempty"`
	DiscountType   string  `json:"discount_type" validate:"omitempty,oneof=none senior repeater"`

	// Optional payment taken at the desk.
	AmountPaid       float64 `json:"amount_paid" validate:"min=0"`
	PaymentReference *string `json:"payment_reference,omitempty"`
}

type ApproveBookingRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid4"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3"`
}

type RecordPaymentRequest struct {
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	PaymentReference string  `json:"payment_reference" validate:"required"`
}

type ExtendStayRequest struct {
	NewCheckOutDate string `json:"new_check_out_date" validate:"required,datetime=2006-01-02"`
}
