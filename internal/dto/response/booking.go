package response

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	ReferenceCode   string               `json:"reference_code"`
	RoomTypeID      string               `json:"room_type_id"`
	RoomTypeName    string               `json:"room_type_name,omitempty"`
	RoomID          *string              `json:"room_id,omitempty"`
	RoomNumber      string               `json:"room_number,omitempty"`
	GuestID         *string              `json:"guest_id,omitempty"`
	GuestName       string               `json:"guest_name,omitempty"`
	CheckInDate     string               `json:"check_in_date"`
	CheckOutDate    string               `json:"check_out_date"`
	Nights          int                  `json:"nights"`
	DesiredCheckIn  *time.Time           `json:"desired_check_in,omitempty"`
	ActualCheckIn   *time.Time           `json:"actual_check_in,omitempty"`
	ActualCheckOut  *time.Time           `json:"actual_check_out,omitempty"`
	GuestCount      int                  `json:"guest_count"`
	Status          entity.BookingStatus `json:"status"`
	TotalPrice      float64              `json:"total_price"`
	AmountPaid      float64              `json:"amount_paid"`
	FullyPaid       bool                 `json:"fully_paid"`
	EarlyCheckInFee float64              `json:"early_check_in_fee"`
	DiscountType    entity.DiscountType  `json:"discount_type"`
	DiscountAmount  float64              `json:"discount_amount"`
	PaymentRef      *string              `json:"payment_reference,omitempty"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
	IsWalkIn        bool                 `json:"is_walk_in"`
	CreatedAt       time.Time            `json:"created_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID.String(),
		ReferenceCode:   b.ReferenceCode,
		RoomTypeID:      b.RoomTypeID.String(),
		CheckInDate:     utils.FormatDate(b.CheckInDate),
		CheckOutDate:    utils.FormatDate(b.CheckOutDate),
		Nights:          b.Nights(),
		DesiredCheckIn:  b.DesiredCheckIn,
		ActualCheckIn:   b.ActualCheckIn,
		ActualCheckOut:  b.ActualCheckOut,
		GuestCount:      b.GuestCount,
		Status:          b.Status,
		TotalPrice:      b.TotalPrice,
		AmountPaid:      b.AmountPaid,
		FullyPaid:       b.IsFullyPaid(),
		EarlyCheckInFee: b.EarlyCheckInFee,
		DiscountType:    b.DiscountType,
		DiscountAmount:  b.DiscountAmount,
		PaymentRef:      b.PaymentRef,
		RejectionReason: b.RejectReason,
		IsWalkIn:        b.IsWalkIn,
		CreatedAt:       b.CreatedAt,
	}

	if b.RoomID != nil {
		roomID := b.RoomID.String()
		resp.RoomID = &roomID
	}
	if b.GuestID != nil {
		guestID := b.GuestID.String()
		resp.GuestID = &guestID
	}
	if b.WalkInName != nil {
		resp.GuestName = *b.WalkInName
	}

	return resp
}
