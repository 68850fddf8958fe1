package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusApproved   BookingStatus = "approved"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusRejected   BookingStatus = "rejected"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// bookingTransitions is the full status state machine. Payment is tracked via
// amount_paid / payment_reference, not as top-level states.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusApproved:  {BookingStatusCheckedIn},
	BookingStatusCheckedIn: {BookingStatusCheckedOut},
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition. Terminal states allow nothing.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// IsActive reports whether the booking still counts against room inventory.
// Cancelled and rejected bookings never block a room.
func (s BookingStatus) IsActive() bool {
	return s != BookingStatusCancelled && s != BookingStatusRejected
}

type DiscountType string

const (
	DiscountNone     DiscountType = "none"
	DiscountSenior   DiscountType = "senior"
	DiscountRepeater DiscountType = "repeater"
)

func (d DiscountType) Valid() bool {
	return d == DiscountNone || d == DiscountSenior || d == DiscountRepeater
}

type Booking struct {
	BaseNoDelete
	ReferenceCode   string        `db:"reference_code"`
	RoomTypeID      uuid.UUID     `db:"room_type_id"`
	RoomID          *uuid.UUID    `db:"room_id"` // nil until a physical room is bound
	GuestID         *uuid.UUID    `db:"guest_id"`
	WalkInName      *string       `db:"walk_in_name"`
	WalkInEmail     *string       `db:"walk_in_email"`
	WalkInPhone     *string       `db:"walk_in_phone"`
	CheckInDate     time.Time     `db:"check_in_date"`
	CheckOutDate    time.Time     `db:"check_out_date"`
	DesiredCheckIn  *time.Time    `db:"desired_check_in"`
	ActualCheckIn   *time.Time    `db:"actual_check_in"`
	ActualCheckOut  *time.Time    `db:"actual_check_out"`
	GuestCount      int           `db:"guest_count"`
	Status          BookingStatus `db:"status"`
	TotalPrice      float64       `db:"total_price"`
	AmountPaid      float64       `db:"amount_paid"`
	EarlyCheckInFee float64       `db:"early_check_in_fee"`
	DiscountType    DiscountType  `db:"discount_type"`
	DiscountAmount  float64       `db:"discount_amount"`
	PaymentRef      *string       `db:"payment_reference"`
	RejectReason    *string       `db:"rejection_reason"`
	IsWalkIn        bool          `db:"is_walk_in"`
}

// Nights is the whole-day length of the stay.
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// IsFullyPaid reports whether the recorded payments cover the total.
func (b *Booking) IsFullyPaid() bool {
	return b.AmountPaid >= b.TotalPrice
}

// Covers reports whether day falls inside the booking's [in, out) interval.
func (b *Booking) Covers(day time.Time) bool {
	return !day.Before(b.CheckInDate) && day.Before(b.CheckOutDate)
}

// Overlaps is the half-open interval overlap test used everywhere a room or
// room type is checked against a date range.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}
