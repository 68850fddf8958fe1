package entity

import (
	"testing"
	"time"
)

func TestBookingStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to approved", BookingStatusPending, BookingStatusApproved, true},
		{"pending to rejected", BookingStatusPending, BookingStatusRejected, true},
		{"pending to cancelled", BookingStatusPending, BookingStatusCancelled, true},
		{"pending to checked_in", BookingStatusPending, BookingStatusCheckedIn, false},
		{"pending to checked_out", BookingStatusPending, BookingStatusCheckedOut, false},
		{"approved to checked_in", BookingStatusApproved, BookingStatusCheckedIn, true},
		{"approved to cancelled", BookingStatusApproved, BookingStatusCancelled, false},
		{"approved to rejected", BookingStatusApproved, BookingStatusRejected, false},
		{"checked_in to checked_out", BookingStatusCheckedIn, BookingStatusCheckedOut, true},
		{"checked_in to cancelled", BookingStatusCheckedIn, BookingStatusCancelled, false},
		{"checked_out is terminal", BookingStatusCheckedOut, BookingStatusApproved, false},
		{"rejected is terminal", BookingStatusRejected, BookingStatusApproved, false},
		{"cancelled is terminal", BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestBookingStatusIsTerminal(t *testing.T) {
	terminal := []BookingStatus{BookingStatusCheckedOut, BookingStatusRejected, BookingStatusCancelled}
	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}

	open := []BookingStatus{BookingStatusPending, BookingStatusApproved, BookingStatusCheckedIn}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("expected %s not to be terminal", s)
		}
	}
}

func TestBookingStatusIsActive(t *testing.T) {
	if BookingStatusCancelled.IsActive() || BookingStatusRejected.IsActive() {
		t.Error("cancelled and rejected bookings must not hold inventory")
	}
	// A checked-out stay still blocks its historical interval.
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusApproved, BookingStatusCheckedIn, BookingStatusCheckedOut} {
		if !s.IsActive() {
			t.Errorf("expected %s to count against inventory", s)
		}
	}
}

func TestOverlaps(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut int
		want                 bool
	}{
		{"identical intervals", 1, 5, 1, 5, true},
		{"contained interval", 1, 10, 3, 5, true},
		{"partial overlap front", 1, 5, 3, 8, true},
		{"partial overlap back", 3, 8, 1, 5, true},
		{"checkout day equals checkin day", 1, 5, 5, 8, false},
		{"reverse back-to-back", 5, 8, 1, 5, false},
		{"disjoint", 1, 3, 6, 9, false},
		{"single night shared", 4, 5, 4, 8, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aIn), day(tt.aOut), day(tt.bIn), day(tt.bOut))
			if got != tt.want {
				t.Errorf("Overlaps([%d,%d), [%d,%d)) = %v, want %v", tt.aIn, tt.aOut, tt.bIn, tt.bOut, got, tt.want)
			}
		})
	}
}

func TestBookingCovers(t *testing.T) {
	b := &Booking{
		CheckInDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC),
	}

	covered := []int{10, 11, 12}
	for _, d := range covered {
		if !b.Covers(time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected March %d to be covered", d)
		}
	}

	// Checkout day is free for the next guest.
	for _, d := range []int{9, 13, 14} {
		if b.Covers(time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected March %d not to be covered", d)
		}
	}
}

func TestBookingNights(t *testing.T) {
	b := &Booking{
		CheckInDate:  time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
	}
	if got := b.Nights(); got != 2 {
		t.Errorf("Nights() = %d, want 2", got)
	}
}

func TestBookingIsFullyPaid(t *testing.T) {
	b := &Booking{TotalPrice: 5000, AmountPaid: 2500}
	if b.IsFullyPaid() {
		t.Error("half-paid booking reported as fully paid")
	}

	b.AmountPaid = 5000
	if !b.IsFullyPaid() {
		t.Error("fully paid booking reported as unpaid")
	}
}
