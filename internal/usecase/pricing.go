package usecase

import (
	"math"
	"time"

	"hotel-booking/internal/data/entity"
)

// Pricing constants. Historical bookings must reprice identically, so these
// are compile-time values rather than configuration.
const (
	// StandardCheckInHour is the earliest regular check-in time of day.
	StandardCheckInHour = 14

	// EarlyCheckInFeePerHour is charged per started hour before 14:00.
	EarlyCheckInFeePerHour = 100.0

	// loyaltyDiscountRate applies to senior and repeater guests.
	loyaltyDiscountRate = 0.10
)

// PriceQuote is the full price breakdown for a stay.
type PriceQuote struct {
	Nights          int
	BasePrice       float64
	EarlyCheckInFee float64
	DiscountAmount  float64
	TotalPrice      float64
}

// ComputeQuote derives the total charge for a stay. It is a pure function:
// no I/O, deterministic for identical inputs. Degenerate input returns a
// ValidationError rather than a silent zero-price quote.
func ComputeQuote(roomType *entity.RoomType, checkIn, checkOut time.Time, desiredCheckIn *time.Time, discount entity.DiscountType) (*PriceQuote, error) {
	if roomType.NightlyRate < 0 {
		return nil, validationErrorf("room type %s has negative nightly rate", roomType.Name)
	}
	if !discount.Valid() {
		return nil, validationErrorf("unknown discount type %q", discount)
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return nil, validationErrorf("check-out must be at least one day after check-in")
	}

	if desiredCheckIn != nil {
		dy, dm, dd := desiredCheckIn.Date()
		cy, cm, cd := checkIn.Date()
		if dy != cy || dm != cm || dd != cd {
			return nil, validationErrorf("desired check-in time must fall on the check-in date %s", checkIn.Format("2006-01-02"))
		}
	}

	basePrice := float64(nights) * roomType.NightlyRate
	earlyFee := EarlyCheckInFee(checkIn, desiredCheckIn)

	var discountAmount float64
	if discount == entity.DiscountSenior || discount == entity.DiscountRepeater {
		discountAmount = (basePrice + earlyFee) * loyaltyDiscountRate
	}

	total := basePrice + earlyFee - discountAmount
	if total < 0 {
		total = 0
	}
	if total == 0 {
		// A free stay is always an input problem, never a price.
		return nil, validationErrorf("computed total price is zero for %d nights at rate %.2f", nights, roomType.NightlyRate)
	}

	return &PriceQuote{
		Nights:          nights,
		BasePrice:       basePrice,
		EarlyCheckInFee: earlyFee,
		DiscountAmount:  discountAmount,
		TotalPrice:      total,
	}, nil
}

// EarlyCheckInFee charges per started hour before the 14:00 standard
// check-in. Absent or later desired times cost nothing. The fee is uncapped,
// matching the flat hourly surcharge policy.
func EarlyCheckInFee(checkIn time.Time, desiredCheckIn *time.Time) float64 {
	if desiredCheckIn == nil {
		return 0
	}

	standard := time.Date(
		checkIn.Year(), checkIn.Month(), checkIn.Day(),
		StandardCheckInHour, 0, 0, 0, desiredCheckIn.Location(),
	)
	if !desiredCheckIn.Before(standard) {
		return 0
	}

	hoursEarly := math.Ceil(standard.Sub(*desiredCheckIn).Hours())
	return hoursEarly * EarlyCheckInFeePerHour
}
