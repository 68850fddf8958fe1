package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedBooking(env *testEnv, roomTypeID uuid.UUID, roomID *uuid.UUID, status entity.BookingStatus, checkIn, checkOut time.Time) *entity.Booking {
	b := &entity.Booking{
		BaseNoDelete:  entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		ReferenceCode: "RES-TEST-" + uuid.NewString()[:8],
		RoomTypeID:    roomTypeID,
		RoomID:        roomID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		GuestCount:    1,
		Status:        status,
		DiscountType:  entity.DiscountNone,
		TotalPrice:    1000,
	}
	env.bookings.bookings[b.ID] = b
	return b
}

func TestCheckAvailabilityOpenRange(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	env.addRoom(rt.ID, "101")
	env.addRoom(rt.ID, "102")

	svc := NewAvailabilityService(env.repo, zap.NewNop())

	resp, err := svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		RoomTypeID:   rt.ID.String(),
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		GuestCount:   2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Available {
		t.Errorf("expected availability, got reason %q", resp.Reason)
	}
}

func TestCheckAvailabilityFailFast(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	env.addRoom(rt.ID, "101")

	closed := env.addRoomType(2500, 2)
	closed.IsBookable = false
	env.addRoom(closed.ID, "201")

	svc := NewAvailabilityService(env.repo, zap.NewNop())
	ctx := context.Background()

	t.Run("guest count over capacity", func(t *testing.T) {
		resp, err := svc.CheckAvailability(ctx, &request.CheckAvailabilityRequest{
			RoomTypeID:   rt.ID.String(),
			CheckInDate:  "2026-03-10",
			CheckOutDate: "2026-03-12",
			GuestCount:   5,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Available {
			t.Error("expected unavailable for oversized party")
		}
	})

	t.Run("not bookable", func(t *testing.T) {
		resp, err := svc.CheckAvailability(ctx, &request.CheckAvailabilityRequest{
			RoomTypeID:   closed.ID.String(),
			CheckInDate:  "2026-03-10",
			CheckOutDate: "2026-03-12",
			GuestCount:   1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Available {
			t.Error("expected unavailable for disabled room type")
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, &request.CheckAvailabilityRequest{
			RoomTypeID:   rt.ID.String(),
			CheckInDate:  "2026-03-12",
			CheckOutDate: "2026-03-10",
			GuestCount:   1,
		})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("expected ValidationError, got %v", err)
		}
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, &request.CheckAvailabilityRequest{
			RoomTypeID:   uuid.NewString(),
			CheckInDate:  "2026-03-10",
			CheckOutDate: "2026-03-12",
			GuestCount:   1,
		})
		var notFoundErr *NotFoundError
		if !errors.As(err, &notFoundErr) {
			t.Errorf("expected NotFoundError, got %v", err)
		}
	})
}

func TestCheckAvailabilityFullyBookedDay(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	env.addRoom(rt.ID, "101")
	env.addRoom(rt.ID, "102")

	// Both rooms taken on March 11 only.
	seedBooking(env, rt.ID, nil, entity.BookingStatusPending,
		time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC))
	seedBooking(env, rt.ID, nil, entity.BookingStatusApproved,
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC))

	svc := NewAvailabilityService(env.repo, zap.NewNop())

	resp, err := svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		RoomTypeID:   rt.ID.String(),
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-13",
		GuestCount:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Available {
		t.Fatal("expected unavailable range")
	}
	if !reflect.DeepEqual(resp.ConflictDates, []string{"2026-03-11"}) {
		t.Errorf("ConflictDates = %v, want [2026-03-11]", resp.ConflictDates)
	}
}

func TestCheckAvailabilityIgnoresInactiveBookings(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	env.addRoom(rt.ID, "101")

	in := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	out := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)
	seedBooking(env, rt.ID, nil, entity.BookingStatusCancelled, in, out)
	seedBooking(env, rt.ID, nil, entity.BookingStatusRejected, in, out)

	svc := NewAvailabilityService(env.repo, zap.NewNop())

	resp, err := svc.CheckAvailability(context.Background(), &request.CheckAvailabilityRequest{
		RoomTypeID:   rt.ID.String(),
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		GuestCount:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Available {
		t.Errorf("cancelled and rejected bookings should not consume capacity, reason %q", resp.Reason)
	}
}

func TestCheckAvailabilityIdempotent(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	env.addRoom(rt.ID, "101")

	svc := NewAvailabilityService(env.repo, zap.NewNop())
	req := &request.CheckAvailabilityRequest{
		RoomTypeID:   rt.ID.String(),
		CheckInDate:  "2026-03-10",
		CheckOutDate: "2026-03-12",
		GuestCount:   1,
	}

	first, err := svc.CheckAvailability(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.CheckAvailability(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated checks disagreed: %+v vs %+v", first, second)
	}
	if len(env.bookings.all()) != 0 {
		t.Error("availability check must not write bookings")
	}
}

func TestFullyBookedDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	booking := func(in, out int, status entity.BookingStatus) *entity.Booking {
		return &entity.Booking{CheckInDate: day(in), CheckOutDate: day(out), Status: status}
	}

	bookings := []*entity.Booking{
		booking(10, 13, entity.BookingStatusApproved),
		booking(11, 12, entity.BookingStatusPending),
		booking(11, 14, entity.BookingStatusCancelled),
	}

	got := fullyBookedDays(bookings, 2, day(10), day(14))
	want := []time.Time{day(11)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fullyBookedDays = %v, want %v", got, want)
	}

	if conflicts := fullyBookedDays(bookings, 3, day(10), day(14)); conflicts != nil {
		t.Errorf("capacity 3 should clear the range, got %v", conflicts)
	}
}
