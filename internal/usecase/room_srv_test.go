package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

func TestListRoomsDerivedStatus(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)

	free := env.addRoom(rt.ID, "101")
	occupied := env.addRoom(rt.ID, "102")
	broken := env.addRoom(rt.ID, "103")
	broken.Maintenance = true

	today := utils.Today()
	seedBooking(env, rt.ID, &occupied.ID, entity.BookingStatusCheckedIn, today, today.AddDate(0, 0, 2))

	svc := NewRoomService(env.repo, zap.NewNop())

	rooms, err := svc.ListRooms(context.Background(), rt.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statuses := make(map[string]entity.RoomStatus, len(rooms))
	for _, r := range rooms {
		statuses[r.RoomNumber] = r.Status
	}

	want := map[string]entity.RoomStatus{
		"101": entity.RoomStatusAvailable,
		"102": entity.RoomStatusOccupied,
		"103": entity.RoomStatusMaintenance,
	}
	for number, status := range want {
		if statuses[number] != status {
			t.Errorf("room %s status = %s, want %s", number, statuses[number], status)
		}
	}
	_ = free
}

func TestListAvailableRoomsExcludesClaimed(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)

	env.addRoom(rt.ID, "101")
	claimed := env.addRoom(rt.ID, "102")
	broken := env.addRoom(rt.ID, "103")
	broken.Maintenance = true

	seedBooking(env, rt.ID, &claimed.ID, entity.BookingStatusApproved,
		time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC))

	svc := NewRoomService(env.repo, zap.NewNop())

	rooms, err := svc.ListAvailableRooms(context.Background(), rt.ID.String(), "2026-03-11", "2026-03-13")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rooms) != 1 || rooms[0].RoomNumber != "101" {
		t.Errorf("available rooms = %v, want only 101", rooms)
	}
}

func TestSetMaintenanceBlockedWhenOccupied(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	room := env.addRoom(rt.ID, "101")

	today := utils.Today()
	seedBooking(env, rt.ID, &room.ID, entity.BookingStatusCheckedIn, today, today.AddDate(0, 0, 2))

	svc := NewRoomService(env.repo, zap.NewNop())

	err := svc.SetMaintenance(context.Background(), room.ID.String())
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Errorf("expected ConflictError, got %v", err)
	}
	if room.Maintenance {
		t.Error("occupied room was forced into maintenance")
	}
}

func TestMaintenanceRoundTrip(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	room := env.addRoom(rt.ID, "101")

	svc := NewRoomService(env.repo, zap.NewNop())
	ctx := context.Background()

	if err := svc.SetMaintenance(ctx, room.ID.String()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !room.Maintenance {
		t.Fatal("maintenance flag not set")
	}

	if err := svc.ClearMaintenance(ctx, room.ID.String()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if room.Maintenance {
		t.Fatal("maintenance flag not cleared")
	}
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	env := newTestEnv()
	rt := env.addRoomType(2500, 2)
	env.addRoom(rt.ID, "101")

	svc := NewRoomService(env.repo, zap.NewNop())

	_, err := svc.CreateRoom(context.Background(), &request.CreateRoomRequest{
		RoomTypeID: rt.ID.String(),
		RoomNumber: "101",
	})

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Errorf("expected ConflictError, got %v", err)
	}
}
