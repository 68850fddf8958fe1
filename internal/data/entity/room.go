package entity

import "github.com/google/uuid"

// RoomStatus is derived state, not a stored column. Only the maintenance
// override is persisted; occupancy comes from the active booking covering
// today.
type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type Room struct {
	Base
	RoomTypeID  uuid.UUID `db:"room_type_id"`
	RoomNumber  string    `db:"room_number"` // unique per hotel
	Floor       *string   `db:"floor"`
	Maintenance bool      `db:"maintenance"`
}

// DeriveRoomStatus computes the visible status. The maintenance override
// wins over occupancy.
func DeriveRoomStatus(maintenance, occupiedToday bool) RoomStatus {
	switch {
	case maintenance:
		return RoomStatusMaintenance
	case occupiedToday:
		return RoomStatusOccupied
	default:
		return RoomStatusAvailable
	}
}
