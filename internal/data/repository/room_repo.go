package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindByTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	SetMaintenance(ctx context.Context, roomID uuid.UUID, maintenance bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	CountUsableByType(ctx context.Context, roomTypeID uuid.UUID) (int64, error)
	FindAvailableByType(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error)
	FindOccupiedRoomIDs(ctx context.Context, roomTypeID uuid.UUID, day time.Time) ([]uuid.UUID, error)
	HasActiveOccupant(ctx context.Context, roomID uuid.UUID, day time.Time) (bool, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_type_id, room_number, floor, maintenance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Maintenance,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, room_type_id, room_number, floor, maintenance, created_at, updated_at, deleted_at
		FROM rooms
		WHERE id = $1 AND deleted_at IS NULL
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.RoomTypeID,
		&room.RoomNumber,
		&room.Floor,
		&room.Maintenance,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `
		SELECT id, room_type_id, room_number, floor, maintenance, created_at, updated_at, deleted_at
		FROM rooms
		WHERE room_number = $1 AND deleted_at IS NULL
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, roomNumber).Scan(
		&room.ID,
		&room.RoomTypeID,
		&room.RoomNumber,
		&room.Floor,
		&room.Maintenance,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room by number %s: %w", roomNumber, err)
	}

	return &room, nil
}

func (r *roomRepository) FindByTypeID(ctx context.Context, roomTypeID uuid.UUID) ([]*entity.Room, error) {
	query := `
		SELECT id, room_type_id, room_number, floor, maintenance, created_at, updated_at
		FROM rooms
		WHERE room_type_id = $1 AND deleted_at IS NULL
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query, roomTypeID)
	if err != nil {
		r.log.Error("Failed to find rooms by type ID",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find rooms by type ID %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	return scanRooms(rows, r.log)
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, floor = $3, maintenance = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Floor,
		room.Maintenance,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found or already deleted", room.ID.String())
	}

	return nil
}

func (r *roomRepository) SetMaintenance(ctx context.Context, roomID uuid.UUID, maintenance bool) error {
	query := `UPDATE rooms SET maintenance = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, roomID, maintenance)
	if err != nil {
		r.log.Error("Failed to set room maintenance",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Bool("maintenance", maintenance),
		)
		return fmt.Errorf("set room %s maintenance: %w", roomID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", roomID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rooms SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found or already deleted", id.String())
	}

	r.log.Info("Room soft deleted", zap.String("room_id", id.String()))
	return nil
}

// CountUsableByType counts physical rooms of a type that are not under
// maintenance. This is the capacity P for day-granular availability.
func (r *roomRepository) CountUsableByType(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM rooms
		WHERE room_type_id = $1 AND maintenance = false AND deleted_at IS NULL
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count usable rooms",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return 0, fmt.Errorf("count usable rooms for type %s: %w", roomTypeID.String(), err)
	}

	return count, nil
}

// FindAvailableByType returns rooms of a type with no active booking
// overlapping [checkIn, checkOut), ordered by room number so assignment
// preference is deterministic.
func (r *roomRepository) FindAvailableByType(ctx context.Context, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	query := `
		SELECT rm.id, rm.room_type_id, rm.room_number, rm.floor, rm.maintenance, rm.created_at, rm.updated_at
		FROM rooms rm
		WHERE rm.room_type_id = $1
		  AND rm.maintenance = false
		  AND rm.deleted_at IS NULL
		  AND NOT EXISTS (
		      SELECT 1 FROM bookings b
		      WHERE b.room_id = rm.id
		        AND b.status NOT IN ('cancelled', 'rejected')
		        AND b.check_in_date < $3
		        AND $2 < b.check_out_date
		  )
		ORDER BY rm.room_number
	`

	rows, err := r.db.Query(ctx, query, roomTypeID, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find available rooms",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find available rooms for type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	return scanRooms(rows, r.log)
}

// FindOccupiedRoomIDs returns ids of rooms held by an approved or checked-in
// booking covering the given day. Used to derive room status on read.
func (r *roomRepository) FindOccupiedRoomIDs(ctx context.Context, roomTypeID uuid.UUID, day time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT b.room_id
		FROM bookings b
		INNER JOIN rooms rm ON rm.id = b.room_id
		WHERE rm.room_type_id = $1
		  AND b.status IN ('approved', 'checked_in')
		  AND b.check_in_date <= $2
		  AND b.check_out_date > $2
	`

	rows, err := r.db.Query(ctx, query, roomTypeID, day)
	if err != nil {
		r.log.Error("Failed to find occupied room IDs",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find occupied rooms for type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	var roomIDs []uuid.UUID
	for rows.Next() {
		var roomID uuid.UUID
		if err := rows.Scan(&roomID); err != nil {
			r.log.Error("Failed to scan room ID row", zap.Error(err))
			return nil, fmt.Errorf("scan room ID row: %w", err)
		}
		roomIDs = append(roomIDs, roomID)
	}

	return roomIDs, nil
}

// HasActiveOccupant reports whether an approved or checked-in booking covers
// the room on the given day. Guards the maintenance override.
func (r *roomRepository) HasActiveOccupant(ctx context.Context, roomID uuid.UUID, day time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM bookings
		    WHERE room_id = $1
		      AND status IN ('approved', 'checked_in')
		      AND check_in_date <= $2
		      AND check_out_date > $2
		)
	`

	var occupied bool
	err := r.db.QueryRow(ctx, query, roomID, day).Scan(&occupied)
	if err != nil {
		r.log.Error("Failed to check room occupancy",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return false, fmt.Errorf("check occupancy for room %s: %w", roomID.String(), err)
	}

	return occupied, nil
}

func scanRooms(rows pgx.Rows, log *zap.Logger) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.RoomTypeID,
			&room.RoomNumber,
			&room.Floor,
			&room.Maintenance,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
