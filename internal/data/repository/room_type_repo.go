package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindAll(ctx context.Context, bookableOnly bool) ([]*entity.RoomType, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, description, nightly_rate, max_guests, amenities,
		                        is_bookable, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.NightlyRate,
		roomType.MaxGuests,
		[]string(roomType.Amenities),
		roomType.IsBookable,
		roomType.ImageURL,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("name", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `
		SELECT id, name, description, nightly_rate, max_guests, amenities,
		       is_bookable, image_url, created_at, updated_at, deleted_at
		FROM room_types
		WHERE id = $1 AND deleted_at IS NULL
	`

	var roomType entity.RoomType
	var amenities []string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomType.ID,
		&roomType.Name,
		&roomType.Description,
		&roomType.NightlyRate,
		&roomType.MaxGuests,
		&amenities,
		&roomType.IsBookable,
		&roomType.ImageURL,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
		&roomType.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	roomType.Amenities = entity.Amenities(amenities)
	return &roomType, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context, bookableOnly bool) ([]*entity.RoomType, error) {
	query := `
		SELECT id, name, description, nightly_rate, max_guests, amenities,
		       is_bookable, image_url, created_at, updated_at
		FROM room_types
		WHERE deleted_at IS NULL
	`
	if bookableOnly {
		query += ` AND is_bookable = true`
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find room types", zap.Error(err))
		return nil, fmt.Errorf("find room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		var roomType entity.RoomType
		var amenities []string
		err := rows.Scan(
			&roomType.ID,
			&roomType.Name,
			&roomType.Description,
			&roomType.NightlyRate,
			&roomType.MaxGuests,
			&amenities,
			&roomType.IsBookable,
			&roomType.ImageURL,
			&roomType.CreatedAt,
			&roomType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomType.Amenities = entity.Amenities(amenities)
		roomTypes = append(roomTypes, &roomType)
	}

	return roomTypes, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		UPDATE room_types
		SET name = $2, description = $3, nightly_rate = $4, max_guests = $5,
		    amenities = $6, is_bookable = $7, image_url = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.NightlyRate,
		roomType.MaxGuests,
		[]string(roomType.Amenities),
		roomType.IsBookable,
		roomType.ImageURL,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room type",
			zap.Error(err),
			zap.String("room_type_id", roomType.ID.String()),
		)
		return fmt.Errorf("update room type %s: %w", roomType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", roomType.ID.String())
	}

	return nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE room_types SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room type",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return fmt.Errorf("delete room type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found or already deleted", id.String())
	}

	r.log.Info("Room type soft deleted", zap.String("room_type_id", id.String()))
	return nil
}
