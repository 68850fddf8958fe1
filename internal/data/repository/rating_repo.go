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

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Rating, error)
	FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID, limit, offset int) ([]*entity.Rating, error)
	CountByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) (int64, error)
	Update(ctx context.Context, rating *entity.Rating) error

	// Business queries
	GetRoomTypeStats(ctx context.Context, roomTypeID uuid.UUID) (float64, int64, error) // average, count
}

type ratingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatingRepository(db database.PgxIface, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		db:  db,
		log: log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	query := `
		INSERT INTO ratings (id, booking_id, room_type_id, guest_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.BookingID,
		rating.RoomTypeID,
		rating.GuestID,
		rating.Rating,
		rating.Comment,
		rating.CreatedAt,
		rating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("booking_id", rating.BookingID.String()),
		)
		return fmt.Errorf("create rating for booking %s: %w", rating.BookingID.String(), err)
	}

	return nil
}

func (r *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, booking_id, room_type_id, guest_id, rating, comment, created_at, updated_at
		FROM ratings
		WHERE id = $1
	`

	rating, err := scanRatingRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by ID",
			zap.Error(err),
			zap.String("rating_id", id.String()),
		)
		return nil, fmt.Errorf("find rating by ID %s: %w", id.String(), err)
	}

	return rating, nil
}

func (r *ratingRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Rating, error) {
	query := `
		SELECT id, booking_id, room_type_id, guest_id, rating, comment, created_at, updated_at
		FROM ratings
		WHERE booking_id = $1
	`

	rating, err := scanRatingRow(r.db.QueryRow(ctx, query, bookingID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find rating by booking ID %s: %w", bookingID.String(), err)
	}

	return rating, nil
}

func (r *ratingRepository) FindByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID, limit, offset int) ([]*entity.Rating, error) {
	query := `
		SELECT id, booking_id, room_type_id, guest_id, rating, comment, created_at, updated_at
		FROM ratings
		WHERE room_type_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, roomTypeID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find ratings by room type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return nil, fmt.Errorf("find ratings by room type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	var ratings []*entity.Rating
	for rows.Next() {
		rating, err := scanRatingRow(rows)
		if err != nil {
			r.log.Error("Failed to scan rating row", zap.Error(err))
			return nil, fmt.Errorf("scan rating row: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, nil
}

func (r *ratingRepository) CountByRoomTypeID(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM ratings WHERE room_type_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count ratings by room type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return 0, fmt.Errorf("count ratings by room type %s: %w", roomTypeID.String(), err)
	}

	return count, nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	query := `
		UPDATE ratings
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		rating.ID,
		rating.Rating,
		rating.Comment,
		rating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update rating",
			zap.Error(err),
			zap.String("rating_id", rating.ID.String()),
		)
		return fmt.Errorf("update rating %s: %w", rating.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rating %s not found", rating.ID.String())
	}

	return nil
}

func (r *ratingRepository) GetRoomTypeStats(ctx context.Context, roomTypeID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM ratings
		WHERE room_type_id = $1
	`

	var average float64
	var count int64
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(&average, &count)
	if err != nil {
		r.log.Error("Failed to get room type rating stats",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return 0, 0, fmt.Errorf("get rating stats for room type %s: %w", roomTypeID.String(), err)
	}

	return average, count, nil
}

func scanRatingRow(row pgx.Row) (*entity.Rating, error) {
	var rating entity.Rating
	err := row.Scan(
		&rating.ID,
		&rating.BookingID,
		&rating.RoomTypeID,
		&rating.GuestID,
		&rating.Rating,
		&rating.Comment,
		&rating.CreatedAt,
		&rating.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rating, nil
}
