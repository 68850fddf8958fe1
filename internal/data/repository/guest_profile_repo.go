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

// GuestProfileRepository reads the externally-maintained profile store. The
// engine never writes profile rows.
type GuestProfileRepository interface {
	FindByID(ctx context.Context, principalID uuid.UUID) (*entity.GuestProfile, error)
}

type guestProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestProfileRepository(db database.PgxIface, log *zap.Logger) GuestProfileRepository {
	return &guestProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest_profile")),
	}
}

func (r *guestProfileRepository) FindByID(ctx context.Context, principalID uuid.UUID) (*entity.GuestProfile, error) {
	query := `
		SELECT id, full_name, email, phone, id_document_ref
		FROM guest_profiles
		WHERE id = $1
	`

	var profile entity.GuestProfile
	err := r.db.QueryRow(ctx, query, principalID).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.Phone,
		&profile.IDDocumentRef,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest profile",
			zap.Error(err),
			zap.String("principal_id", principalID.String()),
		)
		return nil, fmt.Errorf("find guest profile %s: %w", principalID.String(), err)
	}

	return &profile, nil
}
