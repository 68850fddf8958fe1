package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService revokes sessions issued by the external identity provider.
// Issuing tokens is not this engine's job; killing them on logout is.
type SessionService interface {
	Logout(ctx context.Context, token string) error
	LogoutEverywhere(ctx context.Context, guestID string) error
}

type sessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSessionService(repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{
		repo: repo,
		log:  log.With(zap.String("service", "session")),
	}
}

// Logout revokes the presented token. Idempotent: revoking a token that is
// already dead succeeds.
func (s *sessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return validationErrorf("missing session token")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Session revoked")
	return nil
}

// LogoutEverywhere revokes every live session of the guest, including the one
// making the call.
func (s *sessionService) LogoutEverywhere(ctx context.Context, guestID string) error {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return validationErrorf("invalid guest id: %s", guestID)
	}

	if err := s.repo.Session.RevokeAllGuestSessions(ctx, id); err != nil {
		return fmt.Errorf("revoke guest sessions: %w", err)
	}

	s.log.Info("All guest sessions revoked", zap.String("guest_id", guestID))
	return nil
}
