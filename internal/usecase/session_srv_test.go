package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func seedSession(env *testEnv, guestID uuid.UUID, role entity.Role) *entity.Session {
	s := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		GuestID:    guestID,
		Token:      uuid.New(),
		Role:       role,
		ExpiresAt:  time.Now().Add(24 * time.Hour),
	}
	env.sessions.sessions[s.Token.String()] = s
	return s
}

func TestLogoutRevokesToken(t *testing.T) {
	env := newTestEnv()
	svc := NewSessionService(env.repo, zap.NewNop())
	session := seedSession(env, uuid.New(), entity.RoleGuest)
	token := session.Token.String()

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	live, err := env.sessions.FindValidSession(context.Background(), token)
	if err != nil {
		t.Fatalf("FindValidSession: %v", err)
	}
	if live != nil {
		t.Fatal("expected token to be dead after logout")
	}

	// Logging out twice is a no-op.
	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestLogoutMissingToken(t *testing.T) {
	env := newTestEnv()
	svc := NewSessionService(env.repo, zap.NewNop())

	err := svc.Logout(context.Background(), "")

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLogoutEverywhere(t *testing.T) {
	env := newTestEnv()
	svc := NewSessionService(env.repo, zap.NewNop())

	guestID := uuid.New()
	first := seedSession(env, guestID, entity.RoleGuest)
	second := seedSession(env, guestID, entity.RoleGuest)
	other := seedSession(env, uuid.New(), entity.RoleGuest)

	if err := svc.LogoutEverywhere(context.Background(), guestID.String()); err != nil {
		t.Fatalf("LogoutEverywhere: %v", err)
	}

	for _, token := range []string{first.Token.String(), second.Token.String()} {
		live, err := env.sessions.FindValidSession(context.Background(), token)
		if err != nil {
			t.Fatalf("FindValidSession: %v", err)
		}
		if live != nil {
			t.Fatalf("expected guest session %s to be revoked", token)
		}
	}

	live, err := env.sessions.FindValidSession(context.Background(), other.Token.String())
	if err != nil {
		t.Fatalf("FindValidSession: %v", err)
	}
	if live == nil {
		t.Fatal("other guest's session should survive")
	}
}
