package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalIDKey contextKey = "principal_id"
	RoleKey        contextKey = "role"
)

// GetPrincipalFromContext returns the authenticated principal id set by the
// auth middleware. Client-supplied identity strings are never trusted.
func GetPrincipalFromContext(ctx context.Context) (uuid.UUID, bool) {
	val := ctx.Value(PrincipalIDKey)
	if val == nil {
		return uuid.Nil, false
	}

	idStr, ok := val.(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	val := ctx.Value(RoleKey)
	if val == nil {
		return "", false
	}

	role, ok := val.(string)
	return role, ok
}

func SetPrincipalContext(ctx context.Context, principalID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, PrincipalIDKey, principalID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}
