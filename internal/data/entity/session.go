package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Session rows are written by the external identity provider's callback; the
// engine only validates bearer tokens against them and trusts the stored
// principal id.
type Session struct {
	BaseSimple
	GuestID   uuid.UUID  `db:"guest_id"`
	Token     uuid.UUID  `db:"token"`
	Role      Role       `db:"role"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
