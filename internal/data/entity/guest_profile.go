package entity

import "github.com/google/uuid"

// GuestProfile mirrors the external profile store. The engine only reads it:
// the identity provider and upload flow maintain the rows.
type GuestProfile struct {
	ID            uuid.UUID `db:"id"` // authenticated principal id
	FullName      string    `db:"full_name"`
	Email         string    `db:"email"`
	Phone         *string   `db:"phone"`
	IDDocumentRef *string   `db:"id_document_ref"` // blob store reference
}

// Complete reports whether the profile carries enough contact detail and an
// uploaded ID document to allow an online booking.
func (p *GuestProfile) Complete() bool {
	if p.FullName == "" || p.Email == "" {
		return false
	}
	if p.Phone == nil || *p.Phone == "" {
		return false
	}
	return p.IDDocumentRef != nil && *p.IDDocumentRef != ""
}
