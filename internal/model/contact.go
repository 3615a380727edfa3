package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactStore defines persistence operations for contacts.
// Every operation is scoped to the owning user.
type ContactStore interface {
	Create(ctx context.Context, contact Contact) (Contact, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Contact, error)
	Update(ctx context.Context, contact Contact) (Contact, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Contact is an address book entry owned by a user.
type Contact struct {
	ID        uuid.UUID `json:"_id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactParams holds user-editable contact fields.
type ContactParams struct {
	Name  string
	Email string
	Phone string
	Notes string
}
