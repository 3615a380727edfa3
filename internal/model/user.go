package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ResetTokenTTL is how long a password reset token stays valid.
const ResetTokenTTL = time.Hour

// UserStore defines persistence operations for users.
//
// Emails are expected to be normalized to lower case by the caller; lookups
// match case-insensitively regardless.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	// Create inserts a user and returns it with the store-assigned ID.
	// A second user with the same email yields ErrDuplicateUser.
	Create(ctx context.Context, user User) (User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	// SetResetToken stores token and expiry together, replacing any pending reset.
	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	// ConsumeResetToken atomically swaps in passwordHash and clears the reset
	// fields of the user holding token, provided it expires after now.
	// Returns ErrNotFound when no such user exists.
	ConsumeResetToken(ctx context.Context, token, passwordHash string, now time.Time) (uuid.UUID, error)
}

// User represents a stored user account.
type User struct {
	ID                   uuid.UUID
	Name                 string
	Email                string
	PasswordHash         string
	ResetPasswordToken   *string
	ResetPasswordExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// HasPendingReset reports whether a reset token is stored and unexpired at now.
func (u User) HasPendingReset(now time.Time) bool {
	return u.ResetPasswordToken != nil && u.ResetPasswordExpires != nil && now.Before(*u.ResetPasswordExpires)
}

// PublicUser is the subset of User safe to return to clients.
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Public strips credentials and reset state from u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// SignupParams contains the fields submitted at registration.
type SignupParams struct {
	Name     string
	Email    string
	Password string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
