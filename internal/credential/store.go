package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/model"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, hash string) bool
}

// Store writes users and passwords through to a UserStore, hashing every
// plaintext password exactly once on the way in.
type Store struct {
	users  model.UserStore
	hasher PasswordHasher
}

// NewStore creates a credential Store.
func NewStore(users model.UserStore, hasher PasswordHasher) *Store {
	return &Store{users: users, hasher: hasher}
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser hashes params.Password and inserts a new user.
func (s *Store) CreateUser(ctx context.Context, params model.SignupParams) (model.User, error) {
	hash, err := s.hasher.Hash(ctx, params.Password)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now()
	user, err := s.users.Create(ctx, model.User{
		Name:         params.Name,
		Email:        NormalizeEmail(params.Email),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdatePassword replaces the stored password of user id.
func (s *Store) UpdatePassword(ctx context.Context, id uuid.UUID, password string) error {
	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// ResetPassword sets password on the user holding an unexpired reset token
// and clears the token in the same write. It returns
// model.ErrInvalidOrExpiredToken when no user matches.
func (s *Store) ResetPassword(ctx context.Context, token, password string, now time.Time) (uuid.UUID, error) {
	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.users.ConsumeResetToken(ctx, token, hash, now)
	if errors.Is(err, model.ErrNotFound) {
		return uuid.Nil, model.ErrInvalidOrExpiredToken
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to consume reset token: %w", err)
	}

	return id, nil
}

// Authenticate returns the user with email if password matches. Unknown
// email and wrong password both yield model.ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !s.hasher.Verify(ctx, password, user.PasswordHash) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}
