// Package memory provides in-process stores for development and tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository keeps users in a map guarded by a mutex. Every method
// holds the lock for its whole read-modify-write, which makes token
// consumption and email uniqueness atomic.
type UserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[uuid.UUID]model.User)}
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return clone(u), nil
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return model.User{}, model.ErrDuplicateUser
		}
	}

	user.ID = uuid.New()
	user.ResetPasswordToken = nil
	user.ResetPasswordExpires = nil
	r.users[user.ID] = user
	return clone(user), nil
}

func (r *UserRepository) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *UserRepository) SetResetToken(_ context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.ResetPasswordToken = &token
	u.ResetPasswordExpires = &expiresAt
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *UserRepository) ConsumeResetToken(_ context.Context, token, passwordHash string, now time.Time) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, u := range r.users {
		if u.ResetPasswordToken == nil || *u.ResetPasswordToken != token {
			continue
		}
		if u.ResetPasswordExpires == nil || !u.ResetPasswordExpires.After(now) {
			return uuid.Nil, model.ErrNotFound
		}

		u.PasswordHash = passwordHash
		u.ResetPasswordToken = nil
		u.ResetPasswordExpires = nil
		u.UpdatedAt = now
		r.users[id] = u
		return id, nil
	}

	return uuid.Nil, model.ErrNotFound
}

func clone(u model.User) model.User {
	if u.ResetPasswordToken != nil {
		t := *u.ResetPasswordToken
		u.ResetPasswordToken = &t
	}
	if u.ResetPasswordExpires != nil {
		e := *u.ResetPasswordExpires
		u.ResetPasswordExpires = &e
	}
	return u
}
