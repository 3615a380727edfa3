package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

// resetTokenBytes is the amount of randomness in a reset token; the
// hex-encoded token is twice as long.
const resetTokenBytes = 32

// PasswordResetter swaps in a new password for the holder of a reset token.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, password string, now time.Time) (uuid.UUID, error)
}

// ResetTokens issues and consumes single-use password reset tokens.
//
// Tokens are stored on the user record as issued and looked up by their raw
// value. Issuing a new token overwrites any pending one.
type ResetTokens struct {
	users     model.UserStore
	passwords PasswordResetter
	logger    *logger.Logger
	ttl       time.Duration
	now       func() time.Time
	random    io.Reader
}

func NewResetTokens(users model.UserStore, passwords PasswordResetter, logger *logger.Logger) *ResetTokens {
	return &ResetTokens{
		users:     users,
		passwords: passwords,
		logger:    logger,
		ttl:       model.ResetTokenTTL,
		now:       time.Now,
		random:    rand.Reader,
	}
}

// IssueResetToken generates a token for user, persists it with its expiry
// and returns it.
func (r *ResetTokens) IssueResetToken(ctx context.Context, user model.User) (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := io.ReadFull(r.random, buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(buf)
	expiresAt := r.now().Add(r.ttl)

	if err := r.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	r.logger.Debug("Reset tokens: token issued",
		"user_id", user.ID,
		"expires_at", expiresAt)

	return token, nil
}

// ConsumeResetToken sets newPassword on the user holding token and clears
// the token. Unknown, expired or already used tokens yield
// model.ErrInvalidOrExpiredToken.
func (r *ResetTokens) ConsumeResetToken(ctx context.Context, token, newPassword string) error {
	if len(token) != 2*resetTokenBytes {
		return model.ErrInvalidOrExpiredToken
	}
	if _, err := hex.DecodeString(token); err != nil {
		return model.ErrInvalidOrExpiredToken
	}

	userID, err := r.passwords.ResetPassword(ctx, token, newPassword, r.now())
	if err != nil {
		return err
	}

	r.logger.Info("Reset tokens: password reset", "user_id", userID)

	return nil
}
