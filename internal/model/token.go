package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the lifetime of an issued session token.
const SessionTTL = time.Hour

// TokenManager issues and verifies stateless session tokens.
type TokenManager interface {
	Issue(claims Claims) (string, error)
	// Verify returns ErrInvalidToken for bad signatures, malformed or expired
	// tokens, and ErrMalformedClaims when the subject is missing.
	Verify(token string) (Claims, error)
}

// Claims identify the user a session token was issued to.
type Claims struct {
	UserID uuid.UUID
	Email  string
}
