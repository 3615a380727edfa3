package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")

	ErrValidation            = errors.New("validation failed")
	ErrDuplicateUser         = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrEmailDispatch         = errors.New("failed to send email")

	// ErrInvalidToken and ErrMalformedClaims are session token failures.
	ErrInvalidToken    = errors.New("invalid token")
	ErrMalformedClaims = errors.New("invalid token payload")
)
