package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/contactbook-server/internal/api/http/response"
	"github.com/dtroode/contactbook-server/internal/model"
)

// errRequestBody reports an unreadable or non-JSON request body.
var errRequestBody = errors.New("invalid request body")

// handleError writes the status and message err maps to. Anything not
// recognised becomes a 500 that reveals nothing about the cause.
func handleError(w http.ResponseWriter, err error) {
	status, msg := statusFor(err)
	response.Text(w, status, msg)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, errRequestBody):
		return http.StatusBadRequest, "Invalid request body"
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, model.ErrDuplicateUser):
		return http.StatusBadRequest, "User already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials"
	case errors.Is(err, model.ErrInvalidOrExpiredToken):
		return http.StatusBadRequest, "Invalid or expired token"
	case errors.Is(err, model.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, "Contact not found"
	case errors.Is(err, model.ErrMalformedClaims):
		return http.StatusUnauthorized, "Invalid token payload"
	case errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid token"
	case errors.Is(err, model.ErrEmailDispatch):
		return http.StatusInternalServerError, "Failed to send reset email"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}
