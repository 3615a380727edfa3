package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/dtroode/contactbook-server/internal/api/http/response"
	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

// AuthService defines registration, login and password reset operations.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (model.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Signup registers a user and returns the new user ID.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	userID, err := h.authService.Signup(r.Context(), model.SignupParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logFailure("signup", err)
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, signupResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login checks credentials and returns a session token with the public user.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logFailure("login", err)
		handleError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// ForgotPassword mails a reset link. The token never appears in the response.
func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email); err != nil {
		h.logFailure("forgot password", err)
		handleError(w, err)
		return
	}

	response.Text(w, http.StatusOK, "Password reset link sent to your email")
}

// ResetPassword redeems the token in the path for a new password.
func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decode(w, r, &req); err != nil {
		handleError(w, err)
		return
	}

	err := h.authService.ResetPassword(r.Context(), mux.Vars(r)["token"], req.Password)
	if err != nil {
		h.logFailure("reset password", err)
		handleError(w, err)
		return
	}

	response.Text(w, http.StatusOK, "Password has been reset successfully")
}

func (h *Auth) logFailure(op string, err error) {
	if status, _ := statusFor(err); status < http.StatusInternalServerError {
		h.logger.Debug("Auth handler: request rejected",
			"operation", op,
			"error", err.Error())
		return
	}
	h.logger.Error("Auth handler: request failed",
		"operation", op,
		"error", err.Error())
}

