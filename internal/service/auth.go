package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dtroode/contactbook-server/internal/credential"
	"github.com/dtroode/contactbook-server/internal/logger"
	"github.com/dtroode/contactbook-server/internal/model"
)

const resetEmailSubject = "Password Reset Request"

// CredentialStore is the only path by which passwords reach the user store.
type CredentialStore interface {
	PasswordResetter
	CreateUser(ctx context.Context, params model.SignupParams) (model.User, error)
	Authenticate(ctx context.Context, email, password string) (model.User, error)
}

type Auth struct {
	users       model.UserStore
	credentials CredentialStore
	tokens      model.TokenManager
	resets      *ResetTokens
	mailer      model.Mailer
	frontendURL string
	logger      *logger.Logger
}

func NewAuth(
	users model.UserStore,
	credentials CredentialStore,
	tokens model.TokenManager,
	mailer model.Mailer,
	frontendURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		resets:      NewResetTokens(users, credentials, logger),
		mailer:      mailer,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      logger,
	}
}

func (a *Auth) Signup(ctx context.Context, params model.SignupParams) (uuid.UUID, error) {
	if strings.TrimSpace(params.Name) == "" || strings.TrimSpace(params.Email) == "" || params.Password == "" {
		return uuid.Nil, fmt.Errorf("%w: name, email and password are required", model.ErrValidation)
	}
	email := credential.NormalizeEmail(params.Email)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return uuid.Nil, model.ErrDuplicateUser
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return uuid.Nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	user, err := a.credentials.CreateUser(ctx, model.SignupParams{
		Name:     strings.TrimSpace(params.Name),
		Email:    email,
		Password: params.Password,
	})
	if err != nil {
		if !errors.Is(err, model.ErrDuplicateUser) {
			a.logger.Error("Auth service: failed to create user",
				"email", email,
				"error", err.Error())
		}
		return uuid.Nil, err
	}

	a.logger.Info("Auth service: user registration completed successfully",
		"email", email,
		"user_id", user.ID)

	return user.ID, nil
}

func (a *Auth) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return model.LoginResult{}, fmt.Errorf("%w: email and password are required", model.ErrValidation)
	}

	user, err := a.credentials.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Info("Auth service: login rejected",
				"email", credential.NormalizeEmail(email))
		}
		return model.LoginResult{}, err
	}

	token, err := a.tokens.Issue(model.Claims{UserID: user.ID, Email: user.Email})
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed successfully",
		"user_id", user.ID)

	return model.LoginResult{Token: token, User: user.Public()}, nil
}

// ForgotPassword stores a fresh reset token for email and mails a reset link.
// The token is persisted before the mail goes out.
func (a *Auth) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", model.ErrValidation)
	}
	email = credential.NormalizeEmail(email)

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	token, err := a.resets.IssueResetToken(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue reset token",
			"user_id", user.ID,
			"error", err.Error())
		return err
	}

	err = a.mailer.Send(ctx, model.Message{
		To:      user.Email,
		Subject: resetEmailSubject,
		Body:    a.resetEmailBody(token),
	})
	if err != nil {
		a.logger.Error("Auth service: failed to send reset email",
			"user_id", user.ID,
			"error", err.Error())
		return errors.Join(model.ErrEmailDispatch, err)
	}

	a.logger.Info("Auth service: reset email sent",
		"user_id", user.ID)

	return nil
}

func (a *Auth) ResetPassword(ctx context.Context, token, password string) error {
	if password == "" {
		return fmt.Errorf("%w: password is required", model.ErrValidation)
	}

	return a.resets.ConsumeResetToken(ctx, token, password)
}

// Authenticate resolves a session token to the user ID it was issued for.
func (a *Auth) Authenticate(_ context.Context, token string) (uuid.UUID, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}

func (a *Auth) resetEmailBody(token string) string {
	return fmt.Sprintf("You requested a password reset. Click the link to reset your password: %s",
		a.ResetLink(token))
}

// ResetLink is the frontend URL a user follows to redeem token.
func (a *Auth) ResetLink(token string) string {
	return a.frontendURL + "/reset-password/" + token
}
