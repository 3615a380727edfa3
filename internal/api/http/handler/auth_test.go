package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contactbook-server/internal/mocks"
	"github.com/dtroode/contactbook-server/internal/model"
	"github.com/dtroode/contactbook-server/internal/testutil"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuth_Signup(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mocks.AuthService)
		wantStatus int
		check      func(t *testing.T, body map[string]any)
	}{
		{
			name: "created",
			body: `{"name":"Ann","email":"ann@x.com","password":"pw1"}`,
			setupMock: func(m *mocks.AuthService) {
				m.On("Signup", mock.Anything, model.SignupParams{Name: "Ann", Email: "ann@x.com", Password: "pw1"}).
					Return(userID, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "User registered successfully", body["message"])
				assert.Equal(t, userID.String(), body["userId"])
			},
		},
		{
			name: "duplicate",
			body: `{"name":"Ann","email":"ann@x.com","password":"pw1"}`,
			setupMock: func(m *mocks.AuthService) {
				m.On("Signup", mock.Anything, mock.Anything).Return(uuid.Nil, model.ErrDuplicateUser)
			},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "User already exists", body["message"])
			},
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Invalid request body", body["message"])
			},
		},
		{
			name: "store failure hides details",
			body: `{"name":"Ann","email":"ann@x.com","password":"pw1"}`,
			setupMock: func(m *mocks.AuthService) {
				m.On("Signup", mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("dial tcp: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Server error", body["message"])
				assert.Len(t, body, 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.AuthService{}
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}
			h := NewAuth(svc, testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Signup(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			tt.check(t, decodeBody(t, rec))
			svc.AssertExpectations(t)
		})
	}
}

func TestAuth_Login(t *testing.T) {
	user := model.PublicUser{ID: uuid.New(), Name: "Ann", Email: "ann@x.com"}

	t.Run("success", func(t *testing.T) {
		svc := &mocks.AuthService{}
		svc.On("Login", mock.Anything, "ann@x.com", "pw1").Return(model.LoginResult{Token: "jwt", User: user}, nil)

		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).Login(rec,
			httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ann@x.com","password":"pw1"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"token":"jwt","user":{"id":"`+user.ID.String()+`","name":"Ann","email":"ann@x.com"}}`,
			rec.Body.String())
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &mocks.AuthService{}
		svc.On("Login", mock.Anything, "ann@x.com", "nope").Return(model.LoginResult{}, model.ErrInvalidCredentials)

		rec := httptest.NewRecorder()
		NewAuth(svc, testutil.MakeNoopLogger()).Login(rec,
			httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"ann@x.com","password":"nope"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["message"])
	})
}

func TestAuth_ForgotPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"sent", nil, http.StatusOK, "Password reset link sent to your email"},
		{"unknown user", model.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{"mail failure", errors.Join(model.ErrEmailDispatch, errors.New("relay down")), http.StatusInternalServerError, "Failed to send reset email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.AuthService{}
			svc.On("ForgotPassword", mock.Anything, "ann@x.com").Return(tt.err)

			rec := httptest.NewRecorder()
			NewAuth(svc, testutil.MakeNoopLogger()).ForgotPassword(rec,
				httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(`{"email":"ann@x.com"}`)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.NotContains(t, body, "token")
		})
	}
}

func TestAuth_ResetPassword(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"reset", nil, http.StatusOK, "Password has been reset successfully"},
		{"expired or used", model.ErrInvalidOrExpiredToken, http.StatusBadRequest, "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mocks.AuthService{}
			svc.On("ResetPassword", mock.Anything, "abc123", "newpw").Return(tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/reset-password/abc123", strings.NewReader(`{"password":"newpw"}`))
			req = mux.SetURLVars(req, map[string]string{"token": "abc123"})
			rec := httptest.NewRecorder()
			NewAuth(svc, testutil.MakeNoopLogger()).ResetPassword(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeBody(t, rec)["message"])
			svc.AssertExpectations(t)
		})
	}
}
