package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/contactbook-server/internal/credential"
	"github.com/dtroode/contactbook-server/internal/mocks"
	"github.com/dtroode/contactbook-server/internal/model"
	"github.com/dtroode/contactbook-server/internal/repository/memory"
	"github.com/dtroode/contactbook-server/internal/testutil"
)

func newMemoryResetTokens(t *testing.T) (*ResetTokens, *memory.UserRepository, model.User) {
	t.Helper()
	users := memory.NewUserRepository()
	user, err := users.Create(context.Background(), model.User{Name: "Ann", Email: "ann@x.com", PasswordHash: "old"})
	require.NoError(t, err)

	creds := credential.NewStore(users, credential.NewHasher(bcrypt.MinCost, 1))
	return NewResetTokens(users, creds, testutil.MakeNoopLogger()), users, user
}

func TestResetTokens_Issue(t *testing.T) {
	r, users, user := newMemoryResetTokens(t)
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time { return now }

	tok, err := r.IssueResetToken(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, tok, 64)
	assert.Equal(t, strings.ToLower(tok), tok)

	stored, err := users.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ResetPasswordToken)
	require.NotNil(t, stored.ResetPasswordExpires)
	assert.Equal(t, tok, *stored.ResetPasswordToken)
	assert.Equal(t, now.Add(time.Hour), *stored.ResetPasswordExpires)
}

func TestResetTokens_Issue_RandomFailure(t *testing.T) {
	r, _, user := newMemoryResetTokens(t)
	r.random = bytes.NewReader(nil)

	_, err := r.IssueResetToken(context.Background(), user)
	require.Error(t, err)
}

func TestResetTokens_ConsumeOnce(t *testing.T) {
	ctx := context.Background()
	r, users, user := newMemoryResetTokens(t)

	tok, err := r.IssueResetToken(ctx, user)
	require.NoError(t, err)

	require.NoError(t, r.ConsumeResetToken(ctx, tok, "newpw"))
	err = r.ConsumeResetToken(ctx, tok, "again")
	require.ErrorIs(t, err, model.ErrInvalidOrExpiredToken)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ResetPasswordToken)
	assert.Nil(t, stored.ResetPasswordExpires)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpw")))
}

func TestResetTokens_Expired(t *testing.T) {
	ctx := context.Background()
	r, users, user := newMemoryResetTokens(t)
	issued := time.Now()
	r.now = func() time.Time { return issued }

	tok, err := r.IssueResetToken(ctx, user)
	require.NoError(t, err)

	r.now = func() time.Time { return issued.Add(model.ResetTokenTTL) }
	err = r.ConsumeResetToken(ctx, tok, "newpw")
	require.ErrorIs(t, err, model.ErrInvalidOrExpiredToken)

	stored, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "old", stored.PasswordHash)
}

func TestResetTokens_NewTokenInvalidatesPrevious(t *testing.T) {
	ctx := context.Background()
	r, _, user := newMemoryResetTokens(t)

	first, err := r.IssueResetToken(ctx, user)
	require.NoError(t, err)
	second, err := r.IssueResetToken(ctx, user)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	require.ErrorIs(t, r.ConsumeResetToken(ctx, first, "pw"), model.ErrInvalidOrExpiredToken)
	require.NoError(t, r.ConsumeResetToken(ctx, second, "pw"))
}

func TestResetTokens_MalformedTokenSkipsStore(t *testing.T) {
	users := &mocks.UserStore{}
	creds := credential.NewStore(users, credential.NewHasher(bcrypt.MinCost, 1))
	r := NewResetTokens(users, creds, testutil.MakeNoopLogger())

	for _, tok := range []string{"", "short", strings.Repeat("z", 64)} {
		require.ErrorIs(t, r.ConsumeResetToken(context.Background(), tok, "pw"), model.ErrInvalidOrExpiredToken)
	}
	users.AssertNotCalled(t, "ConsumeResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResetTokens_StoreFailure(t *testing.T) {
	users := &mocks.UserStore{}
	users.On("SetResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("write failed"))
	creds := credential.NewStore(users, credential.NewHasher(bcrypt.MinCost, 1))
	r := NewResetTokens(users, creds, testutil.MakeNoopLogger())

	_, err := r.IssueResetToken(context.Background(), model.User{ID: uuid.New()})
	require.Error(t, err)
}
