package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/contactbook-server/internal/model"
)

var userColumnNames = []string{
	"id", "name", "email", "password_hash", "reset_password_token", "reset_password_expires", "created_at", "updated_at",
}

func TestUserRepository_GetByEmail(t *testing.T) {
	id := uuid.New()
	now := time.Now()
	token := "abc"
	expires := now.Add(time.Hour)

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      model.User
		wantErr   error
		errMsg    string
	}{
		{
			name: "found with pending reset",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM users WHERE lower\(email\) = lower\(\$1\)`).
					WithArgs("ann@x.com").
					WillReturnRows(pgxmock.NewRows(userColumnNames).
						AddRow(id.String(), "Ann", "ann@x.com", "hash", &token, &expires, now, now))
			},
			want: model.User{
				ID: id, Name: "Ann", Email: "ann@x.com", PasswordHash: "hash",
				ResetPasswordToken: &token, ResetPasswordExpires: &expires,
				CreatedAt: now, UpdatedAt: now,
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM users`).
					WithArgs("ann@x.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .* FROM users`).
					WithArgs("ann@x.com").
					WillReturnError(errors.New("connection refused"))
			},
			errMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewUserRepository(mock).GetByEmail(context.Background(), "ann@x.com")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err = NewUserRepository(mock).GetByID(context.Background(), id)
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "inserted",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("Ann", "ann@x.com", "hash").
					WillReturnRows(pgxmock.NewRows(userColumnNames).
						AddRow(id.String(), "Ann", "ann@x.com", "hash", (*string)(nil), (*time.Time)(nil), now, now))
			},
		},
		{
			name: "unique violation",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("Ann", "ann@x.com", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			wantErr: model.ErrDuplicateUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewUserRepository(mock).Create(context.Background(), model.User{
				Name: "Ann", Email: "ann@x.com", PasswordHash: "hash",
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, id, got.ID)
				assert.Nil(t, got.ResetPasswordToken)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs(id, "hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs(id, "hash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := NewUserRepository(mock)
	require.NoError(t, repo.UpdatePassword(context.Background(), id, "hash"))
	require.ErrorIs(t, repo.UpdatePassword(context.Background(), id, "hash"), model.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetResetToken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	expires := time.Now().Add(time.Hour)
	mock.ExpectExec(`UPDATE users\s+SET reset_password_token = \$2, reset_password_expires = \$3`).
		WithArgs(id, "tok", expires).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewUserRepository(mock).SetResetToken(context.Background(), id, "tok", expires))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ConsumeResetToken(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		want      uuid.UUID
		wantErr   error
	}{
		{
			name: "valid token",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`UPDATE users\s+SET password_hash = \$2, reset_password_token = NULL, reset_password_expires = NULL.*WHERE reset_password_token = \$1 AND reset_password_expires > \$3\s+RETURNING id`).
					WithArgs("tok", "hash", now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id.String()))
			},
			want: id,
		},
		{
			name: "unknown, expired or used",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`UPDATE users`).
					WithArgs("tok", "hash", now).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			got, err := NewUserRepository(mock).ConsumeResetToken(context.Background(), "tok", "hash", now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
