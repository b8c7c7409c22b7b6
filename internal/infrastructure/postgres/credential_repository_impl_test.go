package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/internal/domain/repository"
)

func TestCredentialRepository_Create(t *testing.T) {
	t.Run("inserts and stamps created_at", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCredentialRepository(mock)
		now := time.Now().UTC()

		mock.ExpectQuery(`INSERT INTO credentials \(username, password_hash\)`).
			WithArgs("alice", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

		c := &entity.Credential{Username: "alice", PasswordHash: "hash"}
		require.NoError(t, repo.Create(context.Background(), c))
		assert.Equal(t, now, c.CreatedAt)
	})

	t.Run("unique violation maps to ErrDuplicate", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCredentialRepository(mock)

		mock.ExpectQuery(`INSERT INTO credentials`).
			WithArgs("alice", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "credentials_pkey"})

		err := repo.Create(context.Background(), &entity.Credential{Username: "alice", PasswordHash: "hash"})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCredentialRepository(mock)
		boom := errors.New("conn reset")

		mock.ExpectQuery(`INSERT INTO credentials`).
			WithArgs("alice", "hash").
			WillReturnError(boom)

		err := repo.Create(context.Background(), &entity.Credential{Username: "alice", PasswordHash: "hash"})
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, repository.ErrDuplicate)
	})
}

func TestCredentialRepository_GetByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCredentialRepository(mock)
		now := time.Now().UTC()

		mock.ExpectQuery(`FROM credentials\s+WHERE username = \$1`).
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows([]string{"username", "password_hash", "created_at"}).
				AddRow("alice", "hash", now))

		c, err := repo.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "alice", c.Username)
		assert.Equal(t, "hash", c.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewCredentialRepository(mock)

		mock.ExpectQuery(`FROM credentials`).
			WithArgs("bob").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByUsername(context.Background(), "bob")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCredentialRepository_Exists(t *testing.T) {
	for _, want := range []bool{true, false} {
		t.Run(fmt.Sprint(want), func(t *testing.T) {
			mock := newMock(t)
			repo := NewCredentialRepository(mock)

			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs("alice").
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(want))

			got, err := repo.Exists(context.Background(), "alice")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23514"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
}
