package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/internal/domain/repository"
)

type CredentialRepository struct {
	db executor
}

func NewCredentialRepository(db executor) *CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts c. The primary key on username turns a concurrent duplicate
// into a unique violation, reported as repository.ErrDuplicate.
func (r *CredentialRepository) Create(ctx context.Context, c *entity.Credential) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO credentials (username, password_hash)
		VALUES ($1, $2)
		RETURNING created_at
	`, c.Username, c.PasswordHash)

	if err := row.Scan(&c.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *CredentialRepository) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	c := &entity.Credential{}
	row := r.db.QueryRow(ctx, `
		SELECT username, password_hash, created_at
		FROM credentials
		WHERE username = $1
	`, username)

	if err := row.Scan(&c.Username, &c.PasswordHash, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CredentialRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM credentials WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

var _ repository.CredentialRepository = (*CredentialRepository)(nil)
