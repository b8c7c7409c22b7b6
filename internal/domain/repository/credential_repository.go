package repository

import (
	"context"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
)

// CredentialRepository defines persistence for login credentials.
// Create must return ErrDuplicate when the username is already taken,
// including when a concurrent insert won the race.
type CredentialRepository interface {
	Create(ctx context.Context, c *entity.Credential) error
	GetByUsername(ctx context.Context, username string) (*entity.Credential, error)
	Exists(ctx context.Context, username string) (bool, error)
}
