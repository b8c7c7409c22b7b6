package repository

import (
	"context"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
)

// DirectoryRepository defines persistence for directory records.
// Get, Update and Delete return ErrNotFound when no record has the given id.
type DirectoryRepository interface {
	Create(ctx context.Context, username string) (*entity.DirectoryRecord, error)
	List(ctx context.Context) ([]entity.DirectoryRecord, error)
	GetByID(ctx context.Context, id string) (*entity.DirectoryRecord, error)
	UpdateUsername(ctx context.Context, id, username string) (*entity.DirectoryRecord, error)
	Delete(ctx context.Context, id string) error
}
