package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/internal/domain/repository"
)

type DirectoryRepository struct {
	db executor
}

func NewDirectoryRepository(db executor) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) Create(ctx context.Context, username string) (*entity.DirectoryRecord, error) {
	rec := &entity.DirectoryRecord{}
	row := r.db.QueryRow(ctx, `
		INSERT INTO directory_records (username)
		VALUES ($1)
		RETURNING id::text, username, created_at, updated_at
	`, username)

	if err := row.Scan(&rec.ID, &rec.Username, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *DirectoryRepository) List(ctx context.Context) ([]entity.DirectoryRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text, username, created_at, updated_at
		FROM directory_records
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.DirectoryRecord, 0)
	for rows.Next() {
		var rec entity.DirectoryRecord
		if err := rows.Scan(&rec.ID, &rec.Username, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DirectoryRepository) GetByID(ctx context.Context, id string) (*entity.DirectoryRecord, error) {
	rec := &entity.DirectoryRecord{}
	row := r.db.QueryRow(ctx, `
		SELECT id::text, username, created_at, updated_at
		FROM directory_records
		WHERE id = $1
	`, id)

	if err := row.Scan(&rec.ID, &rec.Username, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// UpdateUsername is a single conditional UPDATE; no matching row means ErrNotFound.
func (r *DirectoryRepository) UpdateUsername(ctx context.Context, id, username string) (*entity.DirectoryRecord, error) {
	rec := &entity.DirectoryRecord{}
	row := r.db.QueryRow(ctx, `
		UPDATE directory_records
		SET username = $1, updated_at = now()
		WHERE id = $2
		RETURNING id::text, username, created_at, updated_at
	`, username, id)

	if err := row.Scan(&rec.ID, &rec.Username, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (r *DirectoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM directory_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.DirectoryRepository = (*DirectoryRepository)(nil)
