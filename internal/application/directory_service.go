package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	repo "github.com/oksasatya/go-user-directory/internal/domain/repository"
	"github.com/oksasatya/go-user-directory/pkg/audit"
)

// DirectoryService manages display-name records.
type DirectoryService struct {
	Repo      repo.DirectoryRepository
	Events    EventPublisher
	Logger    *logrus.Logger
	OpTimeout time.Duration
}

func NewDirectoryService(repo repo.DirectoryRepository, events EventPublisher, logger *logrus.Logger, opTimeout time.Duration) *DirectoryService {
	return &DirectoryService{
		Repo:      repo,
		Events:    events,
		Logger:    logger,
		OpTimeout: opTimeout,
	}
}

// Add stores a new record. The username may be empty and is not checked for duplicates.
func (s *DirectoryService) Add(ctx context.Context, username string) (*entity.DirectoryRecord, error) {
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	rec, err := s.Repo.Create(ctx, username)
	if err != nil {
		return nil, storageFailure(s.Logger, "add record", err)
	}
	publish(ctx, s.Events, s.Logger, audit.New(audit.RecordAdded, rec.ID))
	return rec, nil
}

// List returns every stored record. An empty directory yields an empty slice.
func (s *DirectoryService) List(ctx context.Context) ([]entity.DirectoryRecord, error) {
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	recs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storageFailure(s.Logger, "list records", err)
	}
	if recs == nil {
		recs = []entity.DirectoryRecord{}
	}
	return recs, nil
}

func (s *DirectoryService) Get(ctx context.Context, id string) (*entity.DirectoryRecord, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	rec, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageFailure(s.Logger, "get record", err)
	}
	return rec, nil
}

// Update replaces the username of an existing record and returns the result.
func (s *DirectoryService) Update(ctx context.Context, id, username string) (*entity.DirectoryRecord, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	rec, err := s.Repo.UpdateUsername(ctx, id, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageFailure(s.Logger, "update record", err)
	}
	publish(ctx, s.Events, s.Logger, audit.New(audit.RecordUpdated, rec.ID))
	return rec, nil
}

func (s *DirectoryService) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return storageFailure(s.Logger, "delete record", err)
	}
	publish(ctx, s.Events, s.Logger, audit.New(audit.RecordDeleted, id))
	return nil
}

// ids are uuids; anything else cannot name a stored record.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
