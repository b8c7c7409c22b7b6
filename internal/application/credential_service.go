package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	repo "github.com/oksasatya/go-user-directory/internal/domain/repository"
	"github.com/oksasatya/go-user-directory/pkg/audit"
	"github.com/oksasatya/go-user-directory/pkg/helpers"
)

// CredentialService registers and authenticates username/password pairs.
type CredentialService struct {
	Repo      repo.CredentialRepository
	Hasher    PasswordHasher
	Events    EventPublisher
	Logger    *logrus.Logger
	OpTimeout time.Duration

	// compared against when the username is unknown so both failure paths cost one hash check
	dummyHash string
}

// NewCredentialService fails when the hasher cannot produce the dummy hash,
// since unknown-user lookups would then skip the compare.
func NewCredentialService(repo repo.CredentialRepository, hasher PasswordHasher, events EventPublisher, logger *logrus.Logger, opTimeout time.Duration) (*CredentialService, error) {
	dummy, err := hasher.Hash("dummy-password-for-timing")
	if err != nil {
		return nil, fmt.Errorf("dummy hash: %w", err)
	}
	return &CredentialService{
		Repo:      repo,
		Hasher:    hasher,
		Events:    events,
		Logger:    logger,
		OpTimeout: opTimeout,
		dummyHash: dummy,
	}, nil
}

// Register creates a credential for username. The existence check runs first,
// but the store's unique key on username is what guarantees uniqueness when
// two registrations race.
func (s *CredentialService) Register(ctx context.Context, username, password string) (*entity.Credential, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	exists, err := s.Repo.Exists(ctx, username)
	if err != nil {
		return nil, storageFailure(s.Logger, "check username", err)
	}
	if exists {
		return nil, ErrDuplicateUsername
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		if errors.Is(err, helpers.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c := &entity.Credential{Username: username, PasswordHash: hash}
	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateUsername
		}
		return nil, storageFailure(s.Logger, "create credential", err)
	}
	publish(ctx, s.Events, s.Logger, audit.New(audit.CredentialRegistered, username))
	return c, nil
}

// Authenticate verifies password against the stored hash for username.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *CredentialService) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}
	ctx, cancel := opContext(ctx, s.OpTimeout)
	defer cancel()

	c, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return storageFailure(s.Logger, "get credential", err)
		}
		s.Hasher.Compare(s.dummyHash, password)
		publish(ctx, s.Events, s.Logger, audit.New(audit.CredentialAuthFailed, username))
		return ErrInvalidCredentials
	}

	if !s.Hasher.Compare(c.PasswordHash, password) {
		publish(ctx, s.Events, s.Logger, audit.New(audit.CredentialAuthFailed, username))
		return ErrInvalidCredentials
	}
	publish(ctx, s.Events, s.Logger, audit.New(audit.CredentialAuthenticated, username))
	return nil
}
