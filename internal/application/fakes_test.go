package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/internal/domain/repository"
	"github.com/oksasatya/go-user-directory/pkg/audit"
)

// memoryDirectory is an in-memory DirectoryRepository.
type memoryDirectory struct {
	mu      sync.Mutex
	records map[string]entity.DirectoryRecord
	seq     int
}

func newMemoryDirectory() *memoryDirectory {
	return &memoryDirectory{records: map[string]entity.DirectoryRecord{}}
}

func (m *memoryDirectory) Create(_ context.Context, username string) (*entity.DirectoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	now := time.Unix(int64(m.seq), 0).UTC()
	rec := entity.DirectoryRecord{ID: uuid.NewString(), Username: username, CreatedAt: now, UpdatedAt: now}
	m.records[rec.ID] = rec
	return &rec, nil
}

func (m *memoryDirectory) List(_ context.Context) ([]entity.DirectoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.DirectoryRecord, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryDirectory) GetByID(_ context.Context, id string) (*entity.DirectoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &r, nil
}

func (m *memoryDirectory) UpdateUsername(_ context.Context, id, username string) (*entity.DirectoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Username = username
	r.UpdatedAt = r.UpdatedAt.Add(time.Second)
	m.records[id] = r
	return &r, nil
}

func (m *memoryDirectory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// memoryCredentials is an in-memory CredentialRepository. Create enforces the
// unique key the way the credentials table does; Exists takes no lock across
// the later Create, so the check-then-insert race is real.
type memoryCredentials struct {
	mu    sync.Mutex
	creds map[string]entity.Credential
}

func newMemoryCredentials() *memoryCredentials {
	return &memoryCredentials{creds: map[string]entity.Credential{}}
}

func (m *memoryCredentials) Create(_ context.Context, c *entity.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[c.Username]; ok {
		return repository.ErrDuplicate
	}
	c.CreatedAt = time.Now().UTC()
	m.creds[c.Username] = *c
	return nil
}

func (m *memoryCredentials) GetByUsername(_ context.Context, username string) (*entity.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memoryCredentials) Exists(_ context.Context, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.creds[username]
	return ok, nil
}

func (m *memoryCredentials) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.creds)
}

// mockCredentialRepo lets a test override individual calls.
type mockCredentialRepo struct {
	CreateFunc        func(ctx context.Context, c *entity.Credential) error
	GetByUsernameFunc func(ctx context.Context, username string) (*entity.Credential, error)
	ExistsFunc        func(ctx context.Context, username string) (bool, error)
}

func (m *mockCredentialRepo) Create(ctx context.Context, c *entity.Credential) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCredentialRepo) GetByUsername(ctx context.Context, username string) (*entity.Credential, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, repository.ErrNotFound
}

func (m *mockCredentialRepo) Exists(ctx context.Context, username string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, username)
	}
	return false, nil
}

// mockDirectoryRepo fails every call with err.
type mockDirectoryRepo struct {
	err error
}

func (m mockDirectoryRepo) Create(context.Context, string) (*entity.DirectoryRecord, error) {
	return nil, m.err
}
func (m mockDirectoryRepo) List(context.Context) ([]entity.DirectoryRecord, error) { return nil, m.err }
func (m mockDirectoryRepo) GetByID(context.Context, string) (*entity.DirectoryRecord, error) {
	return nil, m.err
}
func (m mockDirectoryRepo) UpdateUsername(context.Context, string, string) (*entity.DirectoryRecord, error) {
	return nil, m.err
}
func (m mockDirectoryRepo) Delete(context.Context, string) error { return m.err }

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []audit.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e audit.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
