// Package cache decorates repositories with Redis read-through caching.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/internal/domain/entity"
	"github.com/oksasatya/go-user-directory/internal/domain/repository"
	"github.com/oksasatya/go-user-directory/pkg/helpers"
)

// DirectoryRepository caches the full listing and single-record reads in Redis.
// Every write goes to the inner repository first and then drops the affected keys.
// Redis errors never fail an operation: reads fall through to the inner repository.
type DirectoryRepository struct {
	inner     repository.DirectoryRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	logger    *logrus.Logger
}

// NewDirectoryRepository wraps inner. ttl defaults to one minute, namespace to "directory".
func NewDirectoryRepository(rdb *redis.Client, ttl time.Duration, inner repository.DirectoryRepository, namespace string, logger *logrus.Logger) *DirectoryRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "directory"
	}
	return &DirectoryRepository{inner: inner, rdb: rdb, ttl: ttl, namespace: namespace, logger: logger}
}

func (c *DirectoryRepository) listKey() string { return c.namespace + ":records" }

func (c *DirectoryRepository) recordKey(id string) string { return c.namespace + ":record:" + id }

func (c *DirectoryRepository) Create(ctx context.Context, username string) (*entity.DirectoryRecord, error) {
	rec, err := c.inner.Create(ctx, username)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, c.listKey())
	return rec, nil
}

func (c *DirectoryRepository) List(ctx context.Context) ([]entity.DirectoryRecord, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}
	var cached []entity.DirectoryRecord
	hit, err := helpers.RedisGetJSON(ctx, c.rdb, c.listKey(), &cached)
	if err != nil {
		c.warn(err, c.listKey(), "cache read failed")
	}
	if hit && cached != nil {
		return cached, nil
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := helpers.RedisSetJSON(ctx, c.rdb, c.listKey(), out, c.ttl); err != nil {
		c.warn(err, c.listKey(), "cache write failed")
	}
	return out, nil
}

func (c *DirectoryRepository) GetByID(ctx context.Context, id string) (*entity.DirectoryRecord, error) {
	if c.rdb == nil {
		return c.inner.GetByID(ctx, id)
	}
	key := c.recordKey(id)
	var cached entity.DirectoryRecord
	hit, err := helpers.RedisGetJSON(ctx, c.rdb, key, &cached)
	if err != nil {
		c.warn(err, key, "cache read failed")
	}
	if hit {
		return &cached, nil
	}

	rec, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := helpers.RedisSetJSON(ctx, c.rdb, key, rec, c.ttl); err != nil {
		c.warn(err, key, "cache write failed")
	}
	return rec, nil
}

func (c *DirectoryRepository) UpdateUsername(ctx context.Context, id, username string) (*entity.DirectoryRecord, error) {
	rec, err := c.inner.UpdateUsername(ctx, id, username)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, c.listKey(), c.recordKey(id))
	return rec, nil
}

func (c *DirectoryRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, c.listKey(), c.recordKey(id))
	return nil
}

func (c *DirectoryRepository) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	for _, k := range keys {
		if err := helpers.RedisDel(ctx, c.rdb, k); err != nil {
			c.warn(err, k, "cache invalidation failed")
		}
	}
}

func (c *DirectoryRepository) warn(err error, key, msg string) {
	if c.logger == nil {
		return
	}
	c.logger.WithError(err).WithField("key", key).Warn(msg)
}

var _ repository.DirectoryRepository = (*DirectoryRepository)(nil)
