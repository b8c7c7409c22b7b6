// Package container holds the components constructed at startup and builds
// the services the router needs from them. It replaces package-level singletons:
// every dependency is a field set explicitly by cmd/main.go.
package container

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/config"
	"github.com/oksasatya/go-user-directory/internal/application"
	"github.com/oksasatya/go-user-directory/internal/domain/repository"
	"github.com/oksasatya/go-user-directory/internal/infrastructure/cache"
	pginfra "github.com/oksasatya/go-user-directory/internal/infrastructure/postgres"
	"github.com/oksasatya/go-user-directory/pkg/helpers"
)

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	PGPool *pgxpool.Pool

	// Redis is nil when the directory cache is disabled.
	Redis *redis.Client
	// Publisher is nil when audit publishing is disabled.
	Publisher *helpers.RabbitPublisher
	Hasher    *helpers.PasswordHasher
	Metrics   *prometheus.Registry
}

// DirectoryRepository returns the postgres repository, wrapped by the Redis cache when configured.
func (c *Container) DirectoryRepository() repository.DirectoryRepository {
	var repo repository.DirectoryRepository = pginfra.NewDirectoryRepository(c.PGPool)
	if c.Redis != nil && c.Config.DirectoryCacheEnabled {
		repo = cache.NewDirectoryRepository(c.Redis, c.Config.DirectoryCacheTTL, repo, c.Config.AppName+":directory", c.Logger)
	}
	return repo
}

func (c *Container) CredentialRepository() repository.CredentialRepository {
	return pginfra.NewCredentialRepository(c.PGPool)
}

func (c *Container) DirectoryService() *application.DirectoryService {
	return application.NewDirectoryService(c.DirectoryRepository(), c.events(), c.Logger, c.Config.DBOpTimeout)
}

func (c *Container) CredentialService() (*application.CredentialService, error) {
	return application.NewCredentialService(c.CredentialRepository(), c.Hasher, c.events(), c.Logger, c.Config.DBOpTimeout)
}

// events avoids handing the services a non-nil interface around a nil publisher.
func (c *Container) events() application.EventPublisher {
	if c.Publisher == nil {
		return nil
	}
	return c.Publisher
}

// HealthChecks probes postgres, and redis when it is in use.
func (c *Container) HealthChecks() map[string]func(ctx context.Context) error {
	checks := map[string]func(ctx context.Context) error{
		"postgres": func(ctx context.Context) error { return c.PGPool.Ping(ctx) },
	}
	if c.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() }
	}
	return checks
}

// Close releases the clients in reverse order of construction.
func (c *Container) Close() {
	c.Publisher.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil && c.Logger != nil {
			c.Logger.WithError(err).Warn("redis close failed")
		}
	}
	if c.PGPool != nil {
		c.PGPool.Close()
	}
}
