package main

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/config"
	"github.com/oksasatya/go-user-directory/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN())
	if err != nil {
		logger.WithError(err).Fatal("failed to open db")
	}
	defer pool.Close()

	displayName := "demoUser"
	username := "demo"
	password := "password123"

	var id string
	err = pool.QueryRow(ctx, `SELECT id::text FROM directory_records WHERE username = $1 ORDER BY created_at LIMIT 1`, displayName).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		if err := pool.QueryRow(ctx, `INSERT INTO directory_records (username) VALUES ($1) RETURNING id::text`, displayName).Scan(&id); err != nil {
			logger.WithError(err).Fatal("failed to seed directory record")
		}
	case err != nil:
		logger.WithError(err).Fatal("failed to look up directory record")
	}
	logger.WithField("id", id).WithField("username", displayName).Info("directory record ensured")

	if err := seedCredential(ctx, pool, logger, username, password); err != nil {
		logger.WithError(err).Fatal("failed to seed credential")
	}
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// seedCredential registers username unless it already exists. Only the username is logged.
func seedCredential(ctx context.Context, db execer, logger *logrus.Logger, username, password string) error {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}
	tag, err := db.Exec(ctx, `
		INSERT INTO credentials (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, username, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		logger.WithField("username", username).Info("credential already registered")
		return nil
	}
	logger.WithField("username", username).Info("seeded credential")
	return nil
}
