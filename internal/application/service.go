package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/pkg/audit"
)

// DefaultOpTimeout bounds a single store operation when no timeout is configured.
const DefaultOpTimeout = 5 * time.Second

// EventPublisher receives audit events. Delivery is best effort.
type EventPublisher interface {
	Publish(ctx context.Context, e audit.Event) error
}

// PasswordHasher hashes new passwords and verifies candidates against a stored hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

func opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultOpTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func storageFailure(logger *logrus.Logger, op string, err error) error {
	if logger != nil {
		logger.WithError(err).WithField("op", op).Error("storage operation failed")
	}
	return fmt.Errorf("%w: %s: %v", ErrStorageFailure, op, err)
}

func publish(ctx context.Context, pub EventPublisher, logger *logrus.Logger, e audit.Event) {
	if pub == nil {
		return
	}
	e = audit.Stamp(ctx, e)
	if err := pub.Publish(ctx, e); err != nil && logger != nil {
		logger.WithError(err).WithField("event", e.Type).Warn("audit publish failed")
	}
}
