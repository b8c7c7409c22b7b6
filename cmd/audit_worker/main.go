package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-user-directory/config"
	"github.com/oksasatya/go-user-directory/pkg/audit"
	"github.com/oksasatya/go-user-directory/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-audit-worker", cfg.Env)

	if !cfg.AuditPublishEnabled {
		logger.Info("AUDIT_PUBLISH_ENABLED=false; audit worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQAuditQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.WithError(err).Fatal("audit worker stopped")
	}
	logger.Info("audit worker exited")
}

// run owns the broker connection; it is closed on every return path.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("amqp channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}
	if err := helpers.DeclareQueue(ch, cfg.RabbitMQAuditQueue); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQAuditQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	logger.WithField("queue", cfg.RabbitMQAuditQueue).Info("audit worker listening")
	return consume(ctx, logger, msgs)
}

var errDeliveriesClosed = errors.New("delivery channel closed")

// consume acks each decodable event and drops the rest without requeue.
// It returns nil when ctx ends and errDeliveriesClosed when the broker closes msgs.
func consume(ctx context.Context, logger *logrus.Logger, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down...")
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errDeliveriesClosed
			}
			if err := handle(logger, msg.Body); err != nil {
				logger.WithError(err).WithField("delivery_tag", msg.DeliveryTag).Warn("dropping malformed audit message")
				_ = msg.Nack(false, false)
				continue
			}
			_ = msg.Ack(false)
		}
	}
}

var errUnknownEvent = errors.New("unknown event type")

// handle decodes one delivery and writes it as a structured log entry.
func handle(logger *logrus.Logger, body []byte) error {
	var e audit.Event
	if err := json.Unmarshal(body, &e); err != nil {
		return err
	}
	if !audit.Known(e.Type) {
		return errUnknownEvent
	}
	logger.WithFields(logrus.Fields{
		"event":       e.Type,
		"subject":     e.Subject,
		"occurred_at": e.OccurredAt,
		"request_id":  e.RequestID,
		"ip":          e.IP,
	}).Info("audit event")
	return nil
}
