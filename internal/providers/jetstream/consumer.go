package jetstream

import (
	"context"
	"fmt"
	"time"

	natsjs "github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/messaging"
)

// ConsumerConfig holds the configuration for a durable JetStream consumer
type ConsumerConfig struct {
	Config
	AckWait    time.Duration
	MaxDeliver int
}

type consumer struct {
	nc  adapter.NatsConn
	js  adapter.JetStream
	cfg ConsumerConfig
}

// NewConsumer creates a new NATS JetStream consumer
func NewConsumer(cfg ConsumerConfig, natsJS adapter.NatsJetStream) (messaging.Consumer, error) {
	nc, js, err := connect(cfg.Config, natsJS)
	if err != nil {
		return nil, err
	}

	return &consumer{
		nc:  nc,
		js:  js,
		cfg: cfg,
	}, nil
}

// Consume binds a durable consumer to subject and processes messages with
// handler until ctx is cancelled. Redelivery is driven by the ack policy:
// unacknowledged or negatively acknowledged messages come back after the ack
// wait, up to the delivery cap.
func (c *consumer) Consume(ctx context.Context, subject, durable string, handler messaging.Handler) error {
	jsConsumer, err := c.js.CreateOrUpdateConsumer(ctx, c.cfg.StreamName, natsjs.ConsumerConfig{
		Durable:       durable,
		FilterSubject: subject,
		AckPolicy:     natsjs.AckExplicitPolicy,
		AckWait:       c.cfg.AckWait,
		MaxDeliver:    c.cfg.MaxDeliver,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer: %w", err)
	}

	consumeCtx, err := jsConsumer.Consume(func(msg adapter.Message) {
		c.handleMessage(ctx, msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	logger.Info("Consuming messages",
		zap.String("stream", c.cfg.StreamName),
		zap.String("subject", subject),
		zap.String("durable", durable))

	select {
	case <-ctx.Done():
		consumeCtx.Drain()
		return ctx.Err()
	case <-consumeCtx.Closed():
		return nil
	}
}

func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message, handler messaging.Handler) {
	switch handler(ctx, msg.Data()) {
	case messaging.AckDone:
		if err := msg.Ack(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ack message"))
		}
	case messaging.AckRetry:
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to nak message"))
		}
	case messaging.AckDrop:
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
	}
}

// Close closes the NATS connection
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}
	c.nc.Close()
}
