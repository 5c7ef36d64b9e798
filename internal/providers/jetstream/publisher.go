package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/messaging"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	nc, js, err := connect(cfg, natsJS)
	if err != nil {
		return nil, err
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

func connect(cfg Config, natsJS adapter.NatsJetStream) (adapter.NatsConn, adapter.JetStream, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}
	return nc, js, nil
}

// PublishMintRequest enqueues a mint request
func (p *publisher) PublishMintRequest(ctx context.Context, req *domain.MintRequest) error {
	return p.publish(ctx, messaging.SubjectMintRequest, req)
}

// PublishMintOK announces a confirmed on-chain mint
func (p *publisher) PublishMintOK(ctx context.Context, ok *domain.MintOK) error {
	return p.publish(ctx, messaging.SubjectMintOK, ok)
}

// PublishMintFailed announces a terminally failed mint
func (p *publisher) PublishMintFailed(ctx context.Context, failed *domain.MintFailed) error {
	return p.publish(ctx, messaging.SubjectMintFailed, failed)
}

// PublishHashRequest asks the hashing subsystem to process an asset
func (p *publisher) PublishHashRequest(ctx context.Context, req *domain.HashRequest) error {
	return p.publish(ctx, messaging.SubjectHashRequest, req)
}

func (p *publisher) publish(ctx context.Context, subject string, payload interface{}) error {
	logger.DebugCtx(ctx, "Publishing NATS event",
		zap.String("subject", subject),
		zap.Any("payload", payload))

	data, err := p.json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}
	p.nc.Close()
}
