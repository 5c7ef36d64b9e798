package alerting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/messaging"
	"github.com/veriframe/vf-pipeline/internal/metrics"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// Ingestor consumes similar-pair events from the hashing subsystem and
// records them deduplicated on the canonical pair key. A pair observed in
// both directions collapses onto one row; a pair re-detected after the
// dedup window counts as a fresh alert.
type Ingestor struct {
	store  store.Store
	json   adapter.JSON
	clock  adapter.Clock
	window time.Duration
}

// NewIngestor creates a similarity alert ingestor
func NewIngestor(s store.Store, json adapter.JSON, clock adapter.Clock, window time.Duration) *Ingestor {
	return &Ingestor{store: s, json: json, clock: clock, window: window}
}

// Run consumes similarity alerts until ctx is cancelled
func (i *Ingestor) Run(ctx context.Context, consumer messaging.Consumer, durable string) error {
	return consumer.Consume(ctx, messaging.SubjectSimilarFound, durable, i.HandleMessage)
}

// HandleMessage processes one raw similarity alert message
func (i *Ingestor) HandleMessage(ctx context.Context, data []byte) messaging.Ack {
	var payload domain.AlertExternalPayload
	if err := i.json.Unmarshal(messaging.UnwrapBody(data), &payload); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal similarity alert"))
		return messaging.AckDrop
	}
	if !payload.Valid() {
		metrics.AlertsIngested.WithLabelValues(metrics.AlertResultInvalid).Inc()
		logger.WarnCtx(ctx, "Dropping malformed similarity alert", zap.Any("payload", payload))
		return messaging.AckDrop
	}

	now := i.clock.Now()
	alert := &schema.AlertSimilar{
		ID:                 uuid.New(),
		PairKey:            payload.PairKey(),
		SourceType:         payload.SourceType,
		OriginAssetID:      payload.OriginAssetID,
		OriginHashID:       payload.OriginHashID,
		OriginHashType:     payload.OriginHashType,
		OriginFrameID:      payload.OriginFrameID,
		OriginFrameSecond:  payload.OriginFrameSecond,
		OriginFrameURL:     payload.OriginFrameURL,
		SimilarAssetID:     payload.SimilarAssetID,
		SimilarFrameID:     payload.SimilarFrameID,
		SimilarFrameSecond: payload.SimilarFrameSecond,
		SimilarFrameURL:    payload.SimilarFrameURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	inserted, err := i.store.UpsertAlertSimilar(ctx, alert, i.window)
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to record similarity alert"),
			zap.String("pair_key", alert.PairKey))
		return messaging.AckRetry
	}

	if inserted {
		metrics.AlertsIngested.WithLabelValues(metrics.AlertResultNew).Inc()
		logger.InfoCtx(ctx, "Recorded new similar pair", zap.String("pair_key", alert.PairKey))
	} else {
		metrics.AlertsIngested.WithLabelValues(metrics.AlertResultDuplicate).Inc()
		logger.DebugCtx(ctx, "Similar pair re-observed", zap.String("pair_key", alert.PairKey))
	}
	return messaging.AckDone
}
