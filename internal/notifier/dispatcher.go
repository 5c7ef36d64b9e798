package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/mailer"
	"github.com/veriframe/vf-pipeline/internal/metrics"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// DispatcherConfig holds configuration for the notification dispatcher
type DispatcherConfig struct {
	SweepInterval  time.Duration // Time between sweep cycles
	Lookback       time.Duration // Only dispatch pairs last observed within this window
	WorkerPoolSize int           // Concurrent digest sends
	WorkerQueue    int           // Pending digest queue size
}

// dispatcher sweeps undispatched similar pairs, buckets them per recipient
// and sends one digest per recipient per window
type dispatcher struct {
	config    *DispatcherConfig
	store     store.Store
	mailer    mailer.Mailer
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(config *DispatcherConfig, st store.Store, m mailer.Mailer, clock adapter.Clock) Sweeper {
	return &dispatcher{
		config:    config,
		store:     st,
		mailer:    m,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (d *dispatcher) Name() string {
	return "notification-dispatcher"
}

// Start begins the dispatch loop
func (d *dispatcher) Start(ctx context.Context) error {
	if !d.running.CompareAndSwap(false, true) {
		return fmt.Errorf("dispatcher already running")
	}
	defer func() {
		d.running.Store(false)
		close(d.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting notification dispatcher",
		zap.Duration("sweep_interval", d.config.SweepInterval),
		zap.Duration("lookback", d.config.Lookback),
		zap.Int("worker_pool_size", d.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Notification dispatcher stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-d.stopChan:
			logger.InfoCtx(ctx, "Notification dispatcher stop requested")
			return nil
		default:
			if err := d.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// Stop gracefully stops the dispatcher
func (d *dispatcher) Stop(ctx context.Context) error {
	if !d.running.CompareAndSwap(true, false) {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping notification dispatcher")
	close(d.stopChan)

	select {
	case <-d.stoppedCh:
		logger.InfoCtx(ctx, "Notification dispatcher stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Notification dispatcher stop interrupted by context timeout")
		return ctx.Err()
	}
}

// WindowID derives the dispatch window identifier for the given time. The
// id is a ULID stamped with the window's start and zero entropy, so every
// sweep inside one window computes the same id and the dispatch markers
// collapse replays.
func WindowID(t time.Time, interval time.Duration) string {
	bucket := t.Truncate(interval)
	return ulid.MustNew(ulid.Timestamp(bucket), nil).String()
}

// runSweepCycle runs a single dispatch cycle
func (d *dispatcher) runSweepCycle(ctx context.Context) error {
	now := d.clock.Now()
	windowID := WindowID(now, d.config.SweepInterval)

	alerts, err := d.store.ListUnnotifiedAlerts(ctx, now.Add(-d.config.Lookback))
	if err != nil {
		return fmt.Errorf("failed to list unnotified alerts: %w", err)
	}

	if len(alerts) == 0 {
		logger.DebugCtx(ctx, "No pending similarity alerts")
		if !d.sleep(ctx, d.config.SweepInterval) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found pending similarity alerts",
		zap.Int("count", len(alerts)),
		zap.String("window_id", windowID))

	digests, pairKeys, err := d.bucket(ctx, alerts)
	if err != nil {
		return err
	}

	var sent, skipped, failed atomic.Int32
	pool := pond.NewPool(
		d.config.WorkerPoolSize,
		pond.WithQueueSize(d.config.WorkerQueue),
		pond.WithContext(ctx),
	)
	for _, digest := range digests {
		pool.Submit(func() {
			d.dispatch(ctx, digest, windowID, &sent, &skipped, &failed)
		})
	}
	pool.StopAndWait()

	// Pairs are stamped even when every recipient was already covered by a
	// prior sweep in this window; the markers carry the delivery guarantee.
	if err := d.store.MarkAlertsNotified(ctx, pairKeys, d.clock.Now()); err != nil {
		return fmt.Errorf("failed to mark alerts notified: %w", err)
	}

	logger.InfoCtx(ctx, "Dispatch cycle finished",
		zap.String("window_id", windowID),
		zap.Int("pairs", len(pairKeys)),
		zap.Int32("sent", sent.Load()),
		zap.Int32("skipped", skipped.Load()),
		zap.Int32("failed", failed.Load()),
	)

	if !d.sleep(ctx, d.config.SweepInterval) {
		return ctx.Err()
	}
	return nil
}

// bucket groups alerts per recipient. Each pair notifies the confirmed
// subscribers of both sides; for each recipient the watched side is reported
// as theirs and the opposite side as the similar find.
func (d *dispatcher) bucket(ctx context.Context, alerts []schema.AlertSimilar) (map[string]*mailer.Digest, []string, error) {
	assetIDs := make([]uuid.UUID, 0, len(alerts)*2)
	seen := make(map[uuid.UUID]struct{})
	pairKeys := make([]string, 0, len(alerts))

	for _, alert := range alerts {
		pairKeys = append(pairKeys, alert.PairKey)
		for _, id := range []*uuid.UUID{alert.OriginAssetID, alert.SimilarAssetID} {
			if id == nil {
				continue
			}
			if _, ok := seen[*id]; !ok {
				seen[*id] = struct{}{}
				assetIDs = append(assetIDs, *id)
			}
		}
	}

	subscribers, err := d.store.ListConfirmedSubscribers(ctx, assetIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	byAsset := make(map[uuid.UUID][]store.AssetSubscriber)
	for _, sub := range subscribers {
		byAsset[sub.AssetID] = append(byAsset[sub.AssetID], sub)
	}

	digests := make(map[string]*mailer.Digest)
	add := func(email string, entry mailer.PairEntry) {
		digest, ok := digests[email]
		if !ok {
			digest = &mailer.Digest{Recipient: email}
			digests[email] = digest
		}
		digest.Pairs = append(digest.Pairs, entry)
	}

	for _, alert := range alerts {
		if alert.OriginAssetID != nil {
			for _, sub := range byAsset[*alert.OriginAssetID] {
				add(sub.Email, mailer.PairEntry{
					WatchedAssetID: *alert.OriginAssetID,
					OriginURL:      deref(alert.OriginFrameURL),
					SimilarURL:     deref(alert.SimilarFrameURL),
					OriginSecond:   alert.OriginFrameSecond,
					SimilarSecond:  alert.SimilarFrameSecond,
				})
			}
		}
		if alert.SimilarAssetID != nil && (alert.OriginAssetID == nil || *alert.SimilarAssetID != *alert.OriginAssetID) {
			for _, sub := range byAsset[*alert.SimilarAssetID] {
				add(sub.Email, mailer.PairEntry{
					WatchedAssetID: *alert.SimilarAssetID,
					OriginURL:      deref(alert.SimilarFrameURL),
					SimilarURL:     deref(alert.OriginFrameURL),
					OriginSecond:   alert.SimilarFrameSecond,
					SimilarSecond:  alert.OriginFrameSecond,
				})
			}
		}
	}

	return digests, pairKeys, nil
}

// dispatch claims the recipient's window marker and sends the digest. The
// marker is claimed before the send, so a crash between the two drops the
// mail rather than duplicating it on the next sweep.
func (d *dispatcher) dispatch(ctx context.Context, digest *mailer.Digest, windowID string, sent, skipped, failed *atomic.Int32) {
	claimed, err := d.store.ClaimDispatchMarker(ctx, digest.Recipient, windowID, len(digest.Pairs))
	if err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to claim dispatch marker"),
			zap.String("window_id", windowID))
		failed.Add(1)
		return
	}
	if !claimed {
		skipped.Add(1)
		return
	}

	if err := d.sendWithRetry(ctx, digest); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to send digest"),
			zap.String("window_id", windowID))
		metrics.DigestFailures.Inc()
		failed.Add(1)
		return
	}

	metrics.DigestsSent.Inc()
	sent.Add(1)
}

// sendWithRetry sends one digest with exponential backoff
func (d *dispatcher) sendWithRetry(ctx context.Context, digest *mailer.Digest) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 3 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	operation := func() error {
		return d.mailer.SendSimilarityDigest(ctx, digest)
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Digest send failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}
	return nil
}

// sleep sleeps for the given duration but can be interrupted
func (d *dispatcher) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-d.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-d.stopChan:
		return false
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
