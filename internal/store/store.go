package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// AssetSubscriber pairs a watched asset with a confirmed recipient
type AssetSubscriber struct {
	AssetID uuid.UUID
	UserID  string
	Email   string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// CreateAsset registers a new asset
	CreateAsset(ctx context.Context, asset *schema.Asset) error
	// GetAsset retrieves an asset by id, nil when absent
	GetAsset(ctx context.Context, assetID uuid.UUID) (*schema.Asset, error)
	// ListAssetsByUser retrieves all assets registered by a user
	ListAssetsByUser(ctx context.Context, userID string) ([]schema.Asset, error)
	// SetAssetHashResult records the outcome of the hashing pipeline
	SetAssetHashResult(ctx context.Context, assetID uuid.UUID, hashFile *string, status domain.HashProcessStatus) error
	// ClaimMint transitions mint_status to started if no other worker owns the
	// asset. Returns false when the asset is already started or completed.
	ClaimMint(ctx context.Context, assetID uuid.UUID) (bool, error)
	// SetMintStatus records a mint state transition unconditionally
	SetMintStatus(ctx context.Context, assetID uuid.UUID, status domain.MintStatus) error
	// CompleteMint records the confirmed transaction and marks the asset
	// completed in one transaction. Safe to call twice for the same tx hash.
	CompleteMint(ctx context.Context, assetID uuid.UUID, tx *schema.BlockchainTx) error
	// GetLatestTxByAsset retrieves the most recent transaction for an asset, nil when absent
	GetLatestTxByAsset(ctx context.Context, assetID uuid.UUID) (*schema.BlockchainTx, error)

	// GetKeyPair retrieves a user's key pair, nil when absent
	GetKeyPair(ctx context.Context, userID string) (*schema.KeyPair, error)
	// CreateKeyPair stores a freshly generated key pair. When a concurrent
	// writer won the race the stored row is returned instead.
	CreateKeyPair(ctx context.Context, kp *schema.KeyPair) (*schema.KeyPair, error)

	// UpsertAlertSimilar records a similar pair, collapsing duplicates onto
	// the canonical pair key for the duration of window. Returns true when
	// the observation counts as a fresh detection.
	UpsertAlertSimilar(ctx context.Context, alert *schema.AlertSimilar, window time.Duration) (bool, error)
	// ListUnnotifiedAlerts retrieves alert pairs not yet included in a digest,
	// bounded to pairs last observed after since
	ListUnnotifiedAlerts(ctx context.Context, since time.Time) ([]schema.AlertSimilar, error)
	// ListAlertsByAsset retrieves all alert pairs an asset participates in,
	// on either side
	ListAlertsByAsset(ctx context.Context, assetID uuid.UUID) ([]schema.AlertSimilar, error)
	// MarkAlertsNotified stamps the given pairs as dispatched
	MarkAlertsNotified(ctx context.Context, pairKeys []string, at time.Time) error

	// UpsertUser records a notification recipient
	UpsertUser(ctx context.Context, user *schema.User) error
	// GetUser retrieves a user by id, nil when absent
	GetUser(ctx context.Context, userID string) (*schema.User, error)

	// UpsertSubscription records a subscription intent, idempotently
	UpsertSubscription(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error)
	// ConfirmSubscription enables a pending subscription. Returns false when
	// no matching subscription exists.
	ConfirmSubscription(ctx context.Context, userID string, assetID uuid.UUID) (bool, error)
	// DeleteSubscription removes a subscription. Returns false when no
	// matching subscription exists.
	DeleteSubscription(ctx context.Context, userID string, assetID uuid.UUID) (bool, error)
	// GetSubscription retrieves a subscription by owner and asset, nil when absent
	GetSubscription(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error)
	// ListConfirmedSubscribers retrieves confirmed recipients for the given assets
	ListConfirmedSubscribers(ctx context.Context, assetIDs []uuid.UUID) ([]AssetSubscriber, error)

	// ClaimDispatchMarker claims the (email, window) idempotency slot.
	// Returns false when another sweep already claimed it.
	ClaimDispatchMarker(ctx context.Context, email, windowID string, pairCount int) (bool, error)

	// Ping verifies database connectivity
	Ping(ctx context.Context) error
}
