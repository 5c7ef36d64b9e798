package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/messaging"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// AssetRegistry defines asset lifecycle operations behind the API surface
//
//go:generate mockgen -source=assets.go -destination=../mocks/asset_registry.go -package=mocks -mock_names=AssetRegistry=MockAssetRegistry
type AssetRegistry interface {
	// Register records a new asset and enqueues it for hashing
	Register(ctx context.Context, userID, urlFile string, price uint64) (*schema.Asset, error)
	// Get retrieves an asset, domain.ErrAssetNotFound when absent
	Get(ctx context.Context, assetID uuid.UUID) (*schema.Asset, error)
	// ListByUser retrieves all assets registered by a user
	ListByUser(ctx context.Context, userID string) ([]schema.Asset, error)
	// ListSimilars retrieves the similar pairs an owned asset participates in
	ListSimilars(ctx context.Context, userID string, assetID uuid.UUID) ([]schema.AlertSimilar, error)
	// RequestMint enqueues a mint request for an owned, hash-complete asset
	RequestMint(ctx context.Context, userID string, assetID uuid.UUID, price uint64) error
	// RecordHashResult stores the hashing subsystem's outcome for an asset
	RecordHashResult(ctx context.Context, assetID uuid.UUID, hashFile *string, status domain.HashProcessStatus) error
}

type assetRegistry struct {
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewAssetRegistry creates an asset registry
func NewAssetRegistry(s store.Store, pub messaging.Publisher, clock adapter.Clock) AssetRegistry {
	return &assetRegistry{store: s, publisher: pub, clock: clock}
}

// Register records a new asset and enqueues it for hashing
func (r *assetRegistry) Register(ctx context.Context, userID, urlFile string, price uint64) (*schema.Asset, error) {
	now := r.clock.Now()
	asset := &schema.Asset{
		AssetID:           uuid.New(),
		UserID:            userID,
		URLFile:           urlFile,
		HashProcessStatus: domain.HashProcessNotStarted,
		MintStatus:        domain.MintStatusNone,
		Price:             price,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := r.store.CreateAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	if err := r.publisher.PublishHashRequest(ctx, &domain.HashRequest{
		AssetID: asset.AssetID,
		URLFile: urlFile,
	}); err != nil {
		// The asset exists; hashing can be re-requested through the API.
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to enqueue hash request"),
			zap.String("asset_id", asset.AssetID.String()))
	} else {
		if err := r.store.SetAssetHashResult(ctx, asset.AssetID, nil, domain.HashProcessStarted); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("asset_id", asset.AssetID.String()))
		} else {
			asset.HashProcessStatus = domain.HashProcessStarted
		}
	}

	return asset, nil
}

// Get retrieves an asset
func (r *assetRegistry) Get(ctx context.Context, assetID uuid.UUID) (*schema.Asset, error) {
	asset, err := r.store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}
	return asset, nil
}

// ListByUser retrieves all assets registered by a user
func (r *assetRegistry) ListByUser(ctx context.Context, userID string) ([]schema.Asset, error) {
	return r.store.ListAssetsByUser(ctx, userID)
}

// ListSimilars retrieves the similar pairs an owned asset participates in.
// Other users' assets answer as absent.
func (r *assetRegistry) ListSimilars(ctx context.Context, userID string, assetID uuid.UUID) ([]schema.AlertSimilar, error) {
	asset, err := r.store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil || asset.UserID != userID {
		return nil, domain.ErrAssetNotFound
	}
	return r.store.ListAlertsByAsset(ctx, assetID)
}

// RequestMint enqueues a mint request. The prechecks mirror the worker's own
// so obviously doomed requests are rejected synchronously; the worker remains
// the authority.
func (r *assetRegistry) RequestMint(ctx context.Context, userID string, assetID uuid.UUID, price uint64) error {
	asset, err := r.store.GetAsset(ctx, assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrAssetNotFound
	}
	if asset.UserID != userID {
		return domain.ErrAssetNotFound
	}
	if asset.MintStatus == domain.MintStatusCompleted || asset.MintStatus == domain.MintStatusStarted {
		return domain.ErrAssetTaken
	}
	if asset.HashProcessStatus != domain.HashProcessCompleted {
		return domain.ErrHashIncomplete
	}

	return r.publisher.PublishMintRequest(ctx, &domain.MintRequest{
		AssetID: assetID,
		UserID:  userID,
		Price:   price,
		Tries:   0,
	})
}

// RecordHashResult stores the hashing subsystem's outcome for an asset
func (r *assetRegistry) RecordHashResult(ctx context.Context, assetID uuid.UUID, hashFile *string, status domain.HashProcessStatus) error {
	return r.store.SetAssetHashResult(ctx, assetID, hashFile, status)
}
