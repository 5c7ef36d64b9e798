package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// Migrate creates or updates the database schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Asset{},
		&schema.BlockchainTx{},
		&schema.KeyPair{},
		&schema.AlertSimilar{},
		&schema.Subscription{},
		&schema.User{},
		&schema.DispatchMarker{},
	)
}

// CreateAsset registers a new asset. A source url already registered by the
// same user answers domain.ErrAssetAlreadyExists.
func (s *pgStore) CreateAsset(ctx context.Context, asset *schema.Asset) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "url_file"}},
		DoNothing: true,
	}).Create(asset)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssetAlreadyExists
	}
	return nil
}

// GetAsset retrieves an asset by id
func (s *pgStore) GetAsset(ctx context.Context, assetID uuid.UUID) (*schema.Asset, error) {
	var asset schema.Asset
	err := s.db.WithContext(ctx).Where("asset_id = ?", assetID).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

// ListAssetsByUser retrieves all assets registered by a user
func (s *pgStore) ListAssetsByUser(ctx context.Context, userID string) ([]schema.Asset, error) {
	var assets []schema.Asset
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// SetAssetHashResult records the outcome of the hashing pipeline
func (s *pgStore) SetAssetHashResult(ctx context.Context, assetID uuid.UUID, hashFile *string, status domain.HashProcessStatus) error {
	updates := map[string]interface{}{
		"hash_process_status": status,
		"updated_at":          time.Now(),
	}
	if hashFile != nil {
		updates["hash_file"] = *hashFile
	}

	result := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("asset_id = ?", assetID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

// ClaimMint transitions mint_status to started when the asset is claimable.
// The conditional update serializes concurrent workers on the same asset
// without row locks.
func (s *pgStore) ClaimMint(ctx context.Context, assetID uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("asset_id = ? AND mint_status IN ?", assetID,
			[]domain.MintStatus{domain.MintStatusNone, domain.MintStatusError}).
		Updates(map[string]interface{}{
			"mint_status": domain.MintStatusStarted,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SetMintStatus records a mint state transition. Completed is terminal: an
// attempted demotion of a completed asset is skipped, not applied.
func (s *pgStore) SetMintStatus(ctx context.Context, assetID uuid.UUID, status domain.MintStatus) error {
	query := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("asset_id = ?", assetID)
	if status != domain.MintStatusCompleted {
		query = query.Where("mint_status <> ?", domain.MintStatusCompleted)
	}
	result := query.Updates(map[string]interface{}{
		"mint_status": status,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		asset, err := s.GetAsset(ctx, assetID)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotFound
		}
	}
	return nil
}

// CompleteMint records the confirmed transaction and marks the asset
// completed. The partial tx hash unique index makes a replayed completion a
// no-op; hash-less reconciliation rows bypass the conflict check entirely.
func (s *pgStore) CompleteMint(ctx context.Context, assetID uuid.UUID, btx *schema.BlockchainTx) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "tx_hash"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{gorm.Expr("tx_hash <> ''")}},
			DoNothing:   true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(btx).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		result := tx.Model(&schema.Asset{}).
			Where("asset_id = ?", assetID).
			Updates(map[string]interface{}{
				"mint_status": domain.MintStatusCompleted,
				"updated_at":  time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark asset completed: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrAssetNotFound
		}
		return nil
	})
}

// GetLatestTxByAsset retrieves the most recent transaction for an asset
func (s *pgStore) GetLatestTxByAsset(ctx context.Context, assetID uuid.UUID) (*schema.BlockchainTx, error) {
	var btx schema.BlockchainTx
	err := s.db.WithContext(ctx).
		Where("asset_id = ?", assetID).
		Order("creation_time DESC").
		First(&btx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &btx, nil
}

// GetKeyPair retrieves a user's key pair
func (s *pgStore) GetKeyPair(ctx context.Context, userID string) (*schema.KeyPair, error) {
	var kp schema.KeyPair
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&kp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &kp, nil
}

// CreateKeyPair stores a freshly generated key pair. When a concurrent writer
// won the race the stored row wins and the generated key is discarded.
func (s *pgStore) CreateKeyPair(ctx context.Context, kp *schema.KeyPair) (*schema.KeyPair, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(kp).Error
	if err != nil {
		return nil, err
	}

	var stored schema.KeyPair
	if err := s.db.WithContext(ctx).Where("user_id = ?", kp.UserID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// UpsertAlertSimilar records a similar pair. A re-observation within window
// refreshes updated_at and frame details but keeps id, created_at and
// notified_at, so an already-dispatched pair is not re-notified. Once the
// row's created_at falls out of the window the pair counts as a fresh
// detection: id, created_at and notified_at are reset along with the rest.
// Callers must set CreatedAt and UpdatedAt to the same instant; insertion is
// detected by comparing the returned timestamps.
func (s *pgStore) UpsertAlertSimilar(ctx context.Context, alert *schema.AlertSimilar, window time.Duration) (bool, error) {
	cutoff := alert.UpdatedAt.Add(-window)

	var inserted bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "pair_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"source_type":          gorm.Expr("excluded.source_type"),
				"origin_frame_id":      gorm.Expr("excluded.origin_frame_id"),
				"origin_frame_second":  gorm.Expr("excluded.origin_frame_second"),
				"origin_frame_url":     gorm.Expr("excluded.origin_frame_url"),
				"similar_frame_id":     gorm.Expr("excluded.similar_frame_id"),
				"similar_frame_second": gorm.Expr("excluded.similar_frame_second"),
				"similar_frame_url":    gorm.Expr("excluded.similar_frame_url"),
				"updated_at":           gorm.Expr("excluded.updated_at"),
				"id": gorm.Expr(
					"CASE WHEN alert_similars.created_at >= ? THEN alert_similars.id ELSE excluded.id END", cutoff),
				"created_at": gorm.Expr(
					"CASE WHEN alert_similars.created_at >= ? THEN alert_similars.created_at ELSE excluded.created_at END", cutoff),
				"notified_at": gorm.Expr(
					"CASE WHEN alert_similars.created_at >= ? THEN alert_similars.notified_at ELSE NULL END", cutoff),
			}),
		}).Clauses(clause.Returning{Columns: []clause.Column{
			{Name: "id"}, {Name: "created_at"}, {Name: "updated_at"},
		}}).Create(alert)
		if result.Error != nil {
			return result.Error
		}
		// A within-window update keeps its original created_at, so matching
		// returned timestamps mean a fresh insert or an expired-pair reset.
		inserted = alert.CreatedAt.Equal(alert.UpdatedAt)

		if inserted {
			ids := make([]uuid.UUID, 0, 2)
			if alert.OriginAssetID != nil {
				ids = append(ids, *alert.OriginAssetID)
			}
			if alert.SimilarAssetID != nil && (alert.OriginAssetID == nil || *alert.SimilarAssetID != *alert.OriginAssetID) {
				ids = append(ids, *alert.SimilarAssetID)
			}
			if len(ids) > 0 {
				if err := tx.Model(&schema.Asset{}).
					Where("asset_id IN ?", ids).
					Update("counter_similars", gorm.Expr("counter_similars + 1")).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	return inserted, err
}

// ListUnnotifiedAlerts retrieves alert pairs not yet included in a digest,
// selected by their most recent observation
func (s *pgStore) ListUnnotifiedAlerts(ctx context.Context, since time.Time) ([]schema.AlertSimilar, error) {
	var alerts []schema.AlertSimilar
	err := s.db.WithContext(ctx).
		Where("notified_at IS NULL AND updated_at >= ?", since).
		Order("updated_at ASC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// ListAlertsByAsset retrieves all alert pairs an asset participates in
func (s *pgStore) ListAlertsByAsset(ctx context.Context, assetID uuid.UUID) ([]schema.AlertSimilar, error) {
	var alerts []schema.AlertSimilar
	err := s.db.WithContext(ctx).
		Where("origin_asset_id = ? OR similar_asset_id = ?", assetID, assetID).
		Order("created_at DESC").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

// MarkAlertsNotified stamps the given pairs as dispatched
func (s *pgStore) MarkAlertsNotified(ctx context.Context, pairKeys []string, at time.Time) error {
	if len(pairKeys) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&schema.AlertSimilar{}).
		Where("pair_key IN ? AND notified_at IS NULL", pairKeys).
		Update("notified_at", at).Error
}

// UpsertUser records a notification recipient
func (s *pgStore) UpsertUser(ctx context.Context, user *schema.User) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "wallet_address"}),
	}).Create(user).Error
}

// GetUser retrieves a user by id
func (s *pgStore) GetUser(ctx context.Context, userID string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpsertSubscription records a subscription intent. A repeated intent for the
// same (user, asset) keeps the existing row and its confirmation state.
func (s *pgStore) UpsertSubscription(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error) {
	sub := schema.Subscription{
		ID:        uuid.New(),
		UserID:    userID,
		AssetID:   assetID,
		Confirmed: domain.ConfirmedDisabled,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "asset_id"}},
		DoNothing: true,
	}).Create(&sub).Error
	if err != nil {
		return nil, err
	}

	var stored schema.Subscription
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ConfirmSubscription enables a pending subscription
func (s *pgStore) ConfirmSubscription(ctx context.Context, userID string, assetID uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&schema.Subscription{}).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		Updates(map[string]interface{}{
			"confirmed":  domain.ConfirmedEnabled,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteSubscription removes a subscription
func (s *pgStore) DeleteSubscription(ctx context.Context, userID string, assetID uuid.UUID) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		Delete(&schema.Subscription{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// GetSubscription retrieves a subscription by owner and asset
func (s *pgStore) GetSubscription(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error) {
	var sub schema.Subscription
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND asset_id = ?", userID, assetID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// ListConfirmedSubscribers retrieves confirmed recipients for the given assets
func (s *pgStore) ListConfirmedSubscribers(ctx context.Context, assetIDs []uuid.UUID) ([]AssetSubscriber, error) {
	if len(assetIDs) == 0 {
		return nil, nil
	}

	var subscribers []AssetSubscriber
	err := s.db.WithContext(ctx).
		Model(&schema.Subscription{}).
		Select("subscriptions.asset_id, subscriptions.user_id, users.email").
		Joins("JOIN users ON users.user_id = subscriptions.user_id").
		Where("subscriptions.asset_id IN ? AND subscriptions.confirmed = ?",
			assetIDs, domain.ConfirmedEnabled).
		Scan(&subscribers).Error
	if err != nil {
		return nil, err
	}
	return subscribers, nil
}

// ClaimDispatchMarker claims the (email, window) idempotency slot
func (s *pgStore) ClaimDispatchMarker(ctx context.Context, email, windowID string, pairCount int) (bool, error) {
	marker := schema.DispatchMarker{
		Email:     email,
		WindowID:  windowID,
		PairCount: pairCount,
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}, {Name: "window_id"}},
		DoNothing: true,
	}).Create(&marker)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Ping verifies database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
