package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/veriframe/vf-pipeline/internal/domain"
)

// Subscription represents the subscriptions table - a user's intent to be
// notified about similarity alerts for an asset. One row per (user, asset).
type Subscription struct {
	// ID is the subscription identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// UserID is the subscribing user
	UserID string `gorm:"column:user_id;not null;type:text;uniqueIndex:idx_subscriptions_user_asset,priority:1"`
	// AssetID is the watched asset
	AssetID uuid.UUID `gorm:"column:asset_id;not null;type:uuid;uniqueIndex:idx_subscriptions_user_asset,priority:2;index:idx_subscriptions_asset"`
	// Confirmed is disabled until the owner follows the confirmation link
	Confirmed domain.ConfirmedStatus `gorm:"column:confirmed;not null;default:disabled;type:text"`
	// CreatedAt is the timestamp the subscription intent was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last state change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Subscription model
func (Subscription) TableName() string {
	return "subscriptions"
}
