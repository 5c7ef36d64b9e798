package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/veriframe/vf-pipeline/internal/domain"
)

// Asset represents the assets table - the primary entity for registered video assets
type Asset struct {
	// AssetID is the external asset identifier
	AssetID uuid.UUID `gorm:"column:asset_id;primaryKey;type:uuid"`
	// UserID is the identifier of the creator who registered the asset
	UserID string `gorm:"column:user_id;not null;type:text;index:idx_assets_user;uniqueIndex:idx_assets_user_url,priority:1"`
	// URLFile is the source location of the video file, registered at most
	// once per user
	URLFile string `gorm:"column:url_file;not null;type:text;uniqueIndex:idx_assets_user_url,priority:2"`
	// HashFile is the perceptual file-level hash, set when hashing completes
	HashFile *string `gorm:"column:hash_file;type:text"`
	// HashProcessStatus tracks the hashing pipeline lifecycle
	HashProcessStatus domain.HashProcessStatus `gorm:"column:hash_process_status;not null;default:not_started;type:text"`
	// MintStatus tracks the on-chain minting lifecycle
	MintStatus domain.MintStatus `gorm:"column:mint_status;not null;default:none;type:text"`
	// Price is the listing price in the chain's smallest unit
	Price uint64 `gorm:"column:price;not null;default:0"`
	// CounterSimilars counts distinct similar pairs this asset participates in
	CounterSimilars uint64 `gorm:"column:counter_similars;not null;default:0"`
	// CreatedAt is the timestamp when the asset was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last state change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
