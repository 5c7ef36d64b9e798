package schema

import (
	"time"

	"github.com/google/uuid"
)

// AlertSimilar represents the alert_similars table - one row per deduplicated
// similar asset pair. PairKey is the order-independent key of the two asset
// ids, so the mirrored event collapses onto the same row.
type AlertSimilar struct {
	// ID is the alert identifier, replaced when an expired pair is re-detected
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// PairKey is the canonical unordered pair key, one live row per pair
	PairKey string `gorm:"column:pair_key;not null;uniqueIndex:idx_alert_similars_pair;type:text"`
	// SourceType identifies the detector that produced the alert
	SourceType *string `gorm:"column:source_type;type:text"`
	// OriginAssetID is the asset on the origin side of the pair
	OriginAssetID *uuid.UUID `gorm:"column:origin_asset_id;type:uuid;index:idx_alert_similars_origin"`
	// OriginHashID identifies the matched origin hash record
	OriginHashID *uuid.UUID `gorm:"column:origin_hash_id;type:uuid"`
	// OriginHashType is the hash family the match came from
	OriginHashType *string `gorm:"column:origin_hash_type;type:text"`
	// OriginFrameID identifies the matched origin frame
	OriginFrameID *uuid.UUID `gorm:"column:origin_frame_id;type:uuid"`
	// OriginFrameSecond is the origin frame offset in seconds
	OriginFrameSecond *float64 `gorm:"column:origin_frame_second"`
	// OriginFrameURL is the rendered origin frame location
	OriginFrameURL *string `gorm:"column:origin_frame_url;type:text"`
	// SimilarAssetID is the asset on the similar side of the pair
	SimilarAssetID *uuid.UUID `gorm:"column:similar_asset_id;type:uuid;index:idx_alert_similars_similar"`
	// SimilarFrameID identifies the matched similar frame
	SimilarFrameID *uuid.UUID `gorm:"column:similar_frame_id;type:uuid"`
	// SimilarFrameSecond is the similar frame offset in seconds
	SimilarFrameSecond *float64 `gorm:"column:similar_frame_second"`
	// SimilarFrameURL is the rendered similar frame location
	SimilarFrameURL *string `gorm:"column:similar_frame_url;type:text"`
	// NotifiedAt is set once the pair has been included in a dispatched digest
	NotifiedAt *time.Time `gorm:"column:notified_at;type:timestamptz;index:idx_alert_similars_notified"`
	// CreatedAt is the timestamp the pair was first seen
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp the pair was last re-observed
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AlertSimilar model
func (AlertSimilar) TableName() string {
	return "alert_similars"
}
