package schema

import "time"

// DispatchMarker represents the dispatch_markers table - the idempotency
// record for digest emails. A marker is inserted before the mail leaves the
// relay, so a crashed sweep never re-sends the same window to the same
// recipient.
type DispatchMarker struct {
	// Email is the recipient address
	Email string `gorm:"column:email;primaryKey;type:text"`
	// WindowID is the sweep window identifier (ULID, time-sortable)
	WindowID string `gorm:"column:window_id;primaryKey;type:text"`
	// PairCount is the number of alert pairs included in the digest
	PairCount int `gorm:"column:pair_count;not null;default:0"`
	// CreatedAt is the timestamp the marker was claimed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DispatchMarker model
func (DispatchMarker) TableName() string {
	return "dispatch_markers"
}
