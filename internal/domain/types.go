package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// HashProcessStatus represents the lifecycle of the perceptual hashing pipeline for an asset
type HashProcessStatus string

const (
	HashProcessNotStarted HashProcessStatus = "not_started"
	HashProcessStarted    HashProcessStatus = "started"
	HashProcessCompleted  HashProcessStatus = "completed"
	HashProcessError      HashProcessStatus = "error"
)

// MintStatus represents the lifecycle of the on-chain minting state machine for an asset
type MintStatus string

const (
	MintStatusNone      MintStatus = "none"
	MintStatusStarted   MintStatus = "started"
	MintStatusCompleted MintStatus = "completed"
	MintStatusError     MintStatus = "error"
)

// Terminal reports whether the mint status can no longer advance.
// Completed is the only terminal state; Error assets may be re-driven
// by a redelivered mint request.
func (s MintStatus) Terminal() bool {
	return s == MintStatusCompleted
}

// ConfirmedStatus represents whether a subscription has been confirmed by its owner
type ConfirmedStatus string

const (
	ConfirmedDisabled ConfirmedStatus = "disabled"
	ConfirmedEnabled  ConfirmedStatus = "enabled"
)

// MintRequest is the payload delivered on the mint request queue.
// Field names are part of the wire contract.
type MintRequest struct {
	AssetID uuid.UUID `json:"asset_id"`
	UserID  string    `json:"user_id"`
	Price   uint64    `json:"price"`
	Tries   uint32    `json:"tries"`
}

// Valid checks the structural constraints on a mint request
func (m *MintRequest) Valid() bool {
	return m.AssetID != uuid.Nil && m.UserID != ""
}

// MintOK is published when a mint reaches a confirmed on-chain transaction.
// TxHash is omitted for a reconciled mint with no locally observed
// submission.
type MintOK struct {
	AssetID uuid.UUID `json:"asset_id"`
	TxHash  string    `json:"tx_hash,omitempty"`
}

// MintFailed is published when a mint fails terminally
type MintFailed struct {
	AssetID uuid.UUID `json:"asset_id"`
	Reason  string    `json:"reason"`
}

// HashRequest asks the hashing subsystem to process a newly created asset
type HashRequest struct {
	AssetID uuid.UUID `json:"asset_id"`
	URLFile string    `json:"url_file"`
}

// AlertExternalPayload is the similar-pair event emitted by the hashing
// subsystem. Field names are part of the wire contract.
type AlertExternalPayload struct {
	SourceType         *string    `json:"source_type,omitempty"`
	OriginHashID       *uuid.UUID `json:"origin_hash_id,omitempty"`
	OriginHashType     *string    `json:"origin_hash_type,omitempty"`
	OriginFrameID      *uuid.UUID `json:"origin_frame_id,omitempty"`
	OriginFrameSecond  *float64   `json:"origin_frame_second,omitempty"`
	OriginFrameURL     *string    `json:"origin_frame_url,omitempty"`
	OriginAssetID      *uuid.UUID `json:"origin_asset_id,omitempty"`
	SimilarFrameID     *uuid.UUID `json:"similar_frame_id,omitempty"`
	SimilarFrameSecond *float64   `json:"similar_frame_second,omitempty"`
	SimilarFrameURL    *string    `json:"similar_frame_url,omitempty"`
	SimilarAssetID     *uuid.UUID `json:"similar_asset_id,omitempty"`
}

// Valid requires at least one asset reference together with a frame identifier,
// otherwise the alert cannot be joined against subscriptions later.
func (a *AlertExternalPayload) Valid() bool {
	hasAsset := a.OriginAssetID != nil || a.SimilarAssetID != nil
	hasFrame := a.OriginFrameID != nil || a.SimilarFrameID != nil
	return hasAsset && hasFrame
}

// PairKey returns the canonical deduplication key for the asset pair.
// The pair is unordered: (A,B) and (B,A) produce the same key.
func (a *AlertExternalPayload) PairKey() string {
	return CanonicalPairKey(a.OriginAssetID, a.SimilarAssetID)
}

// CanonicalPairKey builds the order-independent key for two optional asset ids
func CanonicalPairKey(origin, similar *uuid.UUID) string {
	o, s := "", ""
	if origin != nil {
		o = origin.String()
	}
	if similar != nil {
		s = similar.String()
	}
	if strings.Compare(o, s) > 0 {
		o, s = s, o
	}
	return fmt.Sprintf("%s|%s", o, s)
}

// ValidUserAddress reports whether the given string is a well-formed
// blockchain recipient address
func ValidUserAddress(address string) bool {
	return common.IsHexAddress(address)
}
