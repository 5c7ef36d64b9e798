package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// RegisterAssetRequest is the payload for asset registration
type RegisterAssetRequest struct {
	URLFile string `json:"url_file" binding:"required,url"`
	Price   uint64 `json:"price"`
}

// MintAssetRequest is the payload for a mint request
type MintAssetRequest struct {
	Price uint64 `json:"price"`
}

// HashResultRequest is the hashing subsystem's callback payload
type HashResultRequest struct {
	HashFile *string `json:"hash_file"`
	Status   string  `json:"status" binding:"required,oneof=started completed error"`
}

// UpsertUserRequest is the payload for user upserts
type UpsertUserRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	WalletAddress *string `json:"wallet_address"`
}

// SubscribeRequest is the payload for subscription intents
type SubscribeRequest struct {
	AssetID uuid.UUID `json:"asset_id" binding:"required"`
}

// AssetResponse is the external representation of an asset
type AssetResponse struct {
	AssetID           uuid.UUID `json:"asset_id"`
	UserID            string    `json:"user_id"`
	URLFile           string    `json:"url_file"`
	HashFile          *string   `json:"hash_file,omitempty"`
	HashProcessStatus string    `json:"hash_process_status"`
	MintStatus        string    `json:"mint_status"`
	Price             uint64    `json:"price"`
	CounterSimilars   uint64    `json:"counter_similars"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SimilarEntryResponse is one similar pair oriented from the requested asset
type SimilarEntryResponse struct {
	SimilarAssetID     *uuid.UUID `json:"similar_asset_id,omitempty"`
	OwnFrameSecond     *float64   `json:"own_frame_second,omitempty"`
	OwnFrameURL        *string    `json:"own_frame_url,omitempty"`
	SimilarFrameSecond *float64   `json:"similar_frame_second,omitempty"`
	SimilarFrameURL    *string    `json:"similar_frame_url,omitempty"`
	FirstSeen          time.Time  `json:"first_seen"`
	LastSeen           time.Time  `json:"last_seen"`
}

// SubscriptionResponse is the external representation of a subscription
type SubscriptionResponse struct {
	UserID    string    `json:"user_id"`
	AssetID   uuid.UUID `json:"asset_id"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
}

// FromAsset maps a stored asset to its external representation
func FromAsset(asset *schema.Asset) AssetResponse {
	return AssetResponse{
		AssetID:           asset.AssetID,
		UserID:            asset.UserID,
		URLFile:           asset.URLFile,
		HashFile:          asset.HashFile,
		HashProcessStatus: string(asset.HashProcessStatus),
		MintStatus:        string(asset.MintStatus),
		Price:             asset.Price,
		CounterSimilars:   asset.CounterSimilars,
		CreatedAt:         asset.CreatedAt,
		UpdatedAt:         asset.UpdatedAt,
	}
}

// FromAlertSimilar orients a stored pair so the requested asset is the own
// side regardless of which side the detector reported it on
func FromAlertSimilar(assetID uuid.UUID, alert *schema.AlertSimilar) SimilarEntryResponse {
	resp := SimilarEntryResponse{
		FirstSeen: alert.CreatedAt,
		LastSeen:  alert.UpdatedAt,
	}
	if alert.OriginAssetID != nil && *alert.OriginAssetID == assetID {
		resp.SimilarAssetID = alert.SimilarAssetID
		resp.OwnFrameSecond = alert.OriginFrameSecond
		resp.OwnFrameURL = alert.OriginFrameURL
		resp.SimilarFrameSecond = alert.SimilarFrameSecond
		resp.SimilarFrameURL = alert.SimilarFrameURL
	} else {
		resp.SimilarAssetID = alert.OriginAssetID
		resp.OwnFrameSecond = alert.SimilarFrameSecond
		resp.OwnFrameURL = alert.SimilarFrameURL
		resp.SimilarFrameSecond = alert.OriginFrameSecond
		resp.SimilarFrameURL = alert.OriginFrameURL
	}
	return resp
}

// FromSubscription maps a stored subscription to its external representation
func FromSubscription(sub *schema.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		UserID:    sub.UserID,
		AssetID:   sub.AssetID,
		Confirmed: sub.Confirmed == domain.ConfirmedEnabled,
		CreatedAt: sub.CreatedAt,
	}
}
