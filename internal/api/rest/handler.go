package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/veriframe/vf-pipeline/internal/api/middleware"
	"github.com/veriframe/vf-pipeline/internal/api/rest/dto"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/registry"
	"github.com/veriframe/vf-pipeline/internal/store"
)

// Handler defines the REST API handlers
type Handler interface {
	HealthCheck(c *gin.Context)
	RegisterAsset(c *gin.Context)
	GetAsset(c *gin.Context)
	ListAssets(c *gin.Context)
	ListSimilarAssets(c *gin.Context)
	RequestMint(c *gin.Context)
	RecordHashResult(c *gin.Context)
	UpsertUser(c *gin.Context)
	Subscribe(c *gin.Context)
	ConfirmSubscription(c *gin.Context)
	Unsubscribe(c *gin.Context)
}

type handler struct {
	assets        registry.AssetRegistry
	subscriptions registry.SubscriptionRegistry
	users         registry.UserRegistry
	store         store.Store
}

// NewHandler creates the REST handler
func NewHandler(assets registry.AssetRegistry, subs registry.SubscriptionRegistry, users registry.UserRegistry, st store.Store) Handler {
	return &handler{
		assets:        assets,
		subscriptions: subs,
		users:         users,
		store:         st,
	}
}

// HealthCheck reports service and database health
func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterAsset registers a new asset for the authenticated user
func (h *handler) RegisterAsset(c *gin.Context) {
	var req dto.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	asset, err := h.assets.Register(c.Request.Context(), middleware.Subject(c), req.URLFile, req.Price)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromAsset(asset))
}

// GetAsset retrieves one asset owned by the authenticated user
func (h *handler) GetAsset(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}

	asset, err := h.assets.Get(c.Request.Context(), assetID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if asset.UserID != middleware.Subject(c) {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.FromAsset(asset))
}

// ListAssets retrieves the authenticated user's assets
func (h *handler) ListAssets(c *gin.Context) {
	assets, err := h.assets.ListByUser(c.Request.Context(), middleware.Subject(c))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	responses := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, dto.FromAsset(&assets[i]))
	}
	c.JSON(http.StatusOK, gin.H{"assets": responses})
}

// ListSimilarAssets retrieves the similar pairs recorded against an owned asset
func (h *handler) ListSimilarAssets(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}

	alerts, err := h.assets.ListSimilars(c.Request.Context(), middleware.Subject(c), assetID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	entries := make([]dto.SimilarEntryResponse, 0, len(alerts))
	for i := range alerts {
		entries = append(entries, dto.FromAlertSimilar(assetID, &alerts[i]))
	}
	c.JSON(http.StatusOK, gin.H{"asset_id": assetID, "similars": entries})
}

// RequestMint enqueues a mint request for an owned asset
func (h *handler) RequestMint(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}

	var req dto.MintAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := h.assets.RequestMint(c.Request.Context(), middleware.Subject(c), assetID, req.Price); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"asset_id": assetID, "status": "queued"})
}

// RecordHashResult stores the hashing subsystem's callback for an asset
func (h *handler) RecordHashResult(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}

	var req dto.HashResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	status := domain.HashProcessStatus(req.Status)
	if status == domain.HashProcessCompleted && (req.HashFile == nil || *req.HashFile == "") {
		respondValidationError(c, "hash_file required when status is completed")
		return
	}

	if err := h.assets.RecordHashResult(c.Request.Context(), assetID, req.HashFile, status); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpsertUser records the authenticated user's notification profile
func (h *handler) UpsertUser(c *gin.Context) {
	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	user, err := h.users.Upsert(c.Request.Context(), middleware.Subject(c), req.Email, req.WalletAddress)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": user.UserID, "email": user.Email})
}

// Subscribe records a subscription intent for the authenticated user
func (h *handler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	sub, err := h.subscriptions.Subscribe(c.Request.Context(), middleware.Subject(c), req.AssetID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromSubscription(sub))
}

// ConfirmSubscription enables a subscription through its emailed token
func (h *handler) ConfirmSubscription(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		respondValidationError(c, "token is required")
		return
	}

	if err := h.subscriptions.Confirm(c.Request.Context(), token); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "confirmed"})
}

// Unsubscribe removes the authenticated user's subscription on an asset
func (h *handler) Unsubscribe(c *gin.Context) {
	assetID, ok := parseAssetID(c)
	if !ok {
		return
	}

	if err := h.subscriptions.Unsubscribe(c.Request.Context(), middleware.Subject(c), assetID); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func parseAssetID(c *gin.Context) (uuid.UUID, bool) {
	assetID, err := uuid.Parse(c.Param("asset_id"))
	if err != nil {
		respondValidationError(c, "invalid asset id")
		return uuid.Nil, false
	}
	return assetID, true
}
