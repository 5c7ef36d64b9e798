package minting

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/messaging"
	"github.com/veriframe/vf-pipeline/internal/metrics"
	"github.com/veriframe/vf-pipeline/internal/providers/ethereum"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// Coordinator drives mint requests through the asset mint state machine.
// Requests arrive at least once; every side effect is guarded so replays
// converge instead of double-minting.
type Coordinator struct {
	store      store.Store
	keystore   ethereum.Keystore
	gateway    ethereum.Gateway
	publisher  messaging.Publisher
	json       adapter.JSON
	clock      adapter.Clock
	maxRetries uint32
}

// NewCoordinator creates a minting coordinator
func NewCoordinator(
	s store.Store,
	ks ethereum.Keystore,
	gw ethereum.Gateway,
	pub messaging.Publisher,
	json adapter.JSON,
	clock adapter.Clock,
	maxRetries uint32,
) *Coordinator {
	return &Coordinator{
		store:      s,
		keystore:   ks,
		gateway:    gw,
		publisher:  pub,
		json:       json,
		clock:      clock,
		maxRetries: maxRetries,
	}
}

// Run consumes mint requests until ctx is cancelled
func (c *Coordinator) Run(ctx context.Context, consumer messaging.Consumer, durable string) error {
	return consumer.Consume(ctx, messaging.SubjectMintRequest, durable, c.HandleMessage)
}

// HandleMessage processes one raw mint request message
func (c *Coordinator) HandleMessage(ctx context.Context, data []byte) messaging.Ack {
	var req domain.MintRequest
	if err := c.json.Unmarshal(messaging.UnwrapBody(data), &req); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal mint request"))
		return messaging.AckDrop
	}
	if !req.Valid() {
		logger.WarnCtx(ctx, "Dropping malformed mint request", zap.Any("request", req))
		return messaging.AckDrop
	}

	return c.process(ctx, &req)
}

func (c *Coordinator) process(ctx context.Context, req *domain.MintRequest) messaging.Ack {
	log := logger.FromContext(ctx).With(
		zap.String("asset_id", req.AssetID.String()),
		zap.String("user_id", req.UserID),
		zap.Uint32("tries", req.Tries))

	asset, err := c.store.GetAsset(ctx, req.AssetID)
	if err != nil {
		log.Error("Failed to load asset", zap.Error(err))
		return messaging.AckRetry
	}
	if asset == nil {
		return c.fail(ctx, req, domain.PermanentMintFailure(domain.ErrAssetNotFound.Error(), nil))
	}

	if asset.MintStatus == domain.MintStatusCompleted {
		log.Info("Asset already minted, nothing to do")
		return messaging.AckDone
	}

	// Checked only after the completed short-circuit: a stale exhausted
	// redelivery must not demote a minted asset. Tries equal to the cap is
	// still the last attempt; only beyond it is the request spent.
	if req.Tries > c.maxRetries {
		log.Warn("Mint retries exhausted")
		return c.fail(ctx, req, domain.PermanentMintFailure(domain.ErrRetriesExhausted.Error(), nil))
	}

	if asset.HashProcessStatus != domain.HashProcessCompleted {
		return c.fail(ctx, req, domain.PermanentMintFailure(domain.ErrHashIncomplete.Error(), nil))
	}
	if asset.HashFile == nil || *asset.HashFile == "" {
		return c.fail(ctx, req, domain.PermanentMintFailure(domain.ErrMissingFileHash.Error(), nil))
	}

	claimed, err := c.store.ClaimMint(ctx, req.AssetID)
	if err != nil {
		log.Error("Failed to claim mint", zap.Error(err))
		return messaging.AckRetry
	}
	if !claimed {
		// Another delivery owns the asset, or it completed between the read
		// and the claim. Either way this delivery is done.
		metrics.MintRequests.WithLabelValues(metrics.MintOutcomeSkipped).Inc()
		log.Info("Asset mint already owned elsewhere")
		return messaging.AckDone
	}

	start := c.clock.Now()
	result, failure := c.mint(ctx, req, asset)
	if failure == nil {
		metrics.MintConfirmSeconds.Observe(c.clock.Since(start).Seconds())
	}
	if failure != nil {
		if errors.Is(failure.Err, domain.ErrAlreadyMinted) {
			return c.reconcile(ctx, req, log)
		}
		if failure.Transient {
			return c.retry(ctx, req, failure, log)
		}
		return c.fail(ctx, req, failure)
	}

	return c.complete(ctx, req, result, log)
}

// mint resolves the signing key and submits the transaction
func (c *Coordinator) mint(ctx context.Context, req *domain.MintRequest, asset *schema.Asset) (*ethereum.MintResult, *domain.MintFailure) {
	key, address, err := c.keystore.GetOrCreate(ctx, req.UserID)
	if err != nil {
		return nil, domain.TransientMintFailure("failed to resolve signing key", err)
	}

	recipient := address
	user, err := c.store.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, domain.TransientMintFailure("failed to load user", err)
	}
	if user != nil && user.WalletAddress != nil && domain.ValidUserAddress(*user.WalletAddress) {
		recipient = common.HexToAddress(*user.WalletAddress)
	}

	price := req.Price
	if price == 0 {
		price = asset.Price
	}

	result, err := c.gateway.Mint(ctx, ethereum.MintParams{
		Key:       key,
		Recipient: recipient,
		AssetID:   req.AssetID,
		HashFile:  *asset.HashFile,
		Price:     price,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyMinted) {
			return nil, domain.PermanentMintFailure(domain.ErrAlreadyMinted.Error(), err)
		}
		return nil, domain.TransientMintFailure("mint submission failed", err)
	}
	return result, nil
}

// complete records the confirmed transaction and announces success
func (c *Coordinator) complete(ctx context.Context, req *domain.MintRequest, result *ethereum.MintResult, log *zap.Logger) messaging.Ack {
	raw, err := c.json.Marshal(result)
	if err != nil {
		raw = []byte("{}")
	}

	err = c.store.CompleteMint(ctx, req.AssetID, &schema.BlockchainTx{
		AssetID:           req.AssetID,
		CreationTime:      c.clock.Now(),
		TxHash:            result.TxHash,
		ContractAddress:   result.Contract,
		Sender:            result.Sender,
		Recipient:         result.Recipient,
		BlockNumber:       result.BlockNumber,
		GasUsed:           result.GasUsed,
		EffectiveGasPrice: result.EffectiveGasPrice,
		Cost:              result.GasUsed * result.EffectiveGasPrice,
		Currency:          "wei",
		Raw:               datatypes.JSON(raw),
	})
	if err != nil {
		// The transaction is on chain; redelivery replays into CompleteMint,
		// which tolerates the duplicate tx hash.
		log.Error("Failed to record completed mint", zap.Error(err))
		return messaging.AckRetry
	}

	if err := c.publisher.PublishMintOK(ctx, &domain.MintOK{
		AssetID: req.AssetID,
		TxHash:  result.TxHash,
	}); err != nil {
		log.Error("Failed to publish mint ok", zap.Error(err))
		return messaging.AckRetry
	}

	metrics.MintRequests.WithLabelValues(metrics.MintOutcomeCompleted).Inc()
	log.Info("Mint completed", zap.String("tx_hash", result.TxHash))
	return messaging.AckDone
}

// reconcile handles the chain reporting the token as already minted. The
// stored state lags the chain, typically after a crash between confirmation
// and the completion write.
func (c *Coordinator) reconcile(ctx context.Context, req *domain.MintRequest, log *zap.Logger) messaging.Ack {
	owner, err := c.gateway.TokenOwner(ctx, req.AssetID)
	if err != nil {
		log.Error("Failed to query token owner", zap.Error(err))
		return messaging.AckRetry
	}
	if owner == nil {
		// The revert said minted but the token is not queryable. Do not
		// guess; let redelivery retry the whole attempt.
		log.Warn("Already-minted revert without queryable token")
		return c.retry(ctx, req, domain.TransientMintFailure(domain.ErrAlreadyMinted.Error(), nil), log)
	}

	btx, err := c.store.GetLatestTxByAsset(ctx, req.AssetID)
	if err != nil {
		log.Error("Failed to load transaction history", zap.Error(err))
		return messaging.AckRetry
	}
	if btx == nil {
		// The submission that minted the token left no local trace. Record a
		// hash-less reconciliation row so the asset still carries a
		// transaction trail.
		btx = &schema.BlockchainTx{
			AssetID:      req.AssetID,
			CreationTime: c.clock.Now(),
			Recipient:    *owner,
			Currency:     "wei",
		}
	}

	if err := c.store.CompleteMint(ctx, req.AssetID, btx); err != nil {
		log.Error("Failed to reconcile mint", zap.Error(err))
		return messaging.AckRetry
	}

	if err := c.publisher.PublishMintOK(ctx, &domain.MintOK{
		AssetID: req.AssetID,
		TxHash:  btx.TxHash,
	}); err != nil {
		log.Error("Failed to publish reconciled mint ok", zap.Error(err))
		return messaging.AckRetry
	}

	metrics.MintRequests.WithLabelValues(metrics.MintOutcomeReconciled).Inc()
	log.Info("Mint reconciled against chain state", zap.Stringp("owner", owner))
	return messaging.AckDone
}

// retry releases the claim and re-enqueues the request with an incremented
// try counter
func (c *Coordinator) retry(ctx context.Context, req *domain.MintRequest, failure *domain.MintFailure, log *zap.Logger) messaging.Ack {
	if err := c.store.SetMintStatus(ctx, req.AssetID, domain.MintStatusError); err != nil {
		log.Error("Failed to release mint claim", zap.Error(err))
		return messaging.AckRetry
	}

	next := domain.MintRequest{
		AssetID: req.AssetID,
		UserID:  req.UserID,
		Price:   req.Price,
		Tries:   req.Tries + 1,
	}
	if err := c.publisher.PublishMintRequest(ctx, &next); err != nil {
		log.Error("Failed to re-enqueue mint request", zap.Error(err))
		return messaging.AckRetry
	}

	metrics.MintRequests.WithLabelValues(metrics.MintOutcomeRetried).Inc()
	log.Warn("Mint attempt failed, re-enqueued",
		zap.String("reason", failure.Reason),
		zap.Uint32("next_tries", next.Tries))
	return messaging.AckDone
}

// fail marks the asset errored and announces the terminal failure
func (c *Coordinator) fail(ctx context.Context, req *domain.MintRequest, failure *domain.MintFailure) messaging.Ack {
	log := logger.FromContext(ctx).With(zap.String("asset_id", req.AssetID.String()))

	if err := c.store.SetMintStatus(ctx, req.AssetID, domain.MintStatusError); err != nil &&
		!errors.Is(err, domain.ErrAssetNotFound) {
		log.Error("Failed to mark asset errored", zap.Error(err))
		return messaging.AckRetry
	}

	if err := c.publisher.PublishMintFailed(ctx, &domain.MintFailed{
		AssetID: req.AssetID,
		Reason:  failure.Reason,
	}); err != nil {
		log.Error("Failed to publish mint failure", zap.Error(err))
		return messaging.AckRetry
	}

	metrics.MintRequests.WithLabelValues(metrics.MintOutcomeFailed).Inc()
	log.Warn("Mint failed terminally", zap.String("reason", failure.Reason))
	return messaging.AckDone
}
