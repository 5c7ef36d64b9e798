package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/mailer"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

const confirmTokenTTL = 72 * time.Hour

// SubscriptionRegistry defines the opt-in subscription operations
//
//go:generate mockgen -source=subscriptions.go -destination=../mocks/subscription_registry.go -package=mocks -mock_names=SubscriptionRegistry=MockSubscriptionRegistry
type SubscriptionRegistry interface {
	// Subscribe records a subscription intent and sends the confirmation
	// link. Repeating an intent re-sends the link without resetting state.
	Subscribe(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error)
	// Confirm enables the subscription named by the confirmation token
	Confirm(ctx context.Context, token string) error
	// Unsubscribe removes a subscription
	Unsubscribe(ctx context.Context, userID string, assetID uuid.UUID) error
	// Get retrieves a subscription, domain.ErrSubscriptionNotFound when absent
	Get(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error)
}

type subscriptionRegistry struct {
	store       store.Store
	mailer      mailer.Mailer
	issuer      *ConfirmTokenIssuer
	siteBaseURL string
}

// NewSubscriptionRegistry creates a subscription registry
func NewSubscriptionRegistry(s store.Store, m mailer.Mailer, issuer *ConfirmTokenIssuer, siteBaseURL string) SubscriptionRegistry {
	return &subscriptionRegistry{
		store:       s,
		mailer:      m,
		issuer:      issuer,
		siteBaseURL: siteBaseURL,
	}
}

// Subscribe records a subscription intent and sends the confirmation link
func (r *subscriptionRegistry) Subscribe(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error) {
	asset, err := r.store.GetAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}

	user, err := r.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	sub, err := r.store.UpsertSubscription(ctx, userID, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to record subscription: %w", err)
	}

	if sub.Confirmed == domain.ConfirmedEnabled {
		return sub, nil
	}

	token, err := r.issuer.Issue(userID, assetID, confirmTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue confirmation token: %w", err)
	}
	confirmURL := fmt.Sprintf("%s/subscriptions/confirm?token=%s", r.siteBaseURL, token)

	if err := r.mailer.SendSubscriptionConfirmation(ctx, user.Email, assetID, confirmURL); err != nil {
		// The intent is stored; the user can re-subscribe to get a new link.
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Failed to send confirmation mail"),
			zap.String("user_id", userID),
			zap.String("asset_id", assetID.String()))
	}

	return sub, nil
}

// Confirm enables the subscription named by the confirmation token
func (r *subscriptionRegistry) Confirm(ctx context.Context, token string) error {
	userID, assetID, err := r.issuer.Verify(token)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrInvalidPayload, err)
	}

	confirmed, err := r.store.ConfirmSubscription(ctx, userID, assetID)
	if err != nil {
		return err
	}
	if !confirmed {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

// Unsubscribe removes a subscription
func (r *subscriptionRegistry) Unsubscribe(ctx context.Context, userID string, assetID uuid.UUID) error {
	deleted, err := r.store.DeleteSubscription(ctx, userID, assetID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

// Get retrieves a subscription
func (r *subscriptionRegistry) Get(ctx context.Context, userID string, assetID uuid.UUID) (*schema.Subscription, error) {
	sub, err := r.store.GetSubscription(ctx, userID, assetID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrSubscriptionNotFound
	}
	return sub, nil
}
