package registry

import (
	"context"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// UserRegistry defines recipient bookkeeping operations
//
//go:generate mockgen -source=users.go -destination=../mocks/user_registry.go -package=mocks -mock_names=UserRegistry=MockUserRegistry
type UserRegistry interface {
	// Upsert records or refreshes a user
	Upsert(ctx context.Context, userID, email string, walletAddress *string) (*schema.User, error)
	// Get retrieves a user, domain.ErrUserNotFound when absent
	Get(ctx context.Context, userID string) (*schema.User, error)
}

type userRegistry struct {
	store store.Store
	clock adapter.Clock
}

// NewUserRegistry creates a user registry
func NewUserRegistry(s store.Store, clock adapter.Clock) UserRegistry {
	return &userRegistry{store: s, clock: clock}
}

// Upsert records or refreshes a user
func (r *userRegistry) Upsert(ctx context.Context, userID, email string, walletAddress *string) (*schema.User, error) {
	if walletAddress != nil && !domain.ValidUserAddress(*walletAddress) {
		return nil, domain.ErrInvalidPayload
	}

	user := &schema.User{
		UserID:        userID,
		Email:         email,
		WalletAddress: walletAddress,
		CreatedAt:     r.clock.Now(),
	}
	if err := r.store.UpsertUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get retrieves a user
func (r *userRegistry) Get(ctx context.Context, userID string) (*schema.User, error) {
	user, err := r.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}
