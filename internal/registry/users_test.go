package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/mocks"
	"github.com/veriframe/vf-pipeline/internal/registry"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

func TestUserRegistry_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	reg := registry.NewUserRegistry(store, clock)
	wallet := "0x8ba1f109551bD432803012645Ac136ddd64DBA72"

	store.EXPECT().
		UpsertUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *schema.User) error {
			assert.Equal(t, "user-1", user.UserID)
			assert.Equal(t, "user@example.com", user.Email)
			assert.Equal(t, &wallet, user.WalletAddress)
			return nil
		})

	user, err := reg.Upsert(context.Background(), "user-1", "user@example.com", &wallet)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}

func TestUserRegistry_Upsert_BadWallet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	reg := registry.NewUserRegistry(store, clock)

	bad := "not-an-address"
	_, err := reg.Upsert(context.Background(), "user-1", "user@example.com", &bad)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestUserRegistry_Get_Absent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	reg := registry.NewUserRegistry(store, clock)

	store.EXPECT().GetUser(gomock.Any(), "missing").Return(nil, nil)

	_, err := reg.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
