package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestAsset creates a registered asset row
func buildTestAsset(userID string) *schema.Asset {
	now := time.Now().UTC()
	return &schema.Asset{
		AssetID:           uuid.New(),
		UserID:            userID,
		URLFile:           "https://assets.test/" + uuid.NewString() + ".mp4",
		HashProcessStatus: domain.HashProcessNotStarted,
		MintStatus:        domain.MintStatusNone,
		Price:             100,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// testDedupWindow is the pair dedup window used throughout the alert tests
const testDedupWindow = 24 * time.Hour

// buildTestAlert creates an alert row for the given pair, timestamps aligned
// the way the ingestor sets them
func buildTestAlert(origin, similar uuid.UUID, at time.Time) *schema.AlertSimilar {
	sourceType := "frames"
	originURL := "https://frames.test/" + origin.String() + ".jpg"
	similarURL := "https://frames.test/" + similar.String() + ".jpg"
	originSecond := 12.5
	similarSecond := 48.0
	return &schema.AlertSimilar{
		ID:                 uuid.New(),
		PairKey:            domain.CanonicalPairKey(&origin, &similar),
		SourceType:         &sourceType,
		OriginAssetID:      &origin,
		OriginFrameSecond:  &originSecond,
		OriginFrameURL:     &originURL,
		SimilarAssetID:     &similar,
		SimilarFrameSecond: &similarSecond,
		SimilarFrameURL:    &similarURL,
		CreatedAt:          at,
		UpdatedAt:          at,
	}
}

// buildTestTx creates a confirmed transaction record
func buildTestTx(assetID uuid.UUID, txHash string) *schema.BlockchainTx {
	return &schema.BlockchainTx{
		AssetID:         assetID,
		CreationTime:    time.Now().UTC(),
		TxHash:          txHash,
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		Recipient:       "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		Raw:             datatypes.JSON(`{"block_number":1200,"gas_used":84000}`),
	}
}

// =============================================================================
// Test: Assets
// =============================================================================

func testAssets(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		asset := buildTestAsset("user-assets-1")
		require.NoError(t, store.CreateAsset(ctx, asset))

		got, err := store.GetAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, asset.AssetID, got.AssetID)
		assert.Equal(t, asset.UserID, got.UserID)
		assert.Equal(t, asset.URLFile, got.URLFile)
		assert.Equal(t, domain.MintStatusNone, got.MintStatus)
		assert.Nil(t, got.HashFile)
	})

	t.Run("same url registered twice by one user is rejected", func(t *testing.T) {
		first := buildTestAsset("user-assets-dup")
		require.NoError(t, store.CreateAsset(ctx, first))

		dup := buildTestAsset("user-assets-dup")
		dup.URLFile = first.URLFile
		err := store.CreateAsset(ctx, dup)
		assert.ErrorIs(t, err, domain.ErrAssetAlreadyExists)
	})

	t.Run("same url is fine across users", func(t *testing.T) {
		first := buildTestAsset("user-assets-dup-a")
		require.NoError(t, store.CreateAsset(ctx, first))

		other := buildTestAsset("user-assets-dup-b")
		other.URLFile = first.URLFile
		assert.NoError(t, store.CreateAsset(ctx, other))
	})

	t.Run("get absent asset returns nil without error", func(t *testing.T) {
		got, err := store.GetAsset(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by user returns newest first", func(t *testing.T) {
		older := buildTestAsset("user-assets-2")
		older.CreatedAt = time.Now().UTC().Add(-time.Hour)
		newer := buildTestAsset("user-assets-2")
		require.NoError(t, store.CreateAsset(ctx, older))
		require.NoError(t, store.CreateAsset(ctx, newer))

		assets, err := store.ListAssetsByUser(ctx, "user-assets-2")
		require.NoError(t, err)
		require.Len(t, assets, 2)
		assert.Equal(t, newer.AssetID, assets[0].AssetID)
		assert.Equal(t, older.AssetID, assets[1].AssetID)
	})

	t.Run("list for unknown user is empty", func(t *testing.T) {
		assets, err := store.ListAssetsByUser(ctx, "user-nobody")
		require.NoError(t, err)
		assert.Empty(t, assets)
	})
}

// =============================================================================
// Test: SetAssetHashResult
// =============================================================================

func testSetAssetHashResult(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("records hash and status", func(t *testing.T) {
		asset := buildTestAsset("user-hash-1")
		require.NoError(t, store.CreateAsset(ctx, asset))

		hash := "0xabc123"
		require.NoError(t, store.SetAssetHashResult(ctx, asset.AssetID, &hash, domain.HashProcessCompleted))

		got, err := store.GetAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		require.NotNil(t, got.HashFile)
		assert.Equal(t, hash, *got.HashFile)
		assert.Equal(t, domain.HashProcessCompleted, got.HashProcessStatus)
	})

	t.Run("nil hash keeps existing value", func(t *testing.T) {
		asset := buildTestAsset("user-hash-2")
		require.NoError(t, store.CreateAsset(ctx, asset))

		hash := "0xdef456"
		require.NoError(t, store.SetAssetHashResult(ctx, asset.AssetID, &hash, domain.HashProcessCompleted))
		require.NoError(t, store.SetAssetHashResult(ctx, asset.AssetID, nil, domain.HashProcessError))

		got, err := store.GetAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		require.NotNil(t, got.HashFile)
		assert.Equal(t, hash, *got.HashFile)
		assert.Equal(t, domain.HashProcessError, got.HashProcessStatus)
	})

	t.Run("absent asset answers ErrAssetNotFound", func(t *testing.T) {
		err := store.SetAssetHashResult(ctx, uuid.New(), nil, domain.HashProcessStarted)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

// =============================================================================
// Test: ClaimMint / SetMintStatus
// =============================================================================

func testClaimMint(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("claim from none succeeds once", func(t *testing.T) {
		asset := buildTestAsset("user-claim-1")
		require.NoError(t, store.CreateAsset(ctx, asset))

		claimed, err := store.ClaimMint(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.True(t, claimed)

		got, err := store.GetAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.Equal(t, domain.MintStatusStarted, got.MintStatus)

		// A second worker loses the claim
		claimed, err = store.ClaimMint(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("errored asset is claimable again", func(t *testing.T) {
		asset := buildTestAsset("user-claim-2")
		require.NoError(t, store.CreateAsset(ctx, asset))

		claimed, err := store.ClaimMint(ctx, asset.AssetID)
		require.NoError(t, err)
		require.True(t, claimed)

		require.NoError(t, store.SetMintStatus(ctx, asset.AssetID, domain.MintStatusError))

		claimed, err = store.ClaimMint(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("completed asset is not claimable", func(t *testing.T) {
		asset := buildTestAsset("user-claim-3")
		require.NoError(t, store.CreateAsset(ctx, asset))
		require.NoError(t, store.SetMintStatus(ctx, asset.AssetID, domain.MintStatusCompleted))

		claimed, err := store.ClaimMint(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.False(t, claimed)
	})

	t.Run("completed asset is never demoted", func(t *testing.T) {
		asset := buildTestAsset("user-claim-4")
		require.NoError(t, store.CreateAsset(ctx, asset))
		require.NoError(t, store.SetMintStatus(ctx, asset.AssetID, domain.MintStatusCompleted))

		// A late failure write against a minted asset is dropped silently
		require.NoError(t, store.SetMintStatus(ctx, asset.AssetID, domain.MintStatusError))

		got, err := store.GetAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.Equal(t, domain.MintStatusCompleted, got.MintStatus)
	})

	t.Run("absent asset answers ErrAssetNotFound on status update", func(t *testing.T) {
		err := store.SetMintStatus(ctx, uuid.New(), domain.MintStatusError)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})

	t.Run("claim on absent asset is a lost claim", func(t *testing.T) {
		claimed, err := store.ClaimMint(ctx, uuid.New())
		require.NoError(t, err)
		assert.False(t, claimed)
	})
}

// =============================================================================
// Test: CompleteMint / GetLatestTxByAsset
// =============================================================================

func testCompleteMint(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("records transaction and marks asset completed", func(t *testing.T) {
		asset := buildTestAsset("user-complete-1")
		require.NoError(t, store.CreateAsset(ctx, asset))

		btx := buildTestTx(asset.AssetID, "0xtx-complete-1")
		require.NoError(t, store.CompleteMint(ctx, asset.AssetID, btx))

		got, err := store.GetAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.Equal(t, domain.MintStatusCompleted, got.MintStatus)

		latest, err := store.GetLatestTxByAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "0xtx-complete-1", latest.TxHash)
		assert.Equal(t, btx.Recipient, latest.Recipient)
	})

	t.Run("replayed completion with the same tx hash is a no-op", func(t *testing.T) {
		asset := buildTestAsset("user-complete-2")
		require.NoError(t, store.CreateAsset(ctx, asset))

		first := buildTestTx(asset.AssetID, "0xtx-complete-2")
		require.NoError(t, store.CompleteMint(ctx, asset.AssetID, first))

		replay := buildTestTx(asset.AssetID, "0xtx-complete-2")
		require.NoError(t, store.CompleteMint(ctx, asset.AssetID, replay))

		latest, err := store.GetLatestTxByAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.Equal(t, "0xtx-complete-2", latest.TxHash)
	})

	t.Run("newest transaction wins the latest lookup", func(t *testing.T) {
		asset := buildTestAsset("user-complete-3")
		require.NoError(t, store.CreateAsset(ctx, asset))

		older := buildTestTx(asset.AssetID, "0xtx-old")
		older.CreationTime = time.Now().UTC().Add(-time.Hour)
		require.NoError(t, store.CompleteMint(ctx, asset.AssetID, older))

		newer := buildTestTx(asset.AssetID, "0xtx-new")
		require.NoError(t, store.CompleteMint(ctx, asset.AssetID, newer))

		latest, err := store.GetLatestTxByAsset(ctx, asset.AssetID)
		require.NoError(t, err)
		assert.Equal(t, "0xtx-new", latest.TxHash)
	})

	t.Run("absent asset rolls the transaction back", func(t *testing.T) {
		assetID := uuid.New()
		err := store.CompleteMint(ctx, assetID, buildTestTx(assetID, "0xtx-orphan"))
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)

		latest, err := store.GetLatestTxByAsset(ctx, assetID)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

// =============================================================================
// Test: KeyPairs
// =============================================================================

func testKeyPairs(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get before create returns nil", func(t *testing.T) {
		kp, err := store.GetKeyPair(ctx, "user-keys-0")
		require.NoError(t, err)
		assert.Nil(t, kp)
	})

	t.Run("create then get round trip", func(t *testing.T) {
		stored, err := store.CreateKeyPair(ctx, &schema.KeyPair{
			UserID:           "user-keys-1",
			Address:          "0x0000000000000000000000000000000000000011",
			SealedPrivateKey: "c2VhbGVkLTE=",
			CreatedAt:        time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, "0x0000000000000000000000000000000000000011", stored.Address)

		got, err := store.GetKeyPair(ctx, "user-keys-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, stored.SealedPrivateKey, got.SealedPrivateKey)
	})

	t.Run("race loser receives the stored winner", func(t *testing.T) {
		winner, err := store.CreateKeyPair(ctx, &schema.KeyPair{
			UserID:           "user-keys-2",
			Address:          "0x0000000000000000000000000000000000000022",
			SealedPrivateKey: "c2VhbGVkLXdpbm5lcg==",
			CreatedAt:        time.Now().UTC(),
		})
		require.NoError(t, err)

		loser, err := store.CreateKeyPair(ctx, &schema.KeyPair{
			UserID:           "user-keys-2",
			Address:          "0x0000000000000000000000000000000000000033",
			SealedPrivateKey: "c2VhbGVkLWxvc2Vy",
			CreatedAt:        time.Now().UTC(),
		})
		require.NoError(t, err)
		assert.Equal(t, winner.Address, loser.Address)
		assert.Equal(t, winner.SealedPrivateKey, loser.SealedPrivateKey)
	})
}

// =============================================================================
// Test: UpsertAlertSimilar
// =============================================================================

func testUpsertAlertSimilar(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first observation inserts and bumps both counters", func(t *testing.T) {
		origin := buildTestAsset("user-alert-1")
		similar := buildTestAsset("user-alert-1")
		require.NoError(t, store.CreateAsset(ctx, origin))
		require.NoError(t, store.CreateAsset(ctx, similar))

		inserted, err := store.UpsertAlertSimilar(ctx, buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC()), testDedupWindow)
		require.NoError(t, err)
		assert.True(t, inserted)

		gotOrigin, err := store.GetAsset(ctx, origin.AssetID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), gotOrigin.CounterSimilars)

		gotSimilar, err := store.GetAsset(ctx, similar.AssetID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), gotSimilar.CounterSimilars)
	})

	t.Run("re-observation updates frames but keeps counters and created_at", func(t *testing.T) {
		origin := buildTestAsset("user-alert-2")
		similar := buildTestAsset("user-alert-2")
		require.NoError(t, store.CreateAsset(ctx, origin))
		require.NoError(t, store.CreateAsset(ctx, similar))

		firstSeen := time.Now().UTC().Add(-time.Hour)
		first := buildTestAlert(origin.AssetID, similar.AssetID, firstSeen)
		inserted, err := store.UpsertAlertSimilar(ctx, first, testDedupWindow)
		require.NoError(t, err)
		require.True(t, inserted)

		again := buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC())
		inserted, err = store.UpsertAlertSimilar(ctx, again, testDedupWindow)
		require.NoError(t, err)
		assert.False(t, inserted)
		assert.True(t, again.CreatedAt.Equal(firstSeen) || again.CreatedAt.Before(again.UpdatedAt))

		gotOrigin, err := store.GetAsset(ctx, origin.AssetID)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), gotOrigin.CounterSimilars)
	})

	t.Run("mirrored pair collapses onto the same row", func(t *testing.T) {
		origin := buildTestAsset("user-alert-3")
		similar := buildTestAsset("user-alert-3")
		require.NoError(t, store.CreateAsset(ctx, origin))
		require.NoError(t, store.CreateAsset(ctx, similar))

		inserted, err := store.UpsertAlertSimilar(ctx, buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC()), testDedupWindow)
		require.NoError(t, err)
		require.True(t, inserted)

		mirrored, err := store.UpsertAlertSimilar(ctx, buildTestAlert(similar.AssetID, origin.AssetID, time.Now().UTC()), testDedupWindow)
		require.NoError(t, err)
		assert.False(t, mirrored)
	})

	t.Run("pair re-detected after the window counts as fresh", func(t *testing.T) {
		origin := buildTestAsset("user-alert-4")
		similar := buildTestAsset("user-alert-4")
		require.NoError(t, store.CreateAsset(ctx, origin))
		require.NoError(t, store.CreateAsset(ctx, similar))

		old := buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC().Add(-48*time.Hour))
		inserted, err := store.UpsertAlertSimilar(ctx, old, testDedupWindow)
		require.NoError(t, err)
		require.True(t, inserted)
		require.NoError(t, store.MarkAlertsNotified(ctx, []string{old.PairKey}, time.Now().UTC().Add(-47*time.Hour)))

		redetected := buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC())
		inserted, err = store.UpsertAlertSimilar(ctx, redetected, testDedupWindow)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.NotEqual(t, old.ID, redetected.ID)

		// The reset row is dispatchable again
		alerts, err := store.ListUnnotifiedAlerts(ctx, time.Now().UTC().Add(-time.Minute))
		require.NoError(t, err)
		found := false
		for _, a := range alerts {
			if a.PairKey == redetected.PairKey {
				found = true
				assert.Nil(t, a.NotifiedAt)
			}
		}
		assert.True(t, found)

		// Each fresh detection bumps the counters
		gotOrigin, err := store.GetAsset(ctx, origin.AssetID)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), gotOrigin.CounterSimilars)
	})
}

// =============================================================================
// Test: ListAlertsByAsset
// =============================================================================

func testListAlertsByAsset(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns pairs from either side, newest first", func(t *testing.T) {
		subject := buildTestAsset("user-similar-1")
		first := buildTestAsset("user-similar-1")
		second := buildTestAsset("user-similar-2")
		require.NoError(t, store.CreateAsset(ctx, subject))
		require.NoError(t, store.CreateAsset(ctx, first))
		require.NoError(t, store.CreateAsset(ctx, second))

		// Subject sits on the origin side of one pair and the similar
		// side of the other
		older := buildTestAlert(subject.AssetID, first.AssetID, time.Now().UTC().Add(-time.Hour))
		_, err := store.UpsertAlertSimilar(ctx, older, testDedupWindow)
		require.NoError(t, err)
		newer := buildTestAlert(second.AssetID, subject.AssetID, time.Now().UTC())
		_, err = store.UpsertAlertSimilar(ctx, newer, testDedupWindow)
		require.NoError(t, err)

		alerts, err := store.ListAlertsByAsset(ctx, subject.AssetID)
		require.NoError(t, err)
		require.Len(t, alerts, 2)
		assert.Equal(t, newer.PairKey, alerts[0].PairKey)
		assert.Equal(t, older.PairKey, alerts[1].PairKey)
	})

	t.Run("uninvolved asset gets an empty list", func(t *testing.T) {
		bystander := buildTestAsset("user-similar-3")
		require.NoError(t, store.CreateAsset(ctx, bystander))

		alerts, err := store.ListAlertsByAsset(ctx, bystander.AssetID)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}

// =============================================================================
// Test: Alert dispatch bookkeeping
// =============================================================================

func testAlertDispatch(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("unnotified alerts are listed then stamped", func(t *testing.T) {
		origin := buildTestAsset("user-dispatch-1")
		similar := buildTestAsset("user-dispatch-1")
		require.NoError(t, store.CreateAsset(ctx, origin))
		require.NoError(t, store.CreateAsset(ctx, similar))

		alert := buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC())
		_, err := store.UpsertAlertSimilar(ctx, alert, testDedupWindow)
		require.NoError(t, err)

		since := time.Now().UTC().Add(-time.Minute)
		alerts, err := store.ListUnnotifiedAlerts(ctx, since)
		require.NoError(t, err)
		require.NotEmpty(t, alerts)

		found := false
		for _, a := range alerts {
			if a.PairKey == alert.PairKey {
				found = true
				assert.Nil(t, a.NotifiedAt)
			}
		}
		assert.True(t, found)

		require.NoError(t, store.MarkAlertsNotified(ctx, []string{alert.PairKey}, time.Now().UTC()))

		alerts, err = store.ListUnnotifiedAlerts(ctx, since)
		require.NoError(t, err)
		for _, a := range alerts {
			assert.NotEqual(t, alert.PairKey, a.PairKey)
		}
	})

	t.Run("lookback horizon excludes old alerts", func(t *testing.T) {
		origin := buildTestAsset("user-dispatch-2")
		similar := buildTestAsset("user-dispatch-2")
		require.NoError(t, store.CreateAsset(ctx, origin))
		require.NoError(t, store.CreateAsset(ctx, similar))

		stale := buildTestAlert(origin.AssetID, similar.AssetID, time.Now().UTC().Add(-48*time.Hour))
		_, err := store.UpsertAlertSimilar(ctx, stale, testDedupWindow)
		require.NoError(t, err)

		alerts, err := store.ListUnnotifiedAlerts(ctx, time.Now().UTC().Add(-24*time.Hour))
		require.NoError(t, err)
		for _, a := range alerts {
			assert.NotEqual(t, stale.PairKey, a.PairKey)
		}
	})

	t.Run("empty pair key batch is a no-op", func(t *testing.T) {
		assert.NoError(t, store.MarkAlertsNotified(ctx, nil, time.Now().UTC()))
	})
}

// =============================================================================
// Test: Users
// =============================================================================

func testUsers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert then get round trip", func(t *testing.T) {
		wallet := "0x8ba1f109551bD432803012645Ac136ddd64DBA72"
		require.NoError(t, store.UpsertUser(ctx, &schema.User{
			UserID:        "user-users-1",
			Email:         "first@example.com",
			WalletAddress: &wallet,
			CreatedAt:     time.Now().UTC(),
		}))

		got, err := store.GetUser(ctx, "user-users-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "first@example.com", got.Email)
		require.NotNil(t, got.WalletAddress)
		assert.Equal(t, wallet, *got.WalletAddress)
	})

	t.Run("upsert replaces email and wallet", func(t *testing.T) {
		require.NoError(t, store.UpsertUser(ctx, &schema.User{
			UserID:    "user-users-2",
			Email:     "old@example.com",
			CreatedAt: time.Now().UTC(),
		}))
		require.NoError(t, store.UpsertUser(ctx, &schema.User{
			UserID:    "user-users-2",
			Email:     "new@example.com",
			CreatedAt: time.Now().UTC(),
		}))

		got, err := store.GetUser(ctx, "user-users-2")
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", got.Email)
		assert.Nil(t, got.WalletAddress)
	})

	t.Run("get absent user returns nil", func(t *testing.T) {
		got, err := store.GetUser(ctx, "user-nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: Subscriptions
// =============================================================================

func testSubscriptions(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert starts disabled and repeat keeps confirmation", func(t *testing.T) {
		assetID := uuid.New()
		sub, err := store.UpsertSubscription(ctx, "user-subs-1", assetID)
		require.NoError(t, err)
		assert.Equal(t, domain.ConfirmedDisabled, sub.Confirmed)

		confirmed, err := store.ConfirmSubscription(ctx, "user-subs-1", assetID)
		require.NoError(t, err)
		assert.True(t, confirmed)

		// A repeated intent must not reset the confirmed state
		again, err := store.UpsertSubscription(ctx, "user-subs-1", assetID)
		require.NoError(t, err)
		assert.Equal(t, domain.ConfirmedEnabled, again.Confirmed)
	})

	t.Run("confirm without a subscription reports no match", func(t *testing.T) {
		confirmed, err := store.ConfirmSubscription(ctx, "user-subs-2", uuid.New())
		require.NoError(t, err)
		assert.False(t, confirmed)
	})

	t.Run("delete reports whether a row existed", func(t *testing.T) {
		assetID := uuid.New()
		_, err := store.UpsertSubscription(ctx, "user-subs-3", assetID)
		require.NoError(t, err)

		deleted, err := store.DeleteSubscription(ctx, "user-subs-3", assetID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = store.DeleteSubscription(ctx, "user-subs-3", assetID)
		require.NoError(t, err)
		assert.False(t, deleted)

		got, err := store.GetSubscription(ctx, "user-subs-3", assetID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: ListConfirmedSubscribers
// =============================================================================

func testListConfirmedSubscribers(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("returns only confirmed subscribers with their email", func(t *testing.T) {
		assetID := uuid.New()

		require.NoError(t, store.UpsertUser(ctx, &schema.User{
			UserID:    "user-confirmed",
			Email:     "confirmed@example.com",
			CreatedAt: time.Now().UTC(),
		}))
		require.NoError(t, store.UpsertUser(ctx, &schema.User{
			UserID:    "user-pending",
			Email:     "pending@example.com",
			CreatedAt: time.Now().UTC(),
		}))

		_, err := store.UpsertSubscription(ctx, "user-confirmed", assetID)
		require.NoError(t, err)
		_, err = store.UpsertSubscription(ctx, "user-pending", assetID)
		require.NoError(t, err)

		_, err = store.ConfirmSubscription(ctx, "user-confirmed", assetID)
		require.NoError(t, err)

		subscribers, err := store.ListConfirmedSubscribers(ctx, []uuid.UUID{assetID})
		require.NoError(t, err)
		require.Len(t, subscribers, 1)
		assert.Equal(t, assetID, subscribers[0].AssetID)
		assert.Equal(t, "user-confirmed", subscribers[0].UserID)
		assert.Equal(t, "confirmed@example.com", subscribers[0].Email)
	})

	t.Run("empty asset list short-circuits", func(t *testing.T) {
		subscribers, err := store.ListConfirmedSubscribers(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, subscribers)
	})
}

// =============================================================================
// Test: ClaimDispatchMarker
// =============================================================================

func testClaimDispatchMarker(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first claim wins, replay loses, next window claims again", func(t *testing.T) {
		claimed, err := store.ClaimDispatchMarker(ctx, "owner@example.com", "window-1", 3)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = store.ClaimDispatchMarker(ctx, "owner@example.com", "window-1", 3)
		require.NoError(t, err)
		assert.False(t, claimed)

		claimed, err = store.ClaimDispatchMarker(ctx, "owner@example.com", "window-2", 1)
		require.NoError(t, err)
		assert.True(t, claimed)
	})

	t.Run("windows are scoped per recipient", func(t *testing.T) {
		claimed, err := store.ClaimDispatchMarker(ctx, "first@example.com", "window-3", 1)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = store.ClaimDispatchMarker(ctx, "second@example.com", "window-3", 1)
		require.NoError(t, err)
		assert.True(t, claimed)
	})
}

// =============================================================================
// Test: Ping
// =============================================================================

func testPing(t *testing.T, store Store) {
	assert.NoError(t, store.Ping(context.Background()))
}

// RunStoreTests runs the full store suite against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Assets", testAssets},
		{"SetAssetHashResult", testSetAssetHashResult},
		{"ClaimMint", testClaimMint},
		{"CompleteMint", testCompleteMint},
		{"KeyPairs", testKeyPairs},
		{"UpsertAlertSimilar", testUpsertAlertSimilar},
		{"ListAlertsByAsset", testListAlertsByAsset},
		{"AlertDispatch", testAlertDispatch},
		{"Users", testUsers},
		{"Subscriptions", testSubscriptions},
		{"ListConfirmedSubscribers", testListConfirmedSubscribers},
		{"ClaimDispatchMarker", testClaimDispatchMarker},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
