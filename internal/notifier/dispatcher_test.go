package notifier_test

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/mailer"
	"github.com/veriframe/vf-pipeline/internal/mocks"
	"github.com/veriframe/vf-pipeline/internal/notifier"
	"github.com/veriframe/vf-pipeline/internal/store"
	"github.com/veriframe/vf-pipeline/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testDispatcherMocks contains all the mocks needed for testing the dispatcher
type testDispatcherMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	mailer     *mocks.MockMailer
	clock      *mocks.MockClock
	dispatcher notifier.Sweeper
}

// setupTestDispatcher creates all the mocks and dispatcher for testing
func setupTestDispatcher(t *testing.T) *testDispatcherMocks {
	ctrl := gomock.NewController(t)

	tm := &testDispatcherMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		mailer: mocks.NewMockMailer(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}

	now := time.Now()
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	// Sleep between cycles resolves quickly so Stop gets a chance to run
	tm.clock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		go func() {
			time.Sleep(50 * time.Millisecond)
			ch <- time.Now()
		}()
		return ch
	}).AnyTimes()

	tm.dispatcher = notifier.NewDispatcher(&notifier.DispatcherConfig{
		SweepInterval:  5 * time.Minute,
		Lookback:       24 * time.Hour,
		WorkerPoolSize: 2,
		WorkerQueue:    16,
	}, tm.store, tm.mailer, tm.clock)

	return tm
}

// tearDownTestDispatcher cleans up the test mocks
func tearDownTestDispatcher(mocks *testDispatcherMocks) {
	mocks.ctrl.Finish()
}

func TestDispatcher_Name(t *testing.T) {
	mocks := setupTestDispatcher(t)
	defer tearDownTestDispatcher(mocks)

	assert.Equal(t, "notification-dispatcher", mocks.dispatcher.Name())
}

func TestWindowID_DeterministicWithinWindow(t *testing.T) {
	interval := 5 * time.Minute
	base := time.Date(2026, 3, 14, 10, 2, 0, 0, time.UTC)

	a := notifier.WindowID(base, interval)
	b := notifier.WindowID(base.Add(2*time.Minute), interval)
	next := notifier.WindowID(base.Add(5*time.Minute), interval)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, next)
}

func alertForAssets(origin, similar uuid.UUID) schema.AlertSimilar {
	originURL := "https://cdn.example.com/a.jpg"
	similarURL := "https://cdn.example.com/b.jpg"
	return schema.AlertSimilar{
		PairKey:         domain.CanonicalPairKey(&origin, &similar),
		OriginAssetID:   &origin,
		OriginFrameURL:  &originURL,
		SimilarAssetID:  &similar,
		SimilarFrameURL: &similarURL,
	}
}

func TestDispatcher_SendsDigestAndStampsPairs(t *testing.T) {
	mocks := setupTestDispatcher(t)
	defer tearDownTestDispatcher(mocks)

	ctx := context.Background()
	origin := uuid.New()
	similar := uuid.New()
	alert := alertForAssets(origin, similar)

	var delivered atomic.Int32

	gomock.InOrder(
		mocks.store.EXPECT().
			ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
			Return([]schema.AlertSimilar{alert}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
			Return([]schema.AlertSimilar{}, nil).
			MinTimes(1),
	)
	mocks.store.EXPECT().
		ListConfirmedSubscribers(gomock.Any(), gomock.Any()).
		Return([]store.AssetSubscriber{
			{AssetID: origin, UserID: "user-1", Email: "origin@example.com"},
		}, nil)
	mocks.store.EXPECT().
		ClaimDispatchMarker(gomock.Any(), "origin@example.com", gomock.Any(), 1).
		Return(true, nil)
	mocks.mailer.EXPECT().
		SendSimilarityDigest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, digest *mailer.Digest) error {
			delivered.Add(1)
			assert.Equal(t, "origin@example.com", digest.Recipient)
			require.Len(t, digest.Pairs, 1)
			// The watched side is reported as the recipient's own asset
			assert.Equal(t, origin, digest.Pairs[0].WatchedAssetID)
			assert.Equal(t, "https://cdn.example.com/a.jpg", digest.Pairs[0].OriginURL)
			assert.Equal(t, "https://cdn.example.com/b.jpg", digest.Pairs[0].SimilarURL)
			return nil
		})
	mocks.store.EXPECT().
		MarkAlertsNotified(gomock.Any(), []string{alert.PairKey}, gomock.Any()).
		Return(nil)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.dispatcher.Stop(ctx)
	}()

	err := mocks.dispatcher.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), delivered.Load())
}

func TestDispatcher_BothSidesNotified(t *testing.T) {
	mocks := setupTestDispatcher(t)
	defer tearDownTestDispatcher(mocks)

	ctx := context.Background()
	origin := uuid.New()
	similar := uuid.New()
	alert := alertForAssets(origin, similar)

	gomock.InOrder(
		mocks.store.EXPECT().
			ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
			Return([]schema.AlertSimilar{alert}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
			Return([]schema.AlertSimilar{}, nil).
			MinTimes(1),
	)
	mocks.store.EXPECT().
		ListConfirmedSubscribers(gomock.Any(), gomock.Any()).
		Return([]store.AssetSubscriber{
			{AssetID: origin, UserID: "user-1", Email: "origin@example.com"},
			{AssetID: similar, UserID: "user-2", Email: "similar@example.com"},
		}, nil)
	mocks.store.EXPECT().
		ClaimDispatchMarker(gomock.Any(), gomock.Any(), gomock.Any(), 1).
		Return(true, nil).
		Times(2)

	var digests atomic.Int32
	mocks.mailer.EXPECT().
		SendSimilarityDigest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, digest *mailer.Digest) error {
			digests.Add(1)
			require.Len(t, digest.Pairs, 1)
			if digest.Recipient == "similar@example.com" {
				// Sides are swapped for the watcher of the similar asset
				assert.Equal(t, similar, digest.Pairs[0].WatchedAssetID)
				assert.Equal(t, "https://cdn.example.com/b.jpg", digest.Pairs[0].OriginURL)
			}
			return nil
		}).
		Times(2)
	mocks.store.EXPECT().MarkAlertsNotified(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.dispatcher.Stop(ctx)
	}()

	require.NoError(t, mocks.dispatcher.Start(ctx))
	assert.Equal(t, int32(2), digests.Load())
}

func TestDispatcher_MarkerAlreadyClaimedSkipsSend(t *testing.T) {
	mocks := setupTestDispatcher(t)
	defer tearDownTestDispatcher(mocks)

	ctx := context.Background()
	origin := uuid.New()
	similar := uuid.New()
	alert := alertForAssets(origin, similar)

	gomock.InOrder(
		mocks.store.EXPECT().
			ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
			Return([]schema.AlertSimilar{alert}, nil).
			Times(1),
		mocks.store.EXPECT().
			ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
			Return([]schema.AlertSimilar{}, nil).
			MinTimes(1),
	)
	mocks.store.EXPECT().
		ListConfirmedSubscribers(gomock.Any(), gomock.Any()).
		Return([]store.AssetSubscriber{
			{AssetID: origin, UserID: "user-1", Email: "origin@example.com"},
		}, nil)
	// Another sweep already owns this recipient's window; no mail goes out
	mocks.store.EXPECT().
		ClaimDispatchMarker(gomock.Any(), "origin@example.com", gomock.Any(), 1).
		Return(false, nil)
	mocks.store.EXPECT().MarkAlertsNotified(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	go func() {
		time.Sleep(200 * time.Millisecond)
		_ = mocks.dispatcher.Stop(ctx)
	}()

	require.NoError(t, mocks.dispatcher.Start(ctx))
}

func TestDispatcher_ListErrorKeepsRunning(t *testing.T) {
	mocks := setupTestDispatcher(t)
	defer tearDownTestDispatcher(mocks)

	ctx := context.Background()

	mocks.store.EXPECT().
		ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset")).
		MinTimes(1)

	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = mocks.dispatcher.Stop(ctx)
	}()

	require.NoError(t, mocks.dispatcher.Start(ctx))
}

func TestDispatcher_StartTwiceRejected(t *testing.T) {
	mocks := setupTestDispatcher(t)
	defer tearDownTestDispatcher(mocks)

	ctx := context.Background()

	mocks.store.EXPECT().
		ListUnnotifiedAlerts(gomock.Any(), gomock.Any()).
		Return([]schema.AlertSimilar{}, nil).
		AnyTimes()

	go func() {
		time.Sleep(150 * time.Millisecond)
		_ = mocks.dispatcher.Stop(ctx)
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- mocks.dispatcher.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Error(t, mocks.dispatcher.Start(ctx))
	require.NoError(t, <-errCh)
}
