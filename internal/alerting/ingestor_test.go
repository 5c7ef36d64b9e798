package alerting_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriframe/vf-pipeline/internal/adapter"
	"github.com/veriframe/vf-pipeline/internal/alerting"
	"github.com/veriframe/vf-pipeline/internal/domain"
	"github.com/veriframe/vf-pipeline/internal/logger"
	"github.com/veriframe/vf-pipeline/internal/messaging"
	"github.com/veriframe/vf-pipeline/internal/mocks"
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

const testIngestWindow = 24 * time.Hour

// testIngestorMocks contains all the mocks needed for testing the ingestor
type testIngestorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	clock    *mocks.MockClock
	ingestor *alerting.Ingestor
}

// setupTestIngestor creates all the mocks and ingestor for testing
func setupTestIngestor(t *testing.T) *testIngestorMocks {
	ctrl := gomock.NewController(t)

	tm := &testIngestorMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		clock: mocks.NewMockClock(ctrl),
	}

	tm.clock.EXPECT().Now().Return(time.Now()).AnyTimes()
	tm.ingestor = alerting.NewIngestor(tm.store, adapter.NewJSON(), tm.clock, testIngestWindow)

	return tm
}

// tearDownTestIngestor cleans up the test mocks
func tearDownTestIngestor(mocks *testIngestorMocks) {
	mocks.ctrl.Finish()
}

func strptr(s string) *string        { return &s }
func f64ptr(f float64) *float64      { return &f }
func uuidptr(u uuid.UUID) *uuid.UUID { return &u }

func alertBody(t *testing.T, payload domain.AlertExternalPayload) []byte {
	data, err := adapter.NewJSON().Marshal(payload)
	require.NoError(t, err)
	return data
}

func TestIngestor_HandleMessage_NewPair(t *testing.T) {
	mocks := setupTestIngestor(t)
	defer tearDownTestIngestor(mocks)

	ctx := context.Background()
	origin := uuid.New()
	similar := uuid.New()
	payload := domain.AlertExternalPayload{
		SourceType:         strptr("frame"),
		OriginAssetID:      uuidptr(origin),
		OriginFrameID:      uuidptr(uuid.New()),
		OriginFrameSecond:  f64ptr(12.5),
		OriginFrameURL:     strptr("https://cdn.example.com/frames/a.jpg"),
		SimilarAssetID:     uuidptr(similar),
		SimilarFrameID:     uuidptr(uuid.New()),
		SimilarFrameSecond: f64ptr(3.0),
		SimilarFrameURL:    strptr("https://cdn.example.com/frames/b.jpg"),
	}

	mocks.store.EXPECT().
		UpsertAlertSimilar(gomock.Any(), gomock.Any(), testIngestWindow).
		DoAndReturn(func(_ context.Context, alert *schema.AlertSimilar, _ time.Duration) (bool, error) {
			assert.NotEqual(t, uuid.Nil, alert.ID)
			assert.Equal(t, domain.CanonicalPairKey(&origin, &similar), alert.PairKey)
			assert.Equal(t, &origin, alert.OriginAssetID)
			assert.Equal(t, &similar, alert.SimilarAssetID)
			assert.True(t, alert.CreatedAt.Equal(alert.UpdatedAt))
			return true, nil
		})

	ack := mocks.ingestor.HandleMessage(ctx, alertBody(t, payload))
	assert.Equal(t, messaging.AckDone, ack)
}

func TestIngestor_HandleMessage_MirroredPairCollapses(t *testing.T) {
	mocks := setupTestIngestor(t)
	defer tearDownTestIngestor(mocks)

	ctx := context.Background()
	origin := uuid.New()
	similar := uuid.New()

	forward := domain.AlertExternalPayload{
		OriginAssetID:  uuidptr(origin),
		OriginFrameID:  uuidptr(uuid.New()),
		SimilarAssetID: uuidptr(similar),
		SimilarFrameID: uuidptr(uuid.New()),
	}
	mirrored := domain.AlertExternalPayload{
		OriginAssetID:  uuidptr(similar),
		OriginFrameID:  forward.SimilarFrameID,
		SimilarAssetID: uuidptr(origin),
		SimilarFrameID: forward.OriginFrameID,
	}

	var keys []string
	mocks.store.EXPECT().
		UpsertAlertSimilar(gomock.Any(), gomock.Any(), testIngestWindow).
		DoAndReturn(func(_ context.Context, alert *schema.AlertSimilar, _ time.Duration) (bool, error) {
			keys = append(keys, alert.PairKey)
			return len(keys) == 1, nil
		}).
		Times(2)

	assert.Equal(t, messaging.AckDone, mocks.ingestor.HandleMessage(ctx, alertBody(t, forward)))
	assert.Equal(t, messaging.AckDone, mocks.ingestor.HandleMessage(ctx, alertBody(t, mirrored)))

	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
}

func TestIngestor_HandleMessage_InvalidPayloadDropped(t *testing.T) {
	mocks := setupTestIngestor(t)
	defer tearDownTestIngestor(mocks)

	// No asset reference at all
	payload := domain.AlertExternalPayload{
		OriginFrameID: uuidptr(uuid.New()),
	}

	ack := mocks.ingestor.HandleMessage(context.Background(), alertBody(t, payload))
	assert.Equal(t, messaging.AckDrop, ack)
}

func TestIngestor_HandleMessage_GarbageDropped(t *testing.T) {
	mocks := setupTestIngestor(t)
	defer tearDownTestIngestor(mocks)

	ack := mocks.ingestor.HandleMessage(context.Background(), []byte("{not json"))
	assert.Equal(t, messaging.AckDrop, ack)
}

func TestIngestor_HandleMessage_StoreErrorRedelivers(t *testing.T) {
	mocks := setupTestIngestor(t)
	defer tearDownTestIngestor(mocks)

	payload := domain.AlertExternalPayload{
		OriginAssetID: uuidptr(uuid.New()),
		OriginFrameID: uuidptr(uuid.New()),
	}

	mocks.store.EXPECT().
		UpsertAlertSimilar(gomock.Any(), gomock.Any(), testIngestWindow).
		Return(false, errors.New("connection reset"))

	ack := mocks.ingestor.HandleMessage(context.Background(), alertBody(t, payload))
	assert.Equal(t, messaging.AckRetry, ack)
}

func TestIngestor_HandleMessage_WrappedEnvelope(t *testing.T) {
	mocks := setupTestIngestor(t)
	defer tearDownTestIngestor(mocks)

	payload := domain.AlertExternalPayload{
		OriginAssetID: uuidptr(uuid.New()),
		OriginFrameID: uuidptr(uuid.New()),
	}
	inner, err := adapter.NewJSON().Marshal(payload)
	require.NoError(t, err)
	wrapped, err := adapter.NewJSON().Marshal(map[string]string{"Message": string(inner)})
	require.NoError(t, err)

	mocks.store.EXPECT().
		UpsertAlertSimilar(gomock.Any(), gomock.Any(), testIngestWindow).
		Return(true, nil)

	ack := mocks.ingestor.HandleMessage(context.Background(), wrapped)
	assert.Equal(t, messaging.AckDone, ack)
}
