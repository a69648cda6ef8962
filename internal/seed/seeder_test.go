package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/seed/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSeeder_Run_PersistsEveryListing(t *testing.T) {
	store := mocks.NewMockStore(t)
	gen := NewGenerator(testCfg())

	store.EXPECT().
		CreateListingData(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Times(testCfg().Listings)

	summary, err := NewSeeder(gen, store, newTestLogger(t)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, testCfg().Listings, summary.Listings)
	assert.Positive(t, summary.Bookings)
}

func TestSeeder_Run_SummaryMatchesDataset(t *testing.T) {
	store := mocks.NewMockStore(t)
	gen := NewGenerator(testCfg())

	dataset, err := gen.Generate()
	require.NoError(t, err)

	var wantBookings, wantReviews int
	for _, data := range dataset {
		wantBookings += len(data.Bookings)
		wantReviews += len(data.Reviews)
	}

	store.EXPECT().
		CreateListingData(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	// A fresh generator with the same config replays the same dataset.
	summary, err := NewSeeder(NewGenerator(testCfg()), store, newTestLogger(t)).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, wantBookings, summary.Bookings)
	assert.Equal(t, wantReviews, summary.Reviews)
}

func TestSeeder_Run_StopsOnStoreError(t *testing.T) {
	store := mocks.NewMockStore(t)
	gen := NewGenerator(testCfg())

	store.EXPECT().
		CreateListingData(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()
	store.EXPECT().
		CreateListingData(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("db down")).
		Once()

	summary, err := NewSeeder(gen, store, newTestLogger(t)).Run(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, summary.Listings, "only the committed listing is counted")
}

func TestSeeder_Run_StopsOnContextCancel(t *testing.T) {
	store := mocks.NewMockStore(t)
	gen := NewGenerator(testCfg())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewSeeder(gen, store, newTestLogger(t)).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, summary.Listings)
}
