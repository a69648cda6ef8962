package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsBothSweeps(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)
	log := newTestLogger(t)

	s := New(maintainer, 50*time.Millisecond, log)

	completed := []*domain.Booking{
		{ID: "b1", ListingID: "l1", Status: domain.BookingStatusCompleted},
	}
	cancelled := []*domain.Booking{
		{ID: "b2", ListingID: "l2", Status: domain.BookingStatusCancelled},
	}
	maintainer.EXPECT().CompleteFinished(mock.Anything).Return(completed, nil)
	maintainer.EXPECT().CancelStale(mock.Anything).Return(cancelled, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(maintainer.Calls), 2)
}

func TestScheduler_Tick_CompleteErrorDoesNotSkipCancel(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)
	log := newTestLogger(t)

	s := New(maintainer, 50*time.Millisecond, log)

	maintainer.EXPECT().CompleteFinished(mock.Anything).Return(nil, errors.New("db error"))
	maintainer.EXPECT().CancelStale(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(maintainer.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)
	log := newTestLogger(t)

	s := New(maintainer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)
	log := newTestLogger(t)

	s := New(maintainer, 30*time.Millisecond, log)

	maintainer.EXPECT().CompleteFinished(mock.Anything).Return(nil, nil).Times(3)
	maintainer.EXPECT().CancelStale(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(maintainer.Calls), 6)
}
