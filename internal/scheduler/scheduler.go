package scheduler

import (
	"context"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingMaintainer interface {
	CompleteFinished(ctx context.Context) ([]*domain.Booking, error)
	CancelStale(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically sweeps bookings: confirmed stays past their end
// date become completed, and pending bookings past their start date are
// cancelled since they can no longer be confirmed.
type Scheduler struct {
	bookingService bookingMaintainer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingMaintainer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.bookingService.CompleteFinished(ctx)
	if err != nil {
		s.logger.Error("failed to complete finished bookings",
			logger.String("error", err.Error()),
		)
	} else {
		for _, b := range completed {
			s.logger.Info("booking completed",
				logger.String("booking_id", b.ID),
				logger.String("listing_id", b.ListingID),
			)
		}
	}

	cancelled, err := s.bookingService.CancelStale(ctx)
	if err != nil {
		s.logger.Error("failed to cancel stale bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range cancelled {
		s.logger.Info("stale booking cancelled",
			logger.String("booking_id", b.ID),
			logger.String("listing_id", b.ListingID),
		)
	}
}
