package seed

import (
	"context"
	"fmt"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type Store interface {
	CreateListingData(
		ctx context.Context,
		listing *domain.Listing,
		bookings []*domain.Booking,
		reviews []*domain.Review,
	) error
}

type Summary struct {
	Listings int
	Bookings int
	Reviews  int
}

// Seeder generates the dataset and writes it listing by listing. Each
// listing commits in its own transaction, so a failure mid-run leaves
// only whole listings behind, never partial ones.
type Seeder struct {
	generator *Generator
	store     Store
	logger    logger.Logger
}

func NewSeeder(generator *Generator, store Store, logger logger.Logger) *Seeder {
	return &Seeder{
		generator: generator,
		store:     store,
		logger:    logger,
	}
}

func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	dataset, err := s.generator.Generate()
	if err != nil {
		return Summary{}, fmt.Errorf("generate dataset: %w", err)
	}

	var summary Summary
	for _, data := range dataset {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if err := s.store.CreateListingData(ctx, data.Listing, data.Bookings, data.Reviews); err != nil {
			return summary, fmt.Errorf("persist listing %s: %w", data.Listing.ID, err)
		}

		summary.Listings++
		summary.Bookings += len(data.Bookings)
		summary.Reviews += len(data.Reviews)

		s.logger.Debug("listing seeded",
			logger.String("listing_id", data.Listing.ID),
			logger.Int("bookings", len(data.Bookings)),
			logger.Int("reviews", len(data.Reviews)),
		)
	}

	return summary, nil
}
