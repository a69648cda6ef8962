package ports

import (
	"context"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
)

type ReviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
}
