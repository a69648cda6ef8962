package ports

import (
	"context"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
)

type ListingRepo interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error)
	Update(ctx context.Context, l *domain.Listing) error
	List(ctx context.Context, filter domain.ListingFilter, page domain.Page) ([]*domain.Listing, error)
}
