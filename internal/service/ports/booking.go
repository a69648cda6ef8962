package ports

import (
	"context"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Transition(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string, filter domain.BookingFilter) ([]*domain.Booking, error)
	CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	CancelStale(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
