package ports

import (
	"context"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, listing *domain.Listing)
	NotifyBookingConfirmed(ctx context.Context, booking *domain.Booking, listing *domain.Listing)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, listing *domain.Listing)
}
