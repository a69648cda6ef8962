package repository

import (
	"context"
	"fmt"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
)

// SeedStore persists one listing's generated fixture data atomically: the
// listing, its bookings and their reviews either all commit or none do.
type SeedStore struct {
	db *dbpg.DB
}

func NewSeedStore(db *dbpg.DB) *SeedStore {
	return &SeedStore{db: db}
}

func (s *SeedStore) CreateListingData(
	ctx context.Context,
	listing *domain.Listing,
	bookings []*domain.Booking,
	reviews []*domain.Review,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	listingQuery := `INSERT INTO listings (` + listingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = tx.ExecContext(
		ctx, listingQuery,
		listing.ID, listing.HostID, listing.Title, listing.Description, listing.Location,
		listing.PropertyType, listing.PricePerNight, listing.MaxGuests, listing.Bedrooms,
		listing.Bathrooms, pq.Array(listing.Amenities), listing.Active,
		listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing %s: %w", listing.ID, err)
	}

	bookingQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, b := range bookings {
		_, err = tx.ExecContext(
			ctx, bookingQuery,
			b.ID, b.ListingID, b.GuestID, b.StartDate, b.EndDate, b.Guests,
			b.SpecialRequests, b.Status, b.TotalPrice, b.CreatedAt, b.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert booking %s: %w", b.ID, err)
		}
	}

	reviewQuery := `INSERT INTO reviews (id, booking_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	for _, rv := range reviews {
		_, err = tx.ExecContext(ctx, reviewQuery, rv.ID, rv.BookingID, rv.Rating, rv.Comment, rv.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert review %s: %w", rv.ID, err)
		}
	}

	return tx.Commit()
}
