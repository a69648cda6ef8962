package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ListingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewListingRepo(db *dbpg.DB) *ListingRepository {
	return &ListingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const listingColumns = `id, host_id, title, description, location, property_type,
       price_per_night, max_guests, bedrooms, bathrooms, amenities, active, created_at, updated_at`

func scanListing(row interface{ Scan(...any) error }) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.HostID, &l.Title, &l.Description, &l.Location, &l.PropertyType,
		&l.PricePerNight, &l.MaxGuests, &l.Bedrooms, &l.Bathrooms, pq.Array(&l.Amenities),
		&l.Active, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (` + listingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.HostID, l.Title, l.Description, l.Location, l.PropertyType,
		l.PricePerNight, l.MaxGuests, l.Bedrooms, l.Bathrooms, pq.Array(l.Amenities),
		l.Active, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}

	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + `
			  FROM listings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing: %w", err)
	}

	return l, nil
}

func (r *ListingRepository) GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error) {
	query := `
		SELECT
            l.id, l.host_id, l.title, l.description, l.location, l.property_type,
            l.price_per_night, l.max_guests, l.bedrooms, l.bathrooms, l.amenities,
            l.active, l.created_at, l.updated_at,
            COALESCE(AVG(rv.rating), 0) AS average_rating,
            COUNT(rv.id) AS total_reviews
        FROM listings l
        LEFT JOIN bookings b ON b.listing_id = l.id
        LEFT JOIN reviews rv ON rv.booking_id = b.id
        WHERE l.id = $1
        GROUP BY l.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get listing details: %w", err)
	}

	var d domain.ListingDetails
	err = row.Scan(
		&d.Listing.ID, &d.Listing.HostID, &d.Listing.Title, &d.Listing.Description,
		&d.Listing.Location, &d.Listing.PropertyType, &d.Listing.PricePerNight,
		&d.Listing.MaxGuests, &d.Listing.Bedrooms, &d.Listing.Bathrooms,
		pq.Array(&d.Listing.Amenities), &d.Listing.Active, &d.Listing.CreatedAt,
		&d.Listing.UpdatedAt, &d.AverageRating, &d.TotalReviews,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("scan listing details: %w", err)
	}

	return &d, nil
}

func (r *ListingRepository) Update(ctx context.Context, l *domain.Listing) error {
	query := `UPDATE listings
			  SET title = $2, description = $3, location = $4, property_type = $5,
			      price_per_night = $6, max_guests = $7, bedrooms = $8, bathrooms = $9,
			      amenities = $10, active = $11, updated_at = $12
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.Title, l.Description, l.Location, l.PropertyType,
		l.PricePerNight, l.MaxGuests, l.Bedrooms, l.Bathrooms, pq.Array(l.Amenities),
		l.Active, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("listing rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrListingNotFound
	}

	return nil
}

// List returns one page of listings ordered by created_at DESC, id ASC.
// The ordering is total, so repeating filter+page never skips or repeats rows.
func (r *ListingRepository) List(ctx context.Context, filter domain.ListingFilter, page domain.Page) ([]*domain.Listing, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Location != "" {
		args = append(args, "%"+strings.ToLower(filter.Location)+"%")
		conds = append(conds, fmt.Sprintf("lower(location) LIKE $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conds = append(conds, fmt.Sprintf("price_per_night >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conds = append(conds, fmt.Sprintf("price_per_night <= $%d", len(args)))
	}
	if filter.ActiveOnly {
		conds = append(conds, "active")
	}

	query := `SELECT ` + listingColumns + ` FROM listings`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, page.Size)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id ASC LIMIT $%d", len(args))
	args = append(args, page.Offset())
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}
