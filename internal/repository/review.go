package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReviewRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReviewRepo(db *dbpg.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a review after verifying the booking is completed, in one
// transaction. The UNIQUE constraint on booking_id is the one-review-per-booking
// guard; its violation is reported as ErrReviewExists.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var status domain.BookingStatus
	lockQuery := `SELECT status FROM bookings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, rv.BookingID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("lock booking: %w", err)
	}
	if status != domain.BookingStatusCompleted {
		return domain.ErrBookingNotCompleted
	}

	insertQuery := `INSERT INTO reviews (id, booking_id, rating, comment, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.ExecContext(ctx, insertQuery, rv.ID, rv.BookingID, rv.Rating, rv.Comment, rv.CreatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrReviewExists
		}
		return fmt.Errorf("insert review: %w", err)
	}

	return tx.Commit()
}

func (r *ReviewRepository) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	query := `SELECT rv.id, rv.booking_id, rv.rating, rv.comment, rv.created_at
			  FROM reviews rv
			  JOIN bookings b ON b.id = rv.booking_id
			  WHERE b.listing_id = $1
			  ORDER BY rv.created_at DESC, rv.id ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by listing: %w", err)
	}
	defer rows.Close()

	var res []*domain.Review
	for rows.Next() {
		var rv domain.Review
		if err = rows.Scan(&rv.ID, &rv.BookingID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		res = append(res, &rv)
	}

	return res, rows.Err()
}
