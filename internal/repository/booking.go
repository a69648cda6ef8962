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

// Postgres error codes translated into domain errors.
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, listing_id, guest_id, start_date, end_date, guests,
       special_requests, status, total_price, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID, &b.ListingID, &b.GuestID, &b.StartDate, &b.EndDate, &b.Guests,
		&b.SpecialRequests, &b.Status, &b.TotalPrice, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a booking after checking the listing and the overlap invariant
// inside one transaction. The listing row is locked FOR UPDATE, which serializes
// concurrent attempts per listing without touching other listings. The exclusion
// constraint on bookings remains the authoritative guard; its violation is
// reported as ErrDateConflict as well.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var active bool
	lockQuery := `SELECT active FROM listings WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.ListingID).Scan(&active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrListingNotFound
		}
		return fmt.Errorf("lock listing: %w", err)
	}
	if !active {
		return domain.ErrListingInactive
	}

	var conflict bool
	overlapQuery := `SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1
			  AND status = ANY($2)
			  AND start_date < $4
			  AND end_date > $3)`
	if err = tx.QueryRowContext(
		ctx, overlapQuery,
		b.ListingID, pq.Array(domain.ActiveStatuses), b.StartDate, b.EndDate,
	).Scan(&conflict); err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if conflict {
		return domain.ErrDateConflict
	}

	insertQuery := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, insertQuery,
		b.ID, b.ListingID, b.GuestID, b.StartDate, b.EndDate, b.Guests,
		b.SpecialRequests, b.Status, b.TotalPrice, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
			return domain.ErrDateConflict
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Transition moves a booking along the state machine. The row is locked so the
// edge check and the update are atomic against concurrent transitions.
func (r *BookingRepository) Transition(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1
			  FOR UPDATE`
	b, err := scanBooking(tx.QueryRowContext(ctx, lockQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("lock booking: %w", err)
	}

	if !b.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, b.Status, target)
	}

	now := time.Now().UTC()
	updateQuery := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, updateQuery, id, target, now); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	b.Status = target
	b.UpdatedAt = now

	return b, nil
}

func (r *BookingRepository) ListByListing(ctx context.Context, listingID string, filter domain.BookingFilter) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE listing_id = $1`
	args := []any{listingID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY start_date ASC, id ASC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings by listing: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

// CompleteFinished moves confirmed bookings whose stay has ended to completed.
func (r *BookingRepository) CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
        SET status = $2, updated_at = NOW()
        WHERE status = $1 AND end_date <= $3
        RETURNING ` + bookingColumns

	return r.updateReturning(ctx, query, domain.BookingStatusConfirmed, domain.BookingStatusCompleted, now)
}

// CancelStale cancels pending bookings whose start date arrived unconfirmed.
func (r *BookingRepository) CancelStale(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
        SET status = $2, updated_at = NOW()
        WHERE status = $1 AND start_date <= $3
        RETURNING ` + bookingColumns

	return r.updateReturning(ctx, query, domain.BookingStatusPending, domain.BookingStatusCancelled, now)
}

func (r *BookingRepository) updateReturning(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
