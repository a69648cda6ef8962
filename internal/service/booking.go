package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	listingRepo ports.ListingRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	listingRepo ports.ListingRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	dateRange, err := domain.NewDateRange(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if input.StartDate.Before(today) {
		return nil, fmt.Errorf("%w: start_date cannot be in the past", domain.ErrValidation)
	}

	listing, err := s.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	if !listing.Active {
		return nil, domain.ErrListingInactive
	}

	guests := input.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 0 || guests > listing.MaxGuests {
		return nil, fmt.Errorf("%w: guests must be between 1 and %d", domain.ErrValidation, listing.MaxGuests)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		ListingID:       input.ListingID,
		GuestID:         input.GuestID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		Guests:          guests,
		SpecialRequests: input.SpecialRequests,
		Status:          domain.BookingStatusPending,
		// Price snapshot at booking time: later listing price changes do not
		// reprice existing bookings.
		TotalPrice: float64(dateRange.Nights()) * listing.PricePerNight,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("listing_id", booking.ListingID),
		logger.String("guest_id", booking.GuestID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, listing)

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) Transition(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Transition(ctx, id, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking transitioned",
		logger.String("booking_id", booking.ID),
		logger.String("status", string(booking.Status)),
	)

	switch target {
	case domain.BookingStatusConfirmed:
		go s.notifyWithListing(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingConfirmed)
	case domain.BookingStatusCancelled:
		go s.notifyWithListing(context.WithoutCancel(ctx), booking, s.notifier.NotifyBookingCancelled)
	}

	return booking, nil
}

func (s *BookingService) ListByListing(ctx context.Context, listingID string, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	return s.bookingRepo.ListByListing(ctx, listingID, filter)
}

// CompleteFinished and CancelStale back the maintenance scheduler.

func (s *BookingService) CompleteFinished(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookingRepo.CompleteFinished(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("finished stays completed", logger.Int("count", len(completed)))
	}

	return completed, nil
}

func (s *BookingService) CancelStale(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelStale(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("cancel stale: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("stale pending bookings cancelled", logger.Int("count", len(cancelled)))
		go s.notifyCancelled(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) notifyCancelled(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		s.notifyWithListing(ctx, b, s.notifier.NotifyBookingCancelled)
	}
}

func (s *BookingService) notifyWithListing(
	ctx context.Context,
	b *domain.Booking,
	notify func(context.Context, *domain.Booking, *domain.Listing),
) {
	listing, err := s.listingRepo.GetByID(ctx, b.ListingID)
	if err != nil {
		s.logger.Error("failed to get listing for notification",
			logger.String("listing_id", b.ListingID),
			logger.String("error", err.Error()),
		)
		return
	}

	notify(ctx, b, listing)
}
