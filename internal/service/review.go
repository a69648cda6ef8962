package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/service/ports"
	"github.com/google/uuid"
)

type ReviewService struct {
	reviewRepo  ports.ReviewRepo
	listingRepo ports.ListingRepo
}

func NewReviewService(reviewRepo ports.ReviewRepo, listingRepo ports.ListingRepo) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
	}
}

func (s *ReviewService) Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if err := domain.ValidateRating(input.Rating); err != nil {
		return nil, err
	}

	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: input.BookingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now().UTC(),
	}

	// Booking existence, completed status and one-review-per-booking are all
	// enforced atomically by the repository.
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

func (s *ReviewService) ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error) {
	if _, err := s.listingRepo.GetByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("check listing: %w", err)
	}
	return s.reviewRepo.ListByListing(ctx, listingID)
}
