package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/service/ports"
	"github.com/google/uuid"
)

const defaultPropertyType = "apartment"

type ListingService struct {
	repo ports.ListingRepo
}

func NewListingService(repo ports.ListingRepo) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error) {
	if input.HostID == "" {
		return nil, fmt.Errorf("%w: host_id is required", domain.ErrValidation)
	}
	if input.PropertyType == "" {
		input.PropertyType = defaultPropertyType
	}
	if err := domain.ValidateListing(input); err != nil {
		return nil, err
	}

	amenities := input.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	now := time.Now().UTC()
	listing := &domain.Listing{
		ID:            uuid.New().String(),
		HostID:        input.HostID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PropertyType:  input.PropertyType,
		PricePerNight: input.PricePerNight,
		MaxGuests:     input.MaxGuests,
		Bedrooms:      input.Bedrooms,
		Bathrooms:     input.Bathrooms,
		Amenities:     amenities,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}

	return listing, nil
}

func (s *ListingService) GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *ListingService) List(ctx context.Context, filter domain.ListingFilter, page domain.Page) ([]*domain.Listing, error) {
	return s.repo.List(ctx, filter, page)
}

// Update applies a partial update. Only the owning host may mutate a listing.
func (s *ListingService) Update(ctx context.Context, id, hostID string, input domain.UpdateListingInput) (*domain.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.HostID != hostID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.PropertyType != nil {
		listing.PropertyType = *input.PropertyType
	}
	if input.PricePerNight != nil {
		listing.PricePerNight = *input.PricePerNight
	}
	if input.MaxGuests != nil {
		listing.MaxGuests = *input.MaxGuests
	}
	if input.Bedrooms != nil {
		listing.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		listing.Bathrooms = *input.Bathrooms
	}
	if input.Amenities != nil {
		listing.Amenities = *input.Amenities
	}

	if err = domain.ValidateListing(domain.CreateListingInput{
		HostID:        listing.HostID,
		Title:         listing.Title,
		Description:   listing.Description,
		Location:      listing.Location,
		PropertyType:  listing.PropertyType,
		PricePerNight: listing.PricePerNight,
		MaxGuests:     listing.MaxGuests,
		Bedrooms:      listing.Bedrooms,
		Bathrooms:     listing.Bathrooms,
		Amenities:     listing.Amenities,
	}); err != nil {
		return nil, err
	}

	listing.UpdatedAt = time.Now().UTC()
	if err = s.repo.Update(ctx, listing); err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}

	return listing, nil
}

// Deactivate soft-deletes a listing. The row stays to preserve booking history.
func (s *ListingService) Deactivate(ctx context.Context, id, hostID string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.HostID != hostID {
		return domain.ErrForbidden
	}

	listing.Active = false
	listing.UpdatedAt = time.Now().UTC()

	if err = s.repo.Update(ctx, listing); err != nil {
		return fmt.Errorf("deactivate listing: %w", err)
	}

	return nil
}
