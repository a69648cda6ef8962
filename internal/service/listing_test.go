package service

import (
	"context"
	"testing"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListingService_Create_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.Create(context.Background(), domain.CreateListingInput{
		HostID:        "h1",
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     4,
	})

	require.NoError(t, err)
	assert.True(t, listing.Active)
	assert.Equal(t, "apartment", listing.PropertyType, "default property type")
	assert.NotEmpty(t, listing.ID)
	assert.False(t, listing.CreatedAt.IsZero())
}

func TestListingService_Create_AttributesCarried(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, l *domain.Listing) {
			assert.Equal(t, 3, l.Bedrooms)
			assert.Equal(t, 2, l.Bathrooms)
			assert.Equal(t, []string{"wifi", "pool"}, l.Amenities)
		}).
		Return(nil)

	_, err := svc.Create(context.Background(), domain.CreateListingInput{
		HostID:        "h1",
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     4,
		Bedrooms:      3,
		Bathrooms:     2,
		Amenities:     []string{"wifi", "pool"},
	})

	require.NoError(t, err)
}

func TestListingService_Create_NilAmenitiesStoredEmpty(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	listing, err := svc.Create(context.Background(), domain.CreateListingInput{
		HostID:        "h1",
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     4,
	})

	require.NoError(t, err)
	assert.NotNil(t, listing.Amenities)
	assert.Empty(t, listing.Amenities)
}

func TestListingService_Create_NegativeBedrooms(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	_, err := svc.Create(context.Background(), domain.CreateListingInput{
		HostID:        "h1",
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     4,
		Bedrooms:      -1,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Create_InvalidPrice(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	_, err := svc.Create(context.Background(), domain.CreateListingInput{
		HostID:        "h1",
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: -10,
		MaxGuests:     2,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestListingService_Create_MissingHost(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	_, err := svc.Create(context.Background(), domain.CreateListingInput{
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     2,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListingService_Update_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	existing := &domain.Listing{
		ID:            "l1",
		HostID:        "h1",
		Title:         "Old title",
		Location:      "Lisbon",
		PropertyType:  "loft",
		PricePerNight: 100,
		MaxGuests:     2,
		Active:        true,
	}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	newTitle := "New title"
	newPrice := 150.0
	updated, err := svc.Update(context.Background(), "l1", "h1", domain.UpdateListingInput{
		Title:         &newTitle,
		PricePerNight: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, 150.0, updated.PricePerNight)
	assert.Equal(t, "Lisbon", updated.Location, "untouched field preserved")
}

func TestListingService_Update_Forbidden(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	existing := &domain.Listing{ID: "l1", HostID: "h1", Title: "T", Location: "L", MaxGuests: 2, Active: true}
	repo.EXPECT().GetByID(mock.Anything, "l1").Return(existing, nil)

	newTitle := "Hijacked"
	_, err := svc.Update(context.Background(), "l1", "intruder", domain.UpdateListingInput{Title: &newTitle})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListingService_Update_InvalidPrice(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	existing := &domain.Listing{ID: "l1", HostID: "h1", Title: "T", Location: "L", MaxGuests: 2, Active: true}
	repo.EXPECT().GetByID(mock.Anything, "l1").Return(existing, nil)

	bad := -5.0
	_, err := svc.Update(context.Background(), "l1", "h1", domain.UpdateListingInput{PricePerNight: &bad})

	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestListingService_Deactivate_Success(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	existing := &domain.Listing{ID: "l1", HostID: "h1", Title: "T", Location: "L", MaxGuests: 2, Active: true}

	repo.EXPECT().GetByID(mock.Anything, "l1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Run(func(_ context.Context, l *domain.Listing) {
		assert.False(t, l.Active)
	}).Return(nil)

	err := svc.Deactivate(context.Background(), "l1", "h1")

	require.NoError(t, err)
}

func TestListingService_Deactivate_Forbidden(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	existing := &domain.Listing{ID: "l1", HostID: "h1", Title: "T", Location: "L", MaxGuests: 2, Active: true}
	repo.EXPECT().GetByID(mock.Anything, "l1").Return(existing, nil)

	err := svc.Deactivate(context.Background(), "l1", "intruder")

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestListingService_List_Passthrough(t *testing.T) {
	repo := mocks.NewMockListingRepo(t)
	svc := NewListingService(repo)

	filter := domain.ListingFilter{Location: "lisbon", ActiveOnly: true}
	page := domain.Page{Number: 2, Size: 10}
	listings := []*domain.Listing{{ID: "l1"}, {ID: "l2"}}

	repo.EXPECT().List(mock.Anything, filter, page).Return(listings, nil)

	got, err := svc.List(context.Background(), filter, page)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
