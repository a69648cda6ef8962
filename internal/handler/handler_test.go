package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/config"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/handler/dto"
	hmocks "github.com/Kaywuyep/alx-travel-app-0x00/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockListingSvc, *hmocks.MockBookingSvc, *hmocks.MockReviewSvc, http.Handler) {
	t.Helper()
	listingSvc := hmocks.NewMockListingSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	reviewSvc := hmocks.NewMockReviewSvc(t)

	h := NewHandler(listingSvc, bookingSvc, reviewSvc, config.PaginationConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
	})

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/listings", h.CreateListing)
		api.GET("/listings", h.ListListings)
		api.GET("/listings/:id", h.GetListing)
		api.PATCH("/listings/:id", h.UpdateListing)
		api.DELETE("/listings/:id", h.DeactivateListing)
		api.POST("/listings/:id/bookings", h.CreateBooking)
		api.GET("/listings/:id/bookings", h.ListListingBookings)
		api.GET("/listings/:id/reviews", h.ListListingReviews)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id", h.TransitionBooking)
		api.POST("/bookings/:id/reviews", h.CreateReview)
	}

	return listingSvc, bookingSvc, reviewSvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Listings ---

func TestHandler_CreateListing_Success(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	hostID := uuid.New().String()
	listing := &domain.Listing{
		ID:            uuid.New().String(),
		HostID:        hostID,
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PropertyType:  "apartment",
		PricePerNight: 120,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"wifi", "kitchen"},
		Active:        true,
		CreatedAt:     time.Now(),
	}

	listingSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, input domain.CreateListingInput) {
			assert.Equal(t, 2, input.Bedrooms)
			assert.Equal(t, 1, input.Bathrooms)
			assert.Equal(t, []string{"wifi", "kitchen"}, input.Amenities)
		}).
		Return(listing, nil)

	w := doJSON(t, r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		HostID:        hostID,
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PricePerNight: 120,
		MaxGuests:     4,
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"wifi", "kitchen"},
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sea view loft", resp.Title)
	assert.Equal(t, 2, resp.Bedrooms)
	assert.Equal(t, 1, resp.Bathrooms)
	assert.Equal(t, []string{"wifi", "kitchen"}, resp.Amenities)
	assert.True(t, resp.Active)
}

func TestHandler_CreateListing_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/listings", map[string]any{"title": ""}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateListing_InvalidPrice(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidPrice)

	w := doJSON(t, r, http.MethodPost, "/api/listings", dto.CreateListingRequest{
		HostID:        uuid.New().String(),
		Title:         "Loft",
		Location:      "Lisbon",
		PricePerNight: -1,
		MaxGuests:     2,
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_Success(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	details := &domain.ListingDetails{
		Listing:       domain.Listing{ID: listingID, Title: "Loft", CreatedAt: time.Now()},
		AverageRating: 4.5,
		TotalReviews:  12,
	}

	listingSvc.EXPECT().GetDetails(mock.Anything, listingID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+listingID, nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4.5, resp.AverageRating)
	assert.Equal(t, 12, resp.TotalReviews)
}

func TestHandler_GetListing_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/listings/not-a-uuid", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetListing_NotFound(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	listingSvc.EXPECT().GetDetails(mock.Anything, listingID).Return(nil, domain.ErrListingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+listingID, nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListListings_Defaults(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingSvc.EXPECT().
		List(mock.Anything, domain.ListingFilter{ActiveOnly: true}, domain.Page{Number: 1, Size: 20}).
		Return([]*domain.Listing{{ID: "l1", CreatedAt: time.Now()}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingsPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
}

func TestHandler_ListListings_FilterAndPage(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	minPrice := 50.0
	maxPrice := 200.0
	listingSvc.EXPECT().
		List(mock.Anything,
			domain.ListingFilter{Location: "lisbon", MinPrice: &minPrice, MaxPrice: &maxPrice, ActiveOnly: true},
			domain.Page{Number: 2, Size: 10}).
		Return([]*domain.Listing{}, nil)

	w := doJSON(t, r, http.MethodGet,
		"/api/listings?location=lisbon&min_price=50&max_price=200&page=2&page_size=10", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListListings_PageSizeClamped(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingSvc.EXPECT().
		List(mock.Anything, domain.ListingFilter{ActiveOnly: true}, domain.Page{Number: 1, Size: 100}).
		Return([]*domain.Listing{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings?page_size=5000", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingsPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.PageSize)
}

func TestHandler_ListListings_InvalidParams(t *testing.T) {
	_, _, _, r := setupRouter(t)

	for _, query := range []string{
		"?page=0",
		"?page=abc",
		"?page=1000001",
		"?page=9223372036854775807",
		"?page_size=-1",
		"?min_price=cheap",
		"?max_price=-5",
		"?min_price=300&max_price=100",
	} {
		w := doJSON(t, r, http.MethodGet, "/api/listings"+query, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %s", query)
	}
}

func TestHandler_UpdateListing_Success(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	hostID := uuid.New().String()
	updated := &domain.Listing{ID: listingID, HostID: hostID, Title: "New title", CreatedAt: time.Now()}

	listingSvc.EXPECT().Update(mock.Anything, listingID, hostID, mock.Anything).Return(updated, nil)

	newTitle := "New title"
	w := doJSON(t, r, http.MethodPatch, "/api/listings/"+listingID,
		dto.UpdateListingRequest{Title: &newTitle},
		map[string]string{"X-User-ID": hostID})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "New title", resp.Title)
}

func TestHandler_UpdateListing_MissingHostHeader(t *testing.T) {
	_, _, _, r := setupRouter(t)

	newTitle := "New title"
	w := doJSON(t, r, http.MethodPatch, "/api/listings/"+uuid.New().String(),
		dto.UpdateListingRequest{Title: &newTitle}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UpdateListing_Forbidden(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	listingSvc.EXPECT().Update(mock.Anything, listingID, "intruder", mock.Anything).
		Return(nil, domain.ErrForbidden)

	newTitle := "Hijacked"
	w := doJSON(t, r, http.MethodPatch, "/api/listings/"+listingID,
		dto.UpdateListingRequest{Title: &newTitle},
		map[string]string{"X-User-ID": "intruder"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeactivateListing_Success(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	hostID := uuid.New().String()

	listingSvc.EXPECT().Deactivate(mock.Anything, listingID, hostID).Return(nil)

	w := doJSON(t, r, http.MethodDelete, "/api/listings/"+listingID, nil,
		map[string]string{"X-User-ID": hostID})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	listingID := uuid.New().String()
	guestID := uuid.New().String()
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ListingID:  listingID,
		GuestID:    guestID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 4),
		Guests:     2,
		Status:     domain.BookingStatusPending,
		TotalPrice: 400,
		CreatedAt:  time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+listingID+"/bookings", dto.CreateBookingRequest{
		GuestID:   guestID,
		StartDate: "2026-09-10",
		EndDate:   "2026-09-14",
		Guests:    2,
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2026-09-10", resp.StartDate)
	assert.Equal(t, float64(400), resp.TotalPrice)
}

func TestHandler_CreateBooking_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+uuid.New().String()+"/bookings",
		dto.CreateBookingRequest{
			GuestID:   uuid.New().String(),
			StartDate: "not-a-date",
			EndDate:   "2026-09-14",
		}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_DateConflict(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrDateConflict)

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+uuid.New().String()+"/bookings",
		dto.CreateBookingRequest{
			GuestID:   uuid.New().String(),
			StartDate: "2026-09-10",
			EndDate:   "2026-09-14",
		}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_ListingInactive(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrListingInactive)

	w := doJSON(t, r, http.MethodPost, "/api/listings/"+uuid.New().String()+"/bookings",
		dto.CreateBookingRequest{
			GuestID:   uuid.New().String(),
			StartDate: "2026-09-10",
			EndDate:   "2026-09-14",
		}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:        bookingID,
		ListingID: uuid.New().String(),
		Status:    domain.BookingStatusConfirmed,
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}

	bookingSvc.EXPECT().Get(mock.Anything, bookingID).Return(booking, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_TransitionBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:        bookingID,
		Status:    domain.BookingStatusConfirmed,
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}

	bookingSvc.EXPECT().
		Transition(mock.Anything, bookingID, domain.BookingStatusConfirmed).
		Return(booking, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID,
		dto.TransitionBookingRequest{Status: "confirmed"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_TransitionBooking_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+uuid.New().String(),
		dto.TransitionBookingRequest{Status: "teleported"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_TransitionBooking_Invalid(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().
		Transition(mock.Anything, bookingID, domain.BookingStatusCompleted).
		Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID,
		dto.TransitionBookingRequest{Status: "completed"}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListListingBookings_StatusFilter(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	listingID := uuid.New().String()
	confirmed := domain.BookingStatusConfirmed

	bookingSvc.EXPECT().
		ListByListing(mock.Anything, listingID, domain.BookingFilter{Status: &confirmed}).
		Return([]*domain.Booking{{ID: "b1", Status: confirmed, CreatedAt: time.Now()}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+listingID+"/bookings?status=confirmed", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ListListingBookings_UnknownStatus(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet,
		"/api/listings/"+uuid.New().String()+"/bookings?status=launched", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Reviews ---

func TestHandler_CreateReview_Success(t *testing.T) {
	_, _, reviewSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	review := &domain.Review{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		Rating:    5,
		Comment:   "Great stay",
		CreatedAt: time.Now(),
	}

	reviewSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(review, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/reviews",
		dto.CreateReviewRequest{Rating: 5, Comment: "Great stay"}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Rating)
}

func TestHandler_CreateReview_NotCompleted(t *testing.T) {
	_, _, reviewSvc, r := setupRouter(t)

	reviewSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrBookingNotCompleted)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/reviews",
		dto.CreateReviewRequest{Rating: 4}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReview_AlreadyExists(t *testing.T) {
	_, _, reviewSvc, r := setupRouter(t)

	reviewSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrReviewExists)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/reviews",
		dto.CreateReviewRequest{Rating: 4}, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateReview_InvalidRating(t *testing.T) {
	_, _, reviewSvc, r := setupRouter(t)

	reviewSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidRating)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/reviews",
		dto.CreateReviewRequest{Rating: 9}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListListingReviews_Success(t *testing.T) {
	_, _, reviewSvc, r := setupRouter(t)

	listingID := uuid.New().String()
	reviews := []*domain.Review{
		{ID: "r1", BookingID: "b1", Rating: 5, CreatedAt: time.Now()},
		{ID: "r2", BookingID: "b2", Rating: 3, CreatedAt: time.Now()},
	}

	reviewSvc.EXPECT().ListByListing(mock.Anything, listingID).Return(reviews, nil)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+listingID+"/reviews", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	listingSvc, _, _, r := setupRouter(t)

	listingID := uuid.New().String()
	listingSvc.EXPECT().GetDetails(mock.Anything, listingID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/listings/"+listingID, nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
