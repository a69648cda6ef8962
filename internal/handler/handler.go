package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/config"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

// hostHeader carries the acting host identity for listing mutations.
// There is no auth layer; callers are trusted to send their own id.
const hostHeader = "X-User-ID"

// maxPageNumber keeps page*page_size far from integer overflow, so the
// computed OFFSET can never go negative.
const maxPageNumber = 1_000_000

type ListingSvc interface {
	Create(ctx context.Context, input domain.CreateListingInput) (*domain.Listing, error)
	GetDetails(ctx context.Context, id string) (*domain.ListingDetails, error)
	List(ctx context.Context, filter domain.ListingFilter, page domain.Page) ([]*domain.Listing, error)
	Update(ctx context.Context, id, hostID string, input domain.UpdateListingInput) (*domain.Listing, error)
	Deactivate(ctx context.Context, id, hostID string) error
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	Transition(ctx context.Context, id string, target domain.BookingStatus) (*domain.Booking, error)
	ListByListing(ctx context.Context, listingID string, filter domain.BookingFilter) ([]*domain.Booking, error)
}

type ReviewSvc interface {
	Create(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]*domain.Review, error)
}

type Handler struct {
	listingService ListingSvc
	bookingService BookingSvc
	reviewService  ReviewSvc
	pagination     config.PaginationConfig
}

func NewHandler(
	listingService ListingSvc,
	bookingService BookingSvc,
	reviewService ReviewSvc,
	pagination config.PaginationConfig,
) *Handler {
	return &Handler{
		listingService: listingService,
		bookingService: bookingService,
		reviewService:  reviewService,
		pagination:     pagination,
	}
}

// Listings

func (h *Handler) CreateListing(c *ginext.Context) {
	var req dto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateListingInput{
		HostID:        req.HostID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PropertyType:  req.PropertyType,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
	}

	listing, err := h.listingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	details, err := h.listingService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailsResponse(details))
}

func (h *Handler) ListListings(c *ginext.Context) {
	filter, err := parseListingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	page, err := h.parsePage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), filter, page)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingsPageResponse(listings, page))
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	hostID := c.GetHeader(hostHeader)
	if hostID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + hostHeader + " header"})
		return
	}

	var req dto.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateListingInput{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PropertyType:  req.PropertyType,
		PricePerNight: req.PricePerNight,
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
	}

	listing, err := h.listingService.Update(c.Request.Context(), id, hostID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) DeactivateListing(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	hostID := c.GetHeader(hostHeader)
	if hostID == "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing " + hostHeader + " header"})
		return
	}

	if err := h.listingService.Deactivate(c.Request.Context(), id, hostID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(dto.DateFormat, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected " + dto.DateFormat,
		})
		return
	}
	end, err := time.Parse(dto.DateFormat, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected " + dto.DateFormat,
		})
		return
	}

	input := domain.CreateBookingInput{
		ListingID:       listingID,
		GuestID:         req.GuestID,
		StartDate:       start,
		EndDate:         end,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) TransitionBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.TransitionBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	target, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown booking status: " + req.Status})
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), id, target)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListListingBookings(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	var filter domain.BookingFilter
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseBookingStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown booking status: " + raw})
			return
		}
		filter.Status = &status
	}

	bookings, err := h.bookingService.ListByListing(c.Request.Context(), listingID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Reviews

func (h *Handler) CreateReview(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateReviewInput{
		BookingID: bookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	review, err := h.reviewService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *Handler) ListListingReviews(c *ginext.Context) {
	listingID := c.Param("id")
	if _, err := uuid.Parse(listingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid listing id"})
		return
	}

	reviews, err := h.reviewService.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for _, rv := range reviews {
		resp = append(resp, dto.ToReviewResponse(rv))
	}

	c.JSON(http.StatusOK, resp)
}

func parseListingFilter(c *ginext.Context) (domain.ListingFilter, error) {
	filter := domain.ListingFilter{
		Location:   c.Query("location"),
		ActiveOnly: true,
	}

	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return filter, errors.New("min_price must be a non-negative number")
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return filter, errors.New("max_price must be a non-negative number")
		}
		filter.MaxPrice = &v
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, errors.New("min_price cannot exceed max_price")
	}
	if raw := c.Query("include_inactive"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("include_inactive must be a boolean")
		}
		filter.ActiveOnly = !v
	}

	return filter, nil
}

func (h *Handler) parsePage(c *ginext.Context) (domain.Page, error) {
	page := domain.Page{Number: 1, Size: h.pagination.DefaultPageSize}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPageNumber {
			return page, errors.New("page must be an integer between 1 and 1000000")
		}
		page.Number = n
	}
	if raw := c.Query("page_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return page, errors.New("page_size must be a positive integer")
		}
		if n > h.pagination.MaxPageSize {
			n = h.pagination.MaxPageSize
		}
		page.Size = n
	}

	return page, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrListingInactive),
		errors.Is(err, domain.ErrDateConflict),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrBookingNotCompleted),
		errors.Is(err, domain.ErrReviewExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
