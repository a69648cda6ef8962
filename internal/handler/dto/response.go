package dto

import (
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
)

// DateFormat is the wire format for booking dates: calendar days, no time part.
const DateFormat = "2006-01-02"

type ListingResponse struct {
	ID            string  `json:"id"`
	HostID        string  `json:"host_id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PropertyType  string  `json:"property_type"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests"`
	Bedrooms      int      `json:"bedrooms"`
	Bathrooms     int      `json:"bathrooms"`
	Amenities     []string `json:"amenities"`
	Active        bool     `json:"active"`
	CreatedAt     string   `json:"created_at"`
}

type ListingDetailsResponse struct {
	Listing       ListingResponse `json:"listing"`
	AverageRating float64         `json:"average_rating"`
	TotalReviews  int             `json:"total_reviews"`
}

type ListingsPageResponse struct {
	Items    []ListingResponse `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	ListingID       string  `json:"listing_id"`
	GuestID         string  `json:"guest_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Guests          int     `json:"guests"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	TotalPrice      float64 `json:"total_price"`
	CreatedAt       string  `json:"created_at"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToListingResponse(l *domain.Listing) ListingResponse {
	amenities := l.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return ListingResponse{
		ID:            l.ID,
		HostID:        l.HostID,
		Title:         l.Title,
		Description:   l.Description,
		Location:      l.Location,
		PropertyType:  l.PropertyType,
		PricePerNight: l.PricePerNight,
		MaxGuests:     l.MaxGuests,
		Bedrooms:      l.Bedrooms,
		Bathrooms:     l.Bathrooms,
		Amenities:     amenities,
		Active:        l.Active,
		CreatedAt:     l.CreatedAt.Format(time.RFC3339),
	}
}

func ToListingDetailsResponse(d *domain.ListingDetails) ListingDetailsResponse {
	return ListingDetailsResponse{
		Listing:       ToListingResponse(&d.Listing),
		AverageRating: d.AverageRating,
		TotalReviews:  d.TotalReviews,
	}
}

func ToListingsPageResponse(listings []*domain.Listing, page domain.Page) ListingsPageResponse {
	items := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		items = append(items, ToListingResponse(l))
	}

	return ListingsPageResponse{
		Items:    items,
		Page:     page.Number,
		PageSize: page.Size,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		ListingID:       b.ListingID,
		GuestID:         b.GuestID,
		StartDate:       b.StartDate.Format(DateFormat),
		EndDate:         b.EndDate.Format(DateFormat),
		Guests:          b.Guests,
		SpecialRequests: b.SpecialRequests,
		Status:          string(b.Status),
		TotalPrice:      b.TotalPrice,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToReviewResponse(rv *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        rv.ID,
		BookingID: rv.BookingID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt.Format(time.RFC3339),
	}
}
