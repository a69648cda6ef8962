package domain

import "time"

type Listing struct {
	ID            string    `json:"id"`
	HostID        string    `json:"host_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      string    `json:"location"`
	PropertyType  string    `json:"property_type"`
	PricePerNight float64   `json:"price_per_night"`
	MaxGuests     int       `json:"max_guests"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	Amenities     []string  `json:"amenities"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ListingDetails is the read-side shape for a single listing page.
type ListingDetails struct {
	Listing       Listing `json:"listing"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

var PropertyTypes = []string{"apartment", "house", "villa", "cabin", "loft"}

func ValidPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if t == pt {
			return true
		}
	}
	return false
}

type CreateListingInput struct {
	HostID        string
	Title         string
	Description   string
	Location      string
	PropertyType  string
	PricePerNight float64
	MaxGuests     int
	Bedrooms      int
	Bathrooms     int
	Amenities     []string
}

// UpdateListingInput carries only the fields present in the request.
type UpdateListingInput struct {
	Title         *string
	Description   *string
	Location      *string
	PropertyType  *string
	PricePerNight *float64
	MaxGuests     *int
	Bedrooms      *int
	Bathrooms     *int
	Amenities     *[]string
}

type ListingFilter struct {
	Location   string
	MinPrice   *float64
	MaxPrice   *float64
	ActiveOnly bool
}

// Page is a 1-based pagination request; Size is already clamped by the caller.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
