package dto

type CreateListingRequest struct {
	HostID        string  `json:"host_id" binding:"required,uuid"`
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Location      string  `json:"location" binding:"required"`
	PropertyType  string  `json:"property_type"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     int      `json:"max_guests" binding:"required,gt=0"`
	Bedrooms      int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms     int      `json:"bathrooms" binding:"gte=0"`
	Amenities     []string `json:"amenities"`
}

type UpdateListingRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PropertyType  *string  `json:"property_type"`
	PricePerNight *float64  `json:"price_per_night"`
	MaxGuests     *int      `json:"max_guests"`
	Bedrooms      *int      `json:"bedrooms"`
	Bathrooms     *int      `json:"bathrooms"`
	Amenities     *[]string `json:"amenities"`
}

type CreateBookingRequest struct {
	GuestID         string `json:"guest_id" binding:"required,uuid"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
}

type TransitionBookingRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
