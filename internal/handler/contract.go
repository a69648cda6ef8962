package handler

import (
	"net/http"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/apidoc"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/handler/dto"
)

// Contract declares every route for the generated OpenAPI document.
// Routes added to the router should be added here too.
func Contract() []apidoc.Operation {
	return []apidoc.Operation{
		{
			Method:   http.MethodPost,
			Path:     "/api/listings",
			Summary:  "Create a listing",
			Request:  dto.CreateListingRequest{},
			Response: dto.ListingResponse{},
			Status:   http.StatusCreated,
			Errors: map[int]string{
				400: "invalid input",
			},
		},
		{
			Method:   http.MethodGet,
			Path:     "/api/listings",
			Summary:  "List listings with filters and pagination",
			Response: dto.ListingsPageResponse{},
			Status:   http.StatusOK,
			Query: []apidoc.QueryParam{
				{Name: "location", Type: "string", Description: "case-insensitive substring match"},
				{Name: "min_price", Type: "number", Description: "minimum price per night"},
				{Name: "max_price", Type: "number", Description: "maximum price per night"},
				{Name: "include_inactive", Type: "boolean", Description: "include deactivated listings"},
				{Name: "page", Type: "integer", Description: "1-based page number"},
				{Name: "page_size", Type: "integer", Description: "items per page, capped by the server"},
			},
			Errors: map[int]string{
				400: "invalid filter or pagination parameters",
			},
		},
		{
			Method:   http.MethodGet,
			Path:     "/api/listings/:id",
			Summary:  "Get a listing with its rating summary",
			Response: dto.ListingDetailsResponse{},
			Status:   http.StatusOK,
			Errors: map[int]string{
				400: "invalid listing id",
				404: "listing not found",
			},
		},
		{
			Method:   http.MethodPatch,
			Path:     "/api/listings/:id",
			Summary:  "Partially update a listing (owner only)",
			Request:  dto.UpdateListingRequest{},
			Response: dto.ListingResponse{},
			Status:   http.StatusOK,
			Errors: map[int]string{
				400: "invalid input",
				401: "missing X-User-ID header",
				403: "not the listing owner",
				404: "listing not found",
			},
		},
		{
			Method:  http.MethodDelete,
			Path:    "/api/listings/:id",
			Summary: "Deactivate a listing (owner only)",
			Status:  http.StatusNoContent,
			Errors: map[int]string{
				400: "invalid listing id",
				401: "missing X-User-ID header",
				403: "not the listing owner",
				404: "listing not found",
			},
		},
		{
			Method:   http.MethodPost,
			Path:     "/api/listings/:id/bookings",
			Summary:  "Book a stay on a listing",
			Request:  dto.CreateBookingRequest{},
			Response: dto.BookingResponse{},
			Status:   http.StatusCreated,
			Errors: map[int]string{
				400: "invalid input or date range",
				404: "listing not found",
				409: "listing inactive or dates already taken",
			},
		},
		{
			Method:   http.MethodGet,
			Path:     "/api/listings/:id/bookings",
			Summary:  "List bookings for a listing",
			Response: []dto.BookingResponse{},
			Status:   http.StatusOK,
			Query: []apidoc.QueryParam{
				{Name: "status", Type: "string", Description: "filter by booking status"},
			},
			Errors: map[int]string{
				400: "invalid listing id or status",
				404: "listing not found",
			},
		},
		{
			Method:   http.MethodGet,
			Path:     "/api/bookings/:id",
			Summary:  "Get a booking",
			Response: dto.BookingResponse{},
			Status:   http.StatusOK,
			Errors: map[int]string{
				400: "invalid booking id",
				404: "booking not found",
			},
		},
		{
			Method:   http.MethodPatch,
			Path:     "/api/bookings/:id",
			Summary:  "Transition a booking to a new status",
			Request:  dto.TransitionBookingRequest{},
			Response: dto.BookingResponse{},
			Status:   http.StatusOK,
			Errors: map[int]string{
				400: "invalid booking id or unknown status",
				404: "booking not found",
				409: "transition not allowed from the current status",
			},
		},
		{
			Method:   http.MethodPost,
			Path:     "/api/bookings/:id/reviews",
			Summary:  "Review a completed stay",
			Request:  dto.CreateReviewRequest{},
			Response: dto.ReviewResponse{},
			Status:   http.StatusCreated,
			Errors: map[int]string{
				400: "invalid input or rating out of range",
				404: "booking not found",
				409: "booking not completed or already reviewed",
			},
		},
		{
			Method:   http.MethodGet,
			Path:     "/api/listings/:id/reviews",
			Summary:  "List reviews for a listing",
			Response: []dto.ReviewResponse{},
			Status:   http.StatusOK,
			Errors: map[int]string{
				400: "invalid listing id",
				404: "listing not found",
			},
		},
	}
}
