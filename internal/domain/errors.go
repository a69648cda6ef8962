package domain

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrListingInactive = errors.New("listing is not active")
)

var (
	ErrDateConflict        = errors.New("listing is already booked for the selected dates")
	ErrInvalidTransition   = errors.New("invalid booking status transition")
	ErrBookingNotCompleted = errors.New("booking is not completed")
	ErrReviewExists        = errors.New("booking already has a review")
)

var (
	ErrInvalidPrice  = errors.New("price_per_night must be non-negative")
	ErrInvalidRange  = errors.New("end_date must be after start_date")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrValidation    = errors.New("validation error")
)

var ErrForbidden = errors.New("listing belongs to another host")
