package domain

import (
	"fmt"
	"time"
)

// DateRange is a half-open interval [Start, End): checkout day is excluded,
// so a stay ending on a day another stay begins does not overlap it.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, ErrInvalidRange
	}
	return DateRange{Start: start, End: end}, nil
}

func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start.Before(o.End) && o.Start.Before(r.End)
}

func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

func ValidateListing(in CreateListingInput) error {
	if in.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if in.PricePerNight < 0 {
		return ErrInvalidPrice
	}
	if in.MaxGuests <= 0 {
		return fmt.Errorf("%w: max_guests must be positive", ErrValidation)
	}
	if in.Bedrooms < 0 {
		return fmt.Errorf("%w: bedrooms must not be negative", ErrValidation)
	}
	if in.Bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must not be negative", ErrValidation)
	}
	if in.PropertyType != "" && !ValidPropertyType(in.PropertyType) {
		return fmt.Errorf("%w: unknown property_type %q", ErrValidation, in.PropertyType)
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
