package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveStatuses are the statuses that hold a listing's dates.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// transitions is the full edge table of the booking state machine.
// cancelled and completed are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func ParseBookingStatus(raw string) (BookingStatus, bool) {
	switch BookingStatus(raw) {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return BookingStatus(raw), true
	}
	return "", false
}

type Booking struct {
	ID              string        `json:"id"`
	ListingID       string        `json:"listing_id"`
	GuestID         string        `json:"guest_id"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Guests          int           `json:"guests"`
	SpecialRequests string        `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	TotalPrice      float64       `json:"total_price"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (b *Booking) Range() DateRange {
	return DateRange{Start: b.StartDate, End: b.EndDate}
}

type CreateBookingInput struct {
	ListingID       string
	GuestID         string
	StartDate       time.Time
	EndDate         time.Time
	Guests          int
	SpecialRequests string
}

type BookingFilter struct {
	Status *BookingStatus
}
