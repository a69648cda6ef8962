package domain

import "time"

type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
}
