package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	all := []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusCompleted,
	}

	allowed := map[BookingStatus]map[BookingStatus]bool{
		BookingStatusPending: {
			BookingStatusConfirmed: true,
			BookingStatusCancelled: true,
		},
		BookingStatusConfirmed: {
			BookingStatusCancelled: true,
			BookingStatusCompleted: true,
		},
	}

	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			got := from.CanTransitionTo(to)
			assert.Equal(t, want, got, "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_SelfTransitionsRejected(t *testing.T) {
	for _, s := range []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCancelled,
		BookingStatusCompleted,
	} {
		assert.False(t, s.CanTransitionTo(s), "self transition %s", s)
	}
}

func TestParseBookingStatus(t *testing.T) {
	s, ok := ParseBookingStatus("confirmed")
	assert.True(t, ok)
	assert.Equal(t, BookingStatusConfirmed, s)

	_, ok = ParseBookingStatus("paid")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("")
	assert.False(t, ok)
}
