package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(date(2024, 3, 1), date(2024, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Nights())

	_, err = NewDateRange(date(2024, 3, 5), date(2024, 3, 5))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewDateRange(date(2024, 3, 5), date(2024, 3, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDateRange_Overlaps(t *testing.T) {
	base := DateRange{Start: date(2024, 3, 1), End: date(2024, 3, 5)}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"identical", DateRange{date(2024, 3, 1), date(2024, 3, 5)}, true},
		{"contained", DateRange{date(2024, 3, 2), date(2024, 3, 4)}, true},
		{"overlaps tail", DateRange{date(2024, 3, 4), date(2024, 3, 8)}, true},
		{"overlaps head", DateRange{date(2024, 2, 27), date(2024, 3, 2)}, true},
		{"adjacent after", DateRange{date(2024, 3, 5), date(2024, 3, 8)}, false},
		{"adjacent before", DateRange{date(2024, 2, 27), date(2024, 3, 1)}, false},
		{"disjoint", DateRange{date(2024, 4, 1), date(2024, 4, 3)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestValidateListing(t *testing.T) {
	valid := CreateListingInput{
		HostID:        "h1",
		Title:         "Sea view loft",
		Location:      "Lisbon",
		PropertyType:  "loft",
		PricePerNight: 120,
		MaxGuests:     4,
	}
	assert.NoError(t, ValidateListing(valid))

	free := valid
	free.PricePerNight = 0
	assert.NoError(t, ValidateListing(free), "zero price is allowed")

	negative := valid
	negative.PricePerNight = -1
	assert.ErrorIs(t, ValidateListing(negative), ErrInvalidPrice)

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorIs(t, ValidateListing(noTitle), ErrValidation)

	noGuests := valid
	noGuests.MaxGuests = 0
	assert.ErrorIs(t, ValidateListing(noGuests), ErrValidation)

	badType := valid
	badType.PropertyType = "castle"
	assert.ErrorIs(t, ValidateListing(badType), ErrValidation)

	negBedrooms := valid
	negBedrooms.Bedrooms = -1
	assert.ErrorIs(t, ValidateListing(negBedrooms), ErrValidation)

	negBathrooms := valid
	negBathrooms.Bathrooms = -2
	assert.ErrorIs(t, ValidateListing(negBathrooms), ErrValidation)

	studio := valid
	studio.Bedrooms = 0
	studio.Bathrooms = 0
	assert.NoError(t, ValidateListing(studio), "zero rooms is a studio, not an error")
}

func TestValidateRating(t *testing.T) {
	for r := 1; r <= 5; r++ {
		assert.NoError(t, ValidateRating(r))
	}
	assert.ErrorIs(t, ValidateRating(0), ErrInvalidRating)
	assert.ErrorIs(t, ValidateRating(6), ErrInvalidRating)
	assert.ErrorIs(t, ValidateRating(-3), ErrInvalidRating)
}
