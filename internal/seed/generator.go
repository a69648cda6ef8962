// Package seed generates a reproducible demo dataset: listings with
// non-overlapping bookings and reviews for the completed stays. The same
// random seed always yields byte-identical data, so environments seeded
// with the same config can be compared row for row.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Kaywuyep/alx-travel-app-0x00/internal/config"
	"github.com/Kaywuyep/alx-travel-app-0x00/internal/domain"
	"github.com/google/uuid"
)

// epoch anchors every generated timestamp. Wall-clock time never leaks in,
// otherwise two runs with the same seed would diverge.
var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

const (
	maxPlacementDraws = 20
	shrinkEvery       = 5
)

var (
	titleAdjectives = []string{
		"Cozy", "Sunny", "Modern", "Rustic", "Charming", "Spacious",
		"Quiet", "Central", "Seaside", "Historic",
	}
	titleNouns = []string{
		"loft", "studio", "apartment", "cottage", "villa", "bungalow",
		"penthouse", "cabin", "townhouse", "flat",
	}
	locations = []string{
		"Lisbon", "Barcelona", "Marrakech", "Cape Town", "Lagos",
		"Nairobi", "Accra", "Porto", "Valencia", "Dakar",
	}
	amenityPool = []string{
		"wifi", "kitchen", "washer", "air_conditioning", "heating",
		"free_parking", "pool", "workspace",
	}
	descriptions = []string{
		"Walking distance to the old town and the main market.",
		"Freshly renovated with fast wifi and a dedicated workspace.",
		"Quiet street, ten minutes from the beach.",
		"Great base for exploring the city on foot.",
		"Top floor with plenty of natural light.",
	}
	reviewComments = []string{
		"Great stay, exactly as described.",
		"Clean and comfortable, would book again.",
		"The host was responsive and check-in was easy.",
		"Nice place but the street gets noisy at night.",
		"Perfect location for a short city break.",
		"Photos match reality, no surprises.",
	}
	specialRequests = []string{
		"", "", "", // most bookings carry no request
		"Late check-in, arriving around 23:00.",
		"Travelling with a small dog.",
		"Could we have an extra set of towels?",
	}
)

// ListingData bundles one listing with its generated bookings and reviews.
type ListingData struct {
	Listing  *domain.Listing
	Bookings []*domain.Booking
	Reviews  []*domain.Review
}

type Generator struct {
	cfg config.SeedConfig
}

func NewGenerator(cfg config.SeedConfig) *Generator {
	return &Generator{cfg: cfg}
}

// Generate builds the full dataset in memory. It is pure: no clock, no
// database, no global randomness.
func (g *Generator) Generate() ([]ListingData, error) {
	rng := rand.New(rand.NewSource(g.cfg.RandomSeed))

	hosts, err := idPool(rng, g.cfg.Listings/5+1)
	if err != nil {
		return nil, fmt.Errorf("generate hosts: %w", err)
	}
	guests, err := idPool(rng, g.cfg.Listings*2+1)
	if err != nil {
		return nil, fmt.Errorf("generate guests: %w", err)
	}

	dataset := make([]ListingData, 0, g.cfg.Listings)
	for i := 0; i < g.cfg.Listings; i++ {
		listing, err := g.listing(rng, hosts)
		if err != nil {
			return nil, fmt.Errorf("listing %d: %w", i, err)
		}

		bookings, reviews, err := g.bookings(rng, listing, guests)
		if err != nil {
			return nil, fmt.Errorf("bookings for listing %d: %w", i, err)
		}

		dataset = append(dataset, ListingData{
			Listing:  listing,
			Bookings: bookings,
			Reviews:  reviews,
		})
	}

	return dataset, nil
}

func (g *Generator) listing(rng *rand.Rand, hosts []string) (*domain.Listing, error) {
	id, err := newID(rng)
	if err != nil {
		return nil, err
	}

	adjective := pick(rng, titleAdjectives)
	noun := pick(rng, titleNouns)
	location := pick(rng, locations)
	created := epoch.AddDate(0, 0, -rng.Intn(180))
	bedrooms := rng.Intn(5) // studios have zero

	return &domain.Listing{
		ID:            id,
		HostID:        pick(rng, hosts),
		Title:         fmt.Sprintf("%s %s in %s", adjective, noun, location),
		Description:   pick(rng, descriptions),
		Location:      location,
		PropertyType:  pick(rng, domain.PropertyTypes),
		PricePerNight: float64(30 + rng.Intn(271)), // 30..300
		MaxGuests:     1 + rng.Intn(6),
		Bedrooms:      bedrooms,
		Bathrooms:     1 + bedrooms/2,
		Amenities:     amenitySet(rng),
		Active:        rng.Intn(10) != 0, // roughly one in ten is deactivated
		CreatedAt:     created,
		UpdatedAt:     created,
	}, nil
}

// amenitySet keeps the pool's order so equal seeds produce equal slices.
func amenitySet(rng *rand.Rand) []string {
	set := make([]string, 0, len(amenityPool))
	for _, a := range amenityPool {
		if rng.Intn(2) == 0 {
			set = append(set, a)
		}
	}
	return set
}

func (g *Generator) bookings(
	rng *rand.Rand,
	listing *domain.Listing,
	guests []string,
) ([]*domain.Booking, []*domain.Review, error) {
	var (
		bookings []*domain.Booking
		reviews  []*domain.Review
		occupied []domain.DateRange
	)

	for i := 0; i < g.cfg.BookingsPerListing; i++ {
		r, ok := g.place(rng, occupied)
		if !ok {
			continue // calendar too crowded, skip this slot
		}

		status := g.status(rng, r)
		if status != domain.BookingStatusCancelled {
			occupied = append(occupied, r)
		}

		id, err := newID(rng)
		if err != nil {
			return nil, nil, err
		}

		created := r.Start.AddDate(0, 0, -(1 + rng.Intn(30)))
		booking := &domain.Booking{
			ID:              id,
			ListingID:       listing.ID,
			GuestID:         pick(rng, guests),
			StartDate:       r.Start,
			EndDate:         r.End,
			Guests:          1 + rng.Intn(listing.MaxGuests),
			SpecialRequests: pick(rng, specialRequests),
			Status:          status,
			TotalPrice:      float64(r.Nights()) * listing.PricePerNight,
			CreatedAt:       created,
			UpdatedAt:       created,
		}
		bookings = append(bookings, booking)

		if status == domain.BookingStatusCompleted && rng.Intn(10) < 7 {
			review, err := g.review(rng, booking)
			if err != nil {
				return nil, nil, err
			}
			reviews = append(reviews, review)
		}
	}

	return bookings, reviews, nil
}

// place draws a date range inside the horizon that does not overlap any
// occupied range. After every few rejected draws the stay length shrinks,
// so dense calendars still get short bookings placed.
func (g *Generator) place(rng *rand.Rand, occupied []domain.DateRange) (domain.DateRange, bool) {
	nights := 2 + rng.Intn(13) // 2..14
	if nights >= g.cfg.HorizonDays {
		nights = g.cfg.HorizonDays - 1
	}
	if nights < 1 {
		return domain.DateRange{}, false
	}

	for attempt := 0; attempt < maxPlacementDraws; attempt++ {
		if attempt > 0 && attempt%shrinkEvery == 0 && nights > 1 {
			nights = nights/2 + 1
		}

		maxStart := g.cfg.HorizonDays - nights

		start := epoch.AddDate(0, 0, rng.Intn(maxStart))
		r := domain.DateRange{Start: start, End: start.AddDate(0, 0, nights)}

		if !overlapsAny(r, occupied) {
			return r, true
		}
	}

	return domain.DateRange{}, false
}

// status picks a lifecycle state consistent with where the stay sits in
// the horizon: stays in the first half read as history, the rest as
// upcoming bookings.
func (g *Generator) status(rng *rand.Rand, r domain.DateRange) domain.BookingStatus {
	mid := epoch.AddDate(0, 0, g.cfg.HorizonDays/2)

	if r.End.Before(mid) {
		if rng.Intn(10) < 2 {
			return domain.BookingStatusCancelled
		}
		return domain.BookingStatusCompleted
	}

	switch rng.Intn(10) {
	case 0:
		return domain.BookingStatusCancelled
	case 1, 2, 3:
		return domain.BookingStatusPending
	default:
		return domain.BookingStatusConfirmed
	}
}

func (g *Generator) review(rng *rand.Rand, booking *domain.Booking) (*domain.Review, error) {
	id, err := newID(rng)
	if err != nil {
		return nil, err
	}

	// Skew ratings positive: 1..5 with most stays rated 4 or 5.
	rating := 1 + rng.Intn(5)
	if rating < 3 && rng.Intn(2) == 0 {
		rating += 2
	}

	return &domain.Review{
		ID:        id,
		BookingID: booking.ID,
		Rating:    rating,
		Comment:   pick(rng, reviewComments),
		CreatedAt: booking.EndDate.AddDate(0, 0, 1+rng.Intn(7)),
	}, nil
}

func overlapsAny(r domain.DateRange, occupied []domain.DateRange) bool {
	for _, o := range occupied {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

func newID(rng *rand.Rand) (string, error) {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}

func idPool(rng *rand.Rand, n int) ([]string, error) {
	pool := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id, err := newID(rng)
		if err != nil {
			return nil, err
		}
		pool = append(pool, id)
	}
	return pool, nil
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}
