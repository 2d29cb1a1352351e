package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func sampleListings() []ListingSummary {
	return []ListingSummary{
		{ID: 1, Title: "Cozy Villa", City: "Miami", State: "Florida", PropertyType: "Villa", PricePerNight: 200},
		{ID: 2, Title: "Downtown Loft", City: "Chicago", State: "Illinois", PropertyType: "Apartment", PricePerNight: 150},
		{ID: 3, Title: "Beach House", City: "Miami", State: "Florida", PropertyType: "House", PricePerNight: 450},
	}
}

func TestFilterListings_DefaultsReturnEverything(t *testing.T) {
	in := sampleListings()
	out := FilterListings(in, "", DefaultFilterState())

	assert.Equal(t, in, out, "empty query and default filters must pass the whole feed through, order preserved")
}

func TestFilterListings_QueryMatchesAcrossFields(t *testing.T) {
	in := sampleListings()
	f := DefaultFilterState()

	byTitle := FilterListings(in, "villa", f)
	assert.Len(t, byTitle, 1)
	assert.Equal(t, uint(1), byTitle[0].ID)

	byCity := FilterListings(in, "chicago", f)
	assert.Len(t, byCity, 1)
	assert.Equal(t, uint(2), byCity[0].ID)

	byState := FilterListings(in, "florida", f)
	assert.Len(t, byState, 2)

	byType := FilterListings(in, "apartment", f)
	assert.Len(t, byType, 1)
	assert.Equal(t, uint(2), byType[0].ID)
}

func TestFilterListings_CaseInsensitive(t *testing.T) {
	in := []ListingSummary{{ID: 1, Title: "Loft", City: "NYC Midtown", PricePerNight: 100}}
	f := DefaultFilterState()

	assert.Len(t, FilterListings(in, "nyc", f), 1)
	assert.Len(t, FilterListings(in, "NYC", f), 1)
	assert.Len(t, FilterListings(in, "Nyc", f), 1)
}

func TestFilterListings_LocationIndependentOfQuery(t *testing.T) {
	in := sampleListings()
	f := DefaultFilterState()
	f.Location = "miami"

	// Query narrows to Florida listings, location must also hold.
	out := FilterListings(in, "house", f)
	assert.Len(t, out, 1)
	assert.Equal(t, uint(3), out[0].ID)

	// Location alone.
	out = FilterListings(in, "", f)
	assert.Len(t, out, 2)
}

func TestFilterListings_PriceBoundariesInclusive(t *testing.T) {
	in := sampleListings()

	f := DefaultFilterState()
	f.PriceMin = 200
	f.PriceMax = 200
	out := FilterListings(in, "", f)
	assert.Len(t, out, 1, "range touching the price at both ends still includes it")
	assert.Equal(t, uint(1), out[0].ID)

	f.PriceMin = 201
	f.PriceMax = 400
	out = FilterListings(in, "", f)
	assert.Empty(t, out, "range strictly outside every price excludes everything")
}

func TestFilterListings_DatesAndGuestsDoNotFilter(t *testing.T) {
	in := sampleListings()
	f := DefaultFilterState()
	f.Guests = 12
	ci := mustDate(2024, 3, 1)
	co := mustDate(2024, 3, 4)
	f.CheckIn = &ci
	f.CheckOut = &co

	out := FilterListings(in, "", f)
	assert.Equal(t, in, out, "dates and guest count are display-only and must not narrow results")

	chips := f.Chips()
	assert.Contains(t, chips, "from Mar 01")
	assert.Contains(t, chips, "to Mar 04")
	assert.Contains(t, chips, "12 guests")
}

func TestFilterListings_Idempotent(t *testing.T) {
	in := sampleListings()
	f := DefaultFilterState()
	f.Location = "florida"

	first := FilterListings(in, "villa", f)
	second := FilterListings(in, "villa", f)
	assert.Equal(t, first, second)
}

func TestFilterListings_VillaScenario(t *testing.T) {
	in := []ListingSummary{
		{Title: "Cozy Villa", PricePerNight: 200},
		{Title: "Downtown Loft", PricePerNight: 150},
	}
	f := DefaultFilterState()
	f.PriceMax = 1000

	out := FilterListings(in, "villa", f)
	assert.Len(t, out, 1)
	assert.Equal(t, "Cozy Villa", out[0].Title)
}

func TestFilterListings_MissingHostNameDoesNotMatter(t *testing.T) {
	in := []ListingSummary{{ID: 1, Title: "Loft", PricePerNight: 100}}
	out := FilterListings(in, "loft", DefaultFilterState())
	assert.Len(t, out, 1)
}

func TestFilterStateNormalized(t *testing.T) {
	f := FilterState{Guests: 40, PriceMin: -10, PriceMax: 9000}
	n := f.Normalized()
	assert.Equal(t, MaxFilterGuests, n.Guests)
	assert.Equal(t, float64(PriceRangeFloor), n.PriceMin)
	assert.Equal(t, float64(PriceRangeCeiling), n.PriceMax)

	f = FilterState{Guests: 0, PriceMin: 700, PriceMax: 300}
	n = f.Normalized()
	assert.Equal(t, MinFilterGuests, n.Guests)
	assert.Equal(t, 300.0, n.PriceMin)
	assert.Equal(t, 700.0, n.PriceMax)
}

func TestFilterStateHasActiveFilters(t *testing.T) {
	assert.False(t, DefaultFilterState().HasActiveFilters())

	f := DefaultFilterState()
	f.Location = "austin"
	assert.True(t, f.HasActiveFilters())

	f = DefaultFilterState()
	f.PriceMax = 500
	assert.True(t, f.HasActiveFilters())
}
