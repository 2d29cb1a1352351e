// services/search_service.go
package services

import (
	"fmt"
	"strings"
	"time"
)

// Price slider bounds and defaults, matching the search form.
const (
	PriceRangeFloor   = 0
	PriceRangeCeiling = 2000
	DefaultPriceMax   = 1000
	MinFilterGuests   = 1
	MaxFilterGuests   = 16
)

// FilterState is the transient search criteria for one browsing session.
// It is never persisted; Clear resets it to defaults.
//
// Check-in/check-out and guest count are captured for display only; they
// do NOT narrow results. That mirrors the shipped search behavior. Adding
// date or guest predicates here would change what users see today.
type FilterState struct {
	Location string     `json:"location"`
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	Guests   int        `json:"guests"`
	PriceMin float64    `json:"price_min"`
	PriceMax float64    `json:"price_max"`
}

// DefaultFilterState returns the cleared state: no location, no dates,
// one guest, price range [0, 1000].
func DefaultFilterState() FilterState {
	return FilterState{
		Guests:   MinFilterGuests,
		PriceMin: PriceRangeFloor,
		PriceMax: DefaultPriceMax,
	}
}

// Normalized clamps guests into [1,16] and the price range into [0,2000],
// swapping the bounds if they arrive inverted.
func (f FilterState) Normalized() FilterState {
	if f.Guests < MinFilterGuests {
		f.Guests = MinFilterGuests
	}
	if f.Guests > MaxFilterGuests {
		f.Guests = MaxFilterGuests
	}
	if f.PriceMin < PriceRangeFloor {
		f.PriceMin = PriceRangeFloor
	}
	if f.PriceMax <= 0 {
		f.PriceMax = DefaultPriceMax
	}
	if f.PriceMax > PriceRangeCeiling {
		f.PriceMax = PriceRangeCeiling
	}
	if f.PriceMin > f.PriceMax {
		f.PriceMin, f.PriceMax = f.PriceMax, f.PriceMin
	}
	return f
}

// HasActiveFilters reports whether anything differs from the defaults, the
// same condition the UI uses to show the "clear search" affordance.
func (f FilterState) HasActiveFilters() bool {
	return f.Location != "" || f.CheckIn != nil || f.CheckOut != nil ||
		f.Guests > MinFilterGuests || f.PriceMin > PriceRangeFloor || f.PriceMax < DefaultPriceMax
}

// Chips renders the active-filter labels shown above the results. Dates and
// guest count appear here even though they never filter anything.
func (f FilterState) Chips() []string {
	chips := []string{}
	if f.Location != "" {
		chips = append(chips, fmt.Sprintf("location: %s", f.Location))
	}
	if f.CheckIn != nil {
		chips = append(chips, fmt.Sprintf("from %s", f.CheckIn.Format("Jan 02")))
	}
	if f.CheckOut != nil {
		chips = append(chips, fmt.Sprintf("to %s", f.CheckOut.Format("Jan 02")))
	}
	if f.Guests > MinFilterGuests {
		chips = append(chips, fmt.Sprintf("%d guests", f.Guests))
	}
	if f.PriceMin > PriceRangeFloor || f.PriceMax < DefaultPriceMax {
		chips = append(chips, fmt.Sprintf("$%.0f - $%.0f", f.PriceMin, f.PriceMax))
	}
	return chips
}

// ListingSummary is the card-level view of a listing used by search, the
// map markers, and the booking dashboard. HostFirstName falls back to
// "Host" when the profile lookup came back empty.
type ListingSummary struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	PropertyType  string    `json:"property_type"`
	PricePerNight float64   `json:"price_per_night"`
	Images        []string  `json:"images"`
	HostFirstName string    `json:"host_first_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// FilterListings returns the subsequence of listings matching the free-text
// query AND the filter state, preserving the input order (stable filter, no
// re-sort). All three predicates must pass:
//
//   - query: case-folded substring of title, city, state or property type;
//     an empty query matches everything
//   - location: same substring rule against city, state or title
//   - price: per-night price inside [PriceMin, PriceMax], both ends inclusive
//
// The function is total: it never fails and is safe to re-run with the same
// inputs (pure, no hidden state).
func FilterListings(listings []ListingSummary, query string, filters FilterState) []ListingSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	loc := strings.ToLower(strings.TrimSpace(filters.Location))

	out := make([]ListingSummary, 0, len(listings))
	for _, l := range listings {
		if !matchesQuery(l, q) {
			continue
		}
		if !matchesLocation(l, loc) {
			continue
		}
		if l.PricePerNight < filters.PriceMin || l.PricePerNight > filters.PriceMax {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesQuery(l ListingSummary, q string) bool {
	if q == "" {
		return true
	}
	return containsFold(l.Title, q) ||
		containsFold(l.City, q) ||
		containsFold(l.State, q) ||
		containsFold(l.PropertyType, q)
}

func matchesLocation(l ListingSummary, loc string) bool {
	if loc == "" {
		return true
	}
	return containsFold(l.City, loc) ||
		containsFold(l.State, loc) ||
		containsFold(l.Title, loc)
}

// containsFold expects needle already lower-cased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
