// services/map_service.go
package services

import (
	"math/rand"
	"strings"
)

// Marker is what the map widget needs to pin one listing.
type Marker struct {
	ListingID     uint    `json:"listing_id"`
	Title         string  `json:"title"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	PricePerNight float64 `json:"price_per_night"`
	Lng           float64 `json:"lng"`
	Lat           float64 `json:"lat"`
}

// Approximate city centers for demo markers. Not geocoding: unknown cities
// fall back to the default center.
var cityCoords = map[string][2]float64{
	"new york":      {-73.935242, 40.730610},
	"los angeles":   {-118.243685, 34.052234},
	"chicago":       {-87.623177, 41.881832},
	"miami":         {-80.191790, 25.761680},
	"san francisco": {-122.431297, 37.773972},
	"seattle":       {-122.335167, 47.608013},
	"austin":        {-97.733330, 30.266667},
	"denver":        {-104.990251, 39.739236},
}

var defaultCenter = [2]float64{-98, 39}

// MapService turns listing summaries into marker coordinates. The RNG is
// injectable so tests can pin the jitter.
type MapService struct {
	rng *rand.Rand
}

func NewMapService(seed int64) *MapService {
	return &MapService{rng: rand.New(rand.NewSource(seed))}
}

// Markers places each listing near its city's coordinates with a small
// random offset so co-located listings don't stack on one pixel.
func (m *MapService) Markers(listings []ListingSummary) []Marker {
	out := make([]Marker, 0, len(listings))
	for _, l := range listings {
		lng, lat := m.locate(l.City)
		out = append(out, Marker{
			ListingID:     l.ID,
			Title:         l.Title,
			City:          l.City,
			State:         l.State,
			PricePerNight: l.PricePerNight,
			Lng:           lng,
			Lat:           lat,
		})
	}
	return out
}

func (m *MapService) locate(city string) (float64, float64) {
	base, ok := cityCoords[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		base = defaultCenter
	}
	jitterLng := (m.rng.Float64() - 0.5) * 0.1
	jitterLat := (m.rng.Float64() - 0.5) * 0.1
	return base[0] + jitterLng, base[1] + jitterLat
}
