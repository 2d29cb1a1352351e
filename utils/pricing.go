// utils/pricing.go
package utils

import (
	"math"
	"time"
)

// Nights returns the number of nights between check-in and check-out as the
// ceiling of the calendar-day difference. Both dates are normalized to
// midnight first so time-of-day components (and DST shifts) cannot produce
// off-by-one counts. Missing dates or a check-out at/before check-in yield 0,
// never a negative value; "no booking priced yet" is not an error.
func Nights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	ci := startOfDay(*checkIn)
	co := startOfDay(*checkOut)
	if !co.After(ci) {
		return 0
	}
	n := int(math.Ceil(co.Sub(ci).Hours() / 24))
	if n < 0 {
		return 0
	}
	return n
}

// TotalPrice is nightly rate times night count. Zero nights price to zero.
func TotalPrice(pricePerNight float64, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return pricePerNight * float64(nights)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
