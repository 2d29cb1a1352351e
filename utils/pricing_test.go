package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNights_BasicRange(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2024, time.March, 1), date(2024, time.March, 4)))
	assert.Equal(t, 1, Nights(date(2024, time.March, 1), date(2024, time.March, 2)))
}

func TestNights_MissingDates(t *testing.T) {
	assert.Equal(t, 0, Nights(nil, nil))
	assert.Equal(t, 0, Nights(date(2024, time.March, 1), nil))
	assert.Equal(t, 0, Nights(nil, date(2024, time.March, 4)))
}

func TestNights_CheckOutNotAfterCheckIn(t *testing.T) {
	// Violated precondition yields 0, never a negative count.
	assert.Equal(t, 0, Nights(date(2024, time.March, 4), date(2024, time.March, 1)))
	assert.Equal(t, 0, Nights(date(2024, time.March, 4), date(2024, time.March, 4)))
}

func TestNights_IgnoresTimeOfDay(t *testing.T) {
	// A late check-in and early check-out still span whole calendar days.
	ci := time.Date(2024, time.March, 1, 23, 30, 0, 0, time.UTC)
	co := time.Date(2024, time.March, 4, 0, 15, 0, 0, time.UTC)
	assert.Equal(t, 3, Nights(&ci, &co))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, TotalPrice(100, 3))
	assert.Equal(t, 0.0, TotalPrice(100, 0))
	assert.Equal(t, 0.0, TotalPrice(100, -1))
}
