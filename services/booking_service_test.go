package services

import (
	"strings"
	"testing"
	"time"

	"stayfinder-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedBookableListing(t *testing.T, db *gorm.DB, host models.Profile) models.Listing {
	t.Helper()
	listing := models.Listing{
		HostID:        host.ID,
		Title:         "Cozy Villa",
		PropertyType:  "Villa",
		City:          "Miami",
		State:         "Florida",
		PricePerNight: 200,
		MaxGuests:     4,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardholderName: "Jamie Guest",
		CardNumber:     "4242424242424242",
		ExpiryDate:     "12/28",
		CVV:            "123",
	}
}

func newBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(db, &PaymentService{Delay: 0})
}

func TestBookingService_CreateConfirmed(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "Sarah")
	guest := seedHost(t, db, "Jamie")
	listing := seedBookableListing(t, db, host)
	svc := newBookingService(db)

	booking, err := svc.CreateBooking(guest.ID, BookingRequest{
		ListingID: listing.ID,
		CheckIn:   "2024-03-01",
		CheckOut:  "2024-03-04",
		Guests:    2,
		Payment:   validPayment(),
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 600.0, booking.TotalPrice)
	assert.True(t, strings.HasPrefix(booking.ReferenceCode, "SF-"))
}

func TestBookingService_TotalIgnoresClientPricing(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "Sarah")
	guest := seedHost(t, db, "Jamie")
	listing := seedBookableListing(t, db, host)
	svc := newBookingService(db)

	// The request carries no price at all; the total comes from the
	// listing's nightly rate.
	booking, err := svc.CreateBooking(guest.ID, BookingRequest{
		ListingID: listing.ID,
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-11",
		Guests:    1,
		Payment:   validPayment(),
	})
	require.NoError(t, err)
	assert.Equal(t, listing.PricePerNight, booking.TotalPrice)
}

func TestBookingService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "Sarah")
	guest := seedHost(t, db, "Jamie")
	listing := seedBookableListing(t, db, host)
	svc := newBookingService(db)

	cases := []struct {
		name string
		req  BookingRequest
	}{
		{"missing check_in", BookingRequest{ListingID: listing.ID, CheckOut: "2024-03-04", Guests: 1, Payment: validPayment()}},
		{"garbled check_out", BookingRequest{ListingID: listing.ID, CheckIn: "2024-03-01", CheckOut: "someday", Guests: 1, Payment: validPayment()}},
		{"inverted range", BookingRequest{ListingID: listing.ID, CheckIn: "2024-03-04", CheckOut: "2024-03-01", Guests: 1, Payment: validPayment()}},
		{"same day", BookingRequest{ListingID: listing.ID, CheckIn: "2024-03-01", CheckOut: "2024-03-01", Guests: 1, Payment: validPayment()}},
		{"too many guests", BookingRequest{ListingID: listing.ID, CheckIn: "2024-03-01", CheckOut: "2024-03-04", Guests: 9, Payment: validPayment()}},
		{"missing card fields", BookingRequest{ListingID: listing.ID, CheckIn: "2024-03-01", CheckOut: "2024-03-04", Guests: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(guest.ID, tc.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validation:")
		})
	}

	// Every rejection happened before the insert.
	var count int64
	db.Model(&models.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBookingService_InactiveListingLooksMissing(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "Sarah")
	guest := seedHost(t, db, "Jamie")
	listing := seedBookableListing(t, db, host)
	require.NoError(t, db.Model(&listing).Update("is_active", false).Error)
	svc := newBookingService(db)

	_, err := svc.CreateBooking(guest.ID, BookingRequest{
		ListingID: listing.ID,
		CheckIn:   "2024-03-01",
		CheckOut:  "2024-03-04",
		Guests:    1,
		Payment:   validPayment(),
	})
	assert.EqualError(t, err, "listing_not_found")
}

func TestBookingService_RFC3339DatesAccepted(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "Sarah")
	guest := seedHost(t, db, "Jamie")
	listing := seedBookableListing(t, db, host)
	svc := newBookingService(db)

	booking, err := svc.CreateBooking(guest.ID, BookingRequest{
		ListingID: listing.ID,
		CheckIn:   "2024-03-01T15:00:00Z",
		CheckOut:  "2024-03-04T11:00:00Z",
		Guests:    2,
		Payment:   validPayment(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, booking.Nights)
}

func TestBookingService_GuestDashboard(t *testing.T) {
	db := newTestDB(t)
	host := seedHost(t, db, "Sarah")
	guest := seedHost(t, db, "Jamie")
	other := seedHost(t, db, "Evan")
	listing := seedBookableListing(t, db, host)
	svc := newBookingService(db)

	first, err := svc.CreateBooking(guest.ID, BookingRequest{
		ListingID: listing.ID,
		CheckIn:   "2024-03-01",
		CheckOut:  "2024-03-04",
		Guests:    1,
		Payment:   validPayment(),
	})
	require.NoError(t, err)

	// Later bookings sort first on the dashboard.
	require.NoError(t, db.Model(&models.Booking{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	second, err := svc.CreateBooking(guest.ID, BookingRequest{
		ListingID: listing.ID,
		CheckIn:   "2024-04-01",
		CheckOut:  "2024-04-02",
		Guests:    1,
		Payment:   validPayment(),
	})
	require.NoError(t, err)

	bookings, err := svc.GetForGuest(guest.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, second.ID, bookings[0].ID)
	assert.Equal(t, "Cozy Villa", bookings[0].Listing.Title)

	// A different guest cannot see the booking.
	_, err = svc.GetDetails(other.ID, first.ID)
	assert.EqualError(t, err, "booking_not_found")

	detail, err := svc.GetDetails(guest.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ReferenceCode, detail.ReferenceCode)
}
