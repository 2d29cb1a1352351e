// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"stayfinder-backend/models"
	"stayfinder-backend/utils"

	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB for booking creation and the guest
// dashboard reads.
type BookingService struct {
	DB       *gorm.DB
	Payments *PaymentService
}

func NewBookingService(db *gorm.DB, payments *PaymentService) *BookingService {
	return &BookingService{DB: db, Payments: payments}
}

// BookingRequest is the reserve-and-pay form payload. Dates arrive as
// "2006-01-02" strings.
type BookingRequest struct {
	ListingID       uint           `json:"listing_id"`
	CheckIn         string         `json:"check_in"`
	CheckOut        string         `json:"check_out"`
	Guests          int            `json:"guests"`
	SpecialRequests string         `json:"special_requests"`
	Payment         PaymentDetails `json:"payment"`
}

func parseBookingDate(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, errors.New("missing date")
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("unrecognized date format %q", value)
}

// CreateBooking validates the request, runs the simulated payment, then
// inserts the booking as confirmed. Validation failures happen before any
// store call or payment attempt; a declined payment leaves no partial state.
// The total is always recomputed server-side from the listing's nightly
// rate, never trusted from the client.
func (s *BookingService) CreateBooking(guestID uint, req BookingRequest) (*models.Booking, error) {
	checkIn, err := parseBookingDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid check_in: %v", err)
	}
	checkOut, err := parseBookingDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("validation: invalid check_out: %v", err)
	}
	if !checkOut.After(*checkIn) {
		return nil, fmt.Errorf("validation: check_out must be after check_in")
	}
	if req.Guests < 1 {
		req.Guests = 1
	}

	var listing models.Listing
	if err := s.DB.First(&listing, req.ListingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("listing_not_found")
		}
		return nil, fmt.Errorf("db error checking listing %d: %w", req.ListingID, err)
	}
	if !listing.IsActive {
		return nil, errors.New("listing_not_found")
	}
	if req.Guests > listing.MaxGuests {
		return nil, fmt.Errorf("validation: listing sleeps at most %d guests", listing.MaxGuests)
	}

	nights := utils.Nights(checkIn, checkOut)
	total := utils.TotalPrice(listing.PricePerNight, nights)

	receipt, err := s.Payments.Process(req.Payment, total)
	if err != nil {
		return nil, err
	}
	log.Printf("payment settled for listing %d, receipt %s", listing.ID, receipt.ID)

	booking := models.Booking{
		ListingID:       listing.ID,
		GuestID:         guestID,
		ReferenceCode:   utils.GenerateReferenceCode(),
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          nights,
		Guests:          req.Guests,
		TotalPrice:      total,
		SpecialRequests: strings.TrimSpace(req.SpecialRequests),
		Status:          models.BookingStatusConfirmed,
	}

	// Retry once on a reference-code collision.
	for attempt := 0; attempt < 2; attempt++ {
		err = s.DB.Create(&booking).Error
		if err == nil {
			break
		}
		lc := strings.ToLower(err.Error())
		if strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") {
			booking.ReferenceCode = utils.GenerateReferenceCode()
			continue
		}
		break
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &booking, nil
}

// GetForGuest returns the guest's bookings newest first, each with its
// listing preloaded for the dashboard cards.
func (s *BookingService) GetForGuest(guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.
		Preload("Listing").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

// GetDetails is a point lookup restricted to the booking's own guest.
func (s *BookingService) GetDetails(guestID, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Listing").
		Where("id = ? AND guest_id = ?", bookingID, guestID).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return &booking, nil
}
