// models/booking.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. New bookings are written as Confirmed: payment is
// simulated and always settles before the insert, so nothing ever sits
// in Pending even though the column allows it.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a guest's reservation of a listing for a half-open
// [check_in, check_out) date range. Bookings are immutable once created;
// there is no edit endpoint.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ListingID uint `gorm:"index;column:listing_id" json:"listing_id"`
	GuestID   uint `gorm:"index;column:guest_id" json:"guest_id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out"`
	Nights   int        `gorm:"column:nights" json:"nights"`

	Guests          int     `gorm:"column:guests;default:1" json:"guests"`
	TotalPrice      float64 `gorm:"column:total_price" json:"total_price"`
	SpecialRequests string  `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`
	Status          string  `gorm:"column:status;size:32" json:"status"`

	Listing Listing `gorm:"foreignKey:ListingID;references:ID" json:"listing,omitempty"`
	Guest   Profile `gorm:"foreignKey:GuestID;references:ID" json:"-"`
}
