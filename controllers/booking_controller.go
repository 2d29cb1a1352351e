// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings) is the reserve-and-pay step: the mock
// payment runs inside the service and the booking lands already confirmed.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	guestID := CurrentUserID(c)

	var req services.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload")
		return
	}

	booking, err := ctrl.BookingSvc.CreateBooking(guestID, req)
	if err != nil {
		switch {
		case isValidationError(err):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case err.Error() == "listing_not_found":
			utils.JSONNotFound(c, "listing not found")
		default:
			log.Printf("CreateBooking error for guest %d: %v", guestID, err)
			utils.JSONError(c, http.StatusInternalServerError, "could not create booking")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// MyBookings (GET /api/bookings) backs the guest dashboard.
func (ctrl *BookingController) MyBookings(c *gin.Context) {
	guestID := CurrentUserID(c)

	bookings, err := ctrl.BookingSvc.GetForGuest(guestID)
	if err != nil {
		log.Printf("MyBookings error for guest %d: %v", guestID, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load your bookings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// BookingDetails (GET /api/bookings/:id)
func (ctrl *BookingController) BookingDetails(c *gin.Context) {
	guestID := CurrentUserID(c)
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := ctrl.BookingSvc.GetDetails(guestID, id)
	if err != nil {
		if err.Error() == "booking_not_found" {
			utils.JSONNotFound(c, "booking not found")
			return
		}
		log.Printf("BookingDetails error for guest %d booking %d: %v", guestID, id, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load booking")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, booking)
}
