// controllers/host_controller.go
package controllers

import (
	"log"
	"net/http"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"

	"github.com/gin-gonic/gin"
)

// HostController serves the host dashboard: the signed-in user's own
// listings and their CRUD. Ownership is enforced in the service layer;
// these handlers only carry the session identity through.
type HostController struct {
	ListingSvc *services.ListingService
}

func NewHostController(svc *services.ListingService) *HostController {
	return &HostController{ListingSvc: svc}
}

type SetActivePayload struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// MyListings (GET /api/host/listings)
func (ctrl *HostController) MyListings(c *gin.Context) {
	hostID := CurrentUserID(c)

	listings, err := ctrl.ListingSvc.GetByHost(hostID)
	if err != nil {
		log.Printf("MyListings error for host %d: %v", hostID, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load your listings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, listings)
}

// CreateListing (POST /api/host/listings)
func (ctrl *HostController) CreateListing(c *gin.Context) {
	hostID := CurrentUserID(c)

	var input services.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing payload")
		return
	}

	listing, err := ctrl.ListingSvc.Create(hostID, input)
	if err != nil {
		if isValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("CreateListing error for host %d: %v", hostID, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not create listing")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, listing)
}

// UpdateListing (PUT /api/host/listings/:id)
func (ctrl *HostController) UpdateListing(c *gin.Context) {
	hostID := CurrentUserID(c)
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	var input services.ListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing payload")
		return
	}

	listing, err := ctrl.ListingSvc.Update(hostID, id, input)
	if err != nil {
		switch {
		case isValidationError(err):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case err.Error() == "listing_not_found":
			utils.JSONNotFound(c, "listing not found")
		default:
			log.Printf("UpdateListing error for host %d listing %d: %v", hostID, id, err)
			utils.JSONError(c, http.StatusInternalServerError, "could not update listing")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, listing)
}

// SetActive (PATCH /api/host/listings/:id/active) toggles the soft
// deactivation flag.
func (ctrl *HostController) SetActive(c *gin.Context) {
	hostID := CurrentUserID(c)
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	var payload SetActivePayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsActive == nil {
		utils.JSONError(c, http.StatusBadRequest, "is_active is required")
		return
	}

	listing, err := ctrl.ListingSvc.SetActive(hostID, id, *payload.IsActive)
	if err != nil {
		if err.Error() == "listing_not_found" {
			utils.JSONNotFound(c, "listing not found")
			return
		}
		log.Printf("SetActive error for host %d listing %d: %v", hostID, id, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not update listing")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, listing)
}

// DeleteListing (DELETE /api/host/listings/:id)
func (ctrl *HostController) DeleteListing(c *gin.Context) {
	hostID := CurrentUserID(c)
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	if err := ctrl.ListingSvc.Delete(hostID, id); err != nil {
		if err.Error() == "listing_not_found" {
			utils.JSONNotFound(c, "listing not found")
			return
		}
		log.Printf("DeleteListing error for host %d listing %d: %v", hostID, id, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not delete listing")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
