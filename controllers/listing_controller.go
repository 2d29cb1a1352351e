// controllers/listing_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	ListingSvc *services.ListingService
	MapSvc     *services.MapService
}

func NewListingController(listingSvc *services.ListingService, mapSvc *services.MapService) *ListingController {
	return &ListingController{ListingSvc: listingSvc, MapSvc: mapSvc}
}

// filterStateFromQuery maps the browse query params onto a FilterState.
// Absent params keep their defaults.
func filterStateFromQuery(c *gin.Context) services.FilterState {
	f := services.DefaultFilterState()

	f.Location = c.Query("location")
	if raw := c.Query("guests"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.Guests = n
		}
	}
	if raw := c.Query("price_min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.PriceMin = v
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			f.PriceMax = v
		}
	}
	if raw := c.Query("check_in"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.CheckIn = &t
		}
	}
	if raw := c.Query("check_out"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			f.CheckOut = &t
		}
	}

	return f.Normalized()
}

// Browse (GET /api/listings?q=&location=&price_min=&price_max=&guests=&check_in=&check_out=)
// fetches the active feed and applies the in-memory filter engine, echoing
// the active-filter chips alongside the results.
func (ctrl *ListingController) Browse(c *gin.Context) {
	feed, err := ctrl.ListingSvc.GetActiveSummaries()
	if err != nil {
		log.Printf("Browse error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load listings")
		return
	}

	query := c.Query("q")
	filters := filterStateFromQuery(c)
	results := services.FilterListings(feed, query, filters)

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"listings":       results,
		"total":          len(results),
		"active_filters": filters.Chips(),
	})
}

// Detail (GET /api/listings/:id)
func (ctrl *ListingController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	detail, err := ctrl.ListingSvc.GetListingDetail(id)
	if err != nil {
		if err.Error() == "listing_not_found" {
			utils.JSONNotFound(c, "listing not found")
			return
		}
		log.Printf("Detail error for listing %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load listing")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, detail)
}

// Markers (GET /api/listings/markers) supplies the map widget with pin data
// for the current active feed.
func (ctrl *ListingController) Markers(c *gin.Context) {
	feed, err := ctrl.ListingSvc.GetActiveSummaries()
	if err != nil {
		log.Printf("Markers error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load listings")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, ctrl.MapSvc.Markers(feed))
}

// Quote (GET /api/listings/:id/quote?check_in=&check_out=) prices a stay
// before booking: nights and total for the detail-page summary. Missing or
// unparseable dates quote zero nights rather than failing.
func (ctrl *ListingController) Quote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid listing id")
		return
	}

	detail, err := ctrl.ListingSvc.GetListingDetail(id)
	if err != nil {
		if err.Error() == "listing_not_found" {
			utils.JSONNotFound(c, "listing not found")
			return
		}
		log.Printf("Quote error for listing %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load listing")
		return
	}

	var checkIn, checkOut *time.Time
	if t, err := time.Parse("2006-01-02", c.Query("check_in")); err == nil {
		checkIn = &t
	}
	if t, err := time.Parse("2006-01-02", c.Query("check_out")); err == nil {
		checkOut = &t
	}

	nights := utils.Nights(checkIn, checkOut)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"listing_id":      detail.ID,
		"price_per_night": detail.PricePerNight,
		"nights":          nights,
		"total_price":     utils.TotalPrice(detail.PricePerNight, nights),
	})
}
