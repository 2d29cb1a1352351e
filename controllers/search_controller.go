// controllers/search_controller.go
package controllers

import (
	"log"
	"net/http"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"

	"github.com/gin-gonic/gin"
)

// SearchController exposes debounced search sessions: a client opens a
// session, streams field-level edits into it, and polls results. A burst of
// edits triggers one recompute per quiescence window instead of one per
// keystroke.
type SearchController struct {
	SessionSvc *services.SearchSessionService
}

func NewSearchController(svc *services.SearchSessionService) *SearchController {
	return &SearchController{SessionSvc: svc}
}

type SearchUpdatePayload struct {
	Query   string               `json:"query"`
	Filters services.FilterState `json:"filters"`
}

// OpenSession (POST /api/search/sessions)
func (ctrl *SearchController) OpenSession(c *gin.Context) {
	session, err := ctrl.SessionSvc.Open()
	if err != nil {
		log.Printf("OpenSession error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not open search session")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"session_id": session.ID})
}

// UpdateSession (PATCH /api/search/sessions/:id) records one filter edit.
func (ctrl *SearchController) UpdateSession(c *gin.Context) {
	id := c.Param("id")

	var payload SearchUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid search payload")
		return
	}

	if err := ctrl.SessionSvc.Update(id, payload.Query, payload.Filters); err != nil {
		utils.JSONNotFound(c, "search session not found")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// ClearSession (POST /api/search/sessions/:id/clear) resets to defaults.
func (ctrl *SearchController) ClearSession(c *gin.Context) {
	if err := ctrl.SessionSvc.Clear(c.Param("id")); err != nil {
		utils.JSONNotFound(c, "search session not found")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}

// SessionResults (GET /api/search/sessions/:id/results)
func (ctrl *SearchController) SessionResults(c *gin.Context) {
	filters, chips, results, searching, err := ctrl.SessionSvc.Results(c.Param("id"))
	if err != nil {
		utils.JSONNotFound(c, "search session not found")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"filters":        filters,
		"active_filters": chips,
		"listings":       results,
		"total":          len(results),
		"searching":      searching,
	})
}

// CloseSession (DELETE /api/search/sessions/:id) tears the session down and
// cancels any pending recompute.
func (ctrl *SearchController) CloseSession(c *gin.Context) {
	if err := ctrl.SessionSvc.Close(c.Param("id")); err != nil {
		utils.JSONNotFound(c, "search session not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"closed": true})
}
