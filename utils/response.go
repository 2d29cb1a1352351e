package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONNotFound is kept separate so a missing record is never reported the
// same way as a transient store failure.
func JSONNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message, "not_found": true})
}
