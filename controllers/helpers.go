// controllers/helpers.go
package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CurrentUserID reads the identity the auth middleware stored in the
// context. Routes behind the middleware always have it; elsewhere it is 0.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok2 := v.(uint); ok2 {
			return id
		}
	}
	return 0
}

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func isValidationError(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "validation:")
}
