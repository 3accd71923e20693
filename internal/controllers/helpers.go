package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// userIDFromContext reads the authenticated user id set by the auth
// middleware. Writes a 401 response when it is absent.
func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "No authenticated user in request context",
		})
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Authentication required",
			"error":   "Invalid user id in request context",
		})
		return 0, false
	}
	return userID, true
}

// idParam parses the :id path parameter. Writes a 400 response on failure.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}
