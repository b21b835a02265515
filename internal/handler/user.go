package handler

import (
	"net/http"

	"github.com/dideey/alx-backend-user-data/internal/middleware"
	"github.com/dideey/alx-backend-user-data/internal/models"
	"github.com/dideey/alx-backend-user-data/internal/util"

	"github.com/gin-gonic/gin"
)

// Status handles GET /api/v1/status, the one API route served without
// credentials.
func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// GetMe returns the identity resolved by the auth middleware.
func GetMe(c *gin.Context) {
	v, ok := c.Get(middleware.CurrentUserKey)
	if !ok {
		util.Message(c, http.StatusForbidden, "Forbidden")
		return
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Message(c, http.StatusForbidden, "Forbidden")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}
