package handlers

import (
	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/middleware"
	"github.com/architect/medquiz/internal/users/models"
	"github.com/architect/medquiz/internal/users/services"
	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authentication required"))
		return "", false
	}
	return userID.(string), true
}

// GetProfile returns the user's profile
func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := services.GetProfile(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, user)
}

// UpdateProfile applies profile edits
func UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	user, err := services.UpdateProfile(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, user)
}
