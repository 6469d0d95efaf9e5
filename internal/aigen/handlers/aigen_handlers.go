package handlers

import (
	"github.com/architect/medquiz/internal/aigen/models"
	"github.com/architect/medquiz/internal/aigen/services"
	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/middleware"
	userservices "github.com/architect/medquiz/internal/users/services"
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

// GenerateQuestions creates AI-generated practice questions for the user
func GenerateQuestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	resp, err := services.GenerateQuestions(c.Request.Context(), userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, resp)
}

// GetAIUsage reports the user's remaining daily generation allowance
func GetAIUsage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	used, max, err := userservices.AIUsage(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, models.AIUsageResponse{
		Used:      used,
		MaxDaily:  max,
		Remaining: max - used,
	})
}
