package handlers

import (
	"strconv"

	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/middleware"
	"github.com/architect/medquiz/internal/progress/services"
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

// GetProgress returns the full adaptive progress aggregate for the user
func GetProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	progress, err := services.LoadProgress(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, progress)
}

// GetAnalytics returns overall and per-category performance statistics
func GetAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	analytics, err := services.GetAnalytics(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, analytics)
}

// GetSubcategoryAnalytics returns accuracy broken down by subcategory,
// weakest first
func GetSubcategoryAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := services.GetSubcategoryAnalytics(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"subcategories": stats,
		"total":         len(stats),
	})
}

// GetStudySessions lists the user's recent daily study sessions
func GetStudySessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 30
	if limitStr := c.DefaultQuery("limit", "30"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 365 {
			limit = parsed
		}
	}

	sessions, err := services.GetStudySessions(userID, limit)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"sessions": sessions,
		"total":    len(sessions),
	})
}

// FinishSession closes out today's study session and returns a summary
func FinishSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	summary, err := services.FinishSession(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, summary)
}
