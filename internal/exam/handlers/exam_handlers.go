package handlers

import (
	"strconv"

	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/middleware"
	"github.com/architect/medquiz/internal/exam/models"
	"github.com/architect/medquiz/internal/exam/services"
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

// StartExam opens a new exam session for the user
func StartExam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.StartExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	session, err := services.StartExam(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, session)
}

// GetExamQuestions returns the session's questions without the answer key
func GetExamQuestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	questions, err := services.GetExamQuestions(c.Param("id"), userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"questions": questions,
		"total":     len(questions),
	})
}

// SubmitExamAnswer records one answer inside an open session
func SubmitExamAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.SubmitExamAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if err := services.SubmitExamAnswer(c.Param("id"), userID, req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true})
}

// CompleteExam grades and closes a session
func CompleteExam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := services.CompleteExam(c.Param("id"), userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, result)
}

// ReviewExam returns the graded questions of a completed session
func ReviewExam(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	review, err := services.ReviewExam(c.Param("id"), userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"review": review,
		"total":  len(review),
	})
}

// ListExams lists the user's exam history
func ListExams(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := 20
	if limitStr := c.DefaultQuery("limit", "20"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	sessions, err := services.ListExams(userID, limit)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{
		"sessions": sessions,
		"total":    len(sessions),
	})
}

// GetUnlockStatus reports progress toward the full question bank
func GetUnlockStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := services.GetUnlockStatus(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, status)
}
