package handlers

import (
	"strconv"

	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/middleware"
	"github.com/architect/medquiz/internal/quiz/models"
	"github.com/architect/medquiz/internal/quiz/services"
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

func queryInt(c *gin.Context, name string, fallback, min, max int) int {
	if raw := c.Query(name); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= min && parsed <= max {
			return parsed
		}
	}
	return fallback
}

// ListQuestions retrieves paginated catalog questions
func ListQuestions(c *gin.Context) {
	category := c.Query("category")
	difficulty := queryInt(c, "difficulty", 0, 1, 4)
	limit := queryInt(c, "limit", 20, 1, 100)
	offset := queryInt(c, "offset", 0, 0, 1<<30)

	resp, err := services.ListQuestions(category, difficulty, limit, offset)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, resp)
}

// GetQuestion retrieves a single question by ID
func GetQuestion(c *gin.Context) {
	question, err := services.GetQuestion(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, question)
}

// GetAdaptiveQuestions returns the user's next practice batch at their
// current difficulty per category
func GetAdaptiveQuestions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	category := c.Query("category")
	count := queryInt(c, "count", 10, 1, 50)

	resp, err := services.GetAdaptiveQuestions(userID, category, count)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, resp)
}

// SubmitAnswer records one answered question and reports the resulting
// progression state
func SubmitAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	resp, err := services.SubmitAnswer(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, resp)
}

// CreateQuestion adds a user-authored question to the catalog
func CreateQuestion(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	question, err := services.CreateQuestion(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, question)
}

// GetCategories returns catalog categories with question counts
func GetCategories(c *gin.Context) {
	counts, err := services.GetCategories()
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"categories": counts})
}

// GetDailyLimit reports the user's remaining question allowance today
func GetDailyLimit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	status, err := userservices.CheckDailyQuestionLimit(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, status)
}
