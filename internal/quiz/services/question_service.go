package services

import (
	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/validation"
	"github.com/architect/medquiz/internal/quiz/models"
	"github.com/architect/medquiz/internal/quiz/repository"
)

// GetQuestion retrieves a single question by ID
func GetQuestion(questionID string) (*models.Question, error) {
	return repository.GetQuestion(questionID)
}

// ListQuestions retrieves paginated questions with optional filters
func ListQuestions(category string, difficulty, limit, offset int) (*models.ListQuestionsResponse, error) {
	questions, total, err := repository.ListQuestions(category, difficulty, limit, offset)
	if err != nil {
		return nil, err
	}
	return &models.ListQuestionsResponse{
		Questions: questions,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

// CreateQuestion adds a user-authored question to the catalog
func CreateQuestion(userID string, req models.CreateQuestionRequest) (*models.Question, error) {
	if err := validation.ValidateMCQ(req.Question, req.Options, req.CorrectAnswer); err != nil {
		return nil, errors.Validation("invalid question", err.Error())
	}

	year := req.Year
	if year == 0 {
		year = 1
	}
	question := &models.Question{
		Question:      req.Question,
		Options:       models.OptionList(req.Options),
		CorrectAnswer: req.CorrectAnswer,
		Explanation:   req.Explanation,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		Year:          year,
		Difficulty:    req.Difficulty,
		Source:        models.SourceImported,
		UserID:        userID,
	}
	if _, err := repository.CreateQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetCategories returns the catalog's categories with question counts
func GetCategories() (map[string]int64, error) {
	return repository.CountByCategory()
}
