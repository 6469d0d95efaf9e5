package repository

import (
	"time"

	"github.com/architect/medquiz/internal/common/database"
	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/quiz/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PoolFilter narrows the candidate pool handed to the selector.
type PoolFilter struct {
	Category     string
	Difficulty   int    // 0 means any
	Source       string // empty means any
	MaxYear      int    // 0 means any
	IncludeUsers bool   // include user-authored questions
}

// GetQuestion retrieves a single question by ID
func GetQuestion(questionID string) (*models.Question, error) {
	var question models.Question
	result := database.DB.Where("id = ? AND quarantined = ?", questionID, false).First(&question)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("question")
		}
		return nil, errors.Internal("failed to fetch question", result.Error.Error())
	}
	return &question, nil
}

// FetchPool retrieves all unquarantined questions matching the filter.
// The selector works over this slice in memory, so the pool query stays
// deliberately broad.
func FetchPool(filter PoolFilter) ([]*models.Question, error) {
	query := database.DB.Where("quarantined = ?", false)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Difficulty > 0 {
		query = query.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.Source != "" {
		query = query.Where("source = ?", filter.Source)
	}
	if filter.MaxYear > 0 {
		query = query.Where("year <= ?", filter.MaxYear)
	}
	if !filter.IncludeUsers {
		query = query.Where("user_id = ? OR user_id IS NULL", "")
	}

	var questions []*models.Question
	result := query.Find(&questions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch question pool", result.Error.Error())
	}
	return questions, nil
}

// ListQuestions retrieves paginated questions with filters
func ListQuestions(category string, difficulty int, limit, offset int) ([]*models.Question, int64, error) {
	query := database.DB.Model(&models.Question{}).Where("quarantined = ?", false)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty > 0 {
		query = query.Where("difficulty = ?", difficulty)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Internal("failed to count questions", err.Error())
	}

	var questions []*models.Question
	if err := query.Limit(limit).Offset(offset).Find(&questions).Error; err != nil {
		return nil, 0, errors.Internal("failed to fetch questions", err.Error())
	}
	return questions, total, nil
}

// CreateQuestion inserts a new question, assigning an id when absent
func CreateQuestion(question *models.Question) (string, error) {
	if question.ID == "" {
		question.ID = uuid.NewString()
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now().UTC()
	}
	result := database.DB.Create(question)
	if result.Error != nil {
		return "", errors.Internal("failed to create question", result.Error.Error())
	}
	return question.ID, nil
}

// CreateQuestions bulk-inserts a batch, used by imports and AI generation
func CreateQuestions(questions []*models.Question) (int, error) {
	created := 0
	for _, q := range questions {
		if _, err := CreateQuestion(q); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// GetQuestionsByIDs retrieves a set of questions preserving no order
func GetQuestionsByIDs(ids []string) ([]*models.Question, error) {
	var questions []*models.Question
	result := database.DB.Where("id IN ?", ids).Find(&questions)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch questions", result.Error.Error())
	}
	return questions, nil
}

// CountByCategory returns how many active questions exist per category
func CountByCategory() (map[string]int64, error) {
	type row struct {
		Category string
		Count    int64
	}
	var rows []row
	result := database.DB.Model(&models.Question{}).
		Select("category, count(*) as count").
		Where("quarantined = ?", false).
		Group("category").
		Scan(&rows)
	if result.Error != nil {
		return nil, errors.Internal("failed to count questions", result.Error.Error())
	}
	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Category] = r.Count
	}
	return counts, nil
}

// SaveAnswerRecord appends one answer to the user's history
func SaveAnswerRecord(record *models.AnswerRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}
	result := database.DB.Create(record)
	if result.Error != nil {
		return errors.Internal("failed to save answer", result.Error.Error())
	}
	return nil
}

// GetAnswerHistory retrieves a user's answer history, newest first
func GetAnswerHistory(userID string, limit int) ([]*models.AnswerRecord, error) {
	var records []*models.AnswerRecord
	query := database.DB.Where("user_id = ?", userID).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	result := query.Find(&records)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch answer history", result.Error.Error())
	}
	return records, nil
}
