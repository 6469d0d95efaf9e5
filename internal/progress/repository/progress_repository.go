package repository

import (
	"errors"
	"time"

	"github.com/architect/medquiz/internal/common/database"
	apperrors "github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/progress/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetProgress loads a user's progress record
func GetProgress(userID string) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	err := database.DB.Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("progress not found for user")
		}
		return nil, apperrors.Internal("failed to load progress", err.Error())
	}
	return &record, nil
}

// SaveProgress upserts a user's progress record keyed on user_id
func SaveProgress(record *models.ProgressRecord) error {
	record.UpdatedAt = time.Now()
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(record).Error
	if err != nil {
		return apperrors.Internal("failed to save progress", err.Error())
	}
	return nil
}

// GetStudySession returns the session row for a user on a date, or nil if absent
func GetStudySession(userID, date string) (*models.StudySession, error) {
	var session models.StudySession
	err := database.DB.Where("user_id = ? AND date = ?", userID, date).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal("failed to load study session", err.Error())
	}
	return &session, nil
}

// SaveStudySession upserts the per-day session row
func SaveStudySession(session *models.StudySession) error {
	err := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		UpdateAll: true,
	}).Create(session).Error
	if err != nil {
		return apperrors.Internal("failed to save study session", err.Error())
	}
	return nil
}

// GetStudySessions returns a user's sessions, most recent first
func GetStudySessions(userID string, limit int) ([]models.StudySession, error) {
	var sessions []models.StudySession
	query := database.DB.Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		return nil, apperrors.Internal("failed to load study sessions", err.Error())
	}
	return sessions, nil
}

// CountStudyDays returns how many distinct days the user has studied
func CountStudyDays(userID string) (int64, error) {
	var count int64
	err := database.DB.Model(&models.StudySession{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Internal("failed to count study days", err.Error())
	}
	return count, nil
}
