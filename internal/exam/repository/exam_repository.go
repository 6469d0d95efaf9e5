package repository

import (
	"errors"

	"github.com/architect/medquiz/internal/common/database"
	apperrors "github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/exam/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSession stores a new exam session
func CreateSession(session *models.ExamSession) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}
	if err := database.DB.Create(session).Error; err != nil {
		return apperrors.Internal("failed to create exam session", err.Error())
	}
	return nil
}

// GetSession loads an exam session owned by the user
func GetSession(sessionID, userID string) (*models.ExamSession, error) {
	var session models.ExamSession
	err := database.DB.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("exam session")
		}
		return nil, apperrors.Internal("failed to load exam session", err.Error())
	}
	return &session, nil
}

// UpdateSession saves changes to an exam session
func UpdateSession(session *models.ExamSession) error {
	if err := database.DB.Save(session).Error; err != nil {
		return apperrors.Internal("failed to update exam session", err.Error())
	}
	return nil
}

// ListSessions returns a user's exam sessions, newest first
func ListSessions(userID string, limit int) ([]models.ExamSession, error) {
	var sessions []models.ExamSession
	query := database.DB.Where("user_id = ?", userID).Order("started_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&sessions).Error; err != nil {
		return nil, apperrors.Internal("failed to list exam sessions", err.Error())
	}
	return sessions, nil
}
