package services

import (
	"math"
	"time"

	"github.com/architect/medquiz/internal/adaptive"
	apperrors "github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/progress/models"
	"github.com/architect/medquiz/internal/progress/repository"
)

// LoadProgress returns the user's adaptive progress aggregate. A user with
// no stored record gets a fresh aggregate, everyone starts at foundational.
func LoadProgress(userID string) (adaptive.UserProgress, error) {
	record, err := repository.GetProgress(userID)
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Status == 404 {
			return adaptive.NewUserProgress(), nil
		}
		return adaptive.UserProgress{}, err
	}
	return record.ToProgress(), nil
}

// SaveProgress persists the aggregate for a user
func SaveProgress(userID string, progress adaptive.UserProgress) error {
	record := &models.ProgressRecord{UserID: userID}
	if existing, err := repository.GetProgress(userID); err == nil {
		record = existing
	}
	record.FromProgress(progress)
	return repository.SaveProgress(record)
}

// RecordActivity folds one answered question into today's study session
func RecordActivity(userID, category string, correct bool, timeTaken int) error {
	today := time.Now().UTC().Format("2006-01-02")
	session, err := repository.GetStudySession(userID, today)
	if err != nil {
		return err
	}
	if session == nil {
		session = &models.StudySession{
			UserID:            userID,
			Date:              today,
			CategoriesStudied: models.StringList{},
		}
	}
	session.QuestionsAnswered++
	if correct {
		session.CorrectAnswers++
	}
	session.TimeSpent += timeTaken
	if category != "" && !contains(session.CategoriesStudied, category) {
		session.CategoriesStudied = append(session.CategoriesStudied, category)
	}
	return repository.SaveStudySession(session)
}

// GetAnalytics builds the per-user analytics summary
func GetAnalytics(userID string) (*models.UserAnalytics, error) {
	progress, err := LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	studyDays, err := repository.CountStudyDays(userID)
	if err != nil {
		return nil, err
	}

	analytics := &models.UserAnalytics{
		TotalQuestions:      progress.TotalQuestionsAnswered,
		StudyDays:           int(studyDays),
		CurrentStreak:       progress.CurrentStreak,
		HighestStreak:       progress.HighestStreak,
		CategoryPerformance: make(map[string]models.CategoryPerformance),
	}
	if progress.TotalQuestionsAnswered > 0 {
		analytics.CorrectRate = round1(float64(progress.TotalCorrect) / float64(progress.TotalQuestionsAnswered) * 100)
		analytics.AverageTimePerQuestion = round1(float64(progress.TotalTimeSpent) / float64(progress.TotalQuestionsAnswered))
	}

	for category, cp := range progress.CategoryProgress {
		perf := models.CategoryPerformance{
			TotalAnswered:     cp.TotalAnswered,
			Correct:           cp.TotalCorrect,
			CurrentDifficulty: cp.CurrentDifficulty.String(),
		}
		if cp.TotalAnswered > 0 {
			perf.Accuracy = round1(float64(cp.TotalCorrect) / float64(cp.TotalAnswered) * 100)
		}
		analytics.CategoryPerformance[category] = perf
	}

	return analytics, nil
}

// GetStudySessions returns the user's recent daily sessions
func GetStudySessions(userID string, limit int) ([]models.StudySession, error) {
	return repository.GetStudySessions(userID, limit)
}

// FinishSession closes out today's session and returns a summary
func FinishSession(userID string) (*models.SessionSummary, error) {
	today := time.Now().UTC().Format("2006-01-02")
	session, err := repository.GetStudySession(userID, today)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperrors.NotFound("no study session recorded today")
	}

	progress, err := LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	summary := &models.SessionSummary{
		Date:                  session.Date,
		QuestionsAnswered:     session.QuestionsAnswered,
		CorrectAnswers:        session.CorrectAnswers,
		TimeSpent:             session.TimeSpent,
		CategoriesStudied:     session.CategoriesStudied,
		CurrentStreak:         progress.CurrentStreak,
		TotalQuestionsAllTime: progress.TotalQuestionsAnswered,
	}
	if session.QuestionsAnswered > 0 {
		summary.Accuracy = round1(float64(session.CorrectAnswers) / float64(session.QuestionsAnswered) * 100)
	}
	return summary, nil
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
