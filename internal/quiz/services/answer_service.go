package services

import (
	"time"

	"github.com/architect/medquiz/internal/adaptive"
	"github.com/architect/medquiz/internal/common/errors"
	progressservices "github.com/architect/medquiz/internal/progress/services"
	"github.com/architect/medquiz/internal/quiz/models"
	"github.com/architect/medquiz/internal/quiz/repository"
	userservices "github.com/architect/medquiz/internal/users/services"
)

// SubmitAnswer records one answered question: the daily limit is charged,
// the adaptive engine updates the user's progression, and the answer joins
// the history and today's study session.
func SubmitAnswer(userID string, req models.SubmitAnswerRequest) (*models.SubmitAnswerResponse, error) {
	status, err := userservices.CheckDailyQuestionLimit(userID)
	if err != nil {
		return nil, err
	}
	if !status.CanContinue {
		return nil, errors.Forbidden("daily question limit reached")
	}

	question, err := repository.GetQuestion(req.QuestionID)
	if err != nil {
		return nil, err
	}

	progress, err := progressservices.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	answer := adaptive.Answer{
		QuestionID: req.QuestionID,
		Correct:    req.IsCorrect,
		TimeTaken:  req.TimeTaken,
		Timestamp:  time.Now().UTC(),
	}
	engineQuestion := adaptive.Question{
		ID:          question.ID,
		Category:    question.Category,
		Subcategory: question.Subcategory,
		Difficulty:  storedDifficultyToLevel(question.Difficulty),
	}

	updated, change, err := adaptive.ProcessAnswer(progress, answer, engineQuestion)
	if err != nil {
		return nil, err
	}

	if err := progressservices.SaveProgress(userID, updated); err != nil {
		return nil, err
	}
	if err := repository.SaveAnswerRecord(&models.AnswerRecord{
		UserID:         userID,
		QuestionID:     req.QuestionID,
		SelectedAnswer: req.SelectedAnswer,
		IsCorrect:      req.IsCorrect,
		TimeTaken:      req.TimeTaken,
		Timestamp:      answer.Timestamp,
	}); err != nil {
		return nil, err
	}
	if err := progressservices.RecordActivity(userID, question.Category, req.IsCorrect, req.TimeTaken); err != nil {
		return nil, err
	}
	if err := userservices.RecordQuestionUsage(userID, 1); err != nil {
		return nil, err
	}

	remaining := status.QuestionsRemaining
	if remaining > 0 {
		remaining--
	}

	resp := &models.SubmitAnswerResponse{
		Success:            true,
		CurrentDifficulty:  updated.CategoryProgress[question.Category].CurrentDifficulty.String(),
		CurrentStreak:      updated.CurrentStreak,
		QuestionsRemaining: remaining,
		DailyLimit:         status.DailyLimit,
	}
	if change != nil {
		resp.LevelChanged = true
		if change.Up {
			resp.LevelDirection = "up"
		} else {
			resp.LevelDirection = "down"
		}
	}
	return resp, nil
}
