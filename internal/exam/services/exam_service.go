package services

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/exam/models"
	"github.com/architect/medquiz/internal/exam/repository"
	progressservices "github.com/architect/medquiz/internal/progress/services"
	quizmodels "github.com/architect/medquiz/internal/quiz/models"
	quizrepo "github.com/architect/medquiz/internal/quiz/repository"
)

// StartExam opens a new exam session. Questions are drawn up front and
// option order is frozen so the attempt is stable across requests.
// Qualifying sessions always draw from the UNE priority bank and must be
// at least fifty questions; other sessions draw from whatever bank the
// user has unlocked.
func StartExam(userID string, req models.StartExamRequest) (*models.ExamSession, error) {
	progress, err := progressservices.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	filter := quizrepo.PoolFilter{Category: req.Category}
	if req.Qualifying {
		if req.QuestionCount < models.QualifyingMinQuestions {
			return nil, errors.Validation("invalid exam request", fmt.Sprintf("qualifying sessions need at least %d questions", models.QualifyingMinQuestions))
		}
		filter.Source = quizmodels.SourceUNEPriority
	} else if !progress.FullBankUnlocked {
		filter.Source = quizmodels.SourceUNEPriority
	}

	pool, err := quizrepo.FetchPool(filter)
	if err != nil {
		return nil, err
	}
	if len(pool) < req.QuestionCount {
		return nil, errors.Unprocessable("not enough questions in the bank", fmt.Sprintf("requested %d, only %d available", req.QuestionCount, len(pool)))
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	picked := pool[:req.QuestionCount]

	session := &models.ExamSession{
		UserID:           userID,
		Category:         req.Category,
		QuestionIDs:      make(models.StringList, 0, len(picked)),
		OptionOrders:     make(models.IndexMap, len(picked)),
		CorrectPositions: make(models.IntMap, len(picked)),
		Answers:          models.IntMap{},
		Qualifying:       req.Qualifying,
		TimeLimit:        req.TimeLimit,
		Status:           models.StatusInProgress,
		StartedAt:        time.Now().UTC(),
	}
	for _, question := range picked {
		order := rng.Perm(len(question.Options))
		correct := question.CorrectAnswer
		for position, original := range order {
			if original == question.CorrectAnswer {
				correct = position
			}
		}
		session.QuestionIDs = append(session.QuestionIDs, question.ID)
		session.OptionOrders[question.ID] = order
		session.CorrectPositions[question.ID] = correct
	}

	if err := repository.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetExamQuestions returns a session's questions in order, options frozen
// and without the answer key
func GetExamQuestions(sessionID, userID string) ([]models.ExamQuestion, error) {
	session, err := repository.GetSession(sessionID, userID)
	if err != nil {
		return nil, err
	}

	questions, err := questionsInOrder(session)
	if err != nil {
		return nil, err
	}

	result := make([]models.ExamQuestion, 0, len(questions))
	for _, q := range questions {
		result = append(result, models.ExamQuestion{
			ID:          q.ID,
			Question:    q.Question,
			Options:     session.FrozenOptions(q),
			Category:    q.Category,
			Subcategory: q.Subcategory,
		})
	}
	return result, nil
}

// SubmitExamAnswer records one answer inside an open session
func SubmitExamAnswer(sessionID, userID string, req models.SubmitExamAnswerRequest) error {
	session, err := repository.GetSession(sessionID, userID)
	if err != nil {
		return err
	}
	if session.Status != models.StatusInProgress {
		return errors.Conflict("exam session is no longer open")
	}
	if timedOut(session) {
		return errors.Conflict("exam time limit exceeded")
	}
	if _, ok := session.CorrectPositions[req.QuestionID]; !ok {
		return errors.Validation("invalid answer", "question is not part of this exam session")
	}

	if session.Answers == nil {
		session.Answers = models.IntMap{}
	}
	session.Answers[req.QuestionID] = req.SelectedAnswer
	return repository.UpdateSession(session)
}

// CompleteExam grades and closes a session. A passed qualifying session
// counts toward unlocking the full question bank; the third pass unlocks
// it.
func CompleteExam(sessionID, userID string) (*models.ExamResult, error) {
	session, err := repository.GetSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.StatusInProgress {
		return nil, errors.Conflict("exam session is already completed")
	}

	correct := 0
	for questionID, expected := range session.CorrectPositions {
		if selected, ok := session.Answers[questionID]; ok && selected == expected {
			correct++
		}
	}
	total := len(session.QuestionIDs)
	score := 0.0
	if total > 0 {
		score = math.Round(float64(correct)/float64(total)*1000) / 10
	}

	now := time.Now().UTC()
	session.Status = models.StatusCompleted
	session.Score = score
	session.CorrectCount = correct
	session.CompletedAt = &now
	if err := repository.UpdateSession(session); err != nil {
		return nil, err
	}

	result := &models.ExamResult{
		SessionID:      session.ID,
		TotalQuestions: total,
		Answered:       len(session.Answers),
		CorrectCount:   correct,
		Score:          score,
		Qualifying:     session.Qualifying,
	}

	progress, err := progressservices.LoadProgress(userID)
	if err != nil {
		return nil, err
	}
	if session.Qualifying && total >= models.QualifyingMinQuestions && score >= models.QualifyingPassPercent {
		result.QualifyingPassed = true
		progress.QualifyingSessionsCompleted++
		if progress.QualifyingSessionsCompleted >= models.QualifyingSessionsNeeded {
			progress.FullBankUnlocked = true
		}
		if err := progressservices.SaveProgress(userID, progress); err != nil {
			return nil, err
		}
	}
	result.QualifyingCompleted = progress.QualifyingSessionsCompleted
	result.FullBankUnlocked = progress.FullBankUnlocked

	return result, nil
}

// ReviewExam returns the graded questions of a completed session
func ReviewExam(sessionID, userID string) ([]models.ReviewEntry, error) {
	session, err := repository.GetSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.StatusCompleted {
		return nil, errors.Conflict("exam session is not completed yet")
	}

	questions, err := questionsInOrder(session)
	if err != nil {
		return nil, err
	}

	review := make([]models.ReviewEntry, 0, len(questions))
	for _, q := range questions {
		entry := models.ReviewEntry{
			QuestionID:     q.ID,
			Question:       q.Question,
			Options:        session.FrozenOptions(q),
			SelectedAnswer: -1,
			CorrectAnswer:  session.CorrectPositions[q.ID],
			Explanation:    q.Explanation,
		}
		if selected, ok := session.Answers[q.ID]; ok {
			entry.SelectedAnswer = selected
			entry.IsCorrect = selected == entry.CorrectAnswer
		}
		review = append(review, entry)
	}
	return review, nil
}

// GetUnlockStatus reports progress toward the full question bank
func GetUnlockStatus(userID string) (*models.UnlockStatus, error) {
	progress, err := progressservices.LoadProgress(userID)
	if err != nil {
		return nil, err
	}
	return &models.UnlockStatus{
		FullBankUnlocked:    progress.FullBankUnlocked,
		QualifyingCompleted: progress.QualifyingSessionsCompleted,
		QualifyingNeeded:    models.QualifyingSessionsNeeded,
	}, nil
}

// ListExams returns a user's exam history, newest first
func ListExams(userID string, limit int) ([]models.ExamSession, error) {
	return repository.ListSessions(userID, limit)
}

func questionsInOrder(session *models.ExamSession) ([]*quizmodels.Question, error) {
	questions, err := quizrepo.GetQuestionsByIDs(session.QuestionIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*quizmodels.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	ordered := make([]*quizmodels.Question, 0, len(session.QuestionIDs))
	for _, id := range session.QuestionIDs {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}
	return ordered, nil
}

func timedOut(session *models.ExamSession) bool {
	if session.TimeLimit <= 0 {
		return false
	}
	deadline := session.StartedAt.Add(time.Duration(session.TimeLimit) * time.Second)
	return time.Now().UTC().After(deadline)
}
