package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	quizmodels "github.com/architect/medquiz/internal/quiz/models"
)

// Exam session states
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
)

// Qualifying session thresholds. Three passed qualifying sessions unlock
// the full question bank.
const (
	QualifyingMinQuestions   = 50
	QualifyingPassPercent    = 85.0
	QualifyingSessionsNeeded = 3
)

// StringList stores question IDs as a JSON column
type StringList []string

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// IntMap stores per-question integers (answers, correct positions) as JSON
type IntMap map[string]int

// Scan implements sql.Scanner interface
func (m *IntMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Value implements driver.Valuer interface
func (m IntMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// IndexMap stores per-question option orderings as JSON. Each entry maps
// the shuffled option positions back to stored indices.
type IndexMap map[string][]int

// Scan implements sql.Scanner interface
func (m *IndexMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Value implements driver.Valuer interface
func (m IndexMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func scanJSON(value interface{}, dest interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, dest)
}

// ExamSession is a timed exam attempt. Option order is frozen at start:
// CorrectPositions holds each question's correct index in its shuffled
// order, and OptionOrders the shuffled-to-stored mapping, so grading and
// review reconstruct exactly what the student saw.
type ExamSession struct {
	ID               string     `gorm:"primaryKey;size:36" json:"id"`
	UserID           string     `gorm:"size:36;not null;index" json:"user_id"`
	Category         string     `json:"category,omitempty"` // empty means mixed
	QuestionIDs      StringList `gorm:"type:json;not null" json:"question_ids"`
	OptionOrders     IndexMap   `gorm:"type:json" json:"-"`
	CorrectPositions IntMap     `gorm:"type:json" json:"-"`
	Answers          IntMap     `gorm:"type:json" json:"answers"`
	Qualifying       bool       `gorm:"default:false" json:"qualifying"`
	TimeLimit        int        `json:"time_limit"` // seconds, 0 means untimed
	Status           string     `gorm:"default:in_progress;index" json:"status"`
	Score            float64    `json:"score"` // percentage, set on completion
	CorrectCount     int        `json:"correct_count"`
	StartedAt        time.Time  `json:"started_at"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// === REQUEST/RESPONSE TYPES ===

// StartExamRequest begins a new exam session
type StartExamRequest struct {
	Category      string `json:"category"`
	QuestionCount int    `json:"question_count" binding:"required,gte=1,lte=200"`
	TimeLimit     int    `json:"time_limit" binding:"omitempty,gte=60"` // seconds
	Qualifying    bool   `json:"qualifying"`
}

// ExamQuestion is one question as shown inside an exam, options already
// in the session's frozen order and without the answer key
type ExamQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
}

// SubmitExamAnswerRequest records one answer inside an exam session
type SubmitExamAnswerRequest struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedAnswer int    `json:"selected_answer" binding:"gte=0"`
}

// ExamResult is returned when a session is completed
type ExamResult struct {
	SessionID           string  `json:"session_id"`
	TotalQuestions      int     `json:"total_questions"`
	Answered            int     `json:"answered"`
	CorrectCount        int     `json:"correct_count"`
	Score               float64 `json:"score"` // percentage
	Qualifying          bool    `json:"qualifying"`
	QualifyingPassed    bool    `json:"qualifying_passed"`
	QualifyingCompleted int     `json:"qualifying_completed"`
	FullBankUnlocked    bool    `json:"full_bank_unlocked"`
}

// UnlockStatus reports progress toward the full question bank
type UnlockStatus struct {
	FullBankUnlocked    bool `json:"full_bank_unlocked"`
	QualifyingCompleted int  `json:"qualifying_completed"`
	QualifyingNeeded    int  `json:"qualifying_needed"`
}

// ReviewEntry is one graded question in a completed session's review
type ReviewEntry struct {
	QuestionID     string   `json:"question_id"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	SelectedAnswer int      `json:"selected_answer"` // -1 when unanswered
	CorrectAnswer  int      `json:"correct_answer"`
	IsCorrect      bool     `json:"is_correct"`
	Explanation    string   `json:"explanation"`
}

// FrozenOptions reapplies the session's stored option order to a question
func (s *ExamSession) FrozenOptions(q *quizmodels.Question) []string {
	order, ok := s.OptionOrders[q.ID]
	if !ok {
		return q.Options
	}
	options := make([]string, len(order))
	for position, original := range order {
		if original >= 0 && original < len(q.Options) {
			options[position] = q.Options[original]
		}
	}
	return options
}
