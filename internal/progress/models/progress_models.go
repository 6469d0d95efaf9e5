package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/architect/medquiz/internal/adaptive"
)

// CategoryMap stores per-category progress as a JSON column
type CategoryMap map[string]adaptive.CategoryProgress

// Scan implements sql.Scanner interface
func (m *CategoryMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Value implements driver.Valuer interface
func (m CategoryMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// TrackerMap stores window trackers as a JSON column
type TrackerMap map[string]adaptive.WindowTracker

// Scan implements sql.Scanner interface
func (m *TrackerMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Value implements driver.Valuer interface
func (m TrackerMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// StringList stores a list of strings as a JSON column
type StringList []string

// Scan implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Value implements driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
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

// ProgressRecord is the durable form of a user's adaptive.UserProgress.
// The whole aggregate is loaded and saved as a unit; the service layer
// serializes writes per user.
type ProgressRecord struct {
	ID                          uint        `gorm:"primaryKey" json:"id"`
	UserID                      string      `gorm:"size:36;unique;not null" json:"user_id"`
	CategoryProgress            CategoryMap `gorm:"type:json" json:"category_progress"`
	SubcategoryTracking         TrackerMap  `gorm:"type:json" json:"subcategory_tracking"`
	TotalQuestionsAnswered      int         `gorm:"default:0" json:"total_questions_answered"`
	TotalCorrect                int         `gorm:"default:0" json:"total_correct"`
	CurrentStreak               int         `gorm:"default:0" json:"current_streak"`
	HighestStreak               int         `gorm:"default:0" json:"highest_streak"`
	TotalTimeSpent              int         `gorm:"default:0" json:"total_time_spent"` // seconds
	QualifyingSessionsCompleted int         `gorm:"default:0" json:"qualifying_sessions_completed"`
	FullBankUnlocked            bool        `gorm:"default:false" json:"full_bank_unlocked"`
	LastActivity                time.Time   `json:"last_activity"`
	UpdatedAt                   time.Time   `json:"updated_at"`
}

// ToProgress converts the stored row into the engine's aggregate.
func (r *ProgressRecord) ToProgress() adaptive.UserProgress {
	p := adaptive.NewUserProgress()
	for k, v := range r.CategoryProgress {
		p.CategoryProgress[k] = v
	}
	for k, v := range r.SubcategoryTracking {
		p.Trackers[k] = v
	}
	p.TotalQuestionsAnswered = r.TotalQuestionsAnswered
	p.TotalCorrect = r.TotalCorrect
	p.CurrentStreak = r.CurrentStreak
	p.HighestStreak = r.HighestStreak
	p.TotalTimeSpent = r.TotalTimeSpent
	p.QualifyingSessionsCompleted = r.QualifyingSessionsCompleted
	p.FullBankUnlocked = r.FullBankUnlocked
	p.LastActivity = r.LastActivity
	return p
}

// FromProgress writes the engine's aggregate back onto the row.
func (r *ProgressRecord) FromProgress(p adaptive.UserProgress) {
	r.CategoryProgress = CategoryMap(p.CategoryProgress)
	r.SubcategoryTracking = TrackerMap(p.Trackers)
	r.TotalQuestionsAnswered = p.TotalQuestionsAnswered
	r.TotalCorrect = p.TotalCorrect
	r.CurrentStreak = p.CurrentStreak
	r.HighestStreak = p.HighestStreak
	r.TotalTimeSpent = p.TotalTimeSpent
	r.QualifyingSessionsCompleted = p.QualifyingSessionsCompleted
	r.FullBankUnlocked = p.FullBankUnlocked
	r.LastActivity = p.LastActivity
}

// StudySession aggregates one day of studying for a user
type StudySession struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	UserID            string     `gorm:"size:36;not null;index;uniqueIndex:uq_session_user_date" json:"user_id"`
	Date              string     `gorm:"not null;uniqueIndex:uq_session_user_date" json:"date"` // YYYY-MM-DD
	QuestionsAnswered int        `gorm:"default:0" json:"questions_answered"`
	CorrectAnswers    int        `gorm:"default:0" json:"correct_answers"`
	TimeSpent         int        `gorm:"default:0" json:"time_spent"` // seconds
	CategoriesStudied StringList `gorm:"type:json" json:"categories_studied"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// === RESPONSE TYPES ===

// CategoryPerformance is one row of the per-category analytics breakdown
type CategoryPerformance struct {
	TotalAnswered     int     `json:"total_answered"`
	Correct           int     `json:"correct"`
	Accuracy          float64 `json:"accuracy"` // percentage
	CurrentDifficulty string  `json:"current_difficulty"`
}

// UserAnalytics is the top-level analytics response
type UserAnalytics struct {
	TotalQuestions         int                            `json:"total_questions"`
	CorrectRate            float64                        `json:"correct_rate"`
	AverageTimePerQuestion float64                        `json:"average_time_per_question"`
	StudyDays              int                            `json:"study_days"`
	CurrentStreak          int                            `json:"current_streak"`
	HighestStreak          int                            `json:"highest_streak"`
	CategoryPerformance    map[string]CategoryPerformance `json:"category_performance"`
}

// SubcategoryStats is one row of the subcategory analytics breakdown
type SubcategoryStats struct {
	Category      string  `json:"category"`
	Subcategory   string  `json:"sub_category"`
	TotalAnswered int     `json:"total_answered"`
	TotalCorrect  int     `json:"total_correct"`
	Accuracy      float64 `json:"accuracy"` // percentage
}

// SessionSummary is returned when a study session is finished
type SessionSummary struct {
	Date                  string   `json:"date"`
	QuestionsAnswered     int      `json:"questions_answered"`
	CorrectAnswers        int      `json:"correct_answers"`
	Accuracy              float64  `json:"accuracy"` // percentage
	TimeSpent             int      `json:"time_spent"`
	CategoriesStudied     []string `json:"categories_studied"`
	CurrentStreak         int      `json:"current_streak"`
	TotalQuestionsAllTime int      `json:"total_questions_all_time"`
}
