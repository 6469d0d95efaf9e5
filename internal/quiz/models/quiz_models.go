package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Question sources. UNE priority questions are the curated subset served
// until a user unlocks the full bank through qualifying exam sessions.
const (
	SourceImported    = "imported"
	SourceAIGenerated = "ai-generated"
	SourceSample      = "sample"
	SourceUNEPriority = "une_priority"
)

// OptionList stores answer options as a JSON column
type OptionList []string

// Scan implements sql.Scanner interface
func (o *OptionList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, o)
}

// Value implements driver.Valuer interface
func (o OptionList) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Question is a medical MCQ in the catalog. Difficulty is stored 1-4
// (foundational through advanced) to match the imported bank's encoding.
type Question struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	Question      string     `gorm:"type:text;not null" json:"question"`
	Options       OptionList `gorm:"type:json;not null" json:"options"`
	CorrectAnswer int        `gorm:"not null" json:"correct_answer"`
	Explanation   string     `gorm:"type:text" json:"explanation"`
	Category      string     `gorm:"index;not null" json:"category"`
	Subcategory   string     `gorm:"index" json:"subcategory"`
	Year          int        `gorm:"default:1" json:"year"` // study year 1-6
	Difficulty    int        `gorm:"index;not null" json:"difficulty"`
	Source        string     `gorm:"index;default:imported" json:"source"`
	UserID        string     `gorm:"size:36;index" json:"user_id,omitempty"` // empty means global question
	Verified      bool       `gorm:"default:false" json:"verified"`
	Quarantined   bool       `gorm:"default:false" json:"quarantined"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AnswerRecord is one entry in a user's answer history
type AnswerRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"size:36;not null;index" json:"user_id"`
	QuestionID     string    `gorm:"size:36;not null;index" json:"question_id"`
	SelectedAnswer int       `json:"selected_answer"`
	IsCorrect      bool      `json:"is_correct"`
	TimeTaken      int       `json:"time_taken"` // seconds
	Timestamp      time.Time `json:"timestamp"`
}

// === REQUEST/RESPONSE TYPES ===

// SubmitAnswerRequest records one answered question
type SubmitAnswerRequest struct {
	QuestionID     string `json:"question_id" binding:"required"`
	SelectedAnswer int    `json:"selected_answer" binding:"gte=0"`
	IsCorrect      bool   `json:"is_correct"`
	TimeTaken      int    `json:"time_taken" binding:"gte=0"`
}

// SubmitAnswerResponse reports the progression state after an answer
type SubmitAnswerResponse struct {
	Success            bool   `json:"success"`
	CurrentDifficulty  string `json:"current_difficulty"`
	CurrentStreak      int    `json:"current_streak"`
	LevelChanged       bool   `json:"level_changed"`
	LevelDirection     string `json:"level_direction,omitempty"` // "up" or "down"
	QuestionsRemaining int    `json:"questions_remaining"`       // -1 when unlimited
	DailyLimit         int    `json:"daily_limit"`               // -1 when unlimited
}

// QuestionView is a question prepared for delivery: options are shuffled
// and CorrectAnswer points at the shuffled position. OriginalIndices maps
// each shuffled position back to the stored option index so answer
// history stays comparable across deliveries.
type QuestionView struct {
	ID              string   `json:"id"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectAnswer   int      `json:"correct_answer"`
	Explanation     string   `json:"explanation"`
	Category        string   `json:"category"`
	Subcategory     string   `json:"subcategory,omitempty"`
	Difficulty      int      `json:"difficulty"`
	Source          string   `json:"source"`
	OriginalIndices []int    `json:"original_indices"`
}

// AdaptiveQuestionsResponse returns the next batch of practice questions
type AdaptiveQuestionsResponse struct {
	Questions        []QuestionView `json:"questions"`
	Total            int            `json:"total"`
	FullBankUnlocked bool           `json:"full_bank_unlocked"`
}

// ListQuestionsResponse returns paginated questions
type ListQuestionsResponse struct {
	Questions []*Question `json:"questions"`
	Total     int64       `json:"total"`
	Limit     int         `json:"limit"`
	Offset    int         `json:"offset"`
}

// CreateQuestionRequest adds a single question to the catalog
type CreateQuestionRequest struct {
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2,max=5"`
	CorrectAnswer int      `json:"correct_answer" binding:"gte=0"`
	Explanation   string   `json:"explanation"`
	Category      string   `json:"category" binding:"required"`
	Subcategory   string   `json:"subcategory"`
	Year          int      `json:"year" binding:"omitempty,gte=1,lte=6"`
	Difficulty    int      `json:"difficulty" binding:"required,gte=1,lte=4"`
}
