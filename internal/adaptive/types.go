package adaptive

import (
	"fmt"
	"time"
)

// Question is the engine's view of a catalog question. The catalog's gorm
// model is mapped into this value type at the service boundary so the
// engine stays free of persistence concerns.
type Question struct {
	ID          string
	Category    string
	Subcategory string
	Difficulty  Level
}

// Answer is a single recorded outcome for a question.
type Answer struct {
	QuestionID string
	Correct    bool
	TimeTaken  int // seconds
	Timestamp  time.Time
}

// WindowTracker holds the sliding window of recent outcomes and the
// wrong-answer counter for one (category, subcategory, level) tuple.
type WindowTracker struct {
	RecentOutcomes    []bool `json:"recent_outcomes"`
	WrongCountAtLevel int    `json:"wrong_count_at_level"`
}

// CategoryProgress tracks one top-level category for a user.
type CategoryProgress struct {
	CurrentDifficulty Level     `json:"current_difficulty"`
	CorrectStreak     int       `json:"correct_streak"`
	TotalAnswered     int       `json:"total_answered"`
	TotalCorrect      int       `json:"total_correct"`
	LastUpdated       time.Time `json:"last_updated"`
}

// UserProgress is the per-user aggregate the engine reads and rewrites.
// Trackers is keyed by TrackerKey and grows lazily; entries are kept when
// the user moves away from a level so a later visit resumes its history.
type UserProgress struct {
	CategoryProgress map[string]CategoryProgress `json:"category_progress"`
	Trackers         map[string]WindowTracker    `json:"subcategory_tracking"`

	CurrentStreak          int       `json:"current_streak"`
	HighestStreak          int       `json:"highest_streak"`
	TotalQuestionsAnswered int       `json:"total_questions_answered"`
	TotalCorrect           int       `json:"total_correct"`
	TotalTimeSpent         int       `json:"total_time_spent"` // seconds
	LastActivity           time.Time `json:"last_activity"`

	QualifyingSessionsCompleted int  `json:"qualifying_sessions_completed"`
	FullBankUnlocked            bool `json:"full_bank_unlocked"`
}

// NewUserProgress returns a fresh aggregate with zero counters and no
// category entries, as created at registration time.
func NewUserProgress() UserProgress {
	return UserProgress{
		CategoryProgress: make(map[string]CategoryProgress),
		Trackers:         make(map[string]WindowTracker),
	}
}

// TrackerKey is the composite identifier selecting which WindowTracker an
// answer updates.
func TrackerKey(category, subcategory string, level Level) string {
	return fmt.Sprintf("%s:%s:%s", category, subcategory, level)
}

// LevelChange describes a difficulty transition produced by ProcessAnswer.
// Callers use it for logging and notifications instead of the engine
// writing to any side channel itself.
type LevelChange struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	From        Level  `json:"from"`
	To          Level  `json:"to"`
	Up          bool   `json:"up"`
}

// clone deep-copies the aggregate so ProcessAnswer never aliases its input.
func (p UserProgress) clone() UserProgress {
	out := p
	out.CategoryProgress = make(map[string]CategoryProgress, len(p.CategoryProgress))
	for k, v := range p.CategoryProgress {
		out.CategoryProgress[k] = v
	}
	out.Trackers = make(map[string]WindowTracker, len(p.Trackers))
	for k, v := range p.Trackers {
		outcomes := make([]bool, len(v.RecentOutcomes))
		copy(outcomes, v.RecentOutcomes)
		v.RecentOutcomes = outcomes
		out.Trackers[k] = v
	}
	return out
}
