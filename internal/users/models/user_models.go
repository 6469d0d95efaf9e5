package models

import (
	"time"
)

// Subscription tiers, from free up to unlimited annual plans.
const (
	TierFree      = "free"
	TierWeekly    = "weekly"
	TierMonthly   = "monthly"
	TierQuarterly = "quarterly"
	TierAnnual    = "annual"
)

// User represents a platform account. Token issuance and verification
// live in the external auth service; this row only carries the profile
// and quota state the quiz backend needs.
type User struct {
	ID                 string     `gorm:"primaryKey;size:36" json:"id"`
	Email              string     `gorm:"unique;not null" json:"email"`
	FullName           string     `json:"full_name"`
	Institution        string     `json:"institution"`
	CurrentYear        int        `json:"current_year"` // study year 1-6
	DegreeType         string     `json:"degree_type"`
	Country            string     `json:"country"`
	SubscriptionTier   string     `gorm:"default:free" json:"subscription_tier"`
	SubscriptionStatus string     `gorm:"default:free" json:"subscription_status"`
	AIDailyUses        int        `gorm:"default:0" json:"ai_daily_uses"`
	AIMaxDailyUses     int        `gorm:"default:10" json:"ai_max_daily_uses"`
	AIUsageDate        string     `json:"ai_usage_date"` // YYYY-MM-DD of the counter above
	IsActive           bool       `gorm:"default:true" json:"is_active"`
	IsAdmin            bool       `gorm:"default:false" json:"is_admin"`
	CreatedAt          time.Time  `json:"created_at"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
}

// DailyUsage counts questions served to a user on a given day. One row
// per (user, date); enforced by the unique index.
type DailyUsage struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"size:36;not null;index;uniqueIndex:uq_usage_user_date" json:"user_id"`
	Date            string    `gorm:"not null;uniqueIndex:uq_usage_user_date" json:"date"` // YYYY-MM-DD
	QuestionsViewed int       `gorm:"default:0" json:"questions_viewed"`
	CreatedAt       time.Time `json:"created_at"`
}

// UpdateProfileRequest changes the editable parts of a user's profile.
type UpdateProfileRequest struct {
	FullName    string `json:"full_name"`
	Institution string `json:"institution"`
	CurrentYear int    `json:"current_year" binding:"omitempty,gte=1,lte=6"`
	DegreeType  string `json:"degree_type"`
	Country     string `json:"country"`
}

// DailyLimitStatus reports how much of today's question quota is left.
type DailyLimitStatus struct {
	CanContinue        bool   `json:"can_continue"`
	QuestionsRemaining int    `json:"questions_remaining"` // -1 when unlimited
	DailyLimit         int    `json:"daily_limit"`         // -1 when unlimited
	IsSubscriber       bool   `json:"is_subscriber"`
	Tier               string `json:"tier"`
}
