package services

import (
	"time"

	"github.com/architect/medquiz/internal/users/models"
	"github.com/architect/medquiz/internal/users/repository"
)

// Daily question limits by subscription tier. -1 means unlimited.
var dailyLimitsByTier = map[string]int{
	models.TierFree:      50,
	models.TierWeekly:    200,
	models.TierMonthly:   500,
	models.TierQuarterly: -1,
	models.TierAnnual:    -1,
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// CheckDailyQuestionLimit reports whether the user can be served more
// questions today under their subscription tier.
func CheckDailyQuestionLimit(userID string) (*models.DailyLimitStatus, error) {
	user, err := repository.GetOrCreateUser(userID)
	if err != nil {
		return nil, err
	}

	tier := user.SubscriptionTier
	isSubscriber := user.SubscriptionStatus == "active" && tier != models.TierFree
	if !isSubscriber {
		tier = models.TierFree
	}

	limit, ok := dailyLimitsByTier[tier]
	if !ok {
		limit = dailyLimitsByTier[models.TierFree]
	}
	if limit == -1 {
		return &models.DailyLimitStatus{
			CanContinue:        true,
			QuestionsRemaining: -1,
			DailyLimit:         -1,
			IsSubscriber:       true,
			Tier:               tier,
		}, nil
	}

	usage, err := repository.GetDailyUsage(userID, today())
	if err != nil {
		return nil, err
	}

	viewed := 0
	if usage != nil {
		viewed = usage.QuestionsViewed
	}
	remaining := limit - viewed
	if remaining < 0 {
		remaining = 0
	}

	return &models.DailyLimitStatus{
		CanContinue:        remaining > 0,
		QuestionsRemaining: remaining,
		DailyLimit:         limit,
		IsSubscriber:       isSubscriber,
		Tier:               tier,
	}, nil
}

// RecordQuestionUsage counts served questions against today's quota.
// Unlimited tiers skip the write entirely.
func RecordQuestionUsage(userID string, count int) error {
	status, err := CheckDailyQuestionLimit(userID)
	if err != nil {
		return err
	}
	if status.DailyLimit == -1 {
		return nil
	}
	return repository.IncrementDailyUsage(userID, today(), count)
}

// ConsumeAIGeneration counts one AI generation against the user's daily
// quota, rolling the counter over at UTC midnight. Returns the remaining
// uses after the consume, or false when the quota is exhausted.
func ConsumeAIGeneration(userID string) (remaining int, ok bool, err error) {
	user, err := repository.GetOrCreateUser(userID)
	if err != nil {
		return 0, false, err
	}

	if user.AIUsageDate != today() {
		user.AIUsageDate = today()
		user.AIDailyUses = 0
	}

	max := user.AIMaxDailyUses
	if max <= 0 {
		max = 10
	}
	if user.AIDailyUses >= max {
		return 0, false, nil
	}

	user.AIDailyUses++
	if err := repository.UpdateUser(user); err != nil {
		return 0, false, err
	}
	return max - user.AIDailyUses, true, nil
}

// AIUsage reports the user's AI generation quota without consuming it.
func AIUsage(userID string) (used, max int, err error) {
	user, err := repository.GetOrCreateUser(userID)
	if err != nil {
		return 0, 0, err
	}
	used = user.AIDailyUses
	if user.AIUsageDate != today() {
		used = 0
	}
	max = user.AIMaxDailyUses
	if max <= 0 {
		max = 10
	}
	return used, max, nil
}
