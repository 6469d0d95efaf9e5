package repository

import (
	"time"

	"github.com/architect/medquiz/internal/common/database"
	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/users/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUser retrieves a user by id
func GetUser(userID string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("id = ?", userID).First(&user)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user")
		}
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}
	return &user, nil
}

// GetOrCreateUser looks a user up by id, creating a minimal row when the
// auth service references an account this backend has not seen yet.
func GetOrCreateUser(userID string) (*models.User, error) {
	var user models.User
	result := database.DB.Where("id = ?", userID).First(&user)
	if result.Error == nil {
		return &user, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, errors.Internal("failed to fetch user", result.Error.Error())
	}

	user = models.User{
		ID:               userID,
		Email:            userID + "@pending.local", // replaced when the auth service syncs the profile
		SubscriptionTier: models.TierFree,
		IsActive:         true,
		CreatedAt:        time.Now().UTC(),
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := database.DB.Create(&user).Error; err != nil {
		return nil, errors.Internal("failed to create user", err.Error())
	}
	return &user, nil
}

// UpdateUser persists profile or quota changes
func UpdateUser(user *models.User) error {
	result := database.DB.Save(user)
	if result.Error != nil {
		return errors.Internal("failed to update user", result.Error.Error())
	}
	return nil
}

// GetDailyUsage fetches today's usage row, if any
func GetDailyUsage(userID, date string) (*models.DailyUsage, error) {
	var usage models.DailyUsage
	result := database.DB.Where("user_id = ? AND date = ?", userID, date).First(&usage)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch daily usage", result.Error.Error())
	}
	return &usage, nil
}

// IncrementDailyUsage bumps today's question counter, creating the row on
// first use of the day.
func IncrementDailyUsage(userID, date string, count int) error {
	usage := &models.DailyUsage{
		UserID:          userID,
		Date:            date,
		QuestionsViewed: count,
		CreatedAt:       time.Now().UTC(),
	}
	result := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"questions_viewed": gorm.Expr("questions_viewed + ?", count),
		}),
	}).Create(usage)
	if result.Error != nil {
		return errors.Internal("failed to record daily usage", result.Error.Error())
	}
	return nil
}
