package services

import (
	"github.com/architect/medquiz/internal/users/models"
	"github.com/architect/medquiz/internal/users/repository"
)

// GetProfile returns the user's profile, creating a minimal row for
// first-time visitors
func GetProfile(userID string) (*models.User, error) {
	return repository.GetOrCreateUser(userID)
}

// UpdateProfile applies profile edits. Subscription and quota fields are
// managed elsewhere and cannot be changed here.
func UpdateProfile(userID string, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := repository.GetOrCreateUser(userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Institution != "" {
		user.Institution = req.Institution
	}
	if req.CurrentYear != 0 {
		user.CurrentYear = req.CurrentYear
	}
	if req.DegreeType != "" {
		user.DegreeType = req.DegreeType
	}
	if req.Country != "" {
		user.Country = req.Country
	}

	if err := repository.UpdateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}
