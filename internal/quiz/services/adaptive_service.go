package services

import (
	"math/rand"
	"time"

	"github.com/architect/medquiz/internal/adaptive"
	progressservices "github.com/architect/medquiz/internal/progress/services"
	"github.com/architect/medquiz/internal/quiz/models"
	"github.com/architect/medquiz/internal/quiz/repository"
)

// GetAdaptiveQuestions picks the user's next practice batch. Locked users
// only draw from the UNE priority bank; the full catalog opens after
// three passed qualifying sessions. Selection follows each category's
// current difficulty, weakest categories first when no category is given.
func GetAdaptiveQuestions(userID, category string, count int) (*models.AdaptiveQuestionsResponse, error) {
	progress, err := progressservices.LoadProgress(userID)
	if err != nil {
		return nil, err
	}

	filter := repository.PoolFilter{Category: category}
	if !progress.FullBankUnlocked {
		filter.Source = models.SourceUNEPriority
	}
	pool, err := repository.FetchPool(filter)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selected := selectFromPool(progress, pool, category, count, rng)

	// A fresh user with no history in the requested category gets
	// foundational questions; if even those are missing the bank simply
	// has nothing at that level yet, so fall back to whatever exists.
	if len(selected) == 0 && len(pool) > 0 {
		selected = fallbackSelection(pool, count, rng)
	}

	views := make([]models.QuestionView, 0, len(selected))
	for _, q := range selected {
		views = append(views, RandomizeView(q, rng))
	}

	return &models.AdaptiveQuestionsResponse{
		Questions:        views,
		Total:            len(views),
		FullBankUnlocked: progress.FullBankUnlocked,
	}, nil
}

// selectFromPool runs the adaptive selector over the stored pool and maps
// the picks back to full questions.
func selectFromPool(progress adaptive.UserProgress, pool []*models.Question, category string, count int, rng *rand.Rand) []*models.Question {
	candidates := make([]adaptive.Question, 0, len(pool))
	byID := make(map[string]*models.Question, len(pool))
	for _, q := range pool {
		candidates = append(candidates, adaptive.Question{
			ID:          q.ID,
			Category:    q.Category,
			Subcategory: q.Subcategory,
			Difficulty:  storedDifficultyToLevel(q.Difficulty),
		})
		byID[q.ID] = q
	}

	picks := adaptive.NextQuestions(progress, candidates, category, count, rng)

	selected := make([]*models.Question, 0, len(picks))
	for _, pick := range picks {
		selected = append(selected, byID[pick.ID])
	}
	return selected
}

func fallbackSelection(pool []*models.Question, count int, rng *rand.Rand) []*models.Question {
	shuffled := make([]*models.Question, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count < len(shuffled) {
		shuffled = shuffled[:count]
	}
	return shuffled
}

// storedDifficultyToLevel maps the catalog's 1-4 difficulty encoding onto
// the engine's zero-based levels. Out-of-range values clamp.
func storedDifficultyToLevel(difficulty int) adaptive.Level {
	level := adaptive.Level(difficulty - 1)
	if level < adaptive.Foundational {
		return adaptive.Foundational
	}
	if level > adaptive.Advanced {
		return adaptive.Advanced
	}
	return level
}
