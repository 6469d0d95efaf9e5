package services

import (
	"sort"

	"github.com/architect/medquiz/internal/progress/models"
	quizrepo "github.com/architect/medquiz/internal/quiz/repository"
)

// GetSubcategoryAnalytics breaks accuracy down by category and subcategory
// from the user's answer history. Weakest subcategories come first so the
// client can surface them as revision targets.
func GetSubcategoryAnalytics(userID string) ([]models.SubcategoryStats, error) {
	history, err := quizrepo.GetAnswerHistory(userID, 0)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return []models.SubcategoryStats{}, nil
	}

	ids := make([]string, 0, len(history))
	seen := make(map[string]bool)
	for _, record := range history {
		if !seen[record.QuestionID] {
			seen[record.QuestionID] = true
			ids = append(ids, record.QuestionID)
		}
	}
	questions, err := quizrepo.GetQuestionsByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]struct{ category, subcategory string }, len(questions))
	for _, q := range questions {
		sub := q.Subcategory
		if sub == "" {
			sub = q.Category
		}
		byID[q.ID] = struct{ category, subcategory string }{q.Category, sub}
	}

	type key struct{ category, subcategory string }
	buckets := make(map[key]*models.SubcategoryStats)
	for _, record := range history {
		meta, ok := byID[record.QuestionID]
		if !ok {
			continue // question since removed
		}
		k := key{meta.category, meta.subcategory}
		stats, ok := buckets[k]
		if !ok {
			stats = &models.SubcategoryStats{Category: k.category, Subcategory: k.subcategory}
			buckets[k] = stats
		}
		stats.TotalAnswered++
		if record.IsCorrect {
			stats.TotalCorrect++
		}
	}

	result := make([]models.SubcategoryStats, 0, len(buckets))
	for _, stats := range buckets {
		stats.Accuracy = round1(float64(stats.TotalCorrect) / float64(stats.TotalAnswered) * 100)
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Accuracy != result[j].Accuracy {
			return result[i].Accuracy < result[j].Accuracy
		}
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Subcategory < result[j].Subcategory
	})
	return result, nil
}
