package adaptive

import (
	"math/rand"
	"sort"
)

// NextQuestions picks up to count questions from pool for the user's
// current level. With a category it filters to that category at the
// user's target difficulty and shuffles uniformly with rng. Without a
// category it walks the user's categories weakest-first (accuracy
// ascending) and concatenates each category's matches in pool order,
// so struggling areas surface before strong ones.
//
// The result can be shorter than count; an empty result for a brand-new
// user is the caller's cue to fall back to a default pool.
func NextQuestions(progress UserProgress, pool []Question, category string, count int, rng *rand.Rand) []Question {
	if count <= 0 {
		return nil
	}

	var filtered []Question
	if category != "" {
		target := Foundational
		if cat, ok := progress.CategoryProgress[category]; ok {
			target = cat.CurrentDifficulty
		}
		for _, q := range pool {
			if q.Category == category && q.Difficulty == target {
				filtered = append(filtered, q)
			}
		}
		rng.Shuffle(len(filtered), func(i, j int) {
			filtered[i], filtered[j] = filtered[j], filtered[i]
		})
	} else {
		for _, cat := range categoriesByAccuracy(progress) {
			target := progress.CategoryProgress[cat].CurrentDifficulty
			for _, q := range pool {
				if q.Category == cat && q.Difficulty == target {
					filtered = append(filtered, q)
				}
			}
		}
	}

	if len(filtered) > count {
		filtered = filtered[:count]
	}
	return filtered
}

// categoriesByAccuracy ranks the categories the user has progress for,
// weakest first. Categories with no answers score 0 so they sort ahead of
// anything with a track record. Ties break alphabetically to keep the
// ordering stable.
func categoriesByAccuracy(progress UserProgress) []string {
	type scored struct {
		name  string
		score float64
	}
	ranked := make([]scored, 0, len(progress.CategoryProgress))
	for name, cat := range progress.CategoryProgress {
		score := 0.0
		if cat.TotalAnswered > 0 {
			score = float64(cat.TotalCorrect) / float64(cat.TotalAnswered)
		}
		ranked = append(ranked, scored{name: name, score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.name
	}
	return names
}
