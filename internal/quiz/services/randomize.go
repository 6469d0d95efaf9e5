package services

import (
	"math/rand"

	"github.com/architect/medquiz/internal/quiz/models"
)

// RandomizeView shuffles a question's answer options so the correct one
// does not sit at a predictable position. The returned view carries the
// remapped correct index and, for each shuffled slot, the index the
// option held in storage.
func RandomizeView(question *models.Question, rng *rand.Rand) models.QuestionView {
	order := rng.Perm(len(question.Options))

	options := make([]string, len(question.Options))
	indices := make([]int, len(question.Options))
	correct := question.CorrectAnswer
	for position, original := range order {
		options[position] = question.Options[original]
		indices[position] = original
		if original == question.CorrectAnswer {
			correct = position
		}
	}

	return models.QuestionView{
		ID:              question.ID,
		Question:        question.Question,
		Options:         options,
		CorrectAnswer:   correct,
		Explanation:     question.Explanation,
		Category:        question.Category,
		Subcategory:     question.Subcategory,
		Difficulty:      question.Difficulty,
		Source:          question.Source,
		OriginalIndices: indices,
	}
}
