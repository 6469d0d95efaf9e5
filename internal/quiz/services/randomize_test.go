package services

import (
	"math/rand"
	"testing"

	"github.com/architect/medquiz/internal/quiz/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomizeViewRemapsCorrectAnswer(t *testing.T) {
	question := &models.Question{
		ID:            "q1",
		Question:      "Which vessel supplies the inferior wall of the left ventricle?",
		Options:       models.OptionList{"LAD", "LCx", "RCA", "Left main"},
		CorrectAnswer: 2,
		Category:      "cardiology",
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		view := RandomizeView(question, rng)

		require.Len(t, view.Options, 4)
		assert.Equal(t, "RCA", view.Options[view.CorrectAnswer])
		assert.ElementsMatch(t, []string{"LAD", "LCx", "RCA", "Left main"}, view.Options)
	}
}

func TestRandomizeViewOriginalIndices(t *testing.T) {
	question := &models.Question{
		ID:            "q1",
		Options:       models.OptionList{"A", "B", "C", "D", "E"},
		CorrectAnswer: 4,
	}

	rng := rand.New(rand.NewSource(7))
	view := RandomizeView(question, rng)

	require.Len(t, view.OriginalIndices, 5)
	for position, original := range view.OriginalIndices {
		assert.Equal(t, question.Options[original], view.Options[position])
	}
	assert.Equal(t, 4, view.OriginalIndices[view.CorrectAnswer])
}

func TestRandomizeViewDeterministicUnderSeed(t *testing.T) {
	question := &models.Question{
		ID:            "q1",
		Options:       models.OptionList{"A", "B", "C", "D"},
		CorrectAnswer: 0,
	}

	first := RandomizeView(question, rand.New(rand.NewSource(42)))
	second := RandomizeView(question, rand.New(rand.NewSource(42)))

	assert.Equal(t, first.Options, second.Options)
	assert.Equal(t, first.CorrectAnswer, second.CorrectAnswer)
}

func TestStoredDifficultyToLevelClamps(t *testing.T) {
	tests := []struct {
		stored   int
		expected string
	}{
		{1, "foundational"},
		{2, "competent"},
		{3, "proficient"},
		{4, "advanced"},
		{0, "foundational"},
		{9, "advanced"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, storedDifficultyToLevel(tt.stored).String())
	}
}
