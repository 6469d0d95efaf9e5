package adaptive

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func progressWith(categories map[string]CategoryProgress) UserProgress {
	p := NewUserProgress()
	for name, cat := range categories {
		p.CategoryProgress[name] = cat
	}
	return p
}

func poolOf(entries ...Question) []Question {
	return entries
}

func TestNextQuestionsWithCategory(t *testing.T) {
	progress := progressWith(map[string]CategoryProgress{
		"cardiology": {CurrentDifficulty: Competent, TotalAnswered: 10, TotalCorrect: 6},
	})
	pool := poolOf(
		Question{ID: "a", Category: "cardiology", Difficulty: Competent},
		Question{ID: "b", Category: "cardiology", Difficulty: Foundational},
		Question{ID: "c", Category: "cardiology", Difficulty: Competent},
		Question{ID: "d", Category: "neurology", Difficulty: Competent},
	)

	got := NextQuestions(progress, pool, "cardiology", 10, rand.New(rand.NewSource(1)))
	require.Len(t, got, 2)
	ids := map[string]bool{}
	for _, q := range got {
		assert.Equal(t, "cardiology", q.Category)
		assert.Equal(t, Competent, q.Difficulty)
		ids[q.ID] = true
	}
	assert.True(t, ids["a"] && ids["c"])
}

func TestNextQuestionsUnknownCategoryDefaultsFoundational(t *testing.T) {
	pool := poolOf(
		Question{ID: "a", Category: "renal", Difficulty: Foundational},
		Question{ID: "b", Category: "renal", Difficulty: Advanced},
	)

	got := NextQuestions(NewUserProgress(), pool, "renal", 5, rand.New(rand.NewSource(1)))
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestNextQuestionsTruncatesToCount(t *testing.T) {
	progress := progressWith(map[string]CategoryProgress{
		"cardiology": {CurrentDifficulty: Foundational, TotalAnswered: 4, TotalCorrect: 1},
	})
	pool := make([]Question, 0, 8)
	for i := 0; i < 8; i++ {
		pool = append(pool, Question{ID: string(rune('a' + i)), Category: "cardiology", Difficulty: Foundational})
	}

	got := NextQuestions(progress, pool, "cardiology", 3, rand.New(rand.NewSource(7)))
	assert.Len(t, got, 3)
}

func TestNextQuestionsShuffleDeterministicUnderSeed(t *testing.T) {
	progress := progressWith(map[string]CategoryProgress{
		"cardiology": {CurrentDifficulty: Foundational},
	})
	pool := make([]Question, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, Question{ID: string(rune('a' + i)), Category: "cardiology", Difficulty: Foundational})
	}

	first := NextQuestions(progress, pool, "cardiology", 5, rand.New(rand.NewSource(42)))
	second := NextQuestions(progress, pool, "cardiology", 5, rand.New(rand.NewSource(42)))
	assert.Equal(t, first, second)
}

func TestNextQuestionsInvalidCount(t *testing.T) {
	pool := poolOf(Question{ID: "a", Category: "cardiology", Difficulty: Foundational})

	assert.Empty(t, NextQuestions(NewUserProgress(), pool, "cardiology", 0, rand.New(rand.NewSource(1))))
	assert.Empty(t, NextQuestions(NewUserProgress(), pool, "cardiology", -3, rand.New(rand.NewSource(1))))
}

func TestNextQuestionsAdaptiveWeakestFirst(t *testing.T) {
	// 40% accuracy in renal, 80% in cardiology: renal questions come first.
	progress := progressWith(map[string]CategoryProgress{
		"cardiology": {CurrentDifficulty: Foundational, TotalAnswered: 10, TotalCorrect: 8},
		"renal":      {CurrentDifficulty: Foundational, TotalAnswered: 10, TotalCorrect: 4},
	})
	pool := poolOf(
		Question{ID: "c1", Category: "cardiology", Difficulty: Foundational},
		Question{ID: "r1", Category: "renal", Difficulty: Foundational},
		Question{ID: "c2", Category: "cardiology", Difficulty: Foundational},
		Question{ID: "r2", Category: "renal", Difficulty: Foundational},
		Question{ID: "r3", Category: "renal", Difficulty: Foundational},
	)

	got := NextQuestions(progress, pool, "", 5, rand.New(rand.NewSource(1)))
	require.Len(t, got, 5)
	// Weakest category first, pool order preserved within each category.
	assert.Equal(t, []string{"r1", "r2", "r3", "c1", "c2"},
		[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID, got[4].ID})
}

func TestNextQuestionsAdaptiveHonorsPerCategoryDifficulty(t *testing.T) {
	progress := progressWith(map[string]CategoryProgress{
		"cardiology": {CurrentDifficulty: Competent, TotalAnswered: 8, TotalCorrect: 2},
		"neurology":  {CurrentDifficulty: Foundational, TotalAnswered: 8, TotalCorrect: 7},
	})
	pool := poolOf(
		Question{ID: "c-easy", Category: "cardiology", Difficulty: Foundational},
		Question{ID: "c-mid", Category: "cardiology", Difficulty: Competent},
		Question{ID: "n-easy", Category: "neurology", Difficulty: Foundational},
		Question{ID: "n-mid", Category: "neurology", Difficulty: Competent},
	)

	got := NextQuestions(progress, pool, "", 10, rand.New(rand.NewSource(1)))
	require.Len(t, got, 2)
	assert.Equal(t, "c-mid", got[0].ID)
	assert.Equal(t, "n-easy", got[1].ID)
}

func TestNextQuestionsAdaptiveNewUserEmpty(t *testing.T) {
	pool := poolOf(Question{ID: "a", Category: "cardiology", Difficulty: Foundational})
	got := NextQuestions(NewUserProgress(), pool, "", 5, rand.New(rand.NewSource(1)))
	assert.Empty(t, got, "caller falls back to a default pool")
}

func TestNextQuestionsAdaptiveTruncatedWeakestKept(t *testing.T) {
	progress := progressWith(map[string]CategoryProgress{
		"strong": {CurrentDifficulty: Foundational, TotalAnswered: 10, TotalCorrect: 9},
		"weak":   {CurrentDifficulty: Foundational, TotalAnswered: 10, TotalCorrect: 1},
	})
	pool := make([]Question, 0, 8)
	for i := 0; i < 4; i++ {
		pool = append(pool, Question{ID: string(rune('a' + i)), Category: "strong", Difficulty: Foundational})
	}
	for i := 0; i < 4; i++ {
		pool = append(pool, Question{ID: string(rune('w' + i)), Category: "weak", Difficulty: Foundational})
	}

	got := NextQuestions(progress, pool, "", 3, rand.New(rand.NewSource(1)))
	require.Len(t, got, 3)
	for _, q := range got {
		assert.Equal(t, "weak", q.Category, "truncation keeps the weakest category's matches")
	}
}

func TestLevelHelpers(t *testing.T) {
	assert.Equal(t, Competent, Foundational.Next())
	assert.Equal(t, Advanced, Advanced.Next())
	assert.Equal(t, Foundational, Foundational.Prev())
	assert.Equal(t, Proficient, Advanced.Prev())

	assert.Equal(t, "foundational", Foundational.String())
	assert.Equal(t, "advanced", Advanced.String())
	assert.Equal(t, Proficient, ParseLevel("proficient"))
	assert.Equal(t, Foundational, ParseLevel("bogus"))
	assert.True(t, Competent.Valid())
	assert.False(t, Level(9).Valid())
}
