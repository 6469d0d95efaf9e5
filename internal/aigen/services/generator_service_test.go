package services

import (
	"context"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/architect/medquiz/internal/aigen/models"
	"github.com/architect/medquiz/internal/common/database"
	quizmodels "github.com/architect/medquiz/internal/quiz/models"
	usermodels "github.com/architect/medquiz/internal/users/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const validOutput = `[
	{
		"question": "Which enzyme is deficient in phenylketonuria?",
		"options": ["Phenylalanine hydroxylase", "Tyrosinase", "Homogentisate oxidase", "Fumarylacetoacetate hydrolase"],
		"correct_answer": 0,
		"explanation": "PKU is caused by deficiency of phenylalanine hydroxylase, which converts phenylalanine to tyrosine."
	}
]`

type stubCompleter struct {
	content string
	err     error
	request openai.ChatCompletionRequest
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.request = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func setupTestDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&usermodels.User{},
		&usermodels.DailyUsage{},
		&quizmodels.Question{},
	))
	database.DB = db
}

func TestParseGeneratedValidArray(t *testing.T) {
	generated, err := ParseGenerated(validOutput)
	require.NoError(t, err)
	require.Len(t, generated, 1)
	assert.Equal(t, 0, generated[0].CorrectAnswer)
	assert.Len(t, generated[0].Options, 4)
}

func TestParseGeneratedStripsMarkdownFences(t *testing.T) {
	fenced := "```json\n" + validOutput + "\n```"
	generated, err := ParseGenerated(fenced)
	require.NoError(t, err)
	assert.Len(t, generated, 1)
}

func TestParseGeneratedSingleObject(t *testing.T) {
	single := `{
		"question": "Most common cause of community-acquired pneumonia?",
		"options": ["Streptococcus pneumoniae", "Haemophilus influenzae", "Mycoplasma pneumoniae", "Klebsiella pneumoniae"],
		"correct_answer": 0,
		"explanation": "S. pneumoniae remains the most common cause of CAP."
	}`
	generated, err := ParseGenerated(single)
	require.NoError(t, err)
	assert.Len(t, generated, 1)
}

func TestParseGeneratedRejectsBadOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "here are your questions"},
		{"empty array", "[]"},
		{"too few options", `[{"question":"q","options":["a","b"],"correct_answer":0,"explanation":"e"}]`},
		{"too many options", `[{"question":"q","options":["a","b","c","d","e","f"],"correct_answer":0,"explanation":"e"}]`},
		{"index out of range", `[{"question":"q","options":["a","b","c","d"],"correct_answer":4,"explanation":"e"}]`},
		{"negative index", `[{"question":"q","options":["a","b","c","d"],"correct_answer":-1,"explanation":"e"}]`},
		{"missing explanation", `[{"question":"q","options":["a","b","c","d"],"correct_answer":0,"explanation":""}]`},
		{"empty question", `[{"question":" ","options":["a","b","c","d"],"correct_answer":0,"explanation":"e"}]`},
		{"empty option", `[{"question":"q","options":["a","","c","d"],"correct_answer":0,"explanation":"e"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGenerated(tt.content)
			require.Error(t, err)
		})
	}
}

func TestGenerateQuestionsStoresUserScoped(t *testing.T) {
	setupTestDB(t)
	stub := &stubCompleter{content: validOutput}
	SetCompleter(stub, "gpt-4o-mini")

	resp, err := GenerateQuestions(context.Background(), "user-1", models.GenerateRequest{
		Topic:    "inborn errors of metabolism",
		Category: "biochemistry",
		Count:    1,
	})
	require.NoError(t, err)

	require.Len(t, resp.Questions, 1)
	stored := resp.Questions[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "biochemistry", stored.Category)
	assert.Equal(t, quizmodels.SourceAIGenerated, stored.Source)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, 9, resp.RemainingUses)

	assert.Equal(t, "gpt-4o-mini", stub.request.Model)
	require.Len(t, stub.request.Messages, 2)
	assert.Contains(t, stub.request.Messages[1].Content, "inborn errors of metabolism")
}

func TestGenerateQuestionsQuotaExhausted(t *testing.T) {
	setupTestDB(t)
	SetCompleter(&stubCompleter{content: validOutput}, "gpt-4o-mini")

	for i := 0; i < 10; i++ {
		_, err := GenerateQuestions(context.Background(), "user-1", models.GenerateRequest{
			Topic:    "topic",
			Category: "biochemistry",
		})
		require.NoError(t, err)
	}

	_, err := GenerateQuestions(context.Background(), "user-1", models.GenerateRequest{
		Topic:    "topic",
		Category: "biochemistry",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestGenerateQuestionsUnconfigured(t *testing.T) {
	setupTestDB(t)
	SetCompleter(nil, "")

	_, err := GenerateQuestions(context.Background(), "user-1", models.GenerateRequest{
		Topic:    "topic",
		Category: "biochemistry",
	})
	require.Error(t, err)
}
