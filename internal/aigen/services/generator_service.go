package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/architect/medquiz/internal/aigen/models"
	"github.com/architect/medquiz/internal/common/errors"
	"github.com/architect/medquiz/internal/common/validation"
	quizmodels "github.com/architect/medquiz/internal/quiz/models"
	quizrepo "github.com/architect/medquiz/internal/quiz/repository"
	userservices "github.com/architect/medquiz/internal/users/services"
	"github.com/architect/medquiz/pkg/config"
)

// ChatCompleter is the slice of the OpenAI client the generator needs.
// Tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

var (
	completer ChatCompleter
	modelID   string
)

// Configure sets up the OpenAI client from config. Generation endpoints
// return an error until this has been called with an API key.
func Configure(cfg config.OpenAIConfig) {
	if cfg.APIKey == "" {
		return
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	completer = openai.NewClientWithConfig(clientConfig)
	modelID = cfg.Model
}

// SetCompleter swaps the backing client, used by tests
func SetCompleter(c ChatCompleter, model string) {
	completer = c
	modelID = model
}

const systemPrompt = `You are a medical education expert writing multiple-choice questions for medical students preparing for licensing exams. Every question must be clinically accurate, unambiguous, and have exactly one correct answer. Respond with a JSON array only, no prose and no markdown fences. Each element must have the fields: "question" (string), "options" (array of 4 or 5 strings), "correct_answer" (zero-based index into options), "explanation" (string explaining why the correct option is right and the distractors are wrong).`

var difficultyDescriptions = map[int]string{
	1: "foundational recall of core concepts",
	2: "straightforward clinical application",
	3: "multi-step clinical reasoning",
	4: "complex cases with subtle distractors",
}

// GenerateQuestions asks the model for new questions on a topic, validates
// them, and stores them scoped to the requesting user so they stay out of
// the shared pool. Each call consumes one daily AI generation credit.
func GenerateQuestions(ctx context.Context, userID string, req models.GenerateRequest) (*models.GenerateResponse, error) {
	if completer == nil {
		return nil, errors.Internal("question generation is not configured", "missing OpenAI API key")
	}

	remaining, ok, err := userservices.ConsumeAIGeneration(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Forbidden("daily AI generation limit reached")
	}

	count := req.Count
	if count == 0 {
		count = 1
	}
	difficulty := req.Difficulty
	if difficulty == 0 {
		difficulty = 2
	}

	userPrompt := fmt.Sprintf(
		"Write %d multiple-choice questions about %q in the category %q at difficulty level %d (%s).",
		count, req.Topic, req.Category, difficulty, difficultyDescriptions[difficulty],
	)
	if req.Subcategory != "" {
		userPrompt += fmt.Sprintf(" Focus on the subcategory %q.", req.Subcategory)
	}

	resp, err := completer.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       modelID,
		Temperature: 0.7,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, errors.Internal("question generation failed", err.Error())
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Internal("question generation failed", "model returned no choices")
	}

	generated, err := ParseGenerated(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	questions := make([]*quizmodels.Question, 0, len(generated))
	for _, g := range generated {
		questions = append(questions, &quizmodels.Question{
			Question:      g.Question,
			Options:       quizmodels.OptionList(g.Options),
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
			Category:      req.Category,
			Subcategory:   req.Subcategory,
			Difficulty:    difficulty,
			Source:        quizmodels.SourceAIGenerated,
			UserID:        userID,
		})
	}
	if _, err := quizrepo.CreateQuestions(questions); err != nil {
		return nil, err
	}

	return &models.GenerateResponse{
		Questions:     questions,
		Total:         len(questions),
		RemainingUses: remaining,
	}, nil
}

// ParseGenerated decodes the model's output into validated questions. It
// tolerates markdown fences and a single object instead of an array.
func ParseGenerated(content string) ([]models.GeneratedQuestion, error) {
	cleaned := strings.TrimSpace(content)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var generated []models.GeneratedQuestion
	if err := json.Unmarshal([]byte(cleaned), &generated); err != nil {
		var single models.GeneratedQuestion
		if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
			return nil, errors.Unprocessable("model output is not valid JSON", err.Error())
		}
		generated = []models.GeneratedQuestion{single}
	}
	if len(generated) == 0 {
		return nil, errors.Unprocessable("model returned no questions", "")
	}

	for i, g := range generated {
		if err := validateGenerated(g); err != nil {
			return nil, errors.Unprocessable(fmt.Sprintf("generated question %d failed validation", i+1), err.Error())
		}
	}
	return generated, nil
}

func validateGenerated(g models.GeneratedQuestion) error {
	if len(g.Options) < 4 {
		return fmt.Errorf("expected 4 or 5 options, got %d", len(g.Options))
	}
	if err := validation.ValidateMCQ(g.Question, g.Options, g.CorrectAnswer); err != nil {
		return err
	}
	if strings.TrimSpace(g.Explanation) == "" {
		return fmt.Errorf("explanation is empty")
	}
	return nil
}
