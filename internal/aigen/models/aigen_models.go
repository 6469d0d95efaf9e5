package models

import (
	quizmodels "github.com/architect/medquiz/internal/quiz/models"
)

// GenerateRequest asks for AI-generated practice questions on a topic
type GenerateRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory"`
	Difficulty  int    `json:"difficulty" binding:"omitempty,gte=1,lte=4"`
	Count       int    `json:"count" binding:"omitempty,gte=1,lte=5"`
}

// GeneratedQuestion is the model's raw output for one question before it
// is validated and stored
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// GenerateResponse returns the stored questions and the user's remaining
// daily generation allowance
type GenerateResponse struct {
	Questions     []*quizmodels.Question `json:"questions"`
	Total         int                    `json:"total"`
	RemainingUses int                    `json:"remaining_uses"`
}

// AIUsageResponse reports the user's daily generation allowance
type AIUsageResponse struct {
	Used      int `json:"used"`
	MaxDaily  int `json:"max_daily"`
	Remaining int `json:"remaining"`
}
