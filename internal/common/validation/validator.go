package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Validate(data interface{}) []ValidationError {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var errors []ValidationError
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   err.Field(),
			Message: fmt.Sprintf("field must satisfy %s constraint", err.Tag()),
		})
	}
	return errors
}

// ValidateMCQ checks the structural invariants every stored question must
// hold: a non-empty stem, 2-5 non-empty options, and a correct index
// pointing inside them.
func ValidateMCQ(question string, options []string, correctAnswer int) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(options) < 2 || len(options) > 5 {
		return fmt.Errorf("expected 2 to 5 options, got %d", len(options))
	}
	for i, option := range options {
		if strings.TrimSpace(option) == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if correctAnswer < 0 || correctAnswer >= len(options) {
		return fmt.Errorf("correct_answer %d is out of range", correctAnswer)
	}
	return nil
}

func ValidateIntRange(value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("value must be between %d and %d", min, max)
	}
	return nil
}
