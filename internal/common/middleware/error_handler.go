package middleware

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/architect/medquiz/internal/common/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorHandler middleware catches panics and converts them to proper error responses
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				appErr := errors.Internal("internal server error", "")
				c.JSON(appErr.Status, appErr)
			}
		}()
		c.Next()

		// Check if an error response was already sent
		if c.Writer.Status() >= 400 {
			return
		}
	}
}

// JSONErrorResponse wraps errors in consistent JSON format
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = mapKnownError(err)
	}

	c.JSON(appErr.Status, appErr)
}

// mapKnownError classifies non-AppError failures. Request binding
// problems become 400s, everything else is a 500.
func mapKnownError(err error) *errors.AppError {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return errors.Validation("request validation failed", validationErrs.Error())
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &syntaxErr) || stderrors.As(err, &typeErr) || stderrors.Is(err, io.EOF) {
		return errors.BadRequest("request body is not valid JSON")
	}

	return errors.Internal("internal server error", err.Error())
}
