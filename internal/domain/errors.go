package domain

import (
	"errors"
	"fmt"
)

var (
	ErrFileRequired     = errors.New("file is required")
	ErrQuestionRequired = errors.New("question is required")
	ErrContextRequired  = errors.New("document context is required")
)

// ValidationError reports a rejected upload or request field. Message names
// the concrete constraint that was violated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ExtractionError reports that no usable text could be extracted from a document.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return e.Reason
}

// NewExtractionError creates an ExtractionError with a formatted reason.
func NewExtractionError(format string, args ...interface{}) *ExtractionError {
	return &ExtractionError{Reason: fmt.Sprintf(format, args...)}
}

// AIErrorKind classifies a summarization failure.
type AIErrorKind string

const (
	AIErrNotConfigured     AIErrorKind = "not_configured"
	AIErrEmptyInput        AIErrorKind = "empty_input"
	AIErrEmptyResponse     AIErrorKind = "empty_response"
	AIErrInvalidCredential AIErrorKind = "invalid_credential"
	AIErrRateLimited       AIErrorKind = "rate_limited"
	AIErrTimeout           AIErrorKind = "timeout"
	AIErrProvider          AIErrorKind = "provider_error"
)

// AIError reports a failed summarization or answer. Err keeps the raw provider
// error for logs; it is never shown to API clients.
type AIError struct {
	Kind    AIErrorKind
	Message string
	Err     error
}

func (e *AIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AIError) Unwrap() error {
	return e.Err
}

// NewAIError creates an AIError of the given kind.
func NewAIError(kind AIErrorKind, msg string, err error) *AIError {
	return &AIError{Kind: kind, Message: msg, Err: err}
}
