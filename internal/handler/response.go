package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docsumm/internal/domain"
	"docsumm/internal/llm"
)

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Error  string `json:"error" example:"file is required"`
	Status string `json:"status" example:"failed"`
}

// RespondError sends a failure envelope with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg, Status: domain.StatusFailed})
}

// MapDomainError translates pipeline errors to HTTP status codes and client-safe messages.
func MapDomainError(err error) (status int, msg string) {
	var valErr *domain.ValidationError
	var extErr *domain.ExtractionError
	var aiErr *domain.AIError
	switch {
	case errors.As(err, &valErr):
		return http.StatusBadRequest, valErr.Message
	case errors.As(err, &extErr):
		return http.StatusUnprocessableEntity, extErr.Reason
	case errors.As(err, &aiErr):
		return http.StatusServiceUnavailable, aiErr.Message
	default:
		return http.StatusInternalServerError, "an internal error occurred"
	}
}

// HandleError maps a pipeline error and sends the appropriate error response.
// Rate-limited provider failures carry the provider's Retry-After hint.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	requestID, _ := c.Get("request_id")
	if status >= 500 {
		log.Printf("[%s] request failed (%d): %v", requestID, status, err)
	}

	var rlErr *llm.RateLimitError
	if errors.As(err, &rlErr) {
		c.Header("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
	}
	RespondError(c, status, msg)
}
