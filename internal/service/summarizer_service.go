package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"docsumm/internal/config"
	"docsumm/internal/domain"
	"docsumm/internal/llm"
	"docsumm/internal/port"
)

const (
	truncationMarker = "\n\n[Text truncated due to length...]"

	summarizeSystemPrompt = "You are a helpful assistant that creates clear, concise summaries of documents. " +
		"Focus on extracting the most important information."
	answerSystemPrompt = "You are a helpful assistant that answers questions about documents accurately and concisely."
)

// SummarizeInput is a single generation request. Question is only used in answer mode.
type SummarizeInput struct {
	Text     string
	Question string
	Mode     domain.SummaryMode
}

// SummarizerService produces summaries and answers from document text.
type SummarizerService interface {
	Summarize(ctx context.Context, text string) (string, error)
	Answer(ctx context.Context, question, documentContext string) (string, error)
	Configured() bool
}

type summarizerService struct {
	generator port.TextGenerator
	cfg       config.AIConfig
}

// NewSummarizerService creates a SummarizerService. A nil generator yields a service
// that fails every call with a not-configured error without touching the network.
func NewSummarizerService(generator port.TextGenerator, cfg *config.AIConfig) SummarizerService {
	if generator == nil {
		log.Printf("summarizerService: no AI credential configured for provider %q; summarization disabled", cfg.Provider)
	}
	return &summarizerService{
		generator: generator,
		cfg:       *cfg,
	}
}

func (s *summarizerService) Configured() bool {
	return s.generator != nil
}

func (s *summarizerService) Summarize(ctx context.Context, text string) (string, error) {
	return s.generate(ctx, SummarizeInput{Text: text, Mode: domain.ModeSummarize})
}

func (s *summarizerService) Answer(ctx context.Context, question, documentContext string) (string, error) {
	return s.generate(ctx, SummarizeInput{Text: documentContext, Question: question, Mode: domain.ModeAnswer})
}

func (s *summarizerService) generate(ctx context.Context, input SummarizeInput) (string, error) {
	if s.generator == nil {
		return "", domain.NewAIError(domain.AIErrNotConfigured, notConfiguredMessage(input.Mode), nil)
	}
	if strings.TrimSpace(input.Text) == "" {
		return "", domain.NewAIError(domain.AIErrEmptyInput, "no text provided for summarization", nil)
	}

	genInput := port.GenerateInput{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
	}
	switch input.Mode {
	case domain.ModeAnswer:
		genInput.MaxTokens = s.cfg.ChatMaxTokens
		genInput.Messages = []port.Message{
			{Role: port.RoleSystem, Content: answerSystemPrompt},
			{Role: port.RoleUser, Content: buildAnswerPrompt(limitRunes(input.Text, s.cfg.ContextChars), input.Question)},
		}
	default:
		genInput.MaxTokens = s.cfg.MaxTokens
		genInput.Messages = []port.Message{
			{Role: port.RoleSystem, Content: summarizeSystemPrompt},
			{Role: port.RoleUser, Content: buildSummarizePrompt(truncateText(input.Text, s.cfg.TruncateChars))},
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout())
	defer cancel()

	out, err := s.generator.Generate(callCtx, genInput)
	if err != nil {
		log.Printf("summarizerService.generate: %s call failed: %v", input.Mode, err)
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			err = errors.Join(err, context.DeadlineExceeded)
		}
		return "", classifyError(input.Mode, err)
	}

	if isTruncatedFinish(out.FinishReason) {
		log.Printf("summarizerService.generate: %s output from %s cut off at %d tokens (finish reason %q)",
			input.Mode, out.ModelUsed, genInput.MaxTokens, out.FinishReason)
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", domain.NewAIError(domain.AIErrEmptyResponse, "AI returned an empty summary", nil)
	}
	return text, nil
}

// isTruncatedFinish reports whether a provider stopped because it hit the
// output token limit. Each provider spells this differently.
func isTruncatedFinish(reason string) bool {
	switch strings.ToLower(reason) {
	case "length", "max_tokens":
		return true
	}
	return false
}

func buildSummarizePrompt(text string) string {
	return "Summarize this document clearly and concisely. Focus on the main ideas and key points:\n\n" + text
}

func buildAnswerPrompt(documentContext, question string) string {
	return fmt.Sprintf(`Based on the following document content, answer the user's question.

Document Content:
%s

User Question: %s

Answer the question based only on the information provided in the document. If the answer is not in the document, say so.`,
		documentContext, question)
}

// truncateText cuts text to maxChars runes and appends a marker when it was longer.
func truncateText(text string, maxChars int) string {
	if maxChars <= 0 || utf8.RuneCountInString(text) <= maxChars {
		return text
	}
	log.Printf("summarizerService: text truncated from %d to %d characters", utf8.RuneCountInString(text), maxChars)
	return limitRunes(text, maxChars) + truncationMarker
}

func limitRunes(text string, n int) string {
	if n <= 0 {
		return text
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}

func notConfiguredMessage(mode domain.SummaryMode) string {
	if mode == domain.ModeAnswer {
		return "AI service not configured"
	}
	return "AI summarization is not configured"
}

// classifyError maps a provider failure to a user-safe AIError. Typed errors win;
// otherwise the provider message is matched case-insensitively.
func classifyError(mode domain.SummaryMode, err error) *domain.AIError {
	var authErr *llm.AuthError
	var rlErr *llm.RateLimitError
	switch {
	case errors.As(err, &authErr):
		return domain.NewAIError(domain.AIErrInvalidCredential, "Invalid or missing API key", err)
	case errors.As(err, &rlErr):
		return domain.NewAIError(domain.AIErrRateLimited, "API rate limit exceeded. Please try again later.", err)
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewAIError(domain.AIErrTimeout, "Request timed out. Please try again.", err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api_key"):
		return domain.NewAIError(domain.AIErrInvalidCredential, "Invalid or missing API key", err)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate_limit"):
		return domain.NewAIError(domain.AIErrRateLimited, "API rate limit exceeded. Please try again later.", err)
	case strings.Contains(msg, "timeout"):
		return domain.NewAIError(domain.AIErrTimeout, "Request timed out. Please try again.", err)
	}

	if mode == domain.ModeAnswer {
		return domain.NewAIError(domain.AIErrProvider, "Failed to get AI response", err)
	}
	return domain.NewAIError(domain.AIErrProvider, "AI summarization failed", err)
}
