package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"docsumm/internal/config"
	"docsumm/internal/domain"
)

// UploadInput is the DTO for a single uploaded document. A nil File means the
// request carried no file.
type UploadInput struct {
	Filename string
	Size     int64
	File     io.Reader
}

// ChatInput is the DTO for a question about previously extracted text.
type ChatInput struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// ExtractResult is the outcome of an extract-only request.
type ExtractResult struct {
	Text     string
	Filename string
}

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(doc domain.UploadedDocument) (string, error)
	SupportedTypes() []string
}

// DocumentService runs the validate, extract and summarize pipeline.
type DocumentService interface {
	Validate(input UploadInput) error
	ExtractText(ctx context.Context, input UploadInput) (*ExtractResult, error)
	SummarizeDocument(ctx context.Context, input UploadInput) (string, error)
	ChatWithDocument(ctx context.Context, input ChatInput) (string, error)
	AcceptedTypes() []string
}

type documentService struct {
	extractor  TextExtractor
	summarizer SummarizerService
	cfg        config.UploadConfig
	accepted   []string
}

// NewDocumentService creates a new DocumentService implementation. Uploads are
// accepted only for types that are both configured and extractable.
func NewDocumentService(
	extractor TextExtractor,
	summarizer SummarizerService,
	cfg *config.UploadConfig,
) DocumentService {
	var accepted []string
	for _, t := range extractor.SupportedTypes() {
		if cfg.IsAllowed(t) {
			accepted = append(accepted, t)
		}
	}

	return &documentService{
		extractor:  extractor,
		summarizer: summarizer,
		cfg:        *cfg,
		accepted:   accepted,
	}
}

// AcceptedTypes returns the lower-cased extensions uploads may carry.
func (s *documentService) AcceptedTypes() []string {
	return append([]string(nil), s.accepted...)
}

// Validate checks an upload against presence, size and type rules. The first
// failing rule is reported.
func (s *documentService) Validate(input UploadInput) error {
	if input.File == nil {
		return &domain.ValidationError{Message: domain.ErrFileRequired.Error()}
	}
	if input.Size <= 0 {
		return domain.NewValidationError("the uploaded file is empty")
	}
	if input.Size > s.cfg.MaxBytes() {
		return domain.NewValidationError("file size exceeds maximum limit of %s", s.cfg.MaxSizeLabel())
	}
	if !s.isAccepted(domain.FileExtension(input.Filename)) {
		return domain.NewValidationError("invalid file type; only %s files are allowed", strings.Join(s.accepted, ", "))
	}
	return nil
}

func (s *documentService) isAccepted(ext string) bool {
	for _, t := range s.accepted {
		if t == ext {
			return true
		}
	}
	return false
}

func (s *documentService) ExtractText(ctx context.Context, input UploadInput) (*ExtractResult, error) {
	text, err := s.extract(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ExtractResult{Text: text, Filename: input.Filename}, nil
}

func (s *documentService) SummarizeDocument(ctx context.Context, input UploadInput) (string, error) {
	text, err := s.extract(ctx, input)
	if err != nil {
		return "", err
	}

	summary, err := s.summarizer.Summarize(ctx, text)
	if err != nil {
		log.Printf("documentService.SummarizeDocument: summarization failed for %q: %v", input.Filename, err)
		return "", err
	}

	log.Printf("documentService.SummarizeDocument: generated summary for %q", input.Filename)
	return summary, nil
}

func (s *documentService) ChatWithDocument(ctx context.Context, input ChatInput) (string, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return "", &domain.ValidationError{Message: domain.ErrQuestionRequired.Error()}
	}
	documentContext := strings.TrimSpace(input.Context)
	if documentContext == "" {
		return "", &domain.ValidationError{Message: domain.ErrContextRequired.Error()}
	}

	answer, err := s.summarizer.Answer(ctx, question, documentContext)
	if err != nil {
		log.Printf("documentService.ChatWithDocument: answer failed: %v", err)
		return "", err
	}
	return answer, nil
}

func (s *documentService) extract(ctx context.Context, input UploadInput) (string, error) {
	if err := s.Validate(input); err != nil {
		log.Printf("documentService: rejected upload %q: %v", input.Filename, err)
		return "", err
	}

	log.Printf("documentService: processing file %s (%d bytes)", input.Filename, input.Size)

	content, err := s.readContent(input)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("documentService: %w", err)
	}

	text, err := s.extractor.Extract(domain.UploadedDocument{
		Filename: input.Filename,
		Size:     int64(len(content)),
		Content:  content,
	})
	if err != nil {
		log.Printf("documentService: text extraction failed for %q: %v", input.Filename, err)
		return "", err
	}

	log.Printf("documentService: extracted %d characters from %s", len([]rune(text)), input.Filename)
	return text, nil
}

// readContent reads the upload, refusing bodies larger than the configured limit
// even when the declared size understated them.
func (s *documentService) readContent(input UploadInput) ([]byte, error) {
	limit := s.cfg.MaxBytes()
	content, err := io.ReadAll(io.LimitReader(input.File, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading uploaded file: %w", err)
	}
	if int64(len(content)) > limit {
		return nil, domain.NewValidationError("file size exceeds maximum limit of %s", s.cfg.MaxSizeLabel())
	}
	if len(content) == 0 {
		return nil, domain.NewValidationError("the uploaded file is empty")
	}
	return content, nil
}
