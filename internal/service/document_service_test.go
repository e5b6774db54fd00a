package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docsumm/internal/config"
	"docsumm/internal/domain"
	"docsumm/internal/extractor"
	"docsumm/internal/service"
	"docsumm/mocks"
)

func testUploadConfig() config.UploadConfig {
	return config.UploadConfig{
		MaxFileSizeMB: 10,
		AllowedTypes:  []string{"pdf", "txt"},
	}
}

func upload(name string, content []byte) service.UploadInput {
	return service.UploadInput{
		Filename: name,
		Size:     int64(len(content)),
		File:     bytes.NewReader(content),
	}
}

func requireValidationError(t *testing.T, err error, contains string) {
	t.Helper()
	var valErr *domain.ValidationError
	require.True(t, errors.As(err, &valErr), "expected ValidationError, got %v", err)
	assert.Contains(t, valErr.Message, contains)
}

func newDocumentService(summarizer service.SummarizerService, cfg config.UploadConfig) service.DocumentService {
	return service.NewDocumentService(extractor.New(), summarizer, &cfg)
}

func TestDocumentService_Validate(t *testing.T) {
	svc := newDocumentService(new(mocks.MockSummarizerService), testUploadConfig())

	tests := []struct {
		name     string
		input    service.UploadInput
		contains string
	}{
		{"missing file", service.UploadInput{Filename: "a.txt", Size: 10}, "file is required"},
		{"empty file", upload("a.txt", nil), "the uploaded file is empty"},
		{"too large", service.UploadInput{Filename: "a.txt", Size: 11 * 1024 * 1024, File: strings.NewReader("x")}, "file size exceeds maximum limit of 10MB"},
		{"bad type", upload("image.png", []byte("data")), "invalid file type; only pdf, txt files are allowed"},
		{"empty beats bad type", upload("image.png", nil), "empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireValidationError(t, svc.Validate(tt.input), tt.contains)
		})
	}

	assert.NoError(t, svc.Validate(upload("REPORT.PDF", []byte("%PDF"))))
}

func TestDocumentService_ExtractText_Success(t *testing.T) {
	svc := newDocumentService(new(mocks.MockSummarizerService), testUploadConfig())

	result, err := svc.ExtractText(context.Background(), upload("test.txt", []byte("This is a test document.")))

	require.NoError(t, err)
	assert.Equal(t, "This is a test document.", result.Text)
	assert.Equal(t, "test.txt", result.Filename)
}

func TestDocumentService_ExtractText_TooLarge(t *testing.T) {
	cfg := testUploadConfig()
	cfg.MaxFileSizeBytes = 100
	svc := newDocumentService(new(mocks.MockSummarizerService), cfg)

	_, err := svc.ExtractText(context.Background(), upload("large.txt", bytes.Repeat([]byte("a"), 200)))

	requireValidationError(t, err, "size")
}

func TestDocumentService_ExtractText_AtLimit(t *testing.T) {
	cfg := testUploadConfig()
	cfg.MaxFileSizeBytes = 100
	svc := newDocumentService(new(mocks.MockSummarizerService), cfg)

	content := bytes.Repeat([]byte("a"), 100)
	require.NoError(t, svc.Validate(upload("exact.txt", content)))

	result, err := svc.ExtractText(context.Background(), upload("exact.txt", content))

	require.NoError(t, err)
	assert.Equal(t, string(content), result.Text)
}

func TestDocumentService_ExtractText_UnderstatedSize(t *testing.T) {
	cfg := testUploadConfig()
	cfg.MaxFileSizeBytes = 100
	svc := newDocumentService(new(mocks.MockSummarizerService), cfg)

	input := upload("large.txt", bytes.Repeat([]byte("a"), 200))
	input.Size = 50

	_, err := svc.ExtractText(context.Background(), input)

	requireValidationError(t, err, "size")
}

func TestDocumentService_ExtractText_ExtractionError(t *testing.T) {
	svc := newDocumentService(new(mocks.MockSummarizerService), testUploadConfig())

	_, err := svc.ExtractText(context.Background(), upload("blank.txt", []byte("   ")))

	var extErr *domain.ExtractionError
	require.True(t, errors.As(err, &extErr))
	assert.Equal(t, "text file is empty", extErr.Reason)
}

func TestDocumentService_SummarizeDocument_Success(t *testing.T) {
	summarizer := new(mocks.MockSummarizerService)
	svc := newDocumentService(summarizer, testUploadConfig())

	summarizer.On("Summarize", mock.Anything, "Quarterly numbers went up.").Return("Numbers rose.", nil)

	summary, err := svc.SummarizeDocument(context.Background(), upload("q.txt", []byte("Quarterly numbers went up.")))

	require.NoError(t, err)
	assert.Equal(t, "Numbers rose.", summary)
	summarizer.AssertExpectations(t)
}

func TestDocumentService_SummarizeDocument_ValidationSkipsPipeline(t *testing.T) {
	summarizer := new(mocks.MockSummarizerService)
	ext := new(mocks.MockTextExtractor)
	ext.On("SupportedTypes").Return([]string{"pdf", "txt"})
	cfg := testUploadConfig()
	svc := service.NewDocumentService(ext, summarizer, &cfg)

	_, err := svc.SummarizeDocument(context.Background(), upload("notes.docx", []byte("data")))

	requireValidationError(t, err, "invalid file type")
	ext.AssertNotCalled(t, "Extract", mock.Anything)
	summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}

func TestDocumentService_SummarizeDocument_ExtractionSkipsSummarizer(t *testing.T) {
	summarizer := new(mocks.MockSummarizerService)
	ext := new(mocks.MockTextExtractor)
	ext.On("SupportedTypes").Return([]string{"pdf", "txt"})
	cfg := testUploadConfig()
	svc := service.NewDocumentService(ext, summarizer, &cfg)

	ext.On("Extract", mock.AnythingOfType("domain.UploadedDocument")).
		Return("", domain.NewExtractionError("PDF file contains no pages"))

	_, err := svc.SummarizeDocument(context.Background(), upload("empty.pdf", []byte("%PDF")))

	var extErr *domain.ExtractionError
	require.True(t, errors.As(err, &extErr))
	summarizer.AssertNotCalled(t, "Summarize", mock.Anything, mock.Anything)
}

func TestDocumentService_SummarizeDocument_AIError(t *testing.T) {
	summarizer := new(mocks.MockSummarizerService)
	svc := newDocumentService(summarizer, testUploadConfig())

	aiErr := domain.NewAIError(domain.AIErrNotConfigured, "AI summarization is not configured", nil)
	summarizer.On("Summarize", mock.Anything, mock.Anything).Return("", aiErr)

	_, err := svc.SummarizeDocument(context.Background(), upload("q.txt", []byte("hello")))

	assert.ErrorIs(t, err, aiErr)
}

func TestDocumentService_ChatWithDocument(t *testing.T) {
	summarizer := new(mocks.MockSummarizerService)
	svc := newDocumentService(summarizer, testUploadConfig())

	summarizer.On("Answer", mock.Anything, "What is this about?", "A document about cats.").
		Return("Cats.", nil)

	answer, err := svc.ChatWithDocument(context.Background(), service.ChatInput{
		Question: "  What is this about?  ",
		Context:  "A document about cats.\n",
	})

	require.NoError(t, err)
	assert.Equal(t, "Cats.", answer)
	summarizer.AssertExpectations(t)
}

func TestDocumentService_ChatWithDocument_MissingFields(t *testing.T) {
	summarizer := new(mocks.MockSummarizerService)
	svc := newDocumentService(summarizer, testUploadConfig())

	_, err := svc.ChatWithDocument(context.Background(), service.ChatInput{Question: " ", Context: "ctx"})
	requireValidationError(t, err, "question is required")

	_, err = svc.ChatWithDocument(context.Background(), service.ChatInput{Question: "What is this about?", Context: ""})
	requireValidationError(t, err, "context is required")

	summarizer.AssertNotCalled(t, "Answer", mock.Anything, mock.Anything, mock.Anything)
}

func TestDocumentService_AcceptedTypes(t *testing.T) {
	cfg := testUploadConfig()
	cfg.AllowedTypes = []string{"txt", "docx", "pdf"}
	svc := newDocumentService(new(mocks.MockSummarizerService), cfg)

	assert.Equal(t, []string{"pdf", "txt"}, svc.AcceptedTypes())
	requireValidationError(t, svc.Validate(upload("letter.docx", []byte("data"))),
		"invalid file type; only pdf, txt files are allowed")
}

func TestDocumentService_AcceptedTypes_RestrictedByConfig(t *testing.T) {
	cfg := testUploadConfig()
	cfg.AllowedTypes = []string{"pdf"}
	svc := newDocumentService(new(mocks.MockSummarizerService), cfg)

	assert.Equal(t, []string{"pdf"}, svc.AcceptedTypes())
	requireValidationError(t, svc.Validate(upload("notes.txt", []byte("data"))),
		"only pdf files are allowed")
}
