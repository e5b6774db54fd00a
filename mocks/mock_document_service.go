package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docsumm/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Validate(input service.UploadInput) error {
	args := m.Called(input)
	return args.Error(0)
}

func (m *MockDocumentService) ExtractText(ctx context.Context, input service.UploadInput) (*service.ExtractResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExtractResult), args.Error(1)
}

func (m *MockDocumentService) SummarizeDocument(ctx context.Context, input service.UploadInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) ChatWithDocument(ctx context.Context, input service.ChatInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) AcceptedTypes() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
