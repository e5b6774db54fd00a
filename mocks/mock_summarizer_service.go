package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSummarizerService is a mock implementation of service.SummarizerService.
type MockSummarizerService struct {
	mock.Mock
}

func (m *MockSummarizerService) Summarize(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockSummarizerService) Answer(ctx context.Context, question, documentContext string) (string, error) {
	args := m.Called(ctx, question, documentContext)
	return args.String(0), args.Error(1)
}

func (m *MockSummarizerService) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
