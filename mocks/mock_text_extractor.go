package mocks

import (
	"github.com/stretchr/testify/mock"

	"docsumm/internal/domain"
)

// MockTextExtractor is a mock implementation of service.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(doc domain.UploadedDocument) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}

func (m *MockTextExtractor) SupportedTypes() []string {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]string)
}
