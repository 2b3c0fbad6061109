package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/movetable/internal/models"
)

// MockViewerService is a mock implementation of services.ViewerService
type MockViewerService struct {
	mock.Mock
}

func (m *MockViewerService) Submit(ctx context.Context, rawURL string) (*models.GameSummary, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSummary), args.Error(1)
}

func (m *MockViewerService) Game(ctx context.Context, gameID string) (*models.GameSummary, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameSummary), args.Error(1)
}
