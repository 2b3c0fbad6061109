package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLichessClient is a mock implementation of lichess.ClientInterface
type MockLichessClient struct {
	mock.Mock
}

func (m *MockLichessClient) FetchPGN(ctx context.Context, gameID string) (string, error) {
	args := m.Called(ctx, gameID)
	return args.String(0), args.Error(1)
}
