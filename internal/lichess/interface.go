package lichess

import "context"

// ClientInterface defines the interface for Lichess API operations.
// This interface enables testability by allowing mock implementations.
type ClientInterface interface {
	FetchPGN(ctx context.Context, gameID string) (string, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
