package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/movetable/internal/errors"
)

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		name           string
		upstream       int
		reason         string
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "not found passes through",
			upstream:       404,
			reason:         "Not Found",
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Failed to fetch PGN: 404 Not Found",
		},
		{
			name:           "server error becomes bad gateway",
			upstream:       500,
			reason:         "Internal Server Error",
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Failed to fetch PGN: 500 Internal Server Error",
		},
		{
			name:           "rate limited",
			upstream:       429,
			reason:         "Too Many Requests",
			expectedStatus: http.StatusBadGateway,
			expectedMsg:    "Failed to fetch PGN: 429 Too Many Requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.NewHTTPError(tt.upstream, tt.reason)
			assert.Equal(t, errors.ErrCodeHTTP, err.Code)
			assert.Equal(t, tt.expectedStatus, err.Status)
			assert.Equal(t, tt.upstream, err.UpstreamStatus)
			assert.Equal(t, tt.expectedMsg, err.Message)
		})
	}
}

func TestAppError_UnwrapAndIs(t *testing.T) {
	cause := stderrors.New("unexpected token")
	err := errors.NewParseError(cause)

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, &errors.AppError{Code: errors.ErrCodeParse}))
	assert.False(t, stderrors.Is(err, &errors.AppError{Code: errors.ErrCodeHTTP}))
	assert.Contains(t, err.Error(), "PARSE_ERROR")
	assert.Contains(t, err.Error(), "unexpected token")
}

func TestCode(t *testing.T) {
	wrapped := fmt.Errorf("resolve: %w", errors.NewInvalidURLError())

	assert.Equal(t, errors.ErrCodeInvalidURL, errors.Code(wrapped))
	assert.Equal(t, errors.ErrCodeNetworkFailure, errors.Code(errors.NewNetworkError(stderrors.New("dial tcp"))))
	assert.Equal(t, "", errors.Code(stderrors.New("plain")))
	assert.Equal(t, "", errors.Code(nil))
}

func TestUserMessages(t *testing.T) {
	assert.Equal(t, "Please enter a valid Lichess game URL.", errors.NewInvalidURLError().Message)
	assert.Equal(t, "Could not extract game ID from URL.", errors.NewIDExtractionError().Message)
	assert.Equal(t, "Error: connection refused", errors.NewNetworkError(stderrors.New("connection refused")).Message)
	assert.Equal(t, http.StatusConflict, errors.NewSupersededError(nil).Status)
}
