package lichess_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/movetable/internal/errors"
	"github.com/vytor/movetable/internal/lichess"
)

func TestResolveGameURL_Valid(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{
			name:     "plain game URL",
			url:      "https://lichess.org/abcdefgh",
			expected: "abcdefgh",
		},
		{
			name:     "mixed case and digits",
			url:      "https://lichess.org/q7ZvsdUF",
			expected: "q7ZvsdUF",
		},
		{
			name:     "player perspective link",
			url:      "https://lichess.org/q7ZvsdUFtT9k",
			expected: "q7ZvsdUF",
		},
		{
			name:     "color suffix",
			url:      "https://lichess.org/q7ZvsdUF/black",
			expected: "q7ZvsdUF",
		},
		{
			name:     "move anchor",
			url:      "https://lichess.org/q7ZvsdUF#32",
			expected: "q7ZvsdUF",
		},
		{
			name:     "query string",
			url:      "https://lichess.org/q7ZvsdUF?theme=brown",
			expected: "q7ZvsdUF",
		},
		{
			name:     "surrounding whitespace",
			url:      "  https://lichess.org/abcdefgh\n",
			expected: "abcdefgh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := lichess.ResolveGameURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ref.GameID)
		})
	}
}

func TestResolveGameURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "other host", url: "http://example.com/abcdefgh"},
		{name: "plain http", url: "http://lichess.org/abcdefgh"},
		{name: "www subdomain", url: "https://www.lichess.org/abcdefgh"},
		{name: "empty string", url: ""},
		{name: "bare id", url: "abcdefgh"},
		{name: "host without slash", url: "https://lichess.org"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lichess.ResolveGameURL(tt.url)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidURL, errors.Code(err))
		})
	}
}

func TestResolveGameURL_IDExtractionFailed(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "no id", url: "https://lichess.org/"},
		{name: "too short", url: "https://lichess.org/abc"},
		{name: "nine characters", url: "https://lichess.org/abcdefghi"},
		{name: "non alphanumeric", url: "https://lichess.org/abcd-fgh"},
		{name: "nested page", url: "https://lichess.org/@/someplayer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := lichess.ResolveGameURL(tt.url)
			require.Error(t, err)

			var appErr *errors.AppError
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ErrCodeIDExtractionFailed, appErr.Code)
			assert.Equal(t, "Could not extract game ID from URL.", appErr.Message)
		})
	}
}

func TestValidateGameID(t *testing.T) {
	assert.NoError(t, lichess.ValidateGameID("abcdefgh"))
	assert.NoError(t, lichess.ValidateGameID("A1b2C3d4"))
	assert.Error(t, lichess.ValidateGameID("abcdefg"))
	assert.Error(t, lichess.ValidateGameID("abcdefgh1234"))
	assert.Error(t, lichess.ValidateGameID("abc/efgh"))
	assert.Error(t, lichess.ValidateGameID(""))
}
