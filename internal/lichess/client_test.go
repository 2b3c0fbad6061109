package lichess_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/movetable/internal/lichess"
)

const samplePGN = `[Event "Rated Blitz game"]
[Site "https://lichess.org/abcdefgh"]
[White "alice"]
[Black "bob"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0
`

func TestFetchPGN_Success(t *testing.T) {
	var gotPath, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(samplePGN))
	}))
	defer srv.Close()

	client := lichess.New(lichess.WithBaseURL(srv.URL + "/"))
	pgnText, err := client.FetchPGN(context.Background(), "abcdefgh")

	require.NoError(t, err)
	assert.Equal(t, samplePGN, pgnText)
	assert.Equal(t, "/game/export/abcdefgh.pgn", gotPath)
	assert.Equal(t, "application/x-chess-pgn", gotAccept)
}

func TestExportURL_Default(t *testing.T) {
	client := lichess.New()
	assert.Equal(t, "https://lichess.org/game/export/abcdefgh.pgn", client.ExportURL("abcdefgh"))
}

func TestFetchPGN_NonOKStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		reason string
	}{
		{name: "not found", status: http.StatusNotFound, reason: "Not Found"},
		{name: "rate limited", status: http.StatusTooManyRequests, reason: "Too Many Requests"},
		{name: "server error", status: http.StatusInternalServerError, reason: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			client := lichess.New(lichess.WithBaseURL(srv.URL))
			_, err := client.FetchPGN(context.Background(), "abcdefgh")

			var statusErr *lichess.StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.reason, statusErr.Reason)
		})
	}
}

func TestFetchPGN_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 65)))
	}))
	defer srv.Close()

	client := lichess.New(lichess.WithBaseURL(srv.URL), lichess.WithMaxPGNBytes(64))
	_, err := client.FetchPGN(context.Background(), "abcdefgh")

	assert.ErrorIs(t, err, lichess.ErrPGNTooLarge)
}

func TestFetchPGN_ExactlyAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	client := lichess.New(lichess.WithBaseURL(srv.URL), lichess.WithMaxPGNBytes(64))
	body, err := client.FetchPGN(context.Background(), "abcdefgh")

	require.NoError(t, err)
	assert.Len(t, body, 64)
}

func TestFetchPGN_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	client := lichess.New(lichess.WithBaseURL(srv.URL), lichess.WithTimeout(50*time.Millisecond))
	_, err := client.FetchPGN(context.Background(), "abcdefgh")

	require.Error(t, err)
	var statusErr *lichess.StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestFetchPGN_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePGN))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := lichess.New(lichess.WithBaseURL(srv.URL))
	_, err := client.FetchPGN(ctx, "abcdefgh")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchPGN_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := lichess.New(lichess.WithBaseURL(addr))
	_, err := client.FetchPGN(context.Background(), "abcdefgh")

	assert.Error(t, err)
}
