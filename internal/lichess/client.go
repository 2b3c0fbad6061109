package lichess

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/vytor/movetable/internal/logger"
)

const (
	DefaultBaseURL     = "https://lichess.org"
	DefaultTimeout     = 15 * time.Second
	DefaultMaxPGNBytes = 1 << 20
)

// StatusError is returned when the export endpoint answers with anything but 200.
type StatusError struct {
	StatusCode int
	Reason     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pgn export status %d %s", e.StatusCode, e.Reason)
}

// ErrPGNTooLarge is returned when the export body exceeds the configured limit.
var ErrPGNTooLarge = fmt.Errorf("pgn export exceeds size limit")

type Client struct {
	httpClient *http.Client
	baseURL    string
	maxBytes   int64
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout bounds the whole fetch, body included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithMaxPGNBytes caps the accepted body size.
func WithMaxPGNBytes(n int64) Option {
	return func(c *Client) {
		c.maxBytes = n
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		maxBytes:   DefaultMaxPGNBytes,
		log:        logger.Default().WithPrefix("lichess"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExportURL is the PGN export address for a game id.
func (c *Client) ExportURL(gameID string) string {
	return fmt.Sprintf("%s/game/export/%s.pgn", c.baseURL, gameID)
}

// FetchPGN downloads the PGN text of a game.
func (c *Client) FetchPGN(ctx context.Context, gameID string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("lichess").WithField("game_id", gameID)
	url := c.ExportURL(gameID)

	log.Debug("fetching pgn from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", err
	}
	req.Header.Set("Accept", "application/x-chess-pgn")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("failed to fetch pgn: %v", err)
		return "", fmt.Errorf("fetch pgn %s: %w", gameID, err)
	}
	defer resp.Body.Close()

	log.Debug("pgn response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Reason: reasonPhrase(resp)}
		log.Warn("pgn request failed: %v", statusErr)
		return "", statusErr
	}

	// Read one byte past the limit to tell "exactly at the limit" from "over it".
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		log.Warn("failed to read pgn body: %v", err)
		return "", fmt.Errorf("read pgn %s: %w", gameID, err)
	}
	if int64(len(body)) > c.maxBytes {
		log.Warn("pgn body larger than %d bytes", c.maxBytes)
		return "", ErrPGNTooLarge
	}

	log.Info("fetched pgn (%d bytes) in %v", len(body), time.Since(start))
	return string(body), nil
}

// reasonPhrase returns the reason part of the status line, falling back to
// the standard text when the server sent none.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
