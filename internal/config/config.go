package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/movetable/internal/logger"
)

type Config struct {
	Addr               string
	LogLevel           string
	LichessBaseURL     string
	FetchTimeout       time.Duration
	RequestTimeout     time.Duration
	MaxPGNBytes        int64
	FetchWorkers       int
	FetchQueueSize     int
	CORSAllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		LichessBaseURL:     strings.TrimRight(envOr("LICHESS_BASE_URL", "https://lichess.org"), "/"),
		FetchTimeout:       envDurationOr("FETCH_TIMEOUT", 15*time.Second),
		RequestTimeout:     envDurationOr("REQUEST_TIMEOUT", 30*time.Second),
		MaxPGNBytes:        int64(envIntOr("MAX_PGN_BYTES", 1<<20)),
		FetchWorkers:       envIntOr("FETCH_WORKERS", 4),
		FetchQueueSize:     envIntOr("FETCH_QUEUE_SIZE", 64),
		CORSAllowedOrigins: envListOr("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("ADDR cannot be empty"))
	}
	if _, ok := logger.LookupLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if u, err := url.Parse(c.LichessBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("LICHESS_BASE_URL must be an absolute URL (got %q)", c.LichessBaseURL))
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_TIMEOUT must be positive (got %s)", c.FetchTimeout))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT must be positive (got %s)", c.RequestTimeout))
	} else if c.FetchTimeout > c.RequestTimeout {
		errs = append(errs, fmt.Errorf("FETCH_TIMEOUT (%s) cannot exceed REQUEST_TIMEOUT (%s)", c.FetchTimeout, c.RequestTimeout))
	}
	if c.MaxPGNBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_PGN_BYTES must be positive (got %d)", c.MaxPGNBytes))
	}
	if c.FetchWorkers <= 0 {
		errs = append(errs, fmt.Errorf("FETCH_WORKERS must be positive (got %d)", c.FetchWorkers))
	}
	if c.FetchQueueSize < 0 {
		errs = append(errs, fmt.Errorf("FETCH_QUEUE_SIZE cannot be negative (got %d)", c.FetchQueueSize))
	}
	if len(c.CORSAllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS cannot be empty"))
	}

	return errors.Join(errs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}

func envListOr(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
