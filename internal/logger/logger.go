package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown values map to INFO.
func ParseLevel(s string) Level {
	lvl, ok := LookupLevel(s)
	if !ok {
		return INFO
	}
	return lvl
}

// LookupLevel reports whether s names a known level.
func LookupLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "WARN", "WARNING":
		return WARN, true
	case "ERROR":
		return ERROR, true
	default:
		return INFO, false
	}
}

// Logger is a levelled logger with a prefix and key/value fields.
// Loggers derived with With* share the writer and its lock.
type Logger struct {
	mu       *sync.Mutex
	out      io.Writer
	level    Level
	prefix   string
	fields   map[string]any
	colorize bool
	now      func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.out = w
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.level = level
	}
}

// WithPrefix sets a prefix for log messages.
func WithPrefix(prefix string) Option {
	return func(l *Logger) {
		l.prefix = prefix
	}
}

// WithColors enables or disables colorized output.
func WithColors(enabled bool) Option {
	return func(l *Logger) {
		l.colorize = enabled
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a new Logger with the given options.
func New(opts ...Option) *Logger {
	l := &Logger{
		mu:       &sync.Mutex{},
		out:      os.Stdout,
		level:    INFO,
		fields:   map[string]any{},
		colorize: true,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var defaultLogger = New()

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) clone() *Logger {
	c := *l
	return &c
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	c := l.clone()
	c.fields = merged
	return c
}

// WithError returns a new logger carrying err as the "error" field.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}
	return l.WithField("error", err.Error())
}

// WithPrefix returns a new logger with the given prefix.
func (l *Logger) WithPrefix(prefix string) *Logger {
	c := l.clone()
	c.prefix = prefix
	return c
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	var sb strings.Builder
	sb.WriteString(l.now().Format("2006-01-02 15:04:05.000"))
	sb.WriteByte(' ')
	if l.colorize {
		sb.WriteString(colorize(level))
	} else {
		fmt.Fprintf(&sb, "%-5s", level.String())
	}
	sb.WriteByte(' ')

	if l.prefix != "" {
		sb.WriteString("[" + l.prefix + "] ")
	}

	if _, file, line, ok := runtime.Caller(2); ok {
		if idx := strings.LastIndex(file, "/"); idx >= 0 {
			file = file[idx+1:]
		}
		fmt.Fprintf(&sb, "[%s:%d] ", file, line)
	}

	if len(args) > 0 {
		fmt.Fprintf(&sb, msg, args...)
	} else {
		sb.WriteString(msg)
	}

	// Sorted so that lines for the same request read the same way every time.
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, " %s=%v", k, l.fields[k])
	}
	sb.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.out, sb.String())
}

func colorize(level Level) string {
	var color string
	switch level {
	case DEBUG:
		color = "\033[36m" // Cyan
	case INFO:
		color = "\033[32m" // Green
	case WARN:
		color = "\033[33m" // Yellow
	case ERROR:
		color = "\033[31m" // Red
	default:
		color = "\033[0m"
	}
	return fmt.Sprintf("%s%-5s\033[0m", color, level.String())
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(DEBUG, msg, args...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.log(INFO, msg, args...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(WARN, msg, args...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.log(ERROR, msg, args...)
}

// Package-level functions that use the default logger.

func Debug(msg string, args ...any) { defaultLogger.log(DEBUG, msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.log(INFO, msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.log(WARN, msg, args...) }
func Error(msg string, args ...any) { defaultLogger.log(ERROR, msg, args...) }

type ctxKey struct{}

// FromContext returns the logger from the context, or the default logger.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return defaultLogger
	}
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// NewContext returns a new context with the given logger.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}
