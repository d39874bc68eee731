package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// contextKey is the type for context keys
type contextKey string

// RequestIDKey is the context key for request IDs
const RequestIDKey contextKey = "request_id"

// Config holds logging configuration
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, text
	Output io.Writer
}

// Logger wraps zerolog for application logging
type Logger struct {
	logger zerolog.Logger
}

// New creates a new logger with the given configuration
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "text" {
		// Pretty console output for development
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	return &Logger{
		logger: zerolog.New(output).
			Level(level).
			With().
			Timestamp().
			Str("service", "fyyur").
			Logger(),
	}
}

// SetGlobalLogger makes logger the target of the package-level functions
func SetGlobalLogger(logger *Logger) {
	log.Logger = logger.logger
}

// Zerolog exposes the underlying logger
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.logger
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(err error, msg string) {
	l.logger.Error().Err(err).Msg(msg)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(err error, msg string) {
	l.logger.Fatal().Err(err).Msg(msg)
}

// WithContext returns the global logger annotated with the request ID found in ctx
func WithContext(ctx context.Context) *zerolog.Logger {
	logger := log.With()

	if requestID := RequestID(ctx); requestID != "" {
		logger = logger.Str("request_id", requestID)
	}

	contextLogger := logger.Logger()
	return &contextLogger
}

// RequestID returns the request ID stored in ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}
