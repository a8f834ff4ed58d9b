package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// default logger instance
	defaultLogger *slog.Logger
)

// sets up a development logger until Init is called with real config
func init() {
	defaultLogger = New(os.Getenv("ENVIRONMENT"), "")
}

// builds a logger for the given environment and level.
// production gets JSON on stdout, everything else human-readable text on stderr.
func New(environment, level string) *slog.Logger {
	var out io.Writer = os.Stderr
	if environment == "production" {
		out = os.Stdout
	}

	return NewWithWriter(out, environment, level)
}

// same as New but writes to w (used by tests)
func NewWithWriter(w io.Writer, environment, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level, environment),
	}

	if environment == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// replaces the default logger
func Init(environment, level string) {
	SetDefault(New(environment, level))
}

// swaps the default logger; also routes the stdlib log package through it
func SetDefault(l *slog.Logger) {
	if l == nil {
		return
	}

	defaultLogger = l
	slog.SetDefault(l)
}

// maps a level name to a slog level. empty picks debug in development, info elsewhere.
func ParseLevel(level, environment string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	if environment == "" || environment == "development" {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// reports whether name is a level ParseLevel understands
func IsValidLevel(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}

// returns the default logger instance
func Default() *slog.Logger {
	return defaultLogger
}

// returns the logger stored in ctx, or the default one
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return defaultLogger
	}

	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return defaultLogger
}

// adds logger to context
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

type loggerKey struct{}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with context
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
