package logger

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/oseayemenre/alexandria/internal/config"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{
		logger: logger,
	}
}

// New builds the application logger: text output for dev, JSON for prod.
func New(env string, w io.Writer) (*SlogLogger, error) {
	var handler slog.Handler

	switch env {
	case "dev":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case "prod":
		handler = slog.NewJSONHandler(w, nil)
	default:
		return nil, fmt.Errorf("%w, got %q", config.ErrInvalidEnv, env)
	}

	base := slog.New(handler).With(
		slog.String("app", "alexandria"),
		slog.String("runtime", runtime.Version()),
		slog.String("os", runtime.GOOS),
		slog.String("architecture", runtime.GOARCH),
		slog.String("version", "1.0"),
	)

	return NewSlogLogger(base), nil
}

func Discard() *SlogLogger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
