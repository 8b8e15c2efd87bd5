package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger behind a small structured-logging API so the
// rest of the application never imports zerolog directly.
type Logger struct {
	zlog zerolog.Logger
}

// New creates a Logger for the given environment: pretty colored console
// output at debug level in development, JSON at info level otherwise.
func New(env string) *Logger {
	var output io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if env == "development" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		level = zerolog.DebugLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	zlog := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zlog: zlog}
}

// Debug logs a debug message with optional fields.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	emit(l.zlog.Debug(), msg, fields)
}

// Info logs an info message with optional fields.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	emit(l.zlog.Info(), msg, fields)
}

// Warn logs a warning message with optional fields.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	emit(l.zlog.Warn(), msg, fields)
}

// Error logs an error message with an error and optional fields.
func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	emit(l.zlog.Error().Err(err), msg, fields)
}

// Fatal logs a fatal message and exits the application.
func (l *Logger) Fatal(msg string, err error, fields map[string]interface{}) {
	emit(l.zlog.Fatal().Err(err), msg, fields)
}

// With creates a child logger carrying additional context fields.
func (l *Logger) With(fields map[string]interface{}) *Logger {
	ctx := l.zlog.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{zlog: ctx.Logger()}
}

// WithRequestID creates a child logger with a request ID field.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		zlog: l.zlog.With().Str("request_id", requestID).Logger(),
	}
}

// GetZerolog returns the underlying zerolog.Logger for advanced usage.
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zlog
}

func emit(event *zerolog.Event, msg string, fields map[string]interface{}) {
	for key, value := range fields {
		event = event.Interface(key, value)
	}
	event.Msg(msg)
}
