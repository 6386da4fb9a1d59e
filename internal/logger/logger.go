package logger

import (
	"io"
	"os"
	"time"

	"codeberg.org/mutker/errschema/internal/errors"
	"github.com/rs/zerolog"
)

// Silent until Init is called by the embedding program.
var log = zerolog.Nop()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger writing to stderr
func Init(level LogLevel, jsonOutput bool) {
	InitWriter(os.Stderr, level, jsonOutput)
}

// InitWriter initializes the logger with an explicit destination
func InitWriter(w io.Writer, level LogLevel, jsonOutput bool) {
	if jsonOutput {
		log = zerolog.New(w).With().Timestamp().Logger()
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	}

	SetLogLevel(level)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// ParseLevel maps a configured level name to a LogLevel
func ParseLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warning", "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return WarnLevel, false
	}
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return &LogEvent{log.Error().
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

// WithSchema attaches the category and message of an error schema to an event
func WithSchema(e *LogEvent, errorType, msg string) *LogEvent {
	return &LogEvent{e.Str("error_type", errorType).Str("error_msg", msg)}
}

type global struct{}

func (global) Debug() *LogEvent                         { return Debug() }
func (global) Info() *LogEvent                          { return Info() }
func (global) Warn() *LogEvent                          { return Warn() }
func (global) Error() *LogEvent                         { return Error() }
func (global) ErrorWithCode(err errors.Error) *LogEvent { return ErrorWithCode(err) }

// Default returns a Logger backed by the package-level logger
func Default() Logger {
	return global{}
}
