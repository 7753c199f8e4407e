// Package logging provides a structured logger backed by zerolog.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with key-value convenience methods.
type Logger struct {
	zl     zerolog.Logger
	fields map[string]interface{}
}

var global atomic.Pointer[Logger]

func init() {
	global.Store(NewConsole(os.Stderr, zerolog.WarnLevel))
}

// NewConsole creates a logger with human-readable console output.
func NewConsole(w io.Writer, level zerolog.Level) *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}, level)
}

// NewWithWriter creates a JSON logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{
		zl:     zl,
		fields: make(map[string]interface{}),
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop(), fields: make(map[string]interface{})}
}

// SetGlobal sets the global logger instance. It is safe to call
// concurrently with Global.
func SetGlobal(logger *Logger) {
	global.Store(logger)
}

// Global returns the global logger instance.
func Global() *Logger {
	return global.Load()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.write(l.zl.Debug(), msg, fields)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...interface{}) {
	l.write(l.zl.Info(), msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.write(l.zl.Warn(), msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...interface{}) {
	l.write(l.zl.Error(), msg, fields)
}

// write applies stored and call-site fields, given as alternating keys and values.
func (l *Logger) write(e *zerolog.Event, msg string, fields []interface{}) {
	if e == nil {
		return
	}
	for k, v := range l.fields {
		addField(e, k, v)
	}
	for i := 0; i+1 < len(fields); i += 2 {
		addField(e, fmt.Sprint(fields[i]), fields[i+1])
	}
	e.Msg(msg)
}

func addField(e *zerolog.Event, key string, value interface{}) {
	switch v := value.(type) {
	case error:
		e.Str(key, v.Error())
	case time.Duration:
		e.Dur(key, v)
	default:
		e.Interface(key, v)
	}
}

// With creates a child logger with additional fields.
func (l *Logger) With(fields ...interface{}) *Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields)/2)
	for k, v := range l.fields {
		newFields[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		newFields[fmt.Sprint(fields[i])] = fields[i+1]
	}

	return &Logger{
		zl:     l.zl,
		fields: newFields,
	}
}

// Error logs an error message using the global logger.
func Error(msg string, fields ...interface{}) {
	Global().Error(msg, fields...)
}
