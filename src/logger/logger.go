// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrInvalidLevel indicates an unknown diagnostic log level.
	ErrInvalidLevel = errors.New("logger: invalid log level")

	// ErrInvalidFormat indicates an unknown diagnostic log format.
	ErrInvalidFormat = errors.New("logger: invalid log format")
)

const (
	// FormatText renders diagnostics through [zerolog.ConsoleWriter].
	FormatText = "text"

	// FormatJSON renders diagnostics as JSON lines.
	FormatJSON = "json"
)

// Logger defines the interface for logging operations.
//
// This interface supports both CLI and [MCP] server modes, allowing seamless
// switching between human-readable output and structured logging.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stdout, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// MCPLogger implements Logger for [MCP] server mode on top of zerolog.
// It suppresses output when silent since MCP communication happens over
// stdio, but can write JSON lines to a separate destination such as stderr.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type MCPLogger struct {
	mu     sync.RWMutex
	log    zerolog.Logger
	silent bool
}

// NewMCPLogger creates a new [MCP] logger writing to writer.
// A nil writer discards output.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	m := &MCPLogger{silent: silent}
	m.SetOutput(writer)
	return m
}

// Printf logs a formatted message at info level.
func (m *MCPLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	m.log.Info().Msgf(format, v...)
}

// Println logs the operands at info level, spaced as [fmt.Sprint] does.
func (m *MCPLogger) Println(v ...any) {
	if m.silent {
		return
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	m.log.Info().Msg(fmt.Sprint(v...))
}

// SetOutput sets the output destination for the MCP logger.
func (m *MCPLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = zerolog.New(zerolog.SyncWriter(w)).With().Timestamp().Logger()
}

// Diagnostic returns the underlying structured logger. A silent MCPLogger
// returns a disabled logger.
func (m *MCPLogger) Diagnostic() zerolog.Logger {
	if m.silent {
		return zerolog.Nop()
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.log
}

// NewDiagnostic builds a structured logger for pipeline diagnostics.
//
// Parameters:
//   - w: Destination, usually os.Stderr. Nil discards output.
//   - level: One of zerolog's level names ("debug", "info", "warn", "error"). Empty means info.
//   - format: [FormatText] or [FormatJSON]. Empty means text.
//
// Returns:
//   - zerolog.Logger: Logger with timestamps enabled.
//   - error: [ErrInvalidLevel] or [ErrInvalidFormat] for unknown values.
func NewDiagnostic(w io.Writer, level, format string) (zerolog.Logger, error) {
	if w == nil {
		w = io.Discard
	}

	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil || parsed == zerolog.NoLevel {
			return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidLevel, level)
		}
		lvl = parsed
	}

	switch strings.ToLower(format) {
	case "", FormatText:
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	case FormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}
