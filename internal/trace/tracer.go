package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)

	// Flush ensures all buffered events are written.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the current tracing level.
	Level() Level

	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level  Level     // tracing level
	Format Format    // output format
	Output io.Writer // destination; nil means stderr
}

// New creates a Tracer based on Config.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	switch cfg.Format {
	case FormatText, FormatNDJSON:
	default:
		return nil, fmt.Errorf("unknown trace format: %v", cfg.Format)
	}
	w := cfg.Output
	if w == nil {
		w = nopCloser{os.Stderr}
	}
	return NewStreamTracer(w, cfg.Level, cfg.Format), nil
}

// nopCloser keeps Close from closing a shared stream such as stderr.
type nopCloser struct {
	io.Writer
}

// ParseFormat converts a string to a Format. The empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "ndjson":
		return FormatNDJSON, nil
	default:
		return FormatText, fmt.Errorf("invalid trace format: %q (expected: text|ndjson)", s)
	}
}
