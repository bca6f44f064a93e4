package bitutil

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitutil-specific context. The core kernels
// are pure and allocation-free and do not log on their hot path; Logger
// exists for the one kind of event worth recording: allocator failures in
// the _ToNew variants.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses the default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithOffsets adds bit-offset fields to the logger.
func (l *Logger) WithOffsets(srcOffset, dstOffset int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("src_offset", srcOffset, "dst_offset", dstOffset),
	}
}

// LogAllocationFailure logs a buffer allocator failure from a _ToNew
// operation.
func (l *Logger) LogAllocationFailure(bitLength int64, err error) {
	l.Error("bitmap allocation failed",
		"bit_length", bitLength,
		"error", err,
	)
}

// pkgLogger is consulted only for allocator failures in the _ToNew
// variants. It never influences kernel output.
var pkgLogger = NoopLogger()

// SetLogger replaces the package-level logger used for allocation-failure
// reporting.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger = l
}
