package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Format selects the slog handler used to render records.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config controls where and how records are written.
type Config struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to "info".
	Level string
	// Format is FormatJSON or FormatText. Defaults to FormatJSON.
	Format Format
	// Output is "stdout", "stderr", or "file". Defaults to "stdout".
	Output string
	// FilePath is the rotated log file path, used when Output is "file".
	FilePath string
	// MaxSizeMB is the per-file size cap before rotation (lumberjack
	// MaxSize). Defaults to 100.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept. Defaults to 3.
	MaxBackups int
	// MaxAgeDays is how long rotated files are kept. Defaults to 28.
	MaxAgeDays int
	// Compress gzips rotated files.
	Compress bool
}

// DefaultConfig returns a stdout, JSON, info-level configuration.
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     FormatJSON,
		Output:     "stdout",
		MaxSizeMB:  100,
		MaxBackups: 3,
		MaxAgeDays: 28,
	}
}

// Log is the package-level logger. Init or InitWithConfig replace it;
// callers that never call either get a DefaultConfig logger lazily via Get.
var Log *slog.Logger

// Init configures Log at the given level ("debug", "info", "warn", "error"),
// writing JSON records to stdout.
func Init(level string) {
	cfg := DefaultConfig()
	cfg.Level = level
	// DefaultConfig's output is already stdout/JSON; InitWithConfig cannot
	// fail for that combination.
	_ = InitWithConfig(cfg)
}

// InitWithConfig configures Log from cfg, opening cfg.FilePath if
// Output == "file".
func InitWithConfig(cfg Config) error {
	w, err := writerFor(cfg)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: levelFor(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == FormatText {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	Log = slog.New(handler)
	return nil
}

func writerFor(cfg Config) (io.Writer, error) {
	switch cfg.Output {
	case "stderr":
		return os.Stderr, nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("logging: Output is \"file\" but FilePath is empty")
		}
		return &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}, nil
	case "", "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("logging: unknown Output %q", cfg.Output)
	}
}

func levelFor(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// get returns Log, initializing it with DefaultConfig on first use so
// package functions never dereference a nil logger.
func get() *slog.Logger {
	if Log == nil {
		Init("info")
	}
	return Log
}

// NewRunID mints a fresh run identifier, used by cmd/whfc to tag a run's
// log records so concurrent runs stay distinguishable in aggregated output.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID returns a logger that attaches run_id to every record.
func WithRunID(runID string) *slog.Logger {
	return get().With(slog.String("run_id", runID))
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// Fatal logs at error level and terminates the process, matching the
// teacher's convention for unrecoverable CLI-entrypoint failures.
func Fatal(msg string, args ...any) {
	get().Error(msg, args...)
	os.Exit(1)
}
