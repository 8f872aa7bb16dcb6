package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel sets the worker log level: debug, info, warn, error or off.
const EnvLogLevel = "VALIDATE_WORKER_LOG"

// LogLevelOff disables logging entirely.
const LogLevelOff = slog.Level(100)

func Initialize(workerName string) {
	slog.SetDefault(validateWorkerLogger(workerName))
}

// validateWorkerLogger returns a logger that writes JSON entries to stderr.
// stdout is reserved for the go-plugin handshake.
func validateWorkerLogger(workerName string) *slog.Logger {
	level := getLogLevel()
	if level == LogLevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,
	}
	// add worker name as source
	workerLongName := fmt.Sprintf("validate-worker-%s", workerName)
	return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions)).With("source", workerLongName)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return LogLevelOff
	}
}
