// Package xlogger builds log/slog loggers from a small configuration.
package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// LogType selects the handler: json or text.
	LogType string
	// AddSource attaches file:line to each record.
	AddSource bool
	// SourcePath is trimmed from source file names.
	SourcePath string
	// Output receives the records. Defaults to os.Stderr.
	Output io.Writer
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       getLogLevel(conf.Level),
		ReplaceAttr: replaceAttr(conf.SourcePath),
	}

	output := conf.Output
	if output == nil {
		output = os.Stderr
	}

	return slog.New(getHandler(conf.LogType, output, opts))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// ValidLevel reports whether level is a recognised level name.
func ValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
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

func getHandler(logType string, w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	if strings.ToLower(logType) == "json" {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

func replaceAttr(sourcePath string) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}

		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		file := source.File
		if sourcePath != "" {
			if index := strings.Index(file, sourcePath); index >= 0 {
				file = file[index+len(sourcePath):]
			}
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, source.Line))
	}
}
