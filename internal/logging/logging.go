// Package logging builds the service's charmbracelet/log console logger.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"tasks-api/internal/config"
)

// Options holds configuration for the console logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
	Prefix          string
}

// DefaultOptions returns the options used when no config is supplied.
func DefaultOptions() Options {
	return Options{
		Level:           log.InfoLevel,
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "tasks-api",
	}
}

// OptionsFromConfig maps the application config onto logger options.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}
	if cfg.Application.Debug {
		opts.Level = log.DebugLevel
	}
	opts.Formatter = FormatterFor(cfg.Application.LogFormat)
	return opts
}

// FormatterFor returns the formatter named by a config log format.
func FormatterFor(format string) log.Formatter {
	switch format {
	case config.LogFormatJSON:
		return log.JSONFormatter
	case config.LogFormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// New creates a logger writing to w.
func New(w io.Writer, opts Options) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          opts.Prefix,
	})
}

// NewFromConfig creates a stderr logger configured from cfg.
func NewFromConfig(cfg *config.Config) *log.Logger {
	return New(os.Stderr, OptionsFromConfig(cfg))
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return New(io.Discard, DefaultOptions())
}
