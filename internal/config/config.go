// Package config handles citex configuration.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/decentrajournal/citex/internal/export"
)

// Log levels accepted by log_level.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config represents configuration stored in ~/.config/citex/config.yml.
type Config struct {
	DefaultJournal   string `yaml:"default_journal"`   // Substituted for a missing journal
	DefaultPublisher string `yaml:"default_publisher"` // Substituted for a missing publisher
	DefaultFormat    string `yaml:"default_format"`    // Used when --format is not given
	Input            string `yaml:"input,omitempty"`   // Default JSONL citations file
	EscapeLatex      bool   `yaml:"escape_latex"`      // Escape LaTeX specials in BibTeX output
	LogLevel         string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DefaultJournal:   export.DefaultJournal,
		DefaultPublisher: export.DefaultPublisher,
		DefaultFormat:    string(export.FormatBibTeX),
		LogLevel:         LogLevelInfo,
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultJournal, validation.Required),
		validation.Field(&c.DefaultPublisher, validation.Required),
		validation.Field(&c.DefaultFormat, validation.Required, validation.By(knownFormat)),
		validation.Field(&c.LogLevel, validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)),
	)
}

func knownFormat(value any) error {
	name, _ := value.(string)
	if _, err := export.ParseFormat(name); err != nil {
		return fmt.Errorf("must be one of %s", formatNames())
	}
	return nil
}

func formatNames() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// Format returns the configured default format. Call Validate first.
func (c *Config) Format() export.Format {
	f, _ := export.ParseFormat(c.DefaultFormat)
	return f
}

// SlogLevel maps log_level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ExporterOptions returns the export options this configuration implies.
func (c *Config) ExporterOptions() []export.Option {
	return []export.Option{
		export.WithDefaults(export.Defaults{
			Journal:   c.DefaultJournal,
			Publisher: c.DefaultPublisher,
		}),
		export.WithLatexEscaping(c.EscapeLatex),
	}
}
