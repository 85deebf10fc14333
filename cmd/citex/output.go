package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		outputJSON(ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ExportResponse reports an export written to a file.
type ExportResponse struct {
	Status   string   `json:"status"`
	Path     string   `json:"path"`
	Format   string   `json:"format"`
	Exported int      `json:"exported"`
	Skipped  []string `json:"skipped,omitempty"`
	Copied   bool     `json:"copied,omitempty"`
}

// InvalidCitation describes one citation that failed validation.
type InvalidCitation struct {
	Line   int      `json:"line"`
	ID     string   `json:"id,omitempty"`
	Fields []string `json:"fields"`
}

// ValidateResponse is the response for the validate command.
type ValidateResponse struct {
	Total   int               `json:"total"`
	Valid   int               `json:"valid"`
	Invalid []InvalidCitation `json:"invalid"`
}

// FormatInfo describes a supported export format.
type FormatInfo struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Default   bool   `json:"default,omitempty"`
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path             string `json:"path"`
	DefaultJournal   string `json:"default_journal"`
	DefaultPublisher string `json:"default_publisher"`
	DefaultFormat    string `json:"default_format"`
	Input            string `json:"input,omitempty"`
	EscapeLatex      bool   `json:"escape_latex"`
	LogLevel         string `json:"log_level"`
}
