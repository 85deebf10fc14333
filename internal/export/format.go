package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/decentrajournal/citex/internal/reference"
)

// Format names an export format.
type Format string

// Supported formats.
const (
	FormatBibTeX  Format = "bibtex"
	FormatRIS     Format = "ris"
	FormatCSLJSON Format = "csl-json"
	FormatText    Format = "text"
)

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

var formatAliases = map[string]Format{
	"bibtex":   FormatBibTeX,
	"bib":      FormatBibTeX,
	"ris":      FormatRIS,
	"csl-json": FormatCSLJSON,
	"csljson":  FormatCSLJSON,
	"csl":      FormatCSLJSON,
	"json":     FormatCSLJSON,
	"text":     FormatText,
	"txt":      FormatText,
	"plain":    FormatText,
}

// Formats returns the supported formats in display order.
func Formats() []Format {
	return []Format{FormatBibTeX, FormatRIS, FormatCSLJSON, FormatText}
}

// ParseFormat resolves a format name or alias, ignoring case.
func ParseFormat(name string) (Format, error) {
	f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Extension returns the conventional file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatBibTeX:
		return ".bib"
	case FormatRIS:
		return ".ris"
	case FormatCSLJSON:
		return ".json"
	case FormatText:
		return ".txt"
	default:
		return ""
	}
}

// Export renders c in format f.
func (e *Exporter) Export(f Format, c reference.Citation) (string, error) {
	switch f {
	case FormatBibTeX:
		return e.ToBibTeX(c)
	case FormatRIS:
		return e.ToRIS(c)
	case FormatCSLJSON:
		return e.ToCSLJSON(c)
	case FormatText:
		return e.ToPlainText(c)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
