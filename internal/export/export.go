// Package export renders citations as BibTeX, RIS, CSL-JSON and plain text.
//
// Every exporter validates its input first and returns the validation error
// unchanged; no partial output is produced for an invalid citation. An
// Exporter is immutable after New and safe for concurrent use.
package export

import (
	"log/slog"

	"github.com/decentrajournal/citex/internal/reference"
)

// Fallback venue strings used when a citation omits them.
const (
	DefaultJournal   = "DecentraJournal"
	DefaultPublisher = "DecentraJournal Publishing"
)

// Defaults holds the strings substituted for an absent journal or publisher.
type Defaults struct {
	Journal   string
	Publisher string
}

// Exporter renders citations. The zero value is not usable; call New.
type Exporter struct {
	defaults    Defaults
	escapeLatex bool
	logger      *slog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithDefaults overrides the fallback journal and publisher. Empty fields
// keep the built-in values.
func WithDefaults(d Defaults) Option {
	return func(e *Exporter) {
		if d.Journal != "" {
			e.defaults.Journal = d.Journal
		}
		if d.Publisher != "" {
			e.defaults.Publisher = d.Publisher
		}
	}
}

// WithLatexEscaping escapes LaTeX special characters in BibTeX title and
// journal values.
func WithLatexEscaping(on bool) Option {
	return func(e *Exporter) {
		e.escapeLatex = on
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Exporter) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Exporter with the given options applied.
func New(opts ...Option) *Exporter {
	e := &Exporter{
		defaults: Defaults{
			Journal:   DefaultJournal,
			Publisher: DefaultPublisher,
		},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Exporter) validate(f Format, c reference.Citation) error {
	if err := reference.Validate(c); err != nil {
		e.logger.Debug("citation rejected",
			slog.String("format", string(f)),
			slog.String("id", c.ID),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

func (e *Exporter) journal(c reference.Citation) string {
	if c.HasJournal() {
		return c.Journal
	}
	return e.defaults.Journal
}

func (e *Exporter) publisher(c reference.Citation) string {
	if c.HasPublisher() {
		return c.Publisher
	}
	return e.defaults.Publisher
}

var std = New()

// ToBibTeX renders c as BibTeX using the built-in defaults.
func ToBibTeX(c reference.Citation) (string, error) { return std.ToBibTeX(c) }

// ToRIS renders c as RIS using the built-in defaults.
func ToRIS(c reference.Citation) (string, error) { return std.ToRIS(c) }

// ToCSLJSON renders c as CSL-JSON using the built-in defaults.
func ToCSLJSON(c reference.Citation) (string, error) { return std.ToCSLJSON(c) }

// ToPlainText renders c as a plain-text reference.
func ToPlainText(c reference.Citation) (string, error) { return std.ToPlainText(c) }
