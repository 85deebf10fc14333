// Package reference defines the citation record consumed by the exporters.
package reference

// Citation is a single bibliographic record.
//
// A Citation is treated as read-only once handed to an exporter; the
// exporters take it by value and never write through Authors.
type Citation struct {
	// Identity
	ID   string `json:"id"`   // Citation key, used as the BibTeX and CSL key
	Type string `json:"type"` // Entry type tag, e.g. "article"

	// Metadata
	Title   string   `json:"title"`
	Authors []Author `json:"authors"`
	Year    int      `json:"year"`

	// Venue
	Journal   string `json:"journal,omitempty"`
	Volume    string `json:"volume,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Publisher string `json:"publisher,omitempty"`

	// Locators
	DOI string `json:"doi,omitempty"`
	URL string `json:"url,omitempty"`

	// Bookkeeping, never rendered
	AddedAt int64 `json:"addedAt,omitempty"`
}

// HasJournal reports whether the citation names its journal.
func (c Citation) HasJournal() bool { return c.Journal != "" }

// HasPublisher reports whether the citation names its publisher.
func (c Citation) HasPublisher() bool { return c.Publisher != "" }
