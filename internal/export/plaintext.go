package export

import (
	"fmt"
	"strings"

	"github.com/decentrajournal/citex/internal/reference"
)

const doiResolver = "https://doi.org/"

// ToPlainText converts a citation to a single-line reference:
//
//	Doe, J. (ORCID: 0000-0002-1825-0097), Smith, J. (2024). Title. Journal, 12(3). https://doi.org/...
//
// Unlike the other formats, a missing journal drops the journal clause
// instead of substituting the default.
func (e *Exporter) ToPlainText(c reference.Citation) (string, error) {
	if err := e.validate(FormatText, c); err != nil {
		return "", err
	}

	parts := []field{
		always(func() string { return formatTextAuthors(nameParts(c.Authors)) }),
		always(func() string { return fmt.Sprintf(" (%d). %s. ", c.Year, c.Title) }),
		when(c.HasJournal(), func() string { return journalClause(c) }),
		when(c.DOI != "", func() string { return doiResolver + c.DOI }),
		when(c.DOI == "" && c.URL != "", func() string { return c.URL }),
	}

	return strings.Join(renderFields(parts), ""), nil
}

func formatTextAuthors(names []authorName) string {
	formatted := make([]string, len(names))
	for i, n := range names {
		s := n.abbreviated()
		if n.HasORCID() {
			s += fmt.Sprintf(" (ORCID: %s)", n.ORCID)
		}
		formatted[i] = s
	}
	return strings.Join(formatted, ", ")
}

// journalClause renders "Journal, Volume(Issue). ".
func journalClause(c reference.Citation) string {
	parts := []field{
		always(func() string { return c.Journal }),
		when(c.Volume != "", func() string { return ", " + c.Volume }),
		when(c.Issue != "", func() string { return "(" + c.Issue + ")" }),
		always(func() string { return ". " }),
	}
	return strings.Join(renderFields(parts), "")
}
