package export

import (
	"strconv"
	"strings"

	"github.com/decentrajournal/citex/internal/reference"
)

// RIS tags, in emission order.
const (
	risType      = "TY"
	risAuthor    = "AU"
	risAuthorID  = "AI"
	risTitle     = "TI"
	risJournal   = "JO"
	risYear      = "PY"
	risVolume    = "VL"
	risIssue     = "IS"
	risDOI       = "DO"
	risURL       = "UR"
	risPublisher = "PB"
	risEnd       = "ER"
)

// ToRIS converts a citation to an RIS record. Only the journal-article type
// (JOUR) is produced.
func (e *Exporter) ToRIS(c reference.Citation) (string, error) {
	if err := e.validate(FormatRIS, c); err != nil {
		return "", err
	}

	lines := []field{always(func() string { return risLine(risType, "JOUR") })}
	for _, n := range nameParts(c.Authors) {
		lines = append(lines,
			always(func() string { return risLine(risAuthor, n.inverted()) }),
			when(n.HasORCID(), func() string { return risLine(risAuthorID, n.ORCID) }),
		)
	}
	lines = append(lines,
		always(func() string { return risLine(risTitle, c.Title) }),
		always(func() string { return risLine(risJournal, e.journal(c)) }),
		always(func() string { return risLine(risYear, strconv.Itoa(c.Year)) }),
		when(c.Volume != "", func() string { return risLine(risVolume, c.Volume) }),
		when(c.Issue != "", func() string { return risLine(risIssue, c.Issue) }),
		when(c.DOI != "", func() string { return risLine(risDOI, c.DOI) }),
		when(c.URL != "", func() string { return risLine(risURL, c.URL) }),
		always(func() string { return risLine(risPublisher, e.publisher(c)) }),
		always(func() string { return risLine(risEnd, "") }),
	)

	return strings.Join(renderFields(lines), "\n") + "\n", nil
}

// risLine formats "TAG  - value". The end tag keeps its trailing space.
func risLine(tag, value string) string {
	return tag + "  - " + value
}
