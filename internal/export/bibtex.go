package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decentrajournal/citex/internal/reference"
)

// ToBibTeX converts a citation to a BibTeX entry.
func (e *Exporter) ToBibTeX(c reference.Citation) (string, error) {
	if err := e.validate(FormatBibTeX, c); err != nil {
		return "", err
	}

	fields := []field{
		always(func() string { return bibField("author", formatBibAuthors(nameParts(c.Authors))) }),
		always(func() string { return bibField("title", e.latex(c.Title)) }),
		always(func() string { return bibField("journal", e.latex(e.journal(c))) }),
		always(func() string { return bibField("year", strconv.Itoa(c.Year)) }),
		when(c.Volume != "", func() string { return bibField("volume", c.Volume) }),
		when(c.Issue != "", func() string { return bibField("issue", c.Issue) }),
		when(c.DOI != "", func() string { return bibField("doi", c.DOI) }),
		when(c.URL != "", func() string { return bibField("url", c.URL) }),
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@%s{%s,\n", entryType(c), c.ID)
	b.WriteString(strings.Join(renderFields(fields), ",\n"))
	b.WriteString("\n}\n")

	return b.String(), nil
}

func bibField(name, value string) string {
	return fmt.Sprintf("  %s = {%s}", name, value)
}

// entryType returns the BibTeX entry type, "article" unless the citation
// names another.
func entryType(c reference.Citation) string {
	if c.Type == "" {
		return "article"
	}
	return c.Type
}

// formatBibAuthors formats authors in BibTeX style: "Last, First and Last, First".
// An author's ORCID follows its given name as ", orcid = {...}".
func formatBibAuthors(names []authorName) string {
	formatted := make([]string, len(names))
	for i, n := range names {
		s := n.inverted()
		if n.HasORCID() {
			s += fmt.Sprintf(", orcid = {%s}", n.ORCID)
		}
		formatted[i] = s
	}
	return strings.Join(formatted, " and ")
}

func (e *Exporter) latex(s string) string {
	if !e.escapeLatex {
		return s
	}
	return escapeLatex(s)
}

// NewReplacer works in a single pass, so the backslashes it emits are never
// re-escaped.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	return latexReplacer.Replace(s)
}
