package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/decentrajournal/citex/internal/reference"
)

const cslTypeArticleJournal = "article-journal"

// cslItem is the CSL-JSON subset produced for a citation. Absent optional
// values are omitted rather than written as null.
type cslItem struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	ContainerTitle string    `json:"container-title"`
	Issued         cslDate   `json:"issued"`
	Author         []cslName `json:"author"`
	Volume         string    `json:"volume,omitempty"`
	Issue          string    `json:"issue,omitempty"`
	DOI            string    `json:"DOI,omitempty"`
	URL            string    `json:"URL,omitempty"`
	Publisher      string    `json:"publisher"`
}

type cslDate struct {
	DateParts [][]int `json:"date-parts"`
}

type cslName struct {
	Family string `json:"family"`
	Given  string `json:"given"`
	ORCID  string `json:"ORCID,omitempty"`
}

// ToCSLJSON converts a citation to a CSL-JSON object, indented by two spaces.
func (e *Exporter) ToCSLJSON(c reference.Citation) (string, error) {
	item, err := e.cslItem(c)
	if err != nil {
		return "", err
	}
	return encodeJSON(item)
}

func (e *Exporter) cslItem(c reference.Citation) (cslItem, error) {
	if err := e.validate(FormatCSLJSON, c); err != nil {
		return cslItem{}, err
	}

	names := nameParts(c.Authors)
	authors := make([]cslName, len(names))
	for i, n := range names {
		authors[i] = cslName{Family: n.Family, Given: n.Given, ORCID: n.ORCID}
	}

	return cslItem{
		ID:             c.ID,
		Type:           cslTypeArticleJournal,
		Title:          c.Title,
		ContainerTitle: e.journal(c),
		Issued:         cslDate{DateParts: [][]int{{c.Year}}},
		Author:         authors,
		Volume:         c.Volume,
		Issue:          c.Issue,
		DOI:            c.DOI,
		URL:            c.URL,
		Publisher:      e.publisher(c),
	}, nil
}

// encodeJSON writes v as indented JSON without HTML escaping and without the
// encoder's trailing newline.
func encodeJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encoding CSL-JSON: %w", err)
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
