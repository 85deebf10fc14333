package export

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decentrajournal/citex/internal/reference"
)

const testORCID = "0000-0002-1825-0097"

func minimalCitation() reference.Citation {
	return reference.Citation{
		ID:      "m1",
		Title:   "T",
		Authors: []reference.Author{{Given: "A", Family: "B"}},
		Year:    2025,
		Type:    "article",
	}
}

func fullCitation() reference.Citation {
	return reference.Citation{
		ID:    "doe2024",
		Type:  "article",
		Title: "Decentralised Peer Review",
		Authors: []reference.Author{
			{Given: "John", Family: "Doe", ORCID: testORCID},
			{Given: "Jane", Family: "Smith"},
		},
		Year:      2024,
		Journal:   "Journal of Open Science",
		Volume:    "12",
		Issue:     "3",
		DOI:       "10.1234/dj.2024.001",
		URL:       "https://example.org/a?x=1&y=2",
		Publisher: "Open Press",
		AddedAt:   1717171717000,
	}
}

func TestExporters_RejectInvalidCitation(t *testing.T) {
	invalid := map[string]func(*reference.Citation){
		"missing id":    func(c *reference.Citation) { c.ID = "" },
		"missing title": func(c *reference.Citation) { c.Title = "" },
		"missing year":  func(c *reference.Citation) { c.Year = 0 },
		"no authors":    func(c *reference.Citation) { c.Authors = nil },
	}

	e := New()
	for name, mutate := range invalid {
		for _, f := range Formats() {
			t.Run(name+"/"+string(f), func(t *testing.T) {
				c := minimalCitation()
				mutate(&c)

				got, err := e.Export(f, c)
				require.Error(t, err)
				assert.Empty(t, got, "no partial output on failure")
				assert.True(t, errors.Is(err, reference.ErrInvalidCitation))

				// Same error as the validator, unchanged.
				assert.Equal(t, reference.Validate(c), err)
			})
		}
	}
}

func TestExporters_Deterministic(t *testing.T) {
	e := New()
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			c := fullCitation()
			first, err := e.Export(f, c)
			require.NoError(t, err)
			second, err := e.Export(f, c)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestExporters_DoNotMutateInput(t *testing.T) {
	e := New()
	c := fullCitation()
	c.Journal = ""
	c.Publisher = ""
	authors := append([]reference.Author(nil), c.Authors...)

	for _, f := range Formats() {
		_, err := e.Export(f, c)
		require.NoError(t, err)
	}

	assert.Empty(t, c.Journal)
	assert.Empty(t, c.Publisher)
	assert.Equal(t, authors, c.Authors)
}

func TestExporters_NeverRenderAddedAt(t *testing.T) {
	e := New()
	for _, f := range Formats() {
		got, err := e.Export(f, fullCitation())
		require.NoError(t, err)
		assert.NotContains(t, got, "1717171717000", string(f))
		assert.NotContains(t, got, "addedAt", string(f))
	}
}

func TestWithDefaults(t *testing.T) {
	e := New(WithDefaults(Defaults{Journal: "Acme Letters", Publisher: "Acme Press"}))
	c := minimalCitation()

	bib, err := e.ToBibTeX(c)
	require.NoError(t, err)
	assert.Contains(t, bib, "journal = {Acme Letters}")

	ris, err := e.ToRIS(c)
	require.NoError(t, err)
	assert.Contains(t, ris, "JO  - Acme Letters\n")
	assert.Contains(t, ris, "PB  - Acme Press\n")

	csl, err := e.ToCSLJSON(c)
	require.NoError(t, err)
	assert.Contains(t, csl, `"publisher": "Acme Press"`)
	assert.Contains(t, csl, `"container-title": "Acme Letters"`)
}

func TestWithDefaults_EmptyKeepsBuiltins(t *testing.T) {
	e := New(WithDefaults(Defaults{Journal: "Only Journal"}))

	ris, err := e.ToRIS(minimalCitation())
	require.NoError(t, err)
	assert.Contains(t, ris, "JO  - Only Journal\n")
	assert.Contains(t, ris, "PB  - "+DefaultPublisher+"\n")
}

func TestWithLogger_LogsRejection(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := New(WithLogger(logger))

	c := minimalCitation()
	c.Title = ""
	_, err := e.ToRIS(c)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "citation rejected")
	assert.Contains(t, out, "format=ris")
	assert.Contains(t, out, "id=m1")
}

func TestPackageLevelFunctions(t *testing.T) {
	c := minimalCitation()
	fns := map[string]func(reference.Citation) (string, error){
		"bibtex": ToBibTeX,
		"ris":    ToRIS,
		"csl":    ToCSLJSON,
		"text":   ToPlainText,
	}
	for name, fn := range fns {
		got, err := fn(c)
		require.NoError(t, err, name)
		assert.NotEmpty(t, strings.TrimSpace(got), name)
	}
}
