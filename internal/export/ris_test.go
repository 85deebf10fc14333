package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decentrajournal/citex/internal/reference"
)

func TestToRIS_PerAuthorORCID(t *testing.T) {
	got, err := ToRIS(fullCitation())
	require.NoError(t, err)

	assert.Contains(t, got, "AU  - Doe, John\nAI  - 0000-0002-1825-0097\nAU  - Smith, Jane\nTI  - ")
	assert.Equal(t, 1, strings.Count(got, "AI  - "))
}

func TestToRIS_Terminator(t *testing.T) {
	got, err := ToRIS(minimalCitation())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got, "TY  - JOUR\n"))
	assert.True(t, strings.HasSuffix(got, "\nER  - \n"), "got %q", got)
}

func TestToRIS_OptionalFieldOmission(t *testing.T) {
	got, err := ToRIS(minimalCitation())
	require.NoError(t, err)

	for _, tag := range []string{"VL  - ", "IS  - ", "DO  - ", "UR  - ", "AI  - "} {
		assert.NotContains(t, got, tag)
	}
}

func TestToRIS_Defaults(t *testing.T) {
	got, err := ToRIS(minimalCitation())
	require.NoError(t, err)

	assert.Contains(t, got, "JO  - DecentraJournal\n")
	assert.Contains(t, got, "PB  - DecentraJournal Publishing\n")
}

func TestToRIS_TagOrder(t *testing.T) {
	got, err := ToRIS(fullCitation())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	tags := make([]string, len(lines))
	for i, line := range lines {
		tags[i] = line[:2]
	}
	assert.Equal(t, []string{"TY", "AU", "AI", "AU", "TI", "JO", "PY", "VL", "IS", "DO", "UR", "PB", "ER"}, tags)
}

func TestToRIS_AuthorWithoutGivenName(t *testing.T) {
	c := minimalCitation()
	c.Authors = []reference.Author{{Family: "WHO"}}

	got, err := ToRIS(c)
	require.NoError(t, err)
	assert.Contains(t, got, "AU  - WHO\n")
}
