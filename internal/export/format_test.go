package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"bibtex", FormatBibTeX},
		{"BIB", FormatBibTeX},
		{"ris", FormatRIS},
		{"csl-json", FormatCSLJSON},
		{"csl", FormatCSLJSON},
		{"json", FormatCSLJSON},
		{" text ", FormatText},
		{"plain", FormatText},
		{"txt", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("endnote")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormat_Extension(t *testing.T) {
	assert.Equal(t, ".bib", FormatBibTeX.Extension())
	assert.Equal(t, ".ris", FormatRIS.Extension())
	assert.Equal(t, ".json", FormatCSLJSON.Extension())
	assert.Equal(t, ".txt", FormatText.Extension())
	assert.Equal(t, "", Format("nope").Extension())
}

func TestExport_UnknownFormat(t *testing.T) {
	got, err := New().Export(Format("nope"), minimalCitation())
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, got)
}

func TestFormats_AllParse(t *testing.T) {
	for _, f := range Formats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}
