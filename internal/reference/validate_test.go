package reference

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCitation() Citation {
	return Citation{
		ID:      "m1",
		Type:    "article",
		Title:   "T",
		Authors: []Author{{Given: "A", Family: "B"}},
		Year:    2025,
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validCitation()))
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Citation)
		want   []string
	}{
		{"missing id", func(c *Citation) { c.ID = "" }, []string{"id"}},
		{"missing title", func(c *Citation) { c.Title = "" }, []string{"title"}},
		{"missing year", func(c *Citation) { c.Year = 0 }, []string{"year"}},
		{"nil authors", func(c *Citation) { c.Authors = nil }, []string{"authors"}},
		{"empty authors", func(c *Citation) { c.Authors = []Author{} }, []string{"authors"}},
		{
			name: "everything missing",
			mutate: func(c *Citation) {
				*c = Citation{}
			},
			want: []string{"authors", "id", "title", "year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCitation()
			tt.mutate(&c)

			err := Validate(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCitation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.want, verr.Fields)
			assert.Equal(t, "invalid-citation", verr.Kind())
		})
	}
}

func TestValidate_OptionalFieldsNotRequired(t *testing.T) {
	c := validCitation()
	c.Type = ""
	c.AddedAt = 0
	c.Authors = []Author{{Family: "OnlyFamily"}}
	assert.NoError(t, Validate(c))
}

func TestValidate_DoesNotMutate(t *testing.T) {
	c := Citation{Title: "  spaced  ", Authors: []Author{{Given: " g ", Family: " f "}}}
	before := c
	beforeAuthor := c.Authors[0]

	_ = Validate(c)

	assert.Equal(t, before.Title, c.Title)
	assert.Equal(t, beforeAuthor, c.Authors[0])
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{ID: "x", Fields: []string{"title", "year"}}
	assert.Equal(t, "invalid citation: missing required field(s): title, year", err.Error())
}

func TestAuthor_HasORCID(t *testing.T) {
	assert.True(t, Author{ORCID: "0000-0002-1825-0097"}.HasORCID())
	assert.False(t, Author{Given: "Jane", Family: "Smith"}.HasORCID())
}
