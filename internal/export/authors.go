package export

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/decentrajournal/citex/internal/reference"
)

// authorName is the format-neutral rendering of one author. It holds a copy
// of the author, so serializers never touch the caller's slice.
type authorName struct {
	reference.Author
}

// nameParts converts authors to their structured form, preserving order.
func nameParts(authors []reference.Author) []authorName {
	names := make([]authorName, len(authors))
	for i, a := range authors {
		names[i] = authorName{Author: a}
	}
	return names
}

// inverted returns "Family, Given", or just "Family" without a given name.
func (n authorName) inverted() string {
	if n.Given == "" {
		return n.Family
	}
	return n.Family + ", " + n.Given
}

// abbreviated returns "Family, G.", or just "Family" without a given name.
func (n authorName) abbreviated() string {
	initial := n.initial()
	if initial == "" {
		return n.Family
	}
	return n.Family + ", " + initial + "."
}

// initial is the first character of the given name. Decomposed input is
// composed first so an accented initial keeps its accent.
func (n authorName) initial() string {
	given := norm.NFC.String(strings.TrimSpace(n.Given))
	if given == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(given)
	return string(r)
}
