package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// BibTeXIndex records the keys and DOIs of entries already in a .bib file,
// so an append can skip citations that are present.
type BibTeXIndex struct {
	Keys map[string]bool   // citation key -> present
	DOIs map[string]string // normalized DOI -> citation key
}

// NewBibTeXIndex creates an empty BibTeX index.
func NewBibTeXIndex() *BibTeXIndex {
	return &BibTeXIndex{
		Keys: make(map[string]bool),
		DOIs: make(map[string]string),
	}
}

// HasEntry reports whether an entry with this DOI or, failing that, this key
// is already indexed.
func (idx *BibTeXIndex) HasEntry(key, doi string) bool {
	if d := normalizeDOI(doi); d != "" {
		if _, ok := idx.DOIs[d]; ok {
			return true
		}
	}
	return idx.Keys[key]
}

// Add records an entry so later HasEntry calls see it.
func (idx *BibTeXIndex) Add(key, doi string) {
	if key == "" {
		return
	}
	idx.Keys[key] = true
	if d := normalizeDOI(doi); d != "" {
		idx.DOIs[d] = key
	}
}

var (
	// @type{key,   (comments like @comment{...} have no key and are ignored)
	bibEntryStart = regexp.MustCompile(`@(\w+)\s*\{\s*([^,\s]+)\s*,`)
	// name = {value} or name = "value"; several may share a line
	bibFieldRe = regexp.MustCompile(`(\w+)\s*=\s*[{"]([^}"]*)[}"]`)
)

// ParseBibTeX indexes the entries read from r. Only entry keys and doi
// fields are recognized; everything else is skipped.
func ParseBibTeX(r io.Reader) (*BibTeXIndex, error) {
	idx := NewBibTeXIndex()
	scanner := bufio.NewScanner(r)

	var key string
	for scanner.Scan() {
		line := scanner.Text()

		if m := bibEntryStart.FindStringSubmatchIndex(line); m != nil {
			key = line[m[4]:m[5]]
			idx.Add(key, "")
			line = line[m[1]:]
		}
		if key == "" {
			continue
		}
		for _, f := range bibFieldRe.FindAllStringSubmatch(line, -1) {
			if strings.EqualFold(f[1], "doi") {
				idx.Add(key, f[2])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading bib entries: %w", err)
	}
	return idx, nil
}

// ParseBibTeXFile indexes an existing .bib file. A missing file yields an
// empty index.
func ParseBibTeXFile(path string) (*BibTeXIndex, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return NewBibTeXIndex(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening bib file: %w", err)
	}
	defer f.Close()

	return ParseBibTeX(f)
}

var doiPrefixes = []string{"https://doi.org/", "http://doi.org/", "doi.org/", "DOI:", "doi:"}

// normalizeDOI lowercases a DOI and strips resolver and scheme prefixes.
func normalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	for _, prefix := range doiPrefixes {
		doi = strings.TrimPrefix(doi, prefix)
	}
	return strings.ToLower(doi)
}

// AppendToBibFile appends BibTeX content to a file, creating it if needed.
// Content is separated from existing entries by a blank line; a new or empty
// file starts directly with the content.
func AppendToBibFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening bib file for append: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat bib file: %w", err)
	}
	if info.Size() > 0 {
		content = "\n" + content
	}

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("appending to bib file: %w", err)
	}
	return nil
}
