// Package storage reads citation records from JSONL input.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/decentrajournal/citex/internal/reference"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// Record is one decoded citation and the line it came from.
type Record struct {
	Line     int
	Citation reference.Citation
}

// ReadCitations reads all records from a JSONL file, or from stdin when
// path is "-".
func ReadCitations(path string) ([]Record, error) {
	if path == StdinPath {
		return DecodeCitations(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening citations file: %w", err)
	}
	defer f.Close()

	return DecodeCitations(f)
}

// DecodeCitations decodes one citation per line. Blank lines are skipped.
func DecodeCitations(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var c reference.Citation
		if err := json.Unmarshal(line, &c); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		records = append(records, Record{Line: lineNum, Citation: c})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading citations: %w", err)
	}

	return records, nil
}

// Citations returns the citations of records, in order.
func Citations(records []Record) []reference.Citation {
	cites := make([]reference.Citation, len(records))
	for i, r := range records {
		cites[i] = r.Citation
	}
	return cites
}

// FindByID searches for a citation by ID.
func FindByID(records []Record, id string) (int, bool) {
	for i, r := range records {
		if r.Citation.ID == id {
			return i, true
		}
	}
	return -1, false
}

// SelectByIDs returns the citations with the given IDs, in the order given.
// An unknown ID is an error.
func SelectByIDs(records []Record, ids []string) ([]reference.Citation, error) {
	cites := make([]reference.Citation, 0, len(ids))
	for _, id := range ids {
		i, ok := FindByID(records, id)
		if !ok {
			return nil, fmt.Errorf("unknown key: %s", id)
		}
		cites = append(cites, records[i].Citation)
	}
	return cites, nil
}
