package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decentrajournal/citex/internal/clipboard"
	"github.com/decentrajournal/citex/internal/export"
	"github.com/decentrajournal/citex/internal/reference"
	"github.com/decentrajournal/citex/internal/storage"
)

var (
	exportFormat    string
	exportInput     string
	exportKeys      string
	exportOutput    string
	exportAppend    bool
	exportClipboard bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: bibtex, ris, csl-json, text (default from config)")
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "JSONL citations file, or - for stdin (default from config)")
	exportCmd.Flags().StringVar(&exportKeys, "keys", "", "Export only specified IDs (comma-separated)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportAppend, "append", false, "Append to --output, skipping entries already present (BibTeX only)")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Also copy the output to the clipboard")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export citations to BibTeX, RIS, CSL-JSON or plain text",
	Long: `Export citations to BibTeX, RIS, CSL-JSON or plain text.

Every citation must have an id, a title, a year and at least one author;
an invalid citation aborts the export and nothing is written.

Examples:
  citex export -i citations.jsonl
  citex export -i citations.jsonl --format ris --keys doe2024,m1
  citex export -i citations.jsonl --format csl-json -o refs.json
  citex export -i citations.jsonl -o refs.bib --append
  cat citations.jsonl | citex export -i - --format text --clipboard`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format := cfg.Format()
	if exportFormat != "" {
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
		format = f
	}

	input := exportInput
	if input == "" {
		input = cfg.Input
	}
	if input == "" {
		exitWithError(ExitError, "--input is required (or set input in the config file)")
	}

	if exportAppend {
		if format != export.FormatBibTeX {
			exitWithError(ExitError, "--append is only supported for bibtex")
		}
		if exportOutput == "" {
			exitWithError(ExitError, "--append requires --output")
		}
	}

	records, err := storage.ReadCitations(input)
	if err != nil {
		exitWithError(ExitDataError, "reading citations: %v", err)
	}

	cites := storage.Citations(records)
	if keys := splitKeys(exportKeys); len(keys) > 0 {
		cites, err = storage.SelectByIDs(records, keys)
		if err != nil {
			exitWithError(ExitError, "%v", err)
		}
	}

	var skipped []string
	if exportAppend {
		idx, err := export.ParseBibTeXFile(exportOutput)
		if err != nil {
			exitWithError(ExitError, "reading %s: %v", exportOutput, err)
		}
		cites, skipped = filterNewEntries(idx, cites)
	}

	out, err := newExporter().ExportList(cmd.Context(), format, cites)
	if err != nil {
		code := ExitError
		if errors.Is(err, reference.ErrInvalidCitation) {
			code = ExitDataError
		}
		exitWithError(code, "exporting: %v", err)
	}
	out = terminate(out)

	copied := false
	if exportClipboard {
		if err := clipboard.Copy(out); err != nil {
			logger.Warn("copy to clipboard failed", "error", err)
		} else {
			copied = true
		}
	}

	if exportOutput == "" {
		// Exported documents always go to stdout as-is, never wrapped in JSON
		fmt.Print(out)
		return nil
	}

	if err := writeExport(exportOutput, out, exportAppend); err != nil {
		exitWithError(ExitError, "writing %s: %v", exportOutput, err)
	}

	logger.Debug("export written", "path", exportOutput, "format", format, "count", len(cites))

	if humanOutput {
		outputHuman("Exported %d citation(s) as %s to %s\n", len(cites), format, exportOutput)
		if len(skipped) > 0 {
			outputHuman("Skipped %d already present: %s\n", len(skipped), strings.Join(skipped, ", "))
		}
		return nil
	}
	return outputJSON(ExportResponse{
		Status:   "exported",
		Path:     exportOutput,
		Format:   string(format),
		Exported: len(cites),
		Skipped:  skipped,
		Copied:   copied,
	})
}

// splitKeys parses a comma-separated key list, dropping blanks.
func splitKeys(s string) []string {
	var keys []string
	for _, key := range strings.Split(s, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// filterNewEntries drops citations already present in idx by DOI or key,
// including duplicates within cites itself. It returns the kept citations and
// the IDs of the skipped ones.
func filterNewEntries(idx *export.BibTeXIndex, cites []reference.Citation) ([]reference.Citation, []string) {
	var kept []reference.Citation
	var skipped []string
	for _, c := range cites {
		if idx.HasEntry(c.ID, c.DOI) {
			skipped = append(skipped, c.ID)
			continue
		}
		idx.Add(c.ID, c.DOI)
		kept = append(kept, c)
	}
	return kept, skipped
}

// terminate ensures non-empty output ends with a newline.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func writeExport(path, content string, appendMode bool) error {
	if appendMode {
		if content == "" {
			return nil
		}
		return export.AppendToBibFile(path, content)
	}
	return os.WriteFile(path, []byte(content), 0644)
}
