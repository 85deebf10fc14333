package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/decentrajournal/citex/internal/reference"
	"github.com/decentrajournal/citex/internal/storage"
)

var validateInput string

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "JSONL citations file, or - for stdin (default from config)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check citations for missing required fields",
	Long: `Check every citation in a JSONL file for a non-empty id, title, year
and author list. Exits with status 3 if any citation is invalid.

Examples:
  citex validate -i citations.jsonl
  citex validate -i citations.jsonl --human`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	input := validateInput
	if input == "" {
		input = cfg.Input
	}
	if input == "" {
		exitWithError(ExitError, "--input is required (or set input in the config file)")
	}

	records, err := storage.ReadCitations(input)
	if err != nil {
		exitWithError(ExitDataError, "reading citations: %v", err)
	}

	resp := validateRecords(records)

	if humanOutput {
		printValidateHuman(resp)
	} else if err := outputJSON(resp); err != nil {
		return err
	}

	if len(resp.Invalid) > 0 {
		os.Exit(ExitDataError)
	}
	return nil
}

// validateRecords validates each record and collects the failures.
func validateRecords(records []storage.Record) ValidateResponse {
	resp := ValidateResponse{Total: len(records), Invalid: []InvalidCitation{}}
	for _, r := range records {
		err := reference.Validate(r.Citation)
		if err == nil {
			resp.Valid++
			continue
		}

		invalid := InvalidCitation{Line: r.Line, ID: r.Citation.ID}
		var verr *reference.ValidationError
		if errors.As(err, &verr) {
			invalid.Fields = verr.Fields
		}
		resp.Invalid = append(resp.Invalid, invalid)
	}
	return resp
}

func printValidateHuman(resp ValidateResponse) {
	outputHuman("%d of %d citation(s) valid\n", resp.Valid, resp.Total)
	for _, inv := range resp.Invalid {
		id := inv.ID
		if id == "" {
			id = "(no id)"
		}
		outputHuman("  line %d: %s missing %s\n", inv.Line, id, strings.Join(inv.Fields, ", "))
	}
}
