package main

import (
	"github.com/spf13/cobra"

	"github.com/decentrajournal/citex/internal/export"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported export formats",
	RunE:  runFormats,
}

func runFormats(cmd *cobra.Command, args []string) error {
	infos := formatInfos(cfg.Format())

	if humanOutput {
		for _, info := range infos {
			marker := ""
			if info.Default {
				marker = " (default)"
			}
			outputHuman("%-9s %s%s\n", info.Name, info.Extension, marker)
		}
		return nil
	}
	return outputJSON(infos)
}

func formatInfos(def export.Format) []FormatInfo {
	formats := export.Formats()
	infos := make([]FormatInfo, len(formats))
	for i, f := range formats {
		infos[i] = FormatInfo{
			Name:      string(f),
			Extension: f.Extension(),
			Default:   f == def,
		}
	}
	return infos
}
