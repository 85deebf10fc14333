package main

import (
	"github.com/spf13/cobra"

	"github.com/decentrajournal/citex/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration: values from the config file merged
over the built-in defaults.

The config file is YAML, for example:
  default_journal: DecentraJournal
  default_publisher: DecentraJournal Publishing
  default_format: bibtex
  input: ~/papers/citations.jsonl
  escape_latex: false
  log_level: info`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	resp := configResponse(cfg, effectiveConfigPath())

	if humanOutput {
		outputHuman("config file:       %s\n", resp.Path)
		outputHuman("default_journal:   %s\n", resp.DefaultJournal)
		outputHuman("default_publisher: %s\n", resp.DefaultPublisher)
		outputHuman("default_format:    %s\n", resp.DefaultFormat)
		outputHuman("input:             %s\n", resp.Input)
		outputHuman("escape_latex:      %t\n", resp.EscapeLatex)
		outputHuman("log_level:         %s\n", resp.LogLevel)
		return nil
	}
	return outputJSON(resp)
}

func effectiveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.Path()
}

func configResponse(c *config.Config, path string) ConfigResponse {
	return ConfigResponse{
		Path:             path,
		DefaultJournal:   c.DefaultJournal,
		DefaultPublisher: c.DefaultPublisher,
		DefaultFormat:    c.DefaultFormat,
		Input:            c.Input,
		EscapeLatex:      c.EscapeLatex,
		LogLevel:         c.LogLevel,
	}
}
