// Package main provides the citex CLI entry point.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/decentrajournal/citex/internal/config"
	"github.com/decentrajournal/citex/internal/export"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	configPath  string

	cfg    = config.Default()
	logger = slog.Default()
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citex",
	Short: "Export citations as BibTeX, RIS, CSL-JSON or plain text",
	Long: `citex converts citation records into standard bibliography formats.

Citations are read from a JSONL file, one record per line. Structured
output (status, validation reports, errors) is JSON by default for easy
integration with other tools; pass --human for readable text.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default $"+config.EnvConfigPath+" or ~/.config/citex/config.yml)")
	rootCmd.Version = Version
}

// setup loads .env and the config file and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	loaded, err := config.Load(configPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	cfg = loaded

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return nil
}

// newExporter builds an exporter from the loaded configuration.
func newExporter() *export.Exporter {
	opts := append(cfg.ExporterOptions(), export.WithLogger(logger))
	return export.New(opts...)
}
