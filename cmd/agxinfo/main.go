package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipturner/agxinfo/internal/config"
	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "agxinfo",
	Short: "Report Apple silicon GPU core count and clock speed",
	Long: "Query the I/O Registry for the Apple silicon GPU accelerator " +
		"and print its core count and maximum clock speed.",
	Args:              cobra.NoArgs,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runReport,
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "emit machine-readable JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", config.DefaultPath(), "config file path")
}

// setupLogging wires the default slog logger from config and flags.
// Logs go to stderr so the report lines on stdout stay clean.
func setupLogging(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := slog.LevelWarn
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(255) // -1 truncated to an exit byte
	}
}
