package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/config"
	"github.com/aretw0/sheaf/internal/platform"
)

var (
	verbose bool
	cfg     config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sheaf",
	Short: "Extract plain-text notes from archives",
	Long: `Sheaf reads a zip (or compressed tar) of .txt files, splits every file
on blank lines and treats each piece as a note. Notes can be exported as
JSON or YAML, printed, browsed in the terminal, or extracted automatically
from archives dropped into an inbox directory.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var envFiles []string
		if wd, err := os.Getwd(); err == nil {
			if path, err := platform.FindEnvFile(wd); err == nil {
				envFiles = append(envFiles, path)
			}
		}

		loaded, err := config.Load(envFiles...)
		if err != nil {
			fatal("Error loading configuration", err)
		}
		cfg = loaded

		level := slog.LevelInfo
		if verbose || cfg.Verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
