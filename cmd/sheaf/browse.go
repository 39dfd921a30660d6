package main

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/internal/ui/browse"
	"github.com/aretw0/sheaf/pkg/adapters/fs"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse the notes of an archive or export file",
	Long: `Browse opens a terminal view over the notes.

Keys: n/→ next, p/← previous, s save textFilesData.json to the output directory, q quit.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sink := fs.NewDirSink(cfg.OutputDir, slog.Default())
		svc, err := openFile(context.Background(), args[0], platform.WithSink(sink))
		if err != nil {
			fatal("Error loading notes", err)
		}

		if _, err := tea.NewProgram(browse.New(svc), tea.WithAltScreen()).Run(); err != nil {
			fatal("Error running browser", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringArrayVar(&ignore, "ignore", nil, "Skip archive entries matching a glob (repeatable)")
}
