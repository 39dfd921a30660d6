package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/pkg/adapters/codec"
	"github.com/aretw0/sheaf/pkg/adapters/fs"
	"github.com/aretw0/sheaf/pkg/core"
)

var (
	extractOutput string
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract [archive]",
	Short: "Extract the notes of an archive into an export file",
	Long: `Extract splits every .txt file of the archive into notes and writes them
as textFilesData.json in the output directory.

Use -o to pick another file (the extension selects the format) or -o - to
write to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		svc, err := openFile(ctx, args[0])
		if err != nil {
			fatal("Error loading archive", err)
		}

		c, err := formatCodec(extractFormat)
		if err != nil {
			fatal("Error selecting format", err)
		}

		var sink core.Sink
		name := core.ExportFileName
		switch {
		case extractOutput == "-":
			sink = fs.WriterSink{W: os.Stdout}
		case extractOutput != "":
			if extractFormat == "" {
				if byExt, ok := codec.DefaultRegistry().Lookup(extractOutput); ok {
					c = byExt
				}
			}
			sink = fs.NewDirSink(filepath.Dir(extractOutput), slog.Default())
			name = filepath.Base(extractOutput)
		default:
			sink = fs.NewDirSink(cfg.OutputDir, slog.Default())
		}

		data, err := svc.Export(c)
		if err != nil {
			fatal("Error encoding notes", err)
		}
		if err := sink.Deliver(ctx, name, data); err != nil {
			fatal("Error writing export", err)
		}

		slog.Info("notes extracted", "archive", args[0], "notes", svc.Store().Len(), "format", c.Name())
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file, or - for stdout")
	extractCmd.Flags().StringVar(&extractFormat, "format", "", "Export format (json, yaml)")
	extractCmd.Flags().StringArrayVar(&ignore, "ignore", nil, "Skip archive entries matching a glob (repeatable)")
	extractCmd.Flags().StringVar(&delimiter, "delimiter", "", "Note separator inside a file (default blank line)")
}
