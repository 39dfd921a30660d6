package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/spf13/cobra"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/adapters/fs"
	lcadapter "github.com/aretw0/sheaf/pkg/adapters/lifecycle"
	"github.com/aretw0/sheaf/pkg/core"
)

var (
	watchOutput  string
	watchPattern string
	watchFormat  string
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Extract every archive dropped into a directory",
	Long: `Watch keeps running and extracts each archive that lands in the directory,
writing <archive name>.json (or .yaml) into the output directory.
Archives already in the directory are processed on start.
Identical archives are processed once.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runWatch(ctx, args[0]); err != nil {
			fatal("Error watching inbox", err)
		}
	},
}

func runWatch(ctx context.Context, dir string) error {
	logger := slog.Default()

	c, err := formatCodec(watchFormat)
	if err != nil {
		return err
	}
	outDir := watchOutput
	if outDir == "" {
		outDir = cfg.OutputDir
	}
	sink := fs.NewDirSink(outDir, logger)

	svc, err := platform.New(serviceOptions(platform.WithCodec(c), platform.WithSink(sink))...)
	if err != nil {
		return err
	}

	pattern := watchPattern
	if pattern == "" {
		pattern = cfg.InboxPattern
	}

	drops := make(chan fs.Drop)
	seen := fs.NewFingerprints()
	inboxCfg := fs.InboxConfig{
		Dir:     dir,
		Pattern: pattern,
		Logger:  logger,
		ErrorHandler: func(err error) {
			logger.Warn("inbox watcher error", "error", err)
		},
	}
	// Fail fast on a bad directory or pattern instead of inside the supervisor.
	if _, err := fs.NewInbox(inboxCfg, drops, seen); err != nil {
		return err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("inbox %s is not a directory", dir)
	}

	spec := supervisor.Spec{
		Name: "inbox-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return fs.NewInbox(inboxCfg, drops, seen)
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Multiplier:      2,
			ResetDuration:   time.Minute,
			MaxRestarts:     10,
			MaxDuration:     10 * time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}
	sup := supervisor.New("sheaf-watch", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return fmt.Errorf("failed to start inbox: %w", err)
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sup.Stop(stopCtx); err != nil {
			logger.Warn("inbox shutdown", "error", err)
		}
	}()

	source := lcadapter.NewDropSource(drops)
	if err := source.Start(ctx); err != nil {
		return err
	}

	logger.Info("watching inbox", "dir", dir, "output", outDir, "format", c.Name())

	done := make(chan struct{})
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(done)
		for e := range source.Events() {
			d, ok := e.(fs.Drop)
			if !ok {
				continue
			}
			processDrop(ctx, svc, sink, d, c.Name())
		}
		return nil
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("inbox consumer panic", "error", err)
	}))

	<-ctx.Done()
	<-done
	logger.Info("inbox closed")
	return nil
}

// processDrop extracts one archive and writes its export next to the others.
func processDrop(ctx context.Context, svc *core.Service, sink core.Sink, d fs.Drop, ext string) {
	logger := slog.Default().With("archive", d.Path)

	if err := svc.Upload(ctx, filepath.Base(d.Path), d.Data); err != nil {
		if errors.Is(err, core.ErrDecode) {
			logger.Warn("archive skipped", "error", err)
		} else {
			logger.Error("archive failed", "error", err)
		}
		return
	}

	data, err := svc.Export(nil)
	if err != nil {
		logger.Error("export failed", "error", err)
		return
	}
	name := exportName(d.Path, ext)
	if err := sink.Deliver(ctx, name, data); err != nil {
		logger.Error("export failed", "error", err)
		return
	}
	logger.Info("archive extracted", "notes", svc.Store().Len(), "export", name)
}

// exportName maps "inbox/notes.tar.gz" to "notes.json".
func exportName(path, ext string) string {
	base := filepath.Base(path)
	for _, suffix := range []string{".tar.gz", ".tar.zst", ".tar.xz", ".tgz", ".tzst", ".txz", ".tar", ".zip"} {
		if strings.HasSuffix(strings.ToLower(base), suffix) {
			base = base[:len(base)-len(suffix)]
			break
		}
	}
	if base == "" || strings.HasPrefix(base, ".") {
		base = "export" + base
	}
	return base + "." + ext
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Directory for the exports (default SHEAF_OUTPUT_DIR)")
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "Glob for archive names (default "+fs.DefaultInboxPattern+")")
	watchCmd.Flags().StringVar(&watchFormat, "format", "", "Export format (json, yaml)")
	watchCmd.Flags().StringArrayVar(&ignore, "ignore", nil, "Skip archive entries matching a glob (repeatable)")
}
