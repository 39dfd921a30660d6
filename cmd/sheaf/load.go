package main

import (
	"context"
	"log/slog"

	"github.com/aretw0/sheaf/internal/platform"
	"github.com/aretw0/sheaf/pkg/adapters/codec"
	"github.com/aretw0/sheaf/pkg/core"
)

var (
	ignore    []string
	delimiter string
)

// serviceOptions merges the environment configuration with the shared flags.
func serviceOptions(extra ...platform.Option) []platform.Option {
	opts := []platform.Option{
		platform.WithLogger(slog.Default()),
		platform.WithMaxFileSize(cfg.MaxFileSize),
	}
	if patterns := append(append([]string{}, cfg.Ignore...), ignore...); len(patterns) > 0 {
		opts = append(opts, platform.WithIgnore(patterns...))
	}
	if delimiter != "" {
		opts = append(opts, platform.WithDelimiter(delimiter))
	}
	return append(opts, extra...)
}

// openFile builds a service and loads an archive or export file into it.
func openFile(ctx context.Context, path string, extra ...platform.Option) (*core.Service, error) {
	svc, err := platform.New(serviceOptions(extra...)...)
	if err != nil {
		return nil, err
	}
	if err := platform.LoadFile(ctx, svc, path, codec.DefaultRegistry()); err != nil {
		return nil, err
	}
	return svc, nil
}

// formatCodec resolves the codec for a --format value, falling back to the
// configured default.
func formatCodec(format string) (core.Codec, error) {
	if format == "" {
		format = cfg.Format
	}
	return codec.DefaultRegistry().ForFormat(format)
}
