package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hairyhenderson/go-devfs"
	"github.com/hairyhenderson/go-devfs/tracefs"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var errUnresolved = errors.New("unresolved")

func (a *app) resolveCmd() *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "resolve URL...",
		Short: "Print the output file each URL resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(cmd.Context(), cmd.OutOrStdout(), args, long)
		},
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "also print the size and content type")

	return cmd
}

func (a *app) resolve(ctx context.Context, w io.Writer, urls []string, long bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fsys, err := a.cfg.OpenOutput(ctx)
	if err != nil {
		return err
	}

	var statfs devfs.StatFS = fsys

	if a.enableTracing {
		shutdown, err := initTracing(context.WithoutCancel(ctx), a.log, a.cfg.Output.URL)
		if err != nil {
			return fmt.Errorf("init trace exporter: %w", err)
		}

		defer func() { _ = shutdown(context.WithoutCancel(ctx)) }()

		ctx2, span := otel.Tracer("devfs").Start(ctx, "resolve")
		defer span.End()

		statfs = tracefs.New(ctx2, fsys,
			tracefs.WithAttributes(attribute.Int("devfs.mounts", len(a.cfg.Mounts))))
	}

	opts, err := a.cfg.ResolverOptions(a.log)
	if err != nil {
		return err
	}

	r := devfs.New(statfs, a.cfg.MountPoints(), opts...)

	return resolveURLs(w, r, urls, long)
}

func resolveURLs(w io.Writer, r *devfs.Resolver, urls []string, long bool) error {
	failed := 0

	for _, u := range urls {
		res, ok := r.Lookup(u)
		if !ok {
			failed++

			fmt.Fprintf(w, "%s -> (unresolved)\n", u)

			continue
		}

		if long {
			fmt.Fprintf(w, "%s -> %s (%s, %s)\n", u, res.Filename, formatSize(res.Info.Size()), res.ContentType())
		} else {
			fmt.Fprintf(w, "%s -> %s\n", u, res.Filename)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d URLs", errUnresolved, failed, len(urls))
	}

	return nil
}

func formatSize(size int64) string {
	switch {
	case size <= 1024:
		return fmt.Sprintf("%dB", size)
	case size <= 1024*1024:
		return fmt.Sprintf("%.1fKiB", float64(size)/1024)
	case size <= 1024*1024*1024:
		return fmt.Sprintf("%.1fMiB", float64(size)/1024/1024)
	default:
		return fmt.Sprintf("%.1fGiB", float64(size)/1024/1024/1024)
	}
}
