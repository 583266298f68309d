package config

import (
	"context"
	"fmt"
	"io"

	"github.com/hairyhenderson/go-devfs"
	"github.com/hairyhenderson/go-devfs/outputfs"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

// outputOptions are the settings understood in output.options
type outputOptions struct {
	// CreateDirs creates each mount point's output directory after opening
	// the output filesystem.
	CreateDirs bool `mapstructure:"create_dirs"`
}

// ResolverOptions returns the devfs options matching this configuration. The
// logger may be nil, in which case the resolver's default is used.
func (c *Config) ResolverOptions(log logrus.FieldLogger) ([]devfs.Option, error) {
	opts := []devfs.Option{}

	switch {
	case c.Index.Enabled != nil && !*c.Index.Enabled:
		opts = append(opts, devfs.WithoutIndex())
	case c.Index.Name != "":
		opts = append(opts, devfs.WithIndex(c.Index.Name))
	}

	if c.ExclusivePrefix {
		opts = append(opts, devfs.WithExclusivePrefix())
	}

	if c.Cache.Size > 0 {
		cache, err := devfs.NewLRUURLCache(c.Cache.Size)
		if err != nil {
			return nil, fmt.Errorf("cache: %w", err)
		}

		opts = append(opts, devfs.WithURLCache(cache))
	}

	if log != nil {
		opts = append(opts, devfs.WithLogger(log))
	}

	return opts, nil
}

// OpenOutput opens the configured output filesystem.
func (c *Config) OpenOutput(ctx context.Context) (outputfs.Filesystem, error) {
	var opts outputOptions
	if err := mapstructure.Decode(c.Output.Options, &opts); err != nil {
		return nil, fmt.Errorf("invalid output options: %w", err)
	}

	fsys, err := outputfs.Lookup(ctx, c.Output.URL)
	if err != nil {
		return nil, fmt.Errorf("open output %q: %w", c.Output.URL, err)
	}

	if opts.CreateDirs {
		for _, m := range c.Mounts {
			if err := fsys.MkdirAll(m.OutputPath, 0o755); err != nil {
				return nil, fmt.Errorf("create output path %q: %w", m.OutputPath, err)
			}
		}
	}

	return fsys, nil
}

// NewLogger returns a logger writing to w, configured per the logging
// settings.
func (c *LoggingConfig) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)

	if c.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	return log, nil
}
