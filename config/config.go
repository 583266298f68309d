// Package config loads devfs configuration from a file, the environment and
// built-in defaults.
//
// Configuration is read in this order, later sources winning:
//   - defaults (see ApplyDefaults)
//   - a YAML or TOML file
//   - DEVFS_* environment variables, with "." replaced by "_" (so
//     logging.level is DEVFS_LOGGING_LEVEL)
//
// The output filesystem URL can also be given in a file named by
// DEVFS_OUTPUT_URL_FILE, for credentials mounted as secrets.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hairyhenderson/go-devfs"
	"github.com/hairyhenderson/go-devfs/internal/env"
	"github.com/spf13/viper"
)

const envPrefix = "DEVFS"

// envFS is where DEVFS_*_FILE paths are resolved from
//
//nolint:gochecknoglobals
var envFS fs.FS = os.DirFS("/")

// Config is the top-level devfs configuration.
type Config struct {
	// Logging controls the log level and format.
	Logging LoggingConfig `mapstructure:"logging"`

	// Output selects the output filesystem that builds are written to.
	Output OutputConfig `mapstructure:"output"`

	// Index controls how directory requests are resolved.
	Index IndexConfig `mapstructure:"index"`

	// Cache controls the request URL cache.
	Cache CacheConfig `mapstructure:"cache"`

	// Mounts maps public paths to output paths. Order is significant: the
	// first mount point that yields a file wins.
	Mounts []MountConfig `mapstructure:"mounts" validate:"dive"`

	// ExclusivePrefix makes the first mount point whose public path matches
	// a request final, even when it has no file for it.
	ExclusivePrefix bool `mapstructure:"exclusive_prefix"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`

	// Format is text or json.
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// OutputConfig selects the output filesystem.
type OutputConfig struct {
	// URL of the output filesystem, e.g. "mem:", "file:///srv/dist",
	// "s3://bucket?region=us-east-1". See the outputfs package.
	URL string `mapstructure:"url" validate:"required"`

	// Options holds scheme-independent settings for opening the output
	// filesystem. See OpenOutput.
	Options map[string]any `mapstructure:"options"`
}

// IndexConfig controls directory index resolution.
type IndexConfig struct {
	// Enabled turns directory index resolution on or off. Defaults to true.
	Enabled *bool `mapstructure:"enabled"`

	// Name of the index document. Defaults to index.html.
	Name string `mapstructure:"name" validate:"excludesall=/"`
}

// CacheConfig controls the request URL cache.
type CacheConfig struct {
	// Size bounds the number of cached URLs. Zero means the shared,
	// unbounded cache.
	Size int `mapstructure:"size" validate:"gte=0"`
}

// MountConfig is a single mount point.
type MountConfig struct {
	PublicPath string `mapstructure:"public_path"`
	OutputPath string `mapstructure:"output_path" validate:"required,startswith=/"`
}

// Load reads configuration from configPath (or the default location when
// empty), applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	u, ok, err := env.LookupFS(envFS, envPrefix+"_OUTPUT_URL")
	if err != nil {
		return nil, err
	}

	if ok {
		cfg.Output.URL = u
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// keys must be known to viper for AutomaticEnv to apply on Unmarshal
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("index.name", "")
	v.SetDefault("cache.size", 0)
	v.SetDefault("exclusive_prefix", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "devfs")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "devfs")
}

// DefaultConfigPath returns the path Load reads when given no path.
func DefaultConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// MountPoints returns the configured mount points, in order.
func (c *Config) MountPoints() devfs.Paths {
	paths := make(devfs.Paths, 0, len(c.Mounts))
	for _, m := range c.Mounts {
		paths = append(paths, devfs.MountPoint{PublicPath: m.PublicPath, OutputPath: m.OutputPath})
	}

	return paths
}
