package config

import "strings"

const (
	defaultLevel     = "info"
	defaultFormat    = "text"
	defaultOutputURL = "mem:"
)

// ApplyDefaults sets default values for any unspecified configuration fields.
// Explicit values are preserved.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLevel
	}

	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultFormat
	}

	if cfg.Output.URL == "" {
		cfg.Output.URL = defaultOutputURL
	}

	if cfg.Index.Enabled == nil {
		enabled := true
		cfg.Index.Enabled = &enabled
	}

	if len(cfg.Mounts) == 0 {
		cfg.Mounts = []MountConfig{{PublicPath: "auto", OutputPath: "/"}}
	}
}
