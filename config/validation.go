package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = validator.New()

// Validate validates the configuration using struct tags, plus the rules that
// can't be expressed in tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}

	return validateCustomRules(cfg)
}

func validateCustomRules(cfg *Config) error {
	if len(cfg.Mounts) == 0 {
		return fmt.Errorf("mounts: at least one mount point must be configured")
	}

	u, err := url.Parse(cfg.Output.URL)
	if err != nil {
		return fmt.Errorf("output.url: %w", err)
	}

	if u.Scheme == "" {
		return fmt.Errorf("output.url: %q has no scheme", cfg.Output.URL)
	}

	for i, m := range cfg.Mounts {
		if m.PublicPath == "" || m.PublicPath == "auto" {
			continue
		}

		if _, err := url.Parse(m.PublicPath); err != nil {
			return fmt.Errorf("mounts[%d]: invalid public_path: %w", i, err)
		}
	}

	return nil
}

// formatValidationError converts validator errors into readable messages,
// reporting the first failure.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]

		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}

	return err
}
