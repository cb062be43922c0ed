package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid marks configuration values that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateExtract(); err != nil {
		return err
	}
	if err := c.validateMatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return fmt.Errorf("%w: paths.output_dir must be set", ErrInvalid)
	}
	if strings.TrimSpace(c.Paths.CatalogPath) == "" {
		return fmt.Errorf("%w: paths.catalog_path must be set", ErrInvalid)
	}
	return nil
}

func (c *Config) validateExtract() error {
	if strings.ContainsAny(c.Extract.Sentinel, "\r\n") {
		return fmt.Errorf("%w: extract.sentinel must be a single line", ErrInvalid)
	}
	if len(c.Extract.InputExtension) < 2 {
		return fmt.Errorf("%w: extract.input_extension must name an extension such as .txt", ErrInvalid)
	}
	if strings.ContainsAny(c.Extract.DefaultLanguage, `/\`) {
		return fmt.Errorf("%w: extract.default_language must not contain path separators", ErrInvalid)
	}
	return nil
}

func (c *Config) validateMatch() error {
	if c.Match.TopN < 1 {
		return fmt.Errorf("%w: match.top_n must be positive", ErrInvalid)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("%w: logging.level must be one of debug, info, warn, error (got %q)", ErrInvalid, c.Logging.Level)
	}
}
