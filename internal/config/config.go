// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/font-localizer/internal/localize"
)

// EnvAssetsDir is the environment variable overriding the default assets
// directory. A .env file is loaded by main before this is read.
const EnvAssetsDir = "FONT_LOCALIZER_ASSETS_DIR"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	AssetsDir      string   `json:"assets_dir,omitempty"`                                           // Directory holding stylesheets and downloaded fonts
	Stylesheets    []string `json:"stylesheets,omitempty" validate:"omitempty,dive,required"`       // Stylesheet filenames, processed in order
	Prefix         string   `json:"prefix,omitempty" validate:"omitempty,startswith=/"`             // Replacement prefix for rewritten URLs
	TimeoutSeconds int      `json:"timeout_seconds,omitempty" validate:"omitempty,min=1,max=600"`   // Per-request HTTP timeout
	Manifest       bool     `json:"manifest,omitempty"`                                             // Write fonts.manifest.json after the run
	Verbose        bool     `json:"verbose,omitempty"`                                              // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Default returns the configuration of a bare run: the original fixed
// stylesheet list in the original directory, overridable only through the
// environment.
func Default() Config {
	assetsDir := os.Getenv(EnvAssetsDir)
	if assetsDir == "" {
		assetsDir = localize.DefaultAssetsDir
	}
	return Config{
		AssetsDir:      assetsDir,
		Stylesheets:    localize.DefaultStylesheets(),
		Prefix:         localize.DefaultPrefix,
		TimeoutSeconds: 30,
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.AssetsDir == "" {
		result.AssetsDir = defaults.AssetsDir
	}
	if len(result.Stylesheets) == 0 {
		result.Stylesheets = defaults.Stylesheets
	}
	if result.Prefix == "" {
		result.Prefix = defaults.Prefix
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
