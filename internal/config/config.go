// Package config loads folder-compare settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/taigrr/folder-compare/internal/types"
	"gopkg.in/yaml.v3"
)

// Formats lists the accepted output formats.
var Formats = []string{"text", "json", "tree"}

// Default returns the configuration used when no file is given.
func Default() types.Config {
	return types.Config{Format: "text"}
}

// Load reads and validates the YAML file at path.
func Load(path string) (types.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Config{}, fmt.Errorf("config file not found: %s", path)
		}
		return types.Config{}, fmt.Errorf("failed to read config: %s - %w", path, err)
	}

	cfg, err := Parse(content)
	if err != nil {
		return types.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML content on top of Default. Unknown keys are rejected.
func Parse(content []byte) (types.Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks field values that YAML decoding cannot.
func Validate(cfg types.Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("invalid config: workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Format != "" && !slices.Contains(Formats, cfg.Format) {
		return fmt.Errorf("invalid config: unknown format %q (want one of %v)", cfg.Format, Formats)
	}
	return nil
}
