// Package config loads hashsum defaults from a YAML file.
//
// The file is named by the --config flag or the HASHSUM_CONFIG environment
// variable, in that order. There is no automatic discovery: without either,
// the built-in defaults apply. Command-line flags override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/dendrascience/dendra-hashsum/util"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "HASHSUM_CONFIG"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the defaults for hashing commands.
type Config struct {
	// Algorithm is used when neither a flag nor a digest determines one.
	Algorithm string `yaml:"algorithm"`

	// ChunkSize is the number of bytes read per update.
	ChunkSize int `yaml:"chunk_size"`

	// Progress enables progress output on terminals.
	Progress bool `yaml:"progress"`

	// Color is one of auto, always or never.
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Algorithm: util.SHA256.String(),
		ChunkSize: util.DefaultChunkSize,
		Progress:  true,
		Color:     ColorAuto,
	}
}

// Load reads the file at path, or at $HASHSUM_CONFIG when path is empty,
// over the defaults. With neither set it returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if _, ok := util.ParseAlgorithm(c.Algorithm); !ok {
		return fmt.Errorf("%w: %q", util.ErrUnsupportedAlgorithm, c.Algorithm)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be positive, got %d", c.ChunkSize)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
