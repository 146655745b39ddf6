// Package cli provides configuration loading for the uuidgen command.
package cli

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	uuidv4 "github.com/jdziat/uuidv4-go"
)

// Format selects how generated UUIDs are rendered.
type Format string

const (
	// FormatCanonical is the 36-character hyphenated form.
	FormatCanonical Format = "canonical"
	// FormatHex is 32 hex digits with no hyphens.
	FormatHex Format = "hex"
	// FormatURN is the canonical form with a urn:uuid: prefix.
	FormatURN Format = "urn"
)

// Render formats a UUID according to f. Unknown formats fall back to the
// canonical form; Config.Validate rejects them before generation starts.
func (f Format) Render(u uuidv4.UUID) string {
	switch f {
	case FormatHex:
		return hex.EncodeToString(u.Bytes())
	case FormatURN:
		return "urn:uuid:" + u.String()
	default:
		return u.String()
	}
}

// Config represents the uuidgen configuration.
type Config struct {
	Count        int     `yaml:"count"`
	Seed         *uint64 `yaml:"seed"`
	SoftwareOnly bool    `yaml:"software_only"`
	Format       Format  `yaml:"format"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Count:  1,
		Format: FormatCanonical,
	}
}

// Load reads configuration from file and environment variables. An empty
// path triggers a search for .uuidgen.yaml starting in the current
// directory and walking up; finding nothing is not an error and yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// Validate checks the configuration before generation starts.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	switch c.Format {
	case FormatCanonical, FormatHex, FormatURN:
	default:
		return fmt.Errorf("unknown format %q (valid: canonical, hex, urn)", c.Format)
	}
	return nil
}

// Options translates the configuration into generator options.
func (c *Config) Options() []uuidv4.Option {
	var opts []uuidv4.Option
	if c.Seed != nil {
		opts = append(opts, uuidv4.WithSeed(*c.Seed))
	}
	if c.SoftwareOnly {
		opts = append(opts, uuidv4.WithSoftwareOnly())
	}
	return opts
}

// findConfigFile searches for the configuration file.
func findConfigFile() string {
	candidates := []string{
		".uuidgen.yaml",
		".uuidgen.yml",
	}

	// Start from current directory and walk up
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range candidates {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// loadFromFile reads configuration from a YAML file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("UUIDGEN_FORMAT"); v != "" {
		cfg.Format = Format(v)
	}

	if v := os.Getenv("UUIDGEN_SOFTWARE_ONLY"); v == "true" || v == "1" {
		cfg.SoftwareOnly = true
	}
}
