// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all rolo configuration.
type Config struct {
	Storage   Storage   `yaml:"storage"`
	Birthdays Birthdays `yaml:"birthdays"`
	Shell     Shell     `yaml:"shell"`
}

// Storage holds snapshot persistence settings.
type Storage struct {
	Path string `yaml:"path"`
}

// Birthdays holds upcoming-birthday scan settings.
type Birthdays struct {
	WindowDays int `yaml:"window_days"`
}

// Shell holds interactive shell settings.
type Shell struct {
	Prompt string `yaml:"prompt"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Storage: Storage{
			Path: ".rolo/addressbook.json",
		},
		Birthdays: Birthdays{
			WindowDays: 7,
		},
		Shell: Shell{
			Prompt: "Enter a command: ",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Storage.Path == "" {
		return errors.New("config: storage.path cannot be empty")
	}
	if c.Birthdays.WindowDays <= 0 {
		return fmt.Errorf("config: birthdays.window_days must be positive, got %d", c.Birthdays.WindowDays)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ROLO_STORAGE_PATH, ROLO_BIRTHDAY_WINDOW, ROLO_PROMPT.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("ROLO_STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("ROLO_BIRTHDAY_WINDOW"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid ROLO_BIRTHDAY_WINDOW %q: %w", v, err)
		}
		c.Birthdays.WindowDays = n
	}
	if v := os.Getenv("ROLO_PROMPT"); v != "" {
		c.Shell.Prompt = v
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Storage   *rawStorage   `yaml:"storage"`
	Birthdays *rawBirthdays `yaml:"birthdays"`
	Shell     *rawShell     `yaml:"shell"`
}

type rawStorage struct {
	Path *string `yaml:"path"`
}

type rawBirthdays struct {
	WindowDays *int `yaml:"window_days"`
}

type rawShell struct {
	Prompt *string `yaml:"prompt"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Storage != nil && layer.Storage.Path != nil {
		c.Storage.Path = *layer.Storage.Path
	}
	if layer.Birthdays != nil && layer.Birthdays.WindowDays != nil {
		c.Birthdays.WindowDays = *layer.Birthdays.WindowDays
	}
	if layer.Shell != nil && layer.Shell.Prompt != nil {
		c.Shell.Prompt = *layer.Shell.Prompt
	}
}
