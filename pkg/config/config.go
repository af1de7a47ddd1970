// Package config loads json2hmc settings from YAML.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sphaleron/json2hmc/pkg/cards"
	"github.com/sphaleron/json2hmc/pkg/hmc"
	"gopkg.in/yaml.v3"
)

// Config holds every setting the CLI can take from a file.
type Config struct {
	Input       string   `yaml:"input"`
	Output      string   `yaml:"output"`
	Format      string   `yaml:"format"`
	Sets        []string `yaml:"sets"`
	Standard    []string `yaml:"standard"`
	SourceURL   string   `yaml:"source_url"`
	Fetch       bool     `yaml:"fetch"`
	SkipInvalid bool     `yaml:"skip_invalid"`
	LogLevel    string   `yaml:"log_level"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Input:     "cards.collectible.json",
		Output:    "collection.xlsx",
		Standard:  append([]string(nil), hmc.DefaultStandard...),
		SourceURL: cards.DefaultSourceURL,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. Keys the file omits keep their default
// values; unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		// An empty file decodes to io.EOF; treat it as "all defaults".
		if len(bytes.TrimSpace(data)) == 0 {
			return cfg, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that set names refer to known Collections.
func (c *Config) Validate() error {
	for _, name := range c.Standard {
		if !hmc.IsCollection(name) {
			return fmt.Errorf("standard: unknown collection %q", name)
		}
	}
	for _, name := range c.Sets {
		if !hmc.IsCollection(name) {
			return fmt.Errorf("sets: unknown collection %q", name)
		}
	}
	return nil
}
