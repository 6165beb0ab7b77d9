// Package config handles the project configuration file and app settings.
//
// The project file (spendtrack.yaml) carries the externally configured
// domain data: the category catalog, the ordered keyword rule table, the
// ambiguous keyword set. App settings (paths) come from a settings file and
// SPENDTRACK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spendtrack-dev/spendtrack/internal/catalog"
	"github.com/spendtrack-dev/spendtrack/internal/model"
	"github.com/spendtrack-dev/spendtrack/internal/rules"
)

// DefaultFile is the project configuration file name.
const DefaultFile = "spendtrack.yaml"

// Config is the top-level spendtrack.yaml configuration. Rule order in the
// file is the classification tie-break order.
type Config struct {
	Categories []model.Category `yaml:"categories"`
	Rules      []rules.Rule     `yaml:"rules"`
	Ambiguous  []string         `yaml:"ambiguous_keywords"`
}

// Load reads a spendtrack.yaml file from disk. A missing file yields the
// built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the built-in catalog and keyword tables.
func Default() *Config {
	return &Config{
		Categories: catalog.Default(),
		Rules:      rules.DefaultTable(),
		Ambiguous:  rules.DefaultAmbiguous(),
	}
}

// Engine builds the rule engine described by the config.
func (c *Config) Engine() *rules.Engine {
	return rules.NewEngine(c.Rules, c.Ambiguous)
}

// Catalog builds the category catalog service described by the config.
func (c *Config) Catalog() *catalog.Service {
	return catalog.NewService(c.Categories)
}

// fillDefaults substitutes built-ins for sections the file omits entirely.
func (c *Config) fillDefaults() {
	if len(c.Categories) == 0 {
		c.Categories = catalog.Default()
	}
	if len(c.Rules) == 0 {
		c.Rules = rules.DefaultTable()
	}
	if len(c.Ambiguous) == 0 {
		c.Ambiguous = rules.DefaultAmbiguous()
	}
}
