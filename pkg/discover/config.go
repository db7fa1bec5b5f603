package discover

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk discovery configuration: a static table of files and
// the identifiers to rewrite in each, plus an optional override for the lint
// command used by verification.
type Config struct {
	// LintCmd overrides the default lint invocation when set.
	LintCmd string `yaml:"lint_cmd"`
	// Files maps a source path to the identifiers to rewrite in it.
	Files map[string][]string `yaml:"files"`
}

// LoadConfig reads and parses a YAML discovery configuration.
//
// path: the configuration file to read.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Table converts the configured file mapping into the normalized discovery
// table.
func (c *Config) Table() Table {
	table := make(Table, len(c.Files))
	for path, idents := range c.Files {
		for _, ident := range idents {
			table.Add(path, ident)
		}
	}
	return table
}
