package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config is the query file read with --config.
//
//	queries:
//	  evens-plus-ten: "from i in 1..10; where even; select add:10;"
type Config struct {
	Queries map[string]string `yaml:"queries"`
}

// LoadConfig reads a YAML query file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Query returns the expression stored under name.
func (c *Config) Query(name string) (string, error) {
	text, ok := c.Queries[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrQueryNotFound, name)
	}
	return text, nil
}

// Names returns the query names in sorted order.
func (c *Config) Names() []string {
	names := lo.Keys(c.Queries)
	slices.Sort(names)
	return names
}
