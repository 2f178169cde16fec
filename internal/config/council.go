package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultTimeoutSeconds = 30

// LoadCouncilConfig reads the council configuration from
// COUNCIL_CONFIG_PATH, falling back to configs/council.yaml.
func LoadCouncilConfig() (*Config, error) {
	path := os.Getenv("COUNCIL_CONFIG_PATH")
	if path == "" {
		path = "configs/council.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Council.TimeoutSeconds == 0 {
		cfg.Council.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Council.Primary == "" && len(cfg.Council.Members) > 0 {
		cfg.Council.Primary = cfg.Council.Members[0].Name
	}
	if cfg.Memory.Kind == "" {
		cfg.Memory.Kind = "inmem"
	}
}

func (c *Config) Validate() error {
	if len(c.Council.Members) == 0 {
		return fmt.Errorf("no council members configured")
	}

	seen := make(map[string]struct{}, len(c.Council.Members))
	for i, member := range c.Council.Members {
		if member.Name == "" {
			return fmt.Errorf("member %d missing name", i)
		}
		if member.Provider == "" {
			return fmt.Errorf("member %q missing provider", member.Name)
		}
		if member.Model == "" {
			return fmt.Errorf("member %q missing model", member.Name)
		}
		if _, ok := seen[member.Name]; ok {
			return fmt.Errorf("duplicate member name: %q", member.Name)
		}
		seen[member.Name] = struct{}{}
	}

	if _, ok := seen[c.Council.Primary]; !ok {
		return fmt.Errorf("primary %q does not match any member", c.Council.Primary)
	}

	if c.Council.TimeoutSeconds < 0 {
		return fmt.Errorf("negative timeout_seconds: %d", c.Council.TimeoutSeconds)
	}

	switch c.Memory.Kind {
	case "inmem":
	case "http":
		if c.Memory.Endpoint == "" {
			return fmt.Errorf("memory endpoint is required for http kind")
		}
	default:
		return fmt.Errorf("unknown memory kind: %q", c.Memory.Kind)
	}

	return nil
}
