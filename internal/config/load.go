package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// envOverrides are settings that may be supplied via the environment
// instead of the config file. File values win only when the variable is
// unset.
type envOverrides struct {
	HCloudToken     string `envconfig:"HCLOUD_TOKEN"`
	ExportAccessKey string `envconfig:"EXPORT_ACCESS_KEY"`
	ExportSecretKey string `envconfig:"EXPORT_SECRET_KEY"`
}

// LoadFile reads and parses the configuration from a YAML file, applies
// VNETPLAN_* environment overrides and defaults, and validates the
// result.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	var env envOverrides
	if err := envconfig.Process("vnetplan", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment overrides: %w", err)
	}
	if env.HCloudToken != "" {
		cfg.HCloudToken = env.HCloudToken
	}
	if env.ExportAccessKey != "" {
		cfg.Export.AccessKey = env.ExportAccessKey
	}
	if env.ExportSecretKey != "" {
		cfg.Export.SecretKey = env.ExportSecretKey
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Parse decodes raw YAML into a Config without defaulting or validating.
func Parse(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var cfg Config
	if err := mapstructure.Decode(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.NetworkZone == "" {
		c.NetworkZone = "eu-central"
	}
	if c.Parent.Pool != "" && c.Parent.PrefixLength == 0 {
		// A /16 parent leaves room for per-zone subnets of common sizes.
		c.Parent.PrefixLength = 16
	}
}

// WriteYAML marshals the configuration to a YAML file. Used by the init
// wizard.
func WriteYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
