package config

import (
	"fmt"

	"github.com/imamik/vnetplan/internal/cidr"
)

// Validate checks the configuration for common errors and returns a
// detailed error on the first violation.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if err := c.validateParent(); err != nil {
		return fmt.Errorf("parent validation failed: %w", err)
	}
	if err := c.validateNetworks(); err != nil {
		return fmt.Errorf("network validation failed: %w", err)
	}
	if err := c.validateZones(); err != nil {
		return fmt.Errorf("zone validation failed: %w", err)
	}
	if err := c.validatePools(); err != nil {
		return fmt.Errorf("pool validation failed: %w", err)
	}
	if err := c.validateExport(); err != nil {
		return fmt.Errorf("export validation failed: %w", err)
	}

	return nil
}

func (c *Config) validateParent() error {
	switch {
	case c.Parent.CIDR != "" && c.Parent.Pool != "":
		return fmt.Errorf("parent.cidr and parent.pool are mutually exclusive")
	case c.Parent.CIDR != "":
		if _, err := cidr.Parse(c.Parent.CIDR); err != nil {
			return fmt.Errorf("invalid parent.cidr: %w", err)
		}
	case c.Parent.Pool != "":
		if c.Parent.PrefixLength <= 0 || c.Parent.PrefixLength > 128 {
			return fmt.Errorf("parent.prefix_length %d out of range", c.Parent.PrefixLength)
		}
		if _, ok := c.Pools[c.Parent.Pool]; !ok {
			return fmt.Errorf("parent.pool %q is not defined under pools", c.Parent.Pool)
		}
	default:
		return fmt.Errorf("either parent.cidr or parent.pool is required")
	}
	return nil
}

func (c *Config) validateNetworks() error {
	if len(c.Networks) == 0 {
		return fmt.Errorf("at least one network definition is required")
	}

	seen := make(map[string]bool, len(c.Networks))
	for i, n := range c.Networks {
		if n.Name == "" {
			return fmt.Errorf("networks[%d] has no name", i)
		}
		if n.Group == "" {
			return fmt.Errorf("network %q has no group", n.Name)
		}
		if n.PrefixLength <= 0 || n.PrefixLength > 128 {
			return fmt.Errorf("network %q has invalid prefix_length %d", n.Name, n.PrefixLength)
		}
		if seen[n.Name] {
			return fmt.Errorf("duplicate network name %q", n.Name)
		}
		seen[n.Name] = true
	}
	return nil
}

func (c *Config) validateZones() error {
	if c.MaxZones != nil && *c.MaxZones <= 0 {
		return fmt.Errorf("max_zones must be positive when set")
	}
	if len(c.Zones) == 0 && c.NetworkZone == "" {
		return fmt.Errorf("either an explicit zones list or a network_zone for discovery is required")
	}
	for i, z := range c.Zones {
		if z == "" {
			return fmt.Errorf("zones[%d] is empty", i)
		}
	}
	return nil
}

func (c *Config) validatePools() error {
	for id, r := range c.Pools {
		if _, err := cidr.Parse(r); err != nil {
			return fmt.Errorf("pool %q: %w", id, err)
		}
	}
	return nil
}

func (c *Config) validateExport() error {
	if c.Export.Bucket == "" {
		return nil // export disabled
	}
	if c.Export.Endpoint == "" {
		return fmt.Errorf("export.endpoint is required when export.bucket is set")
	}
	if c.Export.Region == "" {
		return fmt.Errorf("export.region is required when export.bucket is set")
	}
	return nil
}
