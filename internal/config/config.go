package config

import (
	"fmt"

	"github.com/imamik/vnetplan/internal/cidr"
	"github.com/imamik/vnetplan/internal/plan"
)

// Config is the complete vnetplan configuration.
type Config struct {
	// Name of the virtual network. Used for cloud resource naming and
	// labeling.
	Name string `mapstructure:"name" yaml:"name"`

	// NetworkZone is the Hetzner Cloud network zone used for zone
	// discovery and subnet placement, e.g. "eu-central".
	NetworkZone string `mapstructure:"network_zone" yaml:"network_zone"`

	// HCloudToken authenticates against the Hetzner Cloud API. Usually
	// supplied via VNETPLAN_HCLOUD_TOKEN rather than the file.
	HCloudToken string `mapstructure:"hcloud_token" yaml:"hcloud_token,omitempty"`

	// Parent describes where the parent address block comes from.
	Parent ParentConfig `mapstructure:"parent" yaml:"parent"`

	// Networks are the logical network definitions, in order.
	Networks []NetworkConfig `mapstructure:"networks" yaml:"networks"`

	// Zones is an explicit ordered zone list. When empty, zones are
	// discovered from the cloud for NetworkZone.
	Zones []string `mapstructure:"zones" yaml:"zones,omitempty"`

	// MaxZones trims the zone list to its first N entries. Unset means
	// all zones.
	MaxZones *int `mapstructure:"max_zones" yaml:"max_zones,omitempty"`

	// Pools maps pool identifiers to their CIDR ranges, backing the
	// pool-allocation preview when Parent.Pool is used.
	Pools map[string]string `mapstructure:"pools" yaml:"pools,omitempty"`

	// Export configures optional plan artifact upload to S3-compatible
	// object storage.
	Export ExportConfig `mapstructure:"export" yaml:"export,omitempty"`
}

// ParentConfig selects the parent block source: an explicit CIDR or a
// named pool plus a requested prefix length. Exactly one of CIDR and
// Pool must be set.
type ParentConfig struct {
	CIDR         string `mapstructure:"cidr" yaml:"cidr,omitempty"`
	Pool         string `mapstructure:"pool" yaml:"pool,omitempty"`
	PrefixLength int    `mapstructure:"prefix_length" yaml:"prefix_length,omitempty"`
}

// NetworkConfig is one logical network definition.
type NetworkConfig struct {
	Name         string `mapstructure:"name" yaml:"name"`
	PrefixLength int    `mapstructure:"prefix_length" yaml:"prefix_length"`
	Group        string `mapstructure:"group" yaml:"group"`
}

// ExportConfig holds object storage settings for plan artifact upload.
type ExportConfig struct {
	Endpoint  string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
	Region    string `mapstructure:"region" yaml:"region,omitempty"`
	Bucket    string `mapstructure:"bucket" yaml:"bucket,omitempty"`
	AccessKey string `mapstructure:"access_key" yaml:"access_key,omitempty"`
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key,omitempty"`
	Prefix    string `mapstructure:"prefix" yaml:"prefix,omitempty"`
}

// ParentSource converts the parent configuration into the planner's
// two-variant source type.
func (c *Config) ParentSource() (plan.ParentSource, error) {
	if c.Parent.CIDR != "" {
		block, err := cidr.Parse(c.Parent.CIDR)
		if err != nil {
			return plan.ParentSource{}, fmt.Errorf("parent.cidr: %w", err)
		}
		return plan.ParentSource{Explicit: &block}, nil
	}
	if c.Parent.Pool != "" {
		return plan.ParentSource{FromPool: &plan.PoolRequest{
			PoolID:       c.Parent.Pool,
			PrefixLength: c.Parent.PrefixLength,
		}}, nil
	}
	return plan.ParentSource{}, nil
}

// NetworkSpecs converts the configured network definitions into planner
// specs, preserving order.
func (c *Config) NetworkSpecs() []plan.NetworkSpec {
	specs := make([]plan.NetworkSpec, len(c.Networks))
	for i, n := range c.Networks {
		specs[i] = plan.NetworkSpec{
			Name:         n.Name,
			PrefixLength: n.PrefixLength,
			Group:        n.Group,
		}
	}
	return specs
}

// ZoneList converts the configured zone identifiers, preserving order.
func (c *Config) ZoneList() []plan.Zone {
	zones := make([]plan.Zone, len(c.Zones))
	for i, z := range c.Zones {
		zones[i] = plan.Zone(z)
	}
	return zones
}
