package hcloud

import (
	"context"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// ZoneDiscoverer lists the availability zones of a network zone.
type ZoneDiscoverer interface {
	// DiscoverZones returns the ordered zone identifiers (datacenter
	// locations) belonging to the given network zone. The order is
	// deterministic across calls.
	DiscoverZones(ctx context.Context, networkZone string) ([]string, error)
}

// NetworkManager manages virtual networks and their subnets.
type NetworkManager interface {
	// EnsureNetwork creates the network if it does not exist and
	// validates its IP range if it does.
	EnsureNetwork(ctx context.Context, name, ipRange string, labels map[string]string) (*hcloud.Network, error)
	// EnsureSubnet adds the subnet to the network unless it is already
	// present.
	EnsureSubnet(ctx context.Context, network *hcloud.Network, ipRange, networkZone string) error
	// DeleteNetwork deletes the network with the given name. Deleting a
	// missing network is not an error.
	DeleteNetwork(ctx context.Context, name string) error
	// GetNetwork returns the network with the given name, or nil.
	GetNetwork(ctx context.Context, name string) (*hcloud.Network, error)
}

// FirewallManager manages the per-group access-control firewalls.
type FirewallManager interface {
	// EnsureFirewall creates or updates a firewall with the given rules.
	EnsureFirewall(ctx context.Context, name string, rules []hcloud.FirewallRule, labels map[string]string) (*hcloud.Firewall, error)
	// DeleteFirewall deletes the firewall with the given name.
	DeleteFirewall(ctx context.Context, name string) error
}

// Client bundles everything the provisioning layer needs from the
// Hetzner Cloud API.
type Client interface {
	ZoneDiscoverer
	NetworkManager
	FirewallManager
}
