package hcloud

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

// MockClient is an in-memory Client implementation for tests.
type MockClient struct {
	mu sync.Mutex

	// ZonesByNetworkZone configures DiscoverZones responses.
	ZonesByNetworkZone map[string][]string

	// FailWith, when set, makes every call return this error.
	FailWith error

	networks  map[string]*hcloud.Network
	firewalls map[string]*hcloud.Firewall
	nextID    int64
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		ZonesByNetworkZone: make(map[string][]string),
		networks:           make(map[string]*hcloud.Network),
		firewalls:          make(map[string]*hcloud.Firewall),
	}
}

// DiscoverZones implements ZoneDiscoverer.
func (m *MockClient) DiscoverZones(_ context.Context, networkZone string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	zones, ok := m.ZonesByNetworkZone[networkZone]
	if !ok {
		return nil, fmt.Errorf("network zone %q has no locations", networkZone)
	}
	return append([]string(nil), zones...), nil
}

// EnsureNetwork implements NetworkManager.
func (m *MockClient) EnsureNetwork(_ context.Context, name, ipRange string, labels map[string]string) (*hcloud.Network, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	if existing, ok := m.networks[name]; ok {
		if existing.IPRange.String() != ipRange {
			return nil, fmt.Errorf("network %s exists but with different IP range %s (expected %s)",
				name, existing.IPRange.String(), ipRange)
		}
		return existing, nil
	}

	_, ipNet, err := net.ParseCIDR(ipRange)
	if err != nil {
		return nil, fmt.Errorf("invalid CIDR: %w", err)
	}

	m.nextID++
	network := &hcloud.Network{
		ID:      m.nextID,
		Name:    name,
		IPRange: ipNet,
		Labels:  labels,
	}
	m.networks[name] = network
	return network, nil
}

// EnsureSubnet implements NetworkManager.
func (m *MockClient) EnsureSubnet(_ context.Context, network *hcloud.Network, ipRange, networkZone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}

	stored, ok := m.networks[network.Name]
	if !ok {
		return fmt.Errorf("network %s does not exist", network.Name)
	}

	for _, subnet := range stored.Subnets {
		if subnet.IPRange.String() == ipRange {
			return nil
		}
	}

	_, ipNet, err := net.ParseCIDR(ipRange)
	if err != nil {
		return fmt.Errorf("invalid subnet ip range: %w", err)
	}
	stored.Subnets = append(stored.Subnets, hcloud.NetworkSubnet{
		Type:        hcloud.NetworkSubnetTypeCloud,
		IPRange:     ipNet,
		NetworkZone: hcloud.NetworkZone(networkZone),
	})
	return nil
}

// DeleteNetwork implements NetworkManager.
func (m *MockClient) DeleteNetwork(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	delete(m.networks, name)
	return nil
}

// GetNetwork implements NetworkManager.
func (m *MockClient) GetNetwork(_ context.Context, name string) (*hcloud.Network, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	return m.networks[name], nil
}

// EnsureFirewall implements FirewallManager.
func (m *MockClient) EnsureFirewall(_ context.Context, name string, rules []hcloud.FirewallRule, labels map[string]string) (*hcloud.Firewall, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	if existing, ok := m.firewalls[name]; ok {
		existing.Rules = rules
		return existing, nil
	}

	m.nextID++
	fw := &hcloud.Firewall{
		ID:     m.nextID,
		Name:   name,
		Rules:  rules,
		Labels: labels,
	}
	m.firewalls[name] = fw
	return fw, nil
}

// DeleteFirewall implements FirewallManager.
func (m *MockClient) DeleteFirewall(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	delete(m.firewalls, name)
	return nil
}

// Firewall returns the stored firewall with the given name, or nil.
// Test helper, not part of the Client interface.
func (m *MockClient) Firewall(name string) *hcloud.Firewall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.firewalls[name]
}
