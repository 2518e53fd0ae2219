package hcloud

import (
	"context"
	"fmt"
	"sort"
)

// DiscoverZones lists the datacenter locations of a network zone,
// sorted by name. The sort makes discovery order independent of API
// pagination, which the downstream allocation order depends on.
func (c *RealClient) DiscoverZones(ctx context.Context, networkZone string) ([]string, error) {
	locations, err := c.client.Location.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	var zones []string
	for _, loc := range locations {
		if string(loc.NetworkZone) == networkZone {
			zones = append(zones, loc.Name)
		}
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("network zone %q has no locations", networkZone)
	}

	sort.Strings(zones)
	return zones, nil
}
