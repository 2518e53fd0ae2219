// Package hcloud wraps the Hetzner Cloud API behind the narrow
// interfaces the planner and provisioner consume: zone discovery,
// network/subnet management and group firewalls. A mock client is
// provided for tests.
package hcloud
