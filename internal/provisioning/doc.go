// Package provisioning provides shared types, interfaces, and orchestration
// for materializing a computed address plan on Hetzner Cloud.
//
// # Subpackages
//
//   - infrastructure/ provisions the network, its subnets, and firewalls
//
// # Core Types
//
// Context carries configuration, the computed plan, state, infrastructure
// client, and observer. Phase defines a provisioning step with Name() and
// Provision() methods. State accumulates results from each phase (network,
// per-group firewalls).
package provisioning
