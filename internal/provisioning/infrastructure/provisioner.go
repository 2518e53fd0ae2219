package infrastructure

import (
	"github.com/imamik/vnetplan/internal/provisioning"
)

const phase = "infrastructure"

// Provisioner handles infrastructure provisioning (network, subnets, firewalls).
type Provisioner struct{}

// NewProvisioner creates a new infrastructure provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	// 1. Parent network and subnets
	if err := p.ProvisionNetwork(ctx); err != nil {
		return err
	}

	// 2. Per-group firewalls
	if err := p.ProvisionFirewalls(ctx); err != nil {
		return err
	}

	return nil
}
