package infrastructure

import (
	"fmt"

	"github.com/imamik/vnetplan/internal/provisioning"
	"github.com/imamik/vnetplan/internal/util/labels"
)

// ProvisionNetwork provisions the parent network and one subnet per
// planned allocation. Only leaf subnets are registered with the cloud
// API; registering the parent block itself would overlap with them.
func (p *Provisioner) ProvisionNetwork(ctx *provisioning.Context) error {
	cfg := ctx.Config
	result := ctx.Plan

	ctx.Observer.Printf("[%s] Reconciling network %s (%s)...", phase, cfg.Name, result.Parent)

	networkLabels := labels.NewLabelBuilder(cfg.Name).Build()

	network, err := ctx.Infra.EnsureNetwork(ctx, cfg.Name, result.Parent.String(), networkLabels)
	if err != nil {
		return fmt.Errorf("failed to ensure network: %w", err)
	}
	ctx.State.Network = network
	provisioning.LogResourceCreated(ctx.Observer, phase, "network", cfg.Name, fmt.Sprint(network.ID))

	for i, alloc := range result.Allocations {
		if err := ctx.Infra.EnsureSubnet(ctx, network, alloc.Block.String(), cfg.NetworkZone); err != nil {
			return fmt.Errorf("failed to ensure subnet %s (%s): %w", alloc.Name, alloc.Block, err)
		}
		ctx.Observer.Progress(phase, i+1, len(result.Allocations))
	}

	return nil
}
