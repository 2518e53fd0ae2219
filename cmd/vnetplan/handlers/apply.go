package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/imamik/vnetplan/internal/provisioning"
	"github.com/imamik/vnetplan/internal/provisioning/infrastructure"
)

// Apply computes the address plan and reconciles it against Hetzner Cloud.
//
// This function orchestrates the complete workflow:
//  1. Loads and validates the configuration
//  2. Initializes the Hetzner Cloud client using the configured token
//  3. Computes the subnet layout (discovering zones if none are configured)
//  4. Provisions the parent network, subnets, and per-group firewalls
//
// Re-running apply is safe: existing resources are converged to the
// current plan rather than recreated.
func Apply(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	log.Printf("Applying plan: %s", cfg.Name)

	client := newInfraClient(cfg.HCloudToken)

	result, err := computePlan(ctx, cfg, client)
	if err != nil {
		return err
	}

	pctx := provisioning.NewContext(ctx, cfg, result, client)
	phases := []provisioning.Phase{
		infrastructure.NewProvisioner(),
	}

	if err := provisioning.RunPhases(pctx, phases); err != nil {
		return err
	}

	printApplySuccess(cfg.Name, pctx)
	return nil
}

// printApplySuccess outputs a completion summary for the user.
func printApplySuccess(name string, pctx *provisioning.Context) {
	fmt.Printf("\nApply complete!\n")
	if pctx.State.Network != nil {
		fmt.Printf("Network: %s (%s)\n", pctx.State.Network.Name, pctx.Plan.Parent)
	}
	fmt.Printf("Subnets: %d across %d zones\n", len(pctx.Plan.Allocations), len(pctx.Plan.Zones))
	fmt.Printf("Firewalls: %d\n", len(pctx.State.Firewalls))
	fmt.Printf("\nInspect the layout at any time with:\n")
	fmt.Printf("  vnetplan plan\n")
}
