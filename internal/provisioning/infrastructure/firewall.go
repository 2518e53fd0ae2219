package infrastructure

import (
	"fmt"
	"net"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/vnetplan/internal/cidr"
	"github.com/imamik/vnetplan/internal/provisioning"
	"github.com/imamik/vnetplan/internal/util/labels"
)

// ProvisionFirewalls creates one firewall per subnet group. Each firewall
// admits traffic originating from the group's own member subnets, so
// subnets sharing a group label can reach each other while cross-group
// traffic stays blocked by default.
func (p *Provisioner) ProvisionFirewalls(ctx *provisioning.Context) error {
	cfg := ctx.Config
	index := ctx.Plan.Index

	for _, group := range index.GroupOrder {
		name := fmt.Sprintf("%s-%s", cfg.Name, group)
		ctx.Observer.Printf("[%s] Reconciling firewall %s...", phase, name)

		rules := groupRules(index.GroupBlocks[group])
		firewallLabels := labels.NewLabelBuilder(cfg.Name).
			WithGroup(group).
			Build()

		firewall, err := ctx.Infra.EnsureFirewall(ctx, name, rules, firewallLabels)
		if err != nil {
			return fmt.Errorf("failed to ensure firewall %s: %w", name, err)
		}
		ctx.State.Firewalls[group] = firewall
		provisioning.LogResourceCreated(ctx.Observer, phase, "firewall", name, fmt.Sprint(firewall.ID))
	}

	return nil
}

// groupRules builds intra-group allow rules from the group's member blocks.
func groupRules(blocks []cidr.Block) []hcloud.FirewallRule {
	sourceNets := blockNets(blocks)
	if len(sourceNets) == 0 {
		return nil
	}

	return []hcloud.FirewallRule{
		{
			Description: hcloud.Ptr("Allow TCP within group"),
			Direction:   hcloud.FirewallRuleDirectionIn,
			Protocol:    hcloud.FirewallRuleProtocolTCP,
			Port:        hcloud.Ptr("any"),
			SourceIPs:   sourceNets,
		},
		{
			Description: hcloud.Ptr("Allow UDP within group"),
			Direction:   hcloud.FirewallRuleDirectionIn,
			Protocol:    hcloud.FirewallRuleProtocolUDP,
			Port:        hcloud.Ptr("any"),
			SourceIPs:   sourceNets,
		},
		{
			Description: hcloud.Ptr("Allow ICMP within group"),
			Direction:   hcloud.FirewallRuleDirectionIn,
			Protocol:    hcloud.FirewallRuleProtocolICMP,
			SourceIPs:   sourceNets,
		},
	}
}

// blockNets converts planned blocks into net.IPNet values, skipping any
// block that fails to parse.
func blockNets(blocks []cidr.Block) []net.IPNet {
	var nets []net.IPNet
	for _, block := range blocks {
		_, n, err := net.ParseCIDR(block.String())
		if err == nil {
			nets = append(nets, *n)
		}
	}
	return nets
}
