package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vnetplan/cmd/vnetplan/handlers"
)

// Apply returns the command for materializing the plan on Hetzner Cloud.
//
// This command computes the plan exactly like 'vnetplan plan' and then
// creates or updates the parent network, its subnets, and one firewall
// per group.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: vnetplan.yaml)
//
// Environment variables:
//
//	VNETPLAN_HCLOUD_TOKEN: Hetzner Cloud API token (required)
func Apply() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update the planned network resources",
		Long: `Create or update the planned network resources on Hetzner Cloud.

This command computes the subnet layout and reconciles it against the
cloud: the parent network, one subnet per network and zone, and one
firewall per group. Re-running apply converges existing resources to
the current plan.

If no config file is specified, it looks for vnetplan.yaml in the
current directory. Use 'vnetplan init' to create a configuration file.

Examples:
  # Apply using vnetplan.yaml in current directory
  vnetplan apply

  # Apply using a specific config file
  vnetplan apply -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: vnetplan.yaml)")

	return cmd
}
